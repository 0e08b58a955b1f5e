package lockpattern

import "github.com/gogpu/gg"

// Distance returns the Euclidean distance between a and b.
func Distance(a, b gg.Point) float64 {
	return a.Distance(b)
}

// PointToSegmentDistance returns the shortest distance from p to the
// segment [s, e].
//
// A zero-length segment (s == e) degenerates to Distance(p, s).
func PointToSegmentDistance(p, s, e gg.Point) float64 {
	line := e.Sub(s)
	length := line.Length()
	if length == 0 {
		return Distance(p, s)
	}

	unit := line.Div(length)
	proj := p.Sub(s).Dot(unit)
	proj = max(0, min(proj, length))

	nearest := s.Add(unit.Mul(proj))
	return Distance(p, nearest)
}
