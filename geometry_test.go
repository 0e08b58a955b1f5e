package lockpattern

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

const eps = 1e-9

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b gg.Point
		want float64
	}{
		{"same point", gg.Pt(3, 4), gg.Pt(3, 4), 0},
		{"3-4-5", gg.Pt(0, 0), gg.Pt(3, 4), 5},
		{"horizontal", gg.Pt(100, 100), gg.Pt(400, 100), 300},
		{"negative", gg.Pt(-1, -1), gg.Pt(2, 3), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if back := Distance(tt.b, tt.a); math.Abs(back-got) > eps {
				t.Errorf("Distance is not symmetric: %v vs %v", got, back)
			}
		})
	}
}

func TestPointToSegmentDistance(t *testing.T) {
	s, e := gg.Pt(100, 100), gg.Pt(700, 100)

	tests := []struct {
		name string
		p    gg.Point
		want float64
	}{
		{"on segment", gg.Pt(400, 100), 0},
		{"above middle", gg.Pt(400, 40), 60},
		{"below middle", gg.Pt(250, 130), 30},
		{"before start clamps", gg.Pt(40, 100), 60},
		{"after end clamps", gg.Pt(703, 104), 5},
		{"diagonal before start", gg.Pt(97, 96), 5},
		{"endpoint", gg.Pt(700, 100), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointToSegmentDistance(tt.p, s, e)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("PointToSegmentDistance(%v, %v, %v) = %v, want %v", tt.p, s, e, got, tt.want)
			}
		})
	}
}

func TestPointToSegmentDistance_Diagonal(t *testing.T) {
	got := PointToSegmentDistance(gg.Pt(400, 100), gg.Pt(100, 100), gg.Pt(700, 700))
	want := 300 / math.Sqrt2
	if math.Abs(got-want) > eps {
		t.Errorf("PointToSegmentDistance() = %v, want %v", got, want)
	}
}

func TestPointToSegmentDistance_ZeroLength(t *testing.T) {
	points := []gg.Point{
		gg.Pt(0, 0),
		gg.Pt(100, 100),
		gg.Pt(-250, 37.5),
		gg.Pt(1e6, -1e6),
	}

	for _, s := range points {
		for _, p := range points {
			got := PointToSegmentDistance(p, s, s)
			want := Distance(p, s)
			if math.IsNaN(got) {
				t.Fatalf("PointToSegmentDistance(%v, %v, %v) = NaN", p, s, s)
			}
			if got != want {
				t.Errorf("PointToSegmentDistance(%v, %v, %v) = %v, want %v", p, s, s, got, want)
			}
		}
	}
}

func BenchmarkPointToSegmentDistance(b *testing.B) {
	p, s, e := gg.Pt(400, 130), gg.Pt(100, 100), gg.Pt(700, 100)
	b.ReportAllocs()
	for b.Loop() {
		_ = PointToSegmentDistance(p, s, e)
	}
}
