package lockpattern

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/gg"
)

func newScenarioWidget(t *testing.T, opts ...Option) *Widget {
	t.Helper()
	opts = append([]Option{WithLayout(gg.Pt(100, 100), 300)}, opts...)
	g, err := NewGrid(opts...)
	if err != nil {
		t.Fatalf("NewGrid() = %v", err)
	}
	w, err := NewWidget(g)
	if err != nil {
		t.Fatalf("NewWidget() = %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestNewWidget_NilGrid(t *testing.T) {
	if _, err := NewWidget(nil); err == nil {
		t.Error("NewWidget(nil) returned nil error")
	}
}

func TestWidget_Scenario(t *testing.T) {
	w := newScenarioWidget(t)

	var got [][]int
	w.OnPattern(func(p []int) { got = append(got, p) })

	events := []Event{
		Down(100, 100),
		Move(700, 100),
	}
	for _, ev := range events {
		if !w.Handle(ev) {
			t.Fatalf("Handle(%v) = false", ev.Kind)
		}
	}
	if sel := w.Grid().Selection(); !slices.Equal(sel, []int{0, 1, 2}) {
		t.Fatalf("Selection() = %v, want [0 1 2]", sel)
	}
	if !w.Held() || w.Pointer() != gg.Pt(700, 100) {
		t.Errorf("Held() = %v, Pointer() = %v", w.Held(), w.Pointer())
	}

	w.Handle(Up(700, 100))
	if sel := w.Grid().Selection(); len(sel) != 0 {
		t.Errorf("after up: Selection() = %v, want empty", sel)
	}
	if w.Held() {
		t.Error("after up: Held() = true")
	}
	if len(got) != 1 || !slices.Equal(got[0], []int{0, 1, 2}) {
		t.Errorf("OnPattern got %v, want [[0 1 2]]", got)
	}
	checkInvariants(t, w.Grid())
}

func TestWidget_MoveWithoutButton(t *testing.T) {
	w := newScenarioWidget(t)

	w.Handle(Move(100, 100))
	w.Handle(Move(700, 100))
	if sel := w.Grid().Selection(); len(sel) != 0 {
		t.Errorf("Selection() = %v, want empty", sel)
	}
	if w.Pointer() != gg.Pt(700, 100) {
		t.Errorf("Pointer() = %v, want (700,100)", w.Pointer())
	}
}

func TestWidget_DownOffGridThenDrag(t *testing.T) {
	w := newScenarioWidget(t)

	w.Handle(Down(250, 250))
	if w.Grid().State() != Idle {
		t.Fatalf("State() = %v, want Idle", w.Grid().State())
	}
	w.Handle(Move(400, 400))
	w.Handle(Move(400, 700))
	if sel := w.Grid().Selection(); !slices.Equal(sel, []int{4, 7}) {
		t.Errorf("Selection() = %v, want [4 7]", sel)
	}
}

func TestWidget_UpWithoutPatternSkipsCallback(t *testing.T) {
	w := newScenarioWidget(t)
	called := false
	w.OnPattern(func([]int) { called = true })

	w.Handle(Down(250, 250))
	w.Handle(Up(250, 250))
	if called {
		t.Error("OnPattern called for an empty pattern")
	}
}

func TestWidget_Quit(t *testing.T) {
	w := newScenarioWidget(t)

	if w.Handle(Quit()) {
		t.Error("Handle(Quit) = true, want false")
	}
	if !w.Done() {
		t.Error("Done() = false after Quit")
	}
	if w.Handle(Down(100, 100)) {
		t.Error("Handle after Quit = true, want false")
	}
	if sel := w.Grid().Selection(); len(sel) != 0 {
		t.Errorf("events after Quit changed the selection: %v", sel)
	}
}

func TestWidget_UnknownEventLogged(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	w := newScenarioWidget(t)
	if !w.Handle(Event{Kind: EventKind(99)}) {
		t.Error("Handle(unknown) = false, want true")
	}
	if !strings.Contains(buf.String(), "unknown event") {
		t.Errorf("expected warning in log, got: %s", buf.String())
	}
}

func TestWidget_LogsCompletedPattern(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	w := newScenarioWidget(t)
	w.Handle(Down(100, 100))
	w.Handle(Move(700, 100))
	w.Handle(Up(700, 100))

	out := buf.String()
	for _, want := range []string{"pattern started", "dots selected", "pattern completed"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestWidget_DrawFrame(t *testing.T) {
	w := newScenarioWidget(t)
	w.Handle(Down(100, 100))

	dc := gg.NewContext(900, 900)
	if err := w.DrawFrame(dc); err != nil {
		t.Fatalf("DrawFrame() = %v", err)
	}
	pal := DefaultPalette()
	img := dc.Image()
	if got := rgbAt(img, 100, 100); !nearColor(got, pal.Selected) {
		t.Errorf("dot 0 pixel = %v, want selected", got)
	}
	if got := rgbAt(img, 5, 5); !nearColor(got, pal.Background) {
		t.Errorf("corner pixel = %v, want background", got)
	}
}

func TestWidget_DrawFrameAfterClose(t *testing.T) {
	w := newScenarioWidget(t)
	if err := w.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
	if err := w.DrawFrame(gg.NewContext(10, 10)); !errors.Is(err, ErrWidgetClosed) {
		t.Errorf("DrawFrame() after Close = %v, want ErrWidgetClosed", err)
	}
}

func TestWidget_Caption(t *testing.T) {
	w := newScenarioWidget(t, WithCaption("en"))

	if got := w.Caption(); got != "" {
		t.Errorf("idle Caption() = %q, want empty", got)
	}
	w.Handle(Down(100, 100))
	if got := w.Caption(); got != "1 dot" {
		t.Errorf("Caption() = %q, want %q", got, "1 dot")
	}
	w.Handle(Move(700, 100))
	if got := w.Caption(); got != "3 dots" {
		t.Errorf("Caption() = %q, want %q", got, "3 dots")
	}
	if err := w.DrawFrame(gg.NewContext(900, 900)); err != nil {
		t.Errorf("DrawFrame() with caption = %v", err)
	}
}

func TestWidget_CaptionDisabled(t *testing.T) {
	w := newScenarioWidget(t)
	w.Handle(Down(100, 100))
	if got := w.Caption(); got != "" {
		t.Errorf("Caption() = %q, want empty when disabled", got)
	}
}

func TestEventKind_String(t *testing.T) {
	tests := []struct {
		k    EventKind
		want string
	}{
		{EventQuit, "Quit"},
		{EventPointerDown, "PointerDown"},
		{EventPointerMove, "PointerMove"},
		{EventPointerUp, "PointerUp"},
		{EventKind(77), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("EventKind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
