package focal

import "testing"

// recorder captures emitted updates and scroll toggles for assertions.
type recorder struct {
	updates []Update
	scroll  []bool
}

func (r *recorder) onChange(u Update) { r.updates = append(r.updates, u) }
func (r *recorder) setScroll(v bool)  { r.scroll = append(r.scroll, v) }

func newTestController() (*Controller, *recorder) {
	r := &recorder{}
	return NewController(r.onChange, r.setScroll), r
}

func TestLayoutMeasured_IgnoresZeroDimensions(t *testing.T) {
	c, _ := newTestController()

	c.LayoutMeasured(0, 100)
	if _, ok := c.Size(); ok {
		t.Fatal("zero width must not set the container size")
	}

	c.LayoutMeasured(100, 0)
	if _, ok := c.Size(); ok {
		t.Fatal("zero height must not set the container size")
	}

	c.LayoutMeasured(0, 0)
	if _, ok := c.Size(); ok {
		t.Fatal("zero size must not set the container size")
	}
}

func TestLayoutMeasured_RepeatIsNoOp(t *testing.T) {
	c, _ := newTestController()

	c.LayoutMeasured(200, 100)
	c.LayoutMeasured(200, 100)
	c.LayoutMeasured(200, 100)

	size, ok := c.Size()
	if !ok {
		t.Fatal("expected size to be measured")
	}
	if size.Width != 200 || size.Height != 100 {
		t.Errorf("size = %+v, want {200 100}", size)
	}
}

func TestLayoutMeasured_ReplacesChangedSize(t *testing.T) {
	c, _ := newTestController()

	c.LayoutMeasured(200, 100)
	c.LayoutMeasured(300, 150)

	size, _ := c.Size()
	if size.Width != 300 || size.Height != 150 {
		t.Errorf("size = %+v, want {300 150}", size)
	}
}

func TestDragEnd_RoundTrip(t *testing.T) {
	c, r := newTestController()
	c.LayoutMeasured(200, 100)

	p := FocalPoint{X: 0.5, Y: 0.25}
	pos, ok := c.CursorPosition(p)
	if !ok {
		t.Fatal("expected a cursor position after measurement")
	}
	if pos.X != 100 || pos.Y != 25 {
		t.Fatalf("cursor = %+v, want {100 25}", pos)
	}

	c.DragStart(pos.X, pos.Y)
	c.DragEnd(pos.X, pos.Y)

	if len(r.updates) != 1 {
		t.Fatalf("expected 1 update, got %d", len(r.updates))
	}
	u := r.updates[0]
	if u.X == nil || u.Y == nil {
		t.Fatal("expected both axes in the update")
	}
	if *u.X != 0.5 || *u.Y != 0.25 {
		t.Errorf("update = {%v %v}, want {0.5 0.25}", *u.X, *u.Y)
	}
}

func TestDragEnd_UnmeasuredOmitsBothAxes(t *testing.T) {
	c, r := newTestController()

	c.DragStart(50, 50)
	c.DragEnd(50, 50)

	if len(r.updates) != 1 {
		t.Fatalf("expected 1 update, got %d", len(r.updates))
	}
	if !r.updates[0].IsZero() {
		t.Errorf("update = %+v, want both axes omitted", r.updates[0])
	}
}

func TestDragEnd_DoesNotClampOutOfBounds(t *testing.T) {
	c, r := newTestController()
	c.LayoutMeasured(200, 100)

	c.DragStart(190, 90)
	c.DragMove(60, 60)
	c.DragEnd(250, 150)

	u := r.updates[0]
	if u.X == nil || *u.X != 1.25 {
		t.Errorf("X = %v, want unclamped 1.25", u.X)
	}
	if u.Y == nil || *u.Y != 1.5 {
		t.Errorf("Y = %v, want unclamped 1.5", u.Y)
	}
}

func TestDragMove_CursorTracksBaselinePlusDelta(t *testing.T) {
	c, _ := newTestController()
	c.LayoutMeasured(200, 100)

	c.DragStart(10, 10)
	c.DragMove(20, -5)

	pos, ok := c.CursorPosition(FocalPoint{})
	if !ok {
		t.Fatal("expected a cursor position mid-drag")
	}
	if pos.X != 30 || pos.Y != 5 {
		t.Errorf("cursor = %+v, want {30 5}", pos)
	}
}

func TestDragMove_DeltaIsCumulativeNotAdditive(t *testing.T) {
	c, _ := newTestController()
	c.LayoutMeasured(200, 100)

	c.DragStart(10, 10)
	c.DragMove(5, 5)
	c.DragMove(20, -5)

	pos, _ := c.CursorPosition(FocalPoint{})
	if pos.X != 30 || pos.Y != 5 {
		t.Errorf("cursor = %+v, want {30 5}: moves carry cumulative displacement", pos)
	}
}

func TestDragMove_EmitsNothing(t *testing.T) {
	c, r := newTestController()
	c.LayoutMeasured(200, 100)

	c.DragStart(10, 10)
	c.DragMove(20, -5)

	if len(r.updates) != 0 {
		t.Errorf("expected no updates during move, got %d", len(r.updates))
	}
}

func TestDragStart_SnapsCursorAndDiscardsOldOffset(t *testing.T) {
	c, _ := newTestController()
	c.LayoutMeasured(200, 100)

	c.DragStart(10, 10)
	c.DragMove(50, 50)
	c.DragEnd(60, 60)

	c.DragStart(5, 5)
	pos, _ := c.CursorPosition(FocalPoint{})
	if pos.X != 5 || pos.Y != 5 {
		t.Errorf("cursor = %+v, want snap to {5 5}", pos)
	}
}

func TestScrollSuspendedForGestureDuration(t *testing.T) {
	c, r := newTestController()
	c.LayoutMeasured(200, 100)

	c.DragStart(10, 10)
	c.DragMove(1, 1)
	c.DragEnd(11, 11)

	want := []bool{false, true}
	if len(r.scroll) != len(want) {
		t.Fatalf("scroll calls = %v, want %v", r.scroll, want)
	}
	for i := range want {
		if r.scroll[i] != want[i] {
			t.Fatalf("scroll calls = %v, want %v", r.scroll, want)
		}
	}
}

func TestEpoch_AdvancesOncePerDragEndOnly(t *testing.T) {
	c, _ := newTestController()
	c.LayoutMeasured(200, 100)

	if c.Epoch() != 0 {
		t.Fatalf("epoch = %d, want 0", c.Epoch())
	}

	c.DragStart(10, 10)
	c.DragMove(5, 5)
	if c.Epoch() != 0 {
		t.Error("epoch must not advance before drag end")
	}
	c.DragEnd(15, 15)
	if c.Epoch() != 1 {
		t.Errorf("epoch = %d, want 1 after first drag", c.Epoch())
	}

	c.SliderChanged(AxisX, 75)
	if c.Epoch() != 1 {
		t.Error("slider edits must not advance the epoch")
	}

	c.DragStart(20, 20)
	c.DragEnd(20, 20)
	if c.Epoch() != 2 {
		t.Errorf("epoch = %d, want 2 after second drag", c.Epoch())
	}
}

func TestSliderChanged_EmitsSingleAxisImmediately(t *testing.T) {
	c, r := newTestController()

	c.SliderChanged(AxisX, 75)

	if len(r.updates) != 1 {
		t.Fatalf("expected 1 update, got %d", len(r.updates))
	}
	u := r.updates[0]
	if u.X == nil || *u.X != 0.75 {
		t.Errorf("X = %v, want 0.75", u.X)
	}
	if u.Y != nil {
		t.Errorf("Y = %v, want omitted", *u.Y)
	}
}

func TestSliderChanged_AcceptsOutOfRangePercent(t *testing.T) {
	c, r := newTestController()

	c.SliderChanged(AxisY, 150)

	u := r.updates[0]
	if u.Y == nil || *u.Y != 1.5 {
		t.Errorf("Y = %v, want pass-through 1.5", u.Y)
	}
}

func TestTooltipHidesPermanentlyAfterFirstDrag(t *testing.T) {
	c, _ := newTestController()
	c.LayoutMeasured(200, 100)

	if !c.TooltipVisible() {
		t.Fatal("tooltip should start visible")
	}

	c.DragStart(10, 10)
	if !c.TooltipVisible() {
		t.Error("tooltip should stay visible through the first gesture")
	}
	c.DragEnd(10, 10)
	if c.TooltipVisible() {
		t.Error("tooltip should hide after the first completed drag")
	}

	c.SliderChanged(AxisX, 10)
	if c.TooltipVisible() {
		t.Error("tooltip must never come back")
	}
}

func TestCursorPosition_DeferredUntilMeasured(t *testing.T) {
	c, _ := newTestController()

	if _, ok := c.CursorPosition(FocalPoint{X: 0.5, Y: 0.5}); ok {
		t.Fatal("no cursor position should exist before measurement")
	}

	c.LayoutMeasured(100, 100)
	pos, ok := c.CursorPosition(FocalPoint{X: 0.5, Y: 0.5})
	if !ok || pos.X != 50 || pos.Y != 50 {
		t.Errorf("cursor = %+v ok=%v, want {50 50} true", pos, ok)
	}
}

func TestAbortedDragCommitsNothing(t *testing.T) {
	c, r := newTestController()
	c.LayoutMeasured(200, 100)

	c.DragStart(10, 10)
	c.DragMove(40, 40)
	// Gesture recognizer aborts: no DragEnd ever arrives.

	if len(r.updates) != 0 {
		t.Errorf("expected no committed updates, got %d", len(r.updates))
	}
	if c.Epoch() != 0 {
		t.Errorf("epoch = %d, want 0", c.Epoch())
	}
}

func TestNilCallbacksAreSafe(t *testing.T) {
	c := NewController(nil, nil)
	c.LayoutMeasured(100, 100)
	c.DragStart(1, 1)
	c.DragMove(2, 2)
	c.DragEnd(3, 3)
	c.SliderChanged(AxisY, 50)

	if c.Epoch() != 1 {
		t.Errorf("epoch = %d, want 1", c.Epoch())
	}
}
