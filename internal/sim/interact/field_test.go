package interact

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/sunspiral/pkg/math"
)

func TestRippleLifetime(t *testing.T) {
	f := NewField()
	f.AddRipple(math.Vec2{X: 450, Y: 450})

	// Present through duration frames of updates...
	for frame := 0; frame < DefaultRippleDuration; frame++ {
		f.Step()
		if len(f.Ripples()) != 1 {
			t.Fatalf("after %d steps: %d ripples, want 1", frame+1, len(f.Ripples()))
		}
	}
	// ...and gone on the next.
	f.Step()
	if len(f.Ripples()) != 0 {
		t.Fatalf("after %d steps: %d ripples, want 0", DefaultRippleDuration+1, len(f.Ripples()))
	}
}

func TestRippleFirstFrame(t *testing.T) {
	f := NewField()
	f.AddRipple(math.Vec2{X: 450, Y: 450})
	f.Step()

	ripples := f.Ripples()
	if len(ripples) != 1 {
		t.Fatalf("got %d ripples, want 1", len(ripples))
	}
	r := ripples[0]
	if r.Age != 1 {
		t.Errorf("Age = %d, want 1", r.Age)
	}
	want := 1.0 / float64(DefaultRippleDuration)
	if got := f.Progress(r); gomath.Abs(got-want) > 1e-12 {
		t.Errorf("Progress = %v, want %v", got, want)
	}
	if r.MaxRadius != DefaultInfluenceRadius*1.2 {
		t.Errorf("MaxRadius = %v, want %v", r.MaxRadius, DefaultInfluenceRadius*1.2)
	}
}

func TestRipplesIndependentAges(t *testing.T) {
	f := NewField()
	f.AddRipple(math.Vec2{X: 100, Y: 100})
	f.Step()
	f.AddRipple(math.Vec2{X: 200, Y: 200})
	f.Step()

	ripples := f.Ripples()
	if len(ripples) != 2 {
		t.Fatalf("got %d ripples, want 2", len(ripples))
	}
	if ripples[0].Age != 2 || ripples[1].Age != 1 {
		t.Errorf("ages = %d, %d, want 2, 1", ripples[0].Age, ripples[1].Age)
	}
}

func TestPointerInfluenceFalloff(t *testing.T) {
	f := NewField()
	f.Pointer = math.Vec2{X: 400, Y: 400}

	if got := f.PointerInfluence(f.Pointer); got != 1 {
		t.Errorf("influence at pointer = %v, want 1", got)
	}
	edge := math.Vec2{X: 400 + DefaultInfluenceRadius, Y: 400}
	if got := f.PointerInfluence(edge); got != 0 {
		t.Errorf("influence at radius = %v, want 0", got)
	}
	outside := math.Vec2{X: 400 + DefaultInfluenceRadius + 1, Y: 400}
	if got := f.PointerInfluence(outside); got != 0 {
		t.Errorf("influence outside radius = %v, want 0", got)
	}

	// Halfway out: 1 - 0.5^2.
	mid := math.Vec2{X: 400 + DefaultInfluenceRadius/2, Y: 400}
	if got := f.PointerInfluence(mid); gomath.Abs(got-0.75) > 1e-12 {
		t.Errorf("influence at half radius = %v, want 0.75", got)
	}
}

func TestRippleInfluenceBand(t *testing.T) {
	f := NewField()
	f.AddRipple(math.Vec2{X: 450, Y: 450})
	f.Step() // age 1, radius = 180 * 1/60 = 3

	r := f.Ripples()[0]
	radius := r.MaxRadius * f.Progress(r)

	on := math.Vec2{X: 450 + radius, Y: 450}
	want := (1 - f.Progress(r)) * 0.3
	if got := f.RippleInfluence(on); gomath.Abs(got-want) > 1e-12 {
		t.Errorf("influence on ring = %v, want %v", got, want)
	}

	off := math.Vec2{X: 450 + radius + rippleBandWidth + 1, Y: 450}
	if got := f.RippleInfluence(off); got != 0 {
		t.Errorf("influence off ring = %v, want 0", got)
	}
}

func TestRippleInfluenceClamped(t *testing.T) {
	f := NewField()
	// Stack enough fresh ripples at one spot to exceed 1 before clamping.
	for i := 0; i < 5; i++ {
		f.AddRipple(math.Vec2{X: 450, Y: 450})
	}
	f.Step()

	got := f.RippleInfluence(math.Vec2{X: 450, Y: 450})
	if got != 1 {
		t.Errorf("stacked influence = %v, want clamped to 1", got)
	}
}

func TestDragAccumulatesDeltas(t *testing.T) {
	f := NewField()
	f.StartDrag(math.Vec2{X: 100, Y: 100})
	if !f.Dragging() {
		t.Fatal("expected dragging after StartDrag")
	}

	f.MoveTo(math.Vec2{X: 110, Y: 120})
	f.MoveTo(math.Vec2{X: 130, Y: 110})
	f.EndDrag()
	if f.Dragging() {
		t.Fatal("expected not dragging after EndDrag")
	}

	// dx total = 30, dy total = 10; each move is measured from the
	// updated anchor.
	wantRot := 30 * DefaultDragSensitivity
	if gomath.Abs(f.RotationOffset-wantRot) > 1e-12 {
		t.Errorf("RotationOffset = %v, want %v", f.RotationOffset, wantRot)
	}
	if f.ViewOffsetY != 5 {
		t.Errorf("ViewOffsetY = %v, want 5", f.ViewOffsetY)
	}

	// Movement after the drag ends only updates the pointer.
	f.MoveTo(math.Vec2{X: 500, Y: 500})
	if gomath.Abs(f.RotationOffset-wantRot) > 1e-12 {
		t.Errorf("RotationOffset changed after drag ended: %v", f.RotationOffset)
	}
}

func TestResetView(t *testing.T) {
	f := NewField()
	f.StartDrag(math.Vec2{})
	f.MoveTo(math.Vec2{X: 50, Y: 40})
	f.EndDrag()
	f.ResetView()

	if f.RotationOffset != 0 || f.ViewOffsetX != 0 || f.ViewOffsetY != 0 {
		t.Errorf("ResetView left offsets %v, %v, %v", f.RotationOffset, f.ViewOffsetX, f.ViewOffsetY)
	}
}
