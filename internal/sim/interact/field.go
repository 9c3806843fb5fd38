// Package interact models pointer state and click ripples, and exposes the
// influence fields the renderer samples per point.
package interact

import (
	"github.com/Faultbox/sunspiral/pkg/math"
)

// Defaults for pointer interaction.
const (
	DefaultInfluenceRadius = 150.0
	DefaultRippleDuration  = 60 // frames
	DefaultDragSensitivity = 0.003

	rippleExpansion = 1.2 // ripple max radius relative to influence radius
	rippleBandWidth = 20.0
)

// Ripple is a click effect: an annulus expanding from the click position,
// fading out over the ripple duration.
type Ripple struct {
	Origin    math.Vec2
	Age       int
	MaxRadius float64
}

// Field tracks pointer position, drag state, and active ripples. It is
// owned by the render thread; event handling mutates it, the renderer only
// reads it.
type Field struct {
	Pointer math.Vec2

	// View adjustments accumulated by dragging. Unbounded: drag is
	// relative, not absolute.
	RotationOffset float64
	ViewOffsetX    float64
	ViewOffsetY    float64

	InfluenceRadius float64
	RippleDuration  int
	DragSensitivity float64

	dragging bool
	anchor   math.Vec2
	ripples  []Ripple
}

// NewField returns a field with default tuning.
func NewField() *Field {
	return &Field{
		InfluenceRadius: DefaultInfluenceRadius,
		RippleDuration:  DefaultRippleDuration,
		DragSensitivity: DefaultDragSensitivity,
	}
}

// MoveTo updates the pointer position. While dragging, the delta since the
// last move rotates the band and pans the view, and the anchor resets to
// the new position so motion stays delta-based.
func (f *Field) MoveTo(p math.Vec2) {
	f.Pointer = p
	if !f.dragging {
		return
	}
	d := p.Sub(f.anchor)
	f.RotationOffset += d.X * f.DragSensitivity
	f.ViewOffsetY += d.Y * 0.5
	f.anchor = p
}

// StartDrag enters the dragging state, capturing the anchor.
func (f *Field) StartDrag(p math.Vec2) {
	f.dragging = true
	f.anchor = p
}

// EndDrag leaves the dragging state.
func (f *Field) EndDrag() {
	f.dragging = false
}

// Dragging reports whether a drag is in progress.
func (f *Field) Dragging() bool {
	return f.dragging
}

// ResetView clears the accumulated rotation and pan offsets.
func (f *Field) ResetView() {
	f.RotationOffset = 0
	f.ViewOffsetX = 0
	f.ViewOffsetY = 0
}

// AddRipple starts a ripple at the click position, independent of drag
// state.
func (f *Field) AddRipple(p math.Vec2) {
	f.ripples = append(f.ripples, Ripple{
		Origin:    p,
		MaxRadius: f.InfluenceRadius * rippleExpansion,
	})
}

// Step ages the ripples by one frame. Expired ripples are dropped before
// aging, so a ripple added at frame N is retained through frame N+duration-1
// and gone at frame N+duration.
func (f *Field) Step() {
	live := f.ripples[:0]
	for _, r := range f.ripples {
		if r.Age < f.RippleDuration {
			r.Age++
			live = append(live, r)
		}
	}
	f.ripples = live
}

// Ripples returns the active ripples in insertion order.
func (f *Field) Ripples() []Ripple {
	return f.ripples
}

// Progress returns the ripple's expansion progress in [0,1].
func (f *Field) Progress(r Ripple) float64 {
	return float64(r.Age) / float64(f.RippleDuration)
}

// PointerInfluence returns the pointer's influence on a screen point:
// 1 at the pointer, falling off smoothly to 0 at the influence radius.
func (f *Field) PointerInfluence(p math.Vec2) float64 {
	d := p.Distance(f.Pointer)
	if d > f.InfluenceRadius {
		return 0
	}
	n := d / f.InfluenceRadius
	influence := 1 - n*n
	if influence < 0 {
		return 0
	}
	return influence
}

// RippleInfluence sums the influence of every active ripple on a screen
// point. Each ripple contributes only within a narrow band around its
// current radius, with strength fading as it expands. The sum is clamped
// to 1.
func (f *Field) RippleInfluence(p math.Vec2) float64 {
	total := 0.0
	for _, r := range f.ripples {
		progress := f.Progress(r)
		radius := r.MaxRadius * progress

		d := p.Distance(r.Origin) - radius
		if d < 0 {
			d = -d
		}
		if d < rippleBandWidth {
			total += (1 - progress) * 0.3
		}
	}
	if total > 1 {
		return 1
	}
	return total
}
