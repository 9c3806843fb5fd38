// Package render orchestrates one frame of the animation: advance the
// clock, sample the band, apply pointer distortion, shade, project, draw.
//
// The pipeline is strictly sequential and single-owner: all state lives on
// the Scene and is touched only from the render thread. Data flows one way
// per frame: time → temperature → geometry → interaction → color →
// projection → draw calls.
package render

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/sunspiral/internal/sim/climate"
	"github.com/Faultbox/sunspiral/internal/sim/helix"
	"github.com/Faultbox/sunspiral/internal/sim/interact"
	"github.com/Faultbox/sunspiral/internal/sim/palette"
	"github.com/Faultbox/sunspiral/pkg/math"
)

// Zoom limits for the scroll-adjusted base radius.
const (
	minBaseRadius = 100.0
	maxBaseRadius = 500.0
)

// helpDuration is how many frames the help panel stays up on startup.
const helpDuration = 300

// Config holds scene configuration.
type Config struct {
	Width, Height int

	// TimeStep is added to the clock once per frame. The clock is
	// fixed-step, not wall-time: playback speed follows the achieved
	// frame rate.
	TimeStep float64

	// Interactive enables the pointer/ripple field and overlays.
	Interactive bool

	// DistortionStrength scales pointer attraction displacement.
	DistortionStrength float64

	Climate climate.Model
	Helix   helix.Params
}

// DefaultConfig returns the scene configuration of the original artwork.
func DefaultConfig() Config {
	return Config{
		Width:              900,
		Height:             900,
		TimeStep:           0.06,
		Interactive:        true,
		DistortionStrength: 0.3,
		Climate:            climate.Default(),
		Helix:              helix.DefaultParams(),
	}
}

// Scene owns all per-run animation state.
type Scene struct {
	cfg   Config
	proj  helix.Projector
	field *interact.Field

	t      float64
	paused bool

	showHelp  bool
	helpTimer int
}

// NewScene creates a scene. The help panel starts visible and fades after a
// few hundred frames.
func NewScene(cfg Config) *Scene {
	return &Scene{
		cfg: cfg,
		proj: helix.Projector{
			CenterX: float64(cfg.Width) / 2,
			CenterY: float64(cfg.Height) / 2,
		},
		field:     interact.NewField(),
		showHelp:  cfg.Interactive,
		helpTimer: helpDuration,
	}
}

// Field exposes the interaction field for event wiring.
func (s *Scene) Field() *interact.Field {
	return s.field
}

// Time returns the current simulation time.
func (s *Scene) Time() float64 {
	return s.t
}

// BaseRadius returns the current scroll-adjusted base radius.
func (s *Scene) BaseRadius() float64 {
	return s.cfg.Helix.BaseRadius
}

// Zoom scales the base radius by ±10% per wheel notch, clamped so the band
// never collapses or swallows the window.
func (s *Scene) Zoom(dir int) {
	factor := 1.1
	if dir < 0 {
		factor = 0.9
	}
	r := s.cfg.Helix.BaseRadius * factor
	if r < minBaseRadius {
		r = minBaseRadius
	} else if r > maxBaseRadius {
		r = maxBaseRadius
	}
	s.cfg.Helix.BaseRadius = r
}

// TogglePause freezes or resumes the clock.
func (s *Scene) TogglePause() {
	s.paused = !s.paused
}

// ToggleHelp shows or hides the help panel.
func (s *Scene) ToggleHelp() {
	s.showHelp = !s.showHelp
	s.helpTimer = 0 // manual toggle overrides the startup fade
}

// ResetView clears the drag-accumulated rotation and pan.
func (s *Scene) ResetView() {
	s.field.ResetView()
}

// Advance moves the simulation one frame: fixed clock step, ripple aging,
// help fade. Called once per frame before Render.
func (s *Scene) Advance() {
	if !s.paused {
		s.t += s.cfg.TimeStep
	}
	if s.cfg.Interactive {
		s.field.Step()
	}
	if s.helpTimer > 0 {
		s.helpTimer--
		if s.helpTimer == 0 {
			s.showHelp = false
		}
	}
}

// Render draws the current frame.
func (s *Scene) Render(c Canvas) {
	c.Clear(Background)

	temp := s.cfg.Climate.Temperature(s.t)
	s.renderBand(c, temp)

	if s.cfg.Interactive {
		s.renderCursor(c)
		s.renderRipples(c)
		s.renderStatus(c, temp)
		if s.showHelp {
			s.renderHelp(c)
		}
	}
}

// renderBand draws the point cloud of the Möbius band.
func (s *Scene) renderBand(c Canvas, temp float64) {
	factor := climate.Factor(temp)
	radius := s.cfg.Helix.Radius(factor)
	width := s.cfg.Helix.Width(s.t)

	// Color seeds follow the raw temperature factor.
	warmA := palette.RGB{R: int(100 + 95*factor), G: 150, B: 255}
	warmB := palette.RGB{R: 255, G: int(50 + 55*factor), B: 120}

	points := s.cfg.Helix.Points
	steps := s.cfg.Helix.WidthSteps

	for i := 0; i < points; i++ {
		theta := s.cfg.Helix.Theta(i)
		if s.cfg.Interactive {
			theta += s.field.RotationOffset
		}
		lighting := helix.Lighting(theta, helix.LightDir)

		for j := 0; j < steps; j++ {
			wfrac := s.cfg.Helix.WFrac(j)

			p := helix.Sample(theta, wfrac, radius, width)
			screen := s.proj.Project(p)

			pointerInf, rippleInf := 0.0, 0.0
			if s.cfg.Interactive {
				screen.X += s.field.ViewOffsetX
				screen.Y += s.field.ViewOffsetY

				pointerInf = s.field.PointerInfluence(screen)
				rippleInf = s.field.RippleInfluence(screen)
				screen = s.attract(screen, pointerInf)
			}

			blend := (wfrac+0.5)*0.7 + 0.3*float64(i)/float64(points)
			color := palette.Blend(warmA, warmB, blend)

			if pointerInf > 0.1 {
				color = palette.Boost(color, 1+pointerInf*0.5)
			}
			if rippleInf > 0 {
				color = palette.Blend(color, palette.White, rippleInf*0.4)
			}
			color = palette.Scale(color, lighting)

			size := 2 + int(pointerInf*3) + int(rippleInf*2)
			c.FillCircle(int(screen.X), int(screen.Y), size, color)
		}
	}
}

// attract nudges a screen point toward the pointer. Zero distance skips the
// displacement so the direction never divides by zero.
func (s *Scene) attract(p math.Vec2, influence float64) math.Vec2 {
	if influence <= 0 {
		return p
	}
	d := s.field.Pointer.Sub(p)
	if d.Length() == 0 {
		return p
	}
	force := influence * s.cfg.DistortionStrength * 0.1
	return p.Add(d.Scale(force))
}

// renderCursor draws the influence ring and a pulsing marker around the
// pointer while it is inside the window.
func (s *Scene) renderCursor(c Canvas) {
	p := s.field.Pointer
	if p.X < 0 || p.X > float64(s.cfg.Width) || p.Y < 0 || p.Y > float64(s.cfg.Height) {
		return
	}

	ring := palette.RGB{R: 50, G: 50, B: 255}
	c.StrokeCircle(int(p.X), int(p.Y), int(s.field.InfluenceRadius), 2, ring)

	pulse := int(20 + 10*gomath.Sin(s.t*5))
	c.StrokeCircle(int(p.X), int(p.Y), pulse, 2, palette.White)
}

// renderRipples draws the expanding outline of every active click ripple.
func (s *Scene) renderRipples(c Canvas) {
	color := palette.RGB{R: 255, G: 25, B: 100}
	for _, r := range s.field.Ripples() {
		progress := s.field.Progress(r)
		radius := int(r.MaxRadius * progress)
		fade := 128 - int(128*progress)

		if fade > 5 && radius > 0 {
			c.StrokeCircle(int(r.Origin.X), int(r.Origin.Y), radius, 1, color)
		}
	}
}

// renderStatus draws the temperature readout.
func (s *Scene) renderStatus(c Canvas, temp float64) {
	c.Text(10, 10, fmt.Sprintf("Temperature: %.1f°C", temp), palette.RGB{R: 200, G: 200, B: 200})
}
