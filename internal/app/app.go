// Package app wires the window, input, canvas and scene into the frame loop.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/sunspiral/internal/config"
	"github.com/Faultbox/sunspiral/internal/engine/canvas"
	"github.com/Faultbox/sunspiral/internal/engine/input"
	"github.com/Faultbox/sunspiral/internal/engine/window"
	"github.com/Faultbox/sunspiral/internal/logger"
	"github.com/Faultbox/sunspiral/internal/render"
	"github.com/Faultbox/sunspiral/pkg/math"
)

// App is the running application instance.
type App struct {
	cfg     *config.Config
	window  *window.Window
	canvas  *canvas.Canvas
	input   *input.Input
	scene   *render.Scene
	running bool
}

// New creates the window, the GL canvas and the scene.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("interactive", cfg.Interaction.Enabled),
	)

	a := &App{cfg: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Sunset Spiral",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Canvas needs the GL context the window just created.
	a.canvas, err = canvas.New(cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create canvas: %w", err)
	}

	a.input = input.New()
	a.scene = render.NewScene(render.Config{
		Width:              cfg.Graphics.Width,
		Height:             cfg.Graphics.Height,
		TimeStep:           cfg.Simulation.TimeStep,
		Interactive:        cfg.Interaction.Enabled,
		DistortionStrength: cfg.Interaction.DistortionStrength,
		Climate:            cfg.ClimateModel(),
		Helix:              cfg.HelixParams(),
	})

	logger.Info("initialized")
	return a, nil
}

// Run drives the frame loop until quit is requested.
func (a *App) Run() error {
	a.running = true

	var frameBudget time.Duration
	if a.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(a.cfg.Graphics.FPSLimit)
	}

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop", zap.Int("fps_limit", a.cfg.Graphics.FPSLimit))

	for a.running {
		frameStart := time.Now()

		// 1. Input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, ev := range a.input.Events() {
			a.handleEvent(ev)
		}

		// 2. Simulation step
		a.scene.Advance()

		// 3. Render
		a.canvas.Begin()
		a.scene.Render(a.canvas)
		a.canvas.End()
		a.window.Present()

		// 4. Frame pacing
		if frameBudget > 0 {
			if rest := frameBudget - time.Since(frameStart); rest > 0 {
				time.Sleep(rest)
			}
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("frames", frameCount),
				zap.Float64("sim_time", a.scene.Time()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvent routes one input event to the scene. Pointer events are
// ignored when interaction is disabled; keyboard shortcuts always work.
func (a *App) handleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventQuit:
		a.running = false

	case input.EventKeyDown:
		switch ev.Key {
		case sdl.SCANCODE_ESCAPE:
			a.running = false
		case sdl.SCANCODE_SPACE:
			a.scene.TogglePause()
		case sdl.SCANCODE_R:
			a.scene.ResetView()
		case sdl.SCANCODE_H, sdl.SCANCODE_F1:
			a.scene.ToggleHelp()
		}

	case input.EventMouseMove:
		if a.cfg.Interaction.Enabled {
			a.scene.Field().MoveTo(math.Vec2{X: float64(ev.MouseX), Y: float64(ev.MouseY)})
		}

	case input.EventMouseDown:
		if !a.cfg.Interaction.Enabled {
			return
		}
		p := math.Vec2{X: float64(ev.MouseX), Y: float64(ev.MouseY)}
		switch ev.Button {
		case sdl.BUTTON_LEFT:
			a.scene.Field().AddRipple(p)
			a.scene.Field().StartDrag(p)
		case sdl.BUTTON_RIGHT:
			a.scene.Field().AddRipple(p)
		}

	case input.EventMouseUp:
		if a.cfg.Interaction.Enabled && ev.Button == sdl.BUTTON_LEFT {
			a.scene.Field().EndDrag()
		}

	case input.EventMouseWheel:
		if a.cfg.Interaction.Enabled && ev.WheelY != 0 {
			a.scene.Zoom(ev.WheelY)
		}
	}
}

// Close releases the canvas and the window.
func (a *App) Close() {
	logger.Info("closing")
	if a.canvas != nil {
		a.canvas.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
