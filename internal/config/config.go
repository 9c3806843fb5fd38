// Package config handles configuration loading and management.
package config

import (
	"github.com/Faultbox/sunspiral/internal/sim/climate"
	"github.com/Faultbox/sunspiral/internal/sim/helix"
)

// Config holds all application settings.
type Config struct {
	Graphics    GraphicsConfig    `yaml:"graphics"`
	Simulation  SimulationConfig  `yaml:"simulation"`
	Helix       HelixConfig       `yaml:"helix"`
	Interaction InteractionConfig `yaml:"interaction"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"` // 0 = uncapped
}

// SimulationConfig holds the clock and temperature model settings.
type SimulationConfig struct {
	TimeStep       float64 `yaml:"time_step"`
	AnnualAverage  float64 `yaml:"annual_average"`
	Amplitude      float64 `yaml:"amplitude"`
	DailyVariation float64 `yaml:"daily_variation"`
}

// HelixConfig holds the Möbius band geometry settings.
type HelixConfig struct {
	Points          int     `yaml:"points"`
	WidthSteps      int     `yaml:"width_steps"`
	BaseRadius      float64 `yaml:"base_radius"`
	RadiusVariation float64 `yaml:"radius_variation"`
	BaseWidth       float64 `yaml:"base_width"`
	WidthVariation  float64 `yaml:"width_variation"`
}

// InteractionConfig holds pointer interaction settings.
type InteractionConfig struct {
	Enabled            bool    `yaml:"enabled"`
	DistortionStrength float64 `yaml:"distortion_strength"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the values the artwork was tuned with.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      900,
			Height:     900,
			Fullscreen: false,
			VSync:      false,
			FPSLimit:   700,
		},
		Simulation: SimulationConfig{
			TimeStep:       0.06,
			AnnualAverage:  2.5,
			Amplitude:      22.5,
			DailyVariation: 3,
		},
		Helix: HelixConfig{
			Points:          900,
			WidthSteps:      21,
			BaseRadius:      320,
			RadiusVariation: 200,
			BaseWidth:       140,
			WidthVariation:  60,
		},
		Interaction: InteractionConfig{
			Enabled:            true,
			DistortionStrength: 0.3,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ClimateModel converts the simulation settings to a temperature model.
func (c *Config) ClimateModel() climate.Model {
	return climate.Model{
		AnnualAverage:  c.Simulation.AnnualAverage,
		Amplitude:      c.Simulation.Amplitude,
		DailyVariation: c.Simulation.DailyVariation,
	}
}

// HelixParams converts the helix settings to band geometry parameters.
func (c *Config) HelixParams() helix.Params {
	return helix.Params{
		Points:          c.Helix.Points,
		WidthSteps:      c.Helix.WidthSteps,
		BaseRadius:      c.Helix.BaseRadius,
		RadiusVariation: c.Helix.RadiusVariation,
		BaseWidth:       c.Helix.BaseWidth,
		WidthVariation:  c.Helix.WidthVariation,
	}
}
