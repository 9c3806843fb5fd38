// Package climate simulates perceived temperature over a synthetic year.
//
// The model combines a seasonal sinusoid (coldest around new year, warmest
// around mid-summer) with a daily sinusoid (coldest before dawn). It is a
// pure function of simulation time, so every frame recomputes it from t.
package climate

import "math"

// Time scaling: one unit of t advances 0.05 days and 1.2 hours.
const (
	daysPerUnit  = 0.05
	hoursPerUnit = 1.2
)

// Model holds the parameters of the temperature simulation.
type Model struct {
	AnnualAverage  float64
	Amplitude      float64
	DailyVariation float64
}

// Default returns the model tuned for a continental steppe climate.
func Default() Model {
	return Model{
		AnnualAverage:  2.5,
		Amplitude:      22.5,
		DailyVariation: 3,
	}
}

// Temperature returns the perceived temperature at simulation time t.
// Deterministic and side-effect free; the result stays within
// AnnualAverage ± Amplitude ± DailyVariation.
func (m Model) Temperature(t float64) float64 {
	dayOfYear := math.Mod(t*daysPerUnit, 365)
	seasonal := m.AnnualAverage + m.Amplitude*math.Sin((dayOfYear-30)/365*2*math.Pi)

	hour := math.Mod(t*hoursPerUnit, 24)
	daily := m.DailyVariation * math.Sin((hour-6)/24*2*math.Pi)

	return seasonal + daily
}

// Factor maps a temperature to the scalar that drives helix geometry and
// the base color seeds. Intentionally unclamped: the renderer only clamps
// when mapping temperature to the display gradient, so extreme simulated
// temperatures scale the geometry past the nominal [0,1] band.
func Factor(temp float64) float64 {
	return (temp + 20) / 45
}
