package climate

import (
	"math"
	"testing"
)

func TestTemperatureAtZero(t *testing.T) {
	m := Default()

	// Closed form: day 0, hour 0.
	seasonal := 2.5 + 22.5*math.Sin(-30.0/365*2*math.Pi)
	daily := 3 * math.Sin(-6.0/24*2*math.Pi)
	want := seasonal + daily

	got := m.Temperature(0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Temperature(0) = %v, want %v", got, want)
	}
}

func TestTemperatureBounds(t *testing.T) {
	m := Default()
	lo := m.AnnualAverage - m.Amplitude - m.DailyVariation
	hi := m.AnnualAverage + m.Amplitude + m.DailyVariation

	for i := 0; i < 20000; i++ {
		tt := float64(i) * 0.73
		temp := m.Temperature(tt)
		if temp < lo || temp > hi {
			t.Fatalf("Temperature(%v) = %v, outside [%v, %v]", tt, temp, lo, hi)
		}
	}
}

func TestTemperaturePeriodic(t *testing.T) {
	m := Default()

	// Seasonal period is 365/0.05 = 7300 units, daily period is 24/1.2 = 20
	// units; 7300 is a whole multiple of 20, so the sum repeats every 7300.
	const period = 7300.0
	for _, tt := range []float64{0, 1.5, 42, 300.25, 9999} {
		a := m.Temperature(tt)
		b := m.Temperature(tt + period)
		if math.Abs(a-b) > 1e-6 {
			t.Errorf("Temperature(%v) = %v, Temperature(+period) = %v", tt, a, b)
		}
	}
}

func TestTemperatureDeterministic(t *testing.T) {
	m := Default()
	for _, tt := range []float64{0, 0.06, 17.3, 1e6} {
		if m.Temperature(tt) != m.Temperature(tt) {
			t.Errorf("Temperature(%v) not reproducible", tt)
		}
	}
}

func TestFactorUnclamped(t *testing.T) {
	if got := Factor(25); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Factor(25) = %v, want 1", got)
	}
	if got := Factor(-20); got != 0 {
		t.Errorf("Factor(-20) = %v, want 0", got)
	}
	// Values outside the nominal range pass through unclamped.
	if got := Factor(70); got <= 1 {
		t.Errorf("Factor(70) = %v, want > 1", got)
	}
	if got := Factor(-65); got >= 0 {
		t.Errorf("Factor(-65) = %v, want < 0", got)
	}
}
