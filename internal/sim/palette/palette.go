// Package palette maps temperatures and blend fractions to display colors.
package palette

// Display range for the temperature gradient, in °C.
const (
	TempMin = -20.0
	TempMax = 25.0
)

// RGB is an 8-bit color triple. Channels are ints so intermediate math can
// run in float64 and truncate once, matching the gradient definition.
type RGB struct {
	R, G, B int
}

// White is the ripple highlight color.
var White = RGB{255, 255, 255}

// FromTemperature maps a temperature to the cold-blue → warm-red gradient.
// The input is normalized into [0,1] with clamping, so channels always land
// in [0,255].
func FromTemperature(temp float64) RGB {
	n := (temp - TempMin) / (TempMax - TempMin)
	if n < 0 {
		n = 0
	} else if n > 1 {
		n = 1
	}

	return RGB{
		R: int(5 + 175*n),
		G: int(10 + 45*n),
		B: int(100 + 55*(1-n)),
	}
}

// Blend linearly interpolates between two colors, truncating per channel.
// Factors outside [0,1] extrapolate rather than error; callers are expected
// to stay in range.
func Blend(a, b RGB, factor float64) RGB {
	return RGB{
		R: int(float64(a.R)*(1-factor) + float64(b.R)*factor),
		G: int(float64(a.G)*(1-factor) + float64(b.G)*factor),
		B: int(float64(a.B)*(1-factor) + float64(b.B)*factor),
	}
}

// Scale multiplies each channel by k, truncating. Used for lighting, where
// k ≤ 1 keeps channels in range.
func Scale(c RGB, k float64) RGB {
	return RGB{
		R: int(float64(c.R) * k),
		G: int(float64(c.G) * k),
		B: int(float64(c.B) * k),
	}
}

// Boost multiplies each channel by k ≥ 1, capping at 255.
func Boost(c RGB, k float64) RGB {
	return RGB{
		R: capChannel(float64(c.R) * k),
		G: capChannel(float64(c.G) * k),
		B: capChannel(float64(c.B) * k),
	}
}

func capChannel(v float64) int {
	if v > 255 {
		return 255
	}
	return int(v)
}
