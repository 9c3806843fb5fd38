// Package helix samples the deforming Möbius band, shades it, and projects
// it to screen space.
//
// The band is the classic half-twist construction: as theta sweeps a full
// turn the cross-section rotates by half that angle, so the strip is
// single-sided. Geometry deforms every frame because radius follows the
// simulated temperature and width breathes on a slow sinusoid.
package helix

import (
	gomath "math"

	"github.com/Faultbox/sunspiral/pkg/math"
)

// LightDir is the fixed light direction used for shading.
var LightDir = math.Vec3{X: 0.3, Y: -0.7, Z: 0.6}

// AmbientFloor is the minimum lighting intensity; no point renders fully
// unlit.
const AmbientFloor = 0.6

// Params holds the frame-varying geometry parameters of the band.
// BaseRadius is mutable at runtime (scroll zoom adjusts it).
type Params struct {
	Points          int // theta samples per revolution
	WidthSteps      int // wfrac samples across the band
	BaseRadius      float64
	RadiusVariation float64
	BaseWidth       float64
	WidthVariation  float64
}

// DefaultParams returns the geometry the animation was tuned with.
func DefaultParams() Params {
	return Params{
		Points:          900,
		WidthSteps:      21,
		BaseRadius:      320,
		RadiusVariation: 200,
		BaseWidth:       140,
		WidthVariation:  60,
	}
}

// Radius returns the band radius for a temperature factor. The factor is
// not clamped here; geometry scaling is left unbounded on purpose.
func (p Params) Radius(tempFactor float64) float64 {
	return p.BaseRadius + p.RadiusVariation*tempFactor
}

// Width returns the band width at simulation time t.
func (p Params) Width(t float64) float64 {
	return p.BaseWidth + p.WidthVariation*gomath.Sin(t*0.7)
}

// Theta returns the angle of the i-th theta sample.
func (p Params) Theta(i int) float64 {
	return 2 * gomath.Pi * float64(i) / float64(p.Points)
}

// WFrac returns the width fraction of the j-th step, in [-0.5, 0.5].
func (p Params) WFrac(j int) float64 {
	return float64(j)/float64(p.WidthSteps-1) - 0.5
}

// Sample returns the 3D point of the Möbius band at (theta, wfrac).
func Sample(theta, wfrac, radius, width float64) math.Vec3 {
	cosHalf := gomath.Cos(theta / 2)
	sinHalf := gomath.Sin(theta / 2)

	arm := radius + width*wfrac*cosHalf
	return math.Vec3{
		X: arm * gomath.Cos(theta),
		Y: arm * gomath.Sin(theta),
		Z: width * wfrac * sinHalf,
	}
}

// Lighting approximates the surface normal at theta and returns the shading
// intensity in [AmbientFloor, 1] for a roughly unit light direction.
func Lighting(theta float64, light math.Vec3) float64 {
	normal := math.Vec3{
		X: gomath.Cos(theta/2) * gomath.Cos(theta),
		Y: gomath.Cos(theta/2) * gomath.Sin(theta),
		Z: gomath.Sin(theta / 2),
	}
	return gomath.Max(AmbientFloor, normal.Dot(light))
}

// Projector maps band points to screen coordinates. It is a depth-scaled
// orthographic approximation, not a true perspective divide; the exact
// constants matter for visual parity.
type Projector struct {
	CenterX, CenterY float64
}

// Project returns the screen position of a 3D point.
func (p Projector) Project(v math.Vec3) math.Vec2 {
	persp := 0.86 + 0.0015*v.Z
	return math.Vec2{
		X: p.CenterX + v.X*persp,
		Y: p.CenterY + v.Y*persp - 0.7*v.Z,
	}
}
