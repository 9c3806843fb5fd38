package helix

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/sunspiral/pkg/math"
)

func TestSampleHalfTwistSymmetry(t *testing.T) {
	// Negating wfrac mirrors the point through the band's center line in z.
	for _, theta := range []float64{0, 0.3, 1.7, gomath.Pi, 5.9} {
		for _, wfrac := range []float64{0.1, 0.25, 0.5} {
			a := Sample(theta, wfrac, 320, 140)
			b := Sample(theta, -wfrac, 320, 140)
			if gomath.Abs(a.Z+b.Z) > 1e-12 {
				t.Errorf("Sample(%v, ±%v).Z not antisymmetric: %v vs %v", theta, wfrac, a.Z, b.Z)
			}
		}
	}
}

func TestSampleCenterLine(t *testing.T) {
	// wfrac 0 traces the circle of the given radius in the z=0 plane.
	for _, theta := range []float64{0, 1, 2.5, 4} {
		p := Sample(theta, 0, 320, 140)
		if gomath.Abs(p.Z) > 1e-12 {
			t.Errorf("Sample(%v, 0).Z = %v, want 0", theta, p.Z)
		}
		r := gomath.Hypot(p.X, p.Y)
		if gomath.Abs(r-320) > 1e-9 {
			t.Errorf("Sample(%v, 0) radius = %v, want 320", theta, r)
		}
	}
}

func TestSampleAtZero(t *testing.T) {
	p := Sample(0, 0.5, 320, 140)
	want := math.Vec3{X: 390, Y: 0, Z: 0}
	if gomath.Abs(p.X-want.X) > 1e-9 || p.Y != 0 || p.Z != 0 {
		t.Errorf("Sample(0, 0.5, 320, 140) = %v, want %v", p, want)
	}
}

func TestLightingBounds(t *testing.T) {
	for i := 0; i < 900; i++ {
		theta := 2 * gomath.Pi * float64(i) / 900
		l := Lighting(theta, LightDir)
		if l < AmbientFloor {
			t.Fatalf("Lighting(%v) = %v, below ambient floor", theta, l)
		}
		if l > 1.0 {
			t.Fatalf("Lighting(%v) = %v, above 1", theta, l)
		}
	}
}

func TestLightingAmbientFloor(t *testing.T) {
	// Light pointing away from the normal at theta=0 must clamp to the floor.
	away := math.Vec3{X: -1, Y: 0, Z: 0}
	if got := Lighting(0, away); got != AmbientFloor {
		t.Errorf("Lighting(0, away) = %v, want %v", got, AmbientFloor)
	}
}

func TestProject(t *testing.T) {
	proj := Projector{CenterX: 450, CenterY: 450}

	// Origin maps to center.
	got := proj.Project(math.Vec3{})
	if got != (math.Vec2{X: 450, Y: 450}) {
		t.Errorf("Project(origin) = %v, want center", got)
	}

	// Positive z scales up slightly and lifts the point.
	p := proj.Project(math.Vec3{X: 100, Y: 100, Z: 100})
	persp := 0.86 + 0.0015*100
	wantX := 450 + 100*persp
	wantY := 450 + 100*persp - 70
	if gomath.Abs(p.X-wantX) > 1e-9 || gomath.Abs(p.Y-wantY) > 1e-9 {
		t.Errorf("Project() = %v, want (%v, %v)", p, wantX, wantY)
	}
}

func TestParamsGrid(t *testing.T) {
	p := DefaultParams()

	if got := p.WFrac(0); got != -0.5 {
		t.Errorf("WFrac(0) = %v, want -0.5", got)
	}
	if got := p.WFrac(p.WidthSteps - 1); got != 0.5 {
		t.Errorf("WFrac(last) = %v, want 0.5", got)
	}
	if got := p.Theta(0); got != 0 {
		t.Errorf("Theta(0) = %v, want 0", got)
	}
	// Last theta sample stays below 2π (half-open interval).
	if got := p.Theta(p.Points - 1); got >= 2*gomath.Pi {
		t.Errorf("Theta(last) = %v, want < 2π", got)
	}
}

func TestParamsRadiusWidth(t *testing.T) {
	p := DefaultParams()

	if got := p.Radius(0); got != 320 {
		t.Errorf("Radius(0) = %v, want 320", got)
	}
	if got := p.Radius(1); got != 520 {
		t.Errorf("Radius(1) = %v, want 520", got)
	}
	// Unclamped: factors beyond 1 keep scaling.
	if got := p.Radius(2); got != 720 {
		t.Errorf("Radius(2) = %v, want 720", got)
	}

	if got := p.Width(0); got != 140 {
		t.Errorf("Width(0) = %v, want 140", got)
	}
	lo, hi := 80.0, 200.0
	for tt := 0.0; tt < 20; tt += 0.37 {
		w := p.Width(tt)
		if w < lo || w > hi {
			t.Fatalf("Width(%v) = %v, outside [%v, %v]", tt, w, lo, hi)
		}
	}
}
