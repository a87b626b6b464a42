package geometry

import (
	"github.com/df07/go-sphere-caster/pkg/core"
)

// Sphere represents a flat-colored sphere
type Sphere struct {
	Center core.Vec3[float64]
	Radius float64
	Color  core.Color
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3[float64], radius float64, color core.Color) Sphere {
	return Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// Intersect returns the two ray parameters at which a ray cast from origin
// crosses the sphere surface. A miss yields (+Inf, +Inf).
func (s Sphere) Intersect(ray core.Ray[float64], origin core.Vec3[float64]) (t1, t2 float64) {
	// Vector from sphere center to ray origin
	co := origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * co.Dot(ray.Direction)
	c := co.Dot(co) - s.Radius*s.Radius

	return core.SolveQuadratic(a, b, c)
}
