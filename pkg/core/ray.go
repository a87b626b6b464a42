package core

// Ray is a direction cast from the world origin. The origin itself is
// not part of the ray: every ray in a frame shares the viewer position.
type Ray[T Float] struct {
	Direction Vec3[T]
}

// NewRay creates a new ray
func NewRay[T Float](direction Vec3[T]) Ray[T] {
	return Ray[T]{Direction: direction}
}

// At returns the point at parameter t along the ray cast from origin
func (r Ray[T]) At(origin Vec3[T], t T) Vec3[T] {
	return origin.Add(r.Direction.Multiply(t))
}
