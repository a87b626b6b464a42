package renderer

import (
	"github.com/df07/go-sphere-caster/pkg/core"
)

// focalLength is the distance of the image plane from the viewer
const focalLength = 1.0

// Camera is a pinhole camera looking down +z from the world origin, with
// the image plane at z = focalLength.
type Camera struct {
	width, height int
}

// NewCamera creates a camera for a frame of the given size
func NewCamera(width, height int) Camera {
	return Camera{width: width, height: height}
}

// GetRay returns the ray through pixel (i, j). Pixel coordinates are
// centered on the frame, so the pixel at (width/2, height/2) looks straight
// down the z axis.
func (c Camera) GetRay(i, j int) core.Ray[float64] {
	x := i - c.width/2
	y := j - c.height/2

	vx := float64(x) / float64(c.width)
	vy := float64(y) / float64(c.height)

	return core.NewRay(core.NewVec3(vx, vy, focalLength))
}
