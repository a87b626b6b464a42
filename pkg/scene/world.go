package scene

import (
	"github.com/df07/go-sphere-caster/pkg/core"
	"github.com/df07/go-sphere-caster/pkg/geometry"
)

// World is the static description of what gets rendered: the viewer
// position, the spheres in the scene and the color of empty space.
//
// A World is built once during setup and must not be modified while a
// render is reading it.
type World struct {
	Origin     core.Vec3[float64]
	Spheres    []geometry.Sphere
	Background core.Color
}

// NewWorld creates an empty world
func NewWorld(origin core.Vec3[float64], background core.Color) *World {
	return &World{
		Origin:     origin,
		Background: background,
	}
}

// Add appends a sphere to the scene
func (w *World) Add(sphere geometry.Sphere) {
	w.Spheres = append(w.Spheres, sphere)
}
