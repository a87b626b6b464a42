package scene

import (
	"github.com/df07/go-sphere-caster/pkg/core"
	"github.com/df07/go-sphere-caster/pkg/geometry"
)

// Sphere colors used by the built-in scenes
var (
	Purple = core.NewColor(136, 47, 164, 255)
	Red    = core.NewColor(255, 0, 0, 255)
	Blue   = core.NewColor(0, 0, 255, 255)
)

// NewDefaultWorld creates the reference scene: a purple sphere straight
// ahead with a red and a blue sphere overlapping it from the lower right.
func NewDefaultWorld() *World {
	world := NewWorld(core.NewVec3(0.0, 0.0, 0.0), core.White)

	world.Add(geometry.NewSphere(core.NewVec3(0.0, 0.0, 30.0), 5, Purple))
	world.Add(geometry.NewSphere(core.NewVec3(2.5, 2.5, 23.0), 5, Red))
	world.Add(geometry.NewSphere(core.NewVec3(2.5, 2.5, 25.0), 5, Blue))

	return world
}

// NewSingleSphereWorld creates a scene with one sphere on the view axis
func NewSingleSphereWorld() *World {
	world := NewWorld(core.NewVec3(0.0, 0.0, 0.0), core.White)
	world.Add(geometry.NewSphere(core.NewVec3(0.0, 0.0, 30.0), 5, Purple))
	return world
}

// NewOverlapWorld creates two spheres on the view axis, the nearer one
// added last so that scan order and depth order disagree.
func NewOverlapWorld() *World {
	world := NewWorld(core.NewVec3(0.0, 0.0, 0.0), core.White)
	world.Add(geometry.NewSphere(core.NewVec3(0.0, 0.0, 25.0), 5, Blue))
	world.Add(geometry.NewSphere(core.NewVec3(0.0, 0.0, 23.0), 5, Red))
	return world
}

// NewEmptyWorld creates a scene with nothing but background
func NewEmptyWorld() *World {
	return NewWorld(core.NewVec3(0.0, 0.0, 0.0), core.White)
}
