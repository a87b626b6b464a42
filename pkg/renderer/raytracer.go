package renderer

import (
	"image"
	"math"

	"github.com/df07/go-sphere-caster/pkg/scene"
)

// nearPlane is the smallest ray parameter accepted as a hit; anything
// closer is behind or on the image plane.
const nearPlane = 1.0

// Render casts one ray per pixel and returns the resulting frame. It is a
// pure function of the world and frame size.
func Render(world *scene.World, width, height int) *PixelBuffer {
	buf := NewPixelBuffer(width, height)
	renderBounds(world, NewCamera(width, height), buf.Bounds(), buf)
	return buf
}

// closestSphere returns the index of the nearest sphere hit by the pixel
// ray, or -1 when the ray only sees background. A root replaces the current
// best only if it is strictly nearer, so on an exact tie the sphere scanned
// first keeps the pixel.
func closestSphere(world *scene.World, camera Camera, i, j int) int {
	ray := camera.GetRay(i, j)

	closestT := math.Inf(1)
	closest := -1
	for idx, sphere := range world.Spheres {
		t1, t2 := sphere.Intersect(ray, world.Origin)
		if nearPlane <= t1 && t1 < closestT {
			closestT = t1
			closest = idx
		}
		if nearPlane <= t2 && t2 < closestT {
			closestT = t2
			closest = idx
		}
	}

	return closest
}

// renderBounds resolves every pixel inside bounds and writes it to buf.
// Pixels outside bounds are not touched, so disjoint bounds may be rendered
// concurrently into the same buffer.
func renderBounds(world *scene.World, camera Camera, bounds image.Rectangle, buf *PixelBuffer) RenderStats {
	stats := newRenderStats(len(world.Spheres))

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			idx := closestSphere(world, camera, i, j)
			if idx < 0 {
				buf.Set(i, j, world.Background)
			} else {
				buf.Set(i, j, world.Spheres[idx].Color)
			}
			stats.record(idx)
		}
	}

	return stats
}
