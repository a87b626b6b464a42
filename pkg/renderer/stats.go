package renderer

import "time"

// RenderStats counts how the pixels of a frame (or part of one) resolved
type RenderStats struct {
	TotalPixels      int   // Pixels rendered
	BackgroundPixels int   // Pixels that hit no sphere
	SphereHits       []int // Pixels won by each sphere, in scene order
}

func newRenderStats(spheres int) RenderStats {
	return RenderStats{SphereHits: make([]int, spheres)}
}

// record adds a pixel resolved to the sphere at idx, or to background when idx < 0
func (s *RenderStats) record(idx int) {
	s.TotalPixels++
	if idx < 0 {
		s.BackgroundPixels++
		return
	}
	s.SphereHits[idx]++
}

// merge folds the counts of another stats block into s
func (s *RenderStats) merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.BackgroundPixels += other.BackgroundPixels
	if len(s.SphereHits) < len(other.SphereHits) {
		s.SphereHits = append(s.SphereHits, make([]int, len(other.SphereHits)-len(s.SphereHits))...)
	}
	for i, hits := range other.SphereHits {
		s.SphereHits[i] += hits
	}
}

// HitPixels returns the number of pixels that resolved to a sphere
func (s RenderStats) HitPixels() int {
	return s.TotalPixels - s.BackgroundPixels
}

// FrameStats describes a complete frame render
type FrameStats struct {
	RenderStats
	Width      int
	Height     int
	Tiles      int
	Workers    int
	RenderTime time.Duration
}
