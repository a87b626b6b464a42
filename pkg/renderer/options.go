package renderer

import (
	"fmt"
	"runtime"
)

type Options struct {
	// Frame dims.
	Width  int
	Height int

	// Number of goroutines rendering tiles; 0 uses one per CPU.
	Workers int

	// Edge length of the square tiles a frame is split into.
	TileSize int
}

// DefaultOptions returns a 640x640 frame rendered on every CPU
func DefaultOptions() Options {
	return Options{
		Width:    640,
		Height:   640,
		Workers:  0,
		TileSize: 64,
	}
}

// Validate reports the first option that cannot be used for rendering
func (o Options) Validate() error {
	switch {
	case o.Width < 0 || o.Height < 0:
		return fmt.Errorf("%w: frame size %dx%d", ErrInvalidOptions, o.Width, o.Height)
	case o.Workers < 0:
		return fmt.Errorf("%w: worker count %d", ErrInvalidOptions, o.Workers)
	case o.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d", ErrInvalidOptions, o.TileSize)
	}
	return nil
}

// workerCount resolves the number of rendering goroutines
func (o Options) workerCount() int {
	if o.Workers <= 0 {
		return runtime.NumCPU()
	}
	return o.Workers
}
