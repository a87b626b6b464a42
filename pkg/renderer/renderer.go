package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-sphere-caster/pkg/log"
	"github.com/df07/go-sphere-caster/pkg/scene"
	"golang.org/x/sync/errgroup"
)

// Renderer renders frames in parallel by splitting them into tiles and
// handing the tiles to a bounded set of goroutines. Every tile writes a
// disjoint region of the shared buffer, so the output is identical to Render.
type Renderer struct {
	options Options
	logger  log.Logger
}

// NewRenderer creates a renderer. A nil logger uses the "renderer" module logger.
func NewRenderer(options Options, logger log.Logger) (*Renderer, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New("renderer")
	}

	return &Renderer{
		options: options,
		logger:  logger,
	}, nil
}

// Options returns the renderer configuration
func (r *Renderer) Options() Options {
	return r.options
}

// Render renders a frame at the configured size
func (r *Renderer) Render(ctx context.Context, world *scene.World) (*PixelBuffer, FrameStats, error) {
	return r.RenderSize(ctx, world, r.options.Width, r.options.Height)
}

// RenderSize renders a frame at the given size. Cancellation is checked
// between tiles; an interrupted render returns ErrInterrupted and no buffer.
func (r *Renderer) RenderSize(ctx context.Context, world *scene.World, width, height int) (*PixelBuffer, FrameStats, error) {
	start := time.Now()

	buf := NewPixelBuffer(width, height)
	camera := NewCamera(width, height)
	tiles := NewTileGrid(buf.Bounds().Dx(), buf.Bounds().Dy(), r.options.TileSize)
	workers := min(r.options.workerCount(), max(len(tiles), 1))

	tileStats := make([]RenderStats, len(tiles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	submitted := 0
	for _, tile := range tiles {
		if gctx.Err() != nil {
			break
		}
		tile := tile // per-iteration copy; go directive is below 1.22
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tileStats[tile.ID] = renderBounds(world, camera, tile.Bounds, buf)
			return nil
		})
		submitted++
	}

	err := g.Wait()
	if err == nil && submitted < len(tiles) {
		err = ctx.Err()
	}
	if err != nil {
		r.logger.Warningf("render of %dx%d frame interrupted after %s", width, height, time.Since(start))
		return nil, FrameStats{}, fmt.Errorf("%w: %w", ErrInterrupted, err)
	}

	stats := FrameStats{
		RenderStats: newRenderStats(len(world.Spheres)),
		Width:       buf.Width,
		Height:      buf.Height,
		Tiles:       len(tiles),
		Workers:     workers,
	}
	for _, ts := range tileStats {
		stats.merge(ts)
	}
	stats.RenderTime = time.Since(start)

	r.logger.Debugf("rendered %dx%d frame (%d tiles, %d workers) in %s",
		stats.Width, stats.Height, stats.Tiles, stats.Workers, stats.RenderTime)

	return buf, stats, nil
}
