package display

import (
	"context"
	"errors"

	"github.com/df07/go-sphere-caster/pkg/log"
	"github.com/df07/go-sphere-caster/pkg/renderer"
	"github.com/df07/go-sphere-caster/pkg/scene"
	"github.com/hajimehoshi/ebiten/v2"
)

// Window shows rendered frames of a world in a desktop window. A frame is
// rendered when the window first opens and again whenever it is resized.
type Window struct {
	title    string
	world    *scene.World
	renderer *renderer.Renderer
	logger   log.Logger

	ctx context.Context

	// Size the last frame was rendered at and the size ebiten reports now.
	frameW, frameH   int
	layoutW, layoutH int

	frame    *renderer.PixelBuffer
	frameImg *ebiten.Image
	dirty    bool
}

// NewWindow creates a window that renders world with r. The initial window
// size is the renderer's configured frame size.
func NewWindow(title string, world *scene.World, r *renderer.Renderer, logger log.Logger) *Window {
	if logger == nil {
		logger = log.New("display")
	}
	opts := r.Options()
	return &Window{
		title:    title,
		world:    world,
		renderer: r,
		logger:   logger,
		ctx:      context.Background(),
		layoutW:  opts.Width,
		layoutH:  opts.Height,
	}
}

// Run opens the window and blocks until it is closed, Escape is pressed or
// ctx is cancelled.
func (w *Window) Run(ctx context.Context) error {
	w.ctx = ctx
	opts := w.renderer.Options()

	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	w.logger.Noticef("opening %dx%d window %q", opts.Width, opts.Height, w.title)
	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		w.logger.Notice("shutdown requested, closing window")
		return ebiten.Termination
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		w.logger.Notice("escape pressed, closing window")
		return ebiten.Termination
	}
	return w.refresh()
}

// refresh renders a new frame if the window size changed since the last one
func (w *Window) refresh() error {
	if w.frame != nil && w.frameW == w.layoutW && w.frameH == w.layoutH {
		return nil
	}

	buf, stats, err := w.renderer.RenderSize(w.ctx, w.world, w.layoutW, w.layoutH)
	if err != nil {
		if errors.Is(err, renderer.ErrInterrupted) {
			return ebiten.Termination
		}
		return err
	}

	w.frame = buf
	w.frameW, w.frameH = w.layoutW, w.layoutH
	w.dirty = true
	w.logger.Infof("window resized, rendered %dx%d frame in %s", stats.Width, stats.Height, stats.RenderTime)
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.frame == nil || len(w.frame.Pix) == 0 {
		return
	}

	if w.dirty {
		if w.frameImg == nil || w.frameImg.Bounds() != w.frame.Bounds() {
			if w.frameImg != nil {
				w.frameImg.Deallocate()
			}
			w.frameImg = ebiten.NewImage(w.frame.Width, w.frame.Height)
		}
		w.frameImg.WritePixels(w.frame.Bytes())
		w.dirty = false
	}

	screen.DrawImage(w.frameImg, nil)
}

// Layout implements ebiten.Game. The frame is rendered at the window's
// logical size, one ray per logical pixel.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.layoutW, w.layoutH = outsideWidth, outsideHeight
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

// Frame returns the most recently rendered frame, or nil before the first render
func (w *Window) Frame() *renderer.PixelBuffer {
	return w.frame
}
