package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-sphere-caster/pkg/log"
	"github.com/df07/go-sphere-caster/pkg/renderer"
	"github.com/df07/go-sphere-caster/pkg/scene"
)

// Largest frame edge the server will render
const maxFrameSize = 4096

// Server serves rendered frames of the built-in scenes over HTTP
type Server struct {
	addr    string
	options renderer.Options
	logger  log.Logger
}

// NewServer creates a new web server. options supplies the default frame
// size and the tile/worker settings used for every request.
func NewServer(addr string, options renderer.Options, logger log.Logger) *Server {
	if logger == nil {
		logger = log.New("server")
	}
	return &Server{addr: addr, options: options, logger: logger}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  string `json:"scene"`  // Built-in scene name
	Width  int    `json:"width"`  // Image width
	Height int    `json:"height"` // Image height
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	return mux
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Noticef("starting web server on http://%s", s.addr)
		errChan <- srv.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	s.logger.Notice("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errChan; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, scene.ListScenes())
}

// handleRender renders a frame and returns it as a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	world, err := scene.Lookup(req.Scene)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	rt, err := renderer.NewRenderer(s.options, s.logger)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	buf, stats, err := rt.RenderSize(r.Context(), world, req.Width, req.Height)
	if err != nil {
		s.logger.Warningf("render of scene %q aborted: %v", req.Scene, err)
		s.writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, buf.Image()); err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	s.logger.Infof("rendered scene %q at %dx%d in %s", req.Scene, req.Width, req.Height, stats.RenderTime)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(encoded.Len()))
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.RenderTime.Milliseconds(), 10))
	w.Header().Set("X-Render-Hit-Pixels", strconv.Itoa(stats.HitPixels()))
	w.Header().Set("X-Render-Background-Pixels", strconv.Itoa(stats.BackgroundPixels))
	w.WriteHeader(http.StatusOK)
	w.Write(encoded.Bytes())
}

// parseRenderRequest reads scene and frame size from the query string,
// falling back to the default scene and the configured frame size
func (s *Server) parseRenderRequest(r *http.Request) (RenderRequest, error) {
	query := r.URL.Query()
	req := RenderRequest{
		Scene:  "default",
		Width:  s.options.Width,
		Height: s.options.Height,
	}

	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}

	var err error
	if req.Width, err = parseDimension(query.Get("width"), req.Width); err != nil {
		return req, fmt.Errorf("width: %w", err)
	}
	if req.Height, err = parseDimension(query.Get("height"), req.Height); err != nil {
		return req, fmt.Errorf("height: %w", err)
	}

	return req, nil
}

func parseDimension(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > maxFrameSize {
		return 0, fmt.Errorf("must be between 1 and %d, got %d", maxFrameSize, n)
	}
	return n, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Errorf("failed to encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
