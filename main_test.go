package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-sphere-caster/pkg/scene"
)

func TestCommands(t *testing.T) {
	app := newApp()

	expected := []string{"render", "window", "scenes", "serve"}
	for _, name := range expected {
		if app.Command(name) == nil {
			t.Errorf("Expected command %q to be registered", name)
		}
	}
}

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name        string
		ext         string
		args        []string
		expectError bool
	}{
		{"default scene", ".png", []string{"--width", "32", "--height", "24"}, false},
		{"single scene", ".png", []string{"--scene", "single", "--width", "16", "--height", "16"}, false},
		{"short scene flag", ".png", []string{"-s", "empty", "--width", "8", "--height", "8"}, false},
		{"scaled bmp", ".bmp", []string{"--width", "8", "--height", "8", "--scale", "2"}, false},
		{"tiff", ".tiff", []string{"--width", "8", "--height", "8", "--workers", "1"}, false},
		{"unknown scene", ".png", []string{"--scene", "nonexistent"}, true},
		{"bad background", ".png", []string{"--background", "purple"}, true},
		{"negative width", ".png", []string{"--width", "-1"}, true},
		{"zero tile size", ".png", []string{"--tile-size", "0"}, true},
		{"zero scale", ".png", []string{"--width", "8", "--height", "8", "--scale", "0"}, true},
		{"unsupported format", ".jpg", []string{"--width", "8", "--height", "8"}, true},
		{"stray argument", ".png", []string{"--width", "8", "--height", "8", "extra"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "frame"+tt.ext)
			argv := append([]string{"sphere-caster", "render", "--out", out}, tt.args...)

			err := newApp().Run(argv)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for args %v", tt.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if _, err := os.Stat(out); err != nil {
				t.Errorf("Expected output file %s: %v", out, err)
			}
		})
	}
}

func TestRenderCommand_BackgroundOverride(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	err := newApp().Run([]string{"sphere-caster", "render", "--out", out, "--scene", "empty",
		"--width", "4", "--height", "4", "--background", "#102030"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}
	r, g, b, _ := img.At(2, 2).RGBA()
	if uint8(r>>8) != 0x10 || uint8(g>>8) != 0x20 || uint8(b>>8) != 0x30 {
		t.Errorf("Expected #102030 background, got (%d, %d, %d)", r>>8, g>>8, b>>8)
	}
}

func TestRenderCommand_UnknownSceneError(t *testing.T) {
	err := newApp().Run([]string{"sphere-caster", "render", "--out",
		filepath.Join(t.TempDir(), "frame.png"), "--scene", "nonexistent"})
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestScenesCommand(t *testing.T) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	if err := app.Run([]string{"sphere-caster", "scenes"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, name := range scene.Names() {
		if !strings.Contains(out.String(), name) {
			t.Errorf("Expected scene %q in listing:\n%s", name, out.String())
		}
	}
}
