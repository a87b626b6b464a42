package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-sphere-caster/pkg/core"
	"github.com/df07/go-sphere-caster/pkg/geometry"
)

func TestWorld_Add(t *testing.T) {
	world := NewWorld(core.NewVec3(1.0, 2.0, 3.0), core.Black)
	if len(world.Spheres) != 0 {
		t.Fatalf("Expected new world to be empty, got %d spheres", len(world.Spheres))
	}

	first := geometry.NewSphere(core.NewVec3(0.0, 0.0, 10.0), 1, Red)
	second := geometry.NewSphere(core.NewVec3(0.0, 0.0, 20.0), 2, Blue)
	world.Add(first)
	world.Add(second)

	if len(world.Spheres) != 2 {
		t.Fatalf("Expected 2 spheres, got %d", len(world.Spheres))
	}
	if world.Spheres[0] != first || world.Spheres[1] != second {
		t.Errorf("Expected spheres in insertion order, got %v", world.Spheres)
	}
	if world.Origin != core.NewVec3(1.0, 2.0, 3.0) || world.Background != core.Black {
		t.Errorf("Unexpected origin/background: %v %v", world.Origin, world.Background)
	}
}

func TestNewDefaultWorld(t *testing.T) {
	world := NewDefaultWorld()

	if world.Background != core.White {
		t.Errorf("Expected white background, got %v", world.Background)
	}
	if len(world.Spheres) != 3 {
		t.Fatalf("Expected 3 spheres, got %d", len(world.Spheres))
	}

	expected := []struct {
		center core.Vec3[float64]
		color  core.Color
	}{
		{core.NewVec3(0.0, 0.0, 30.0), Purple},
		{core.NewVec3(2.5, 2.5, 23.0), Red},
		{core.NewVec3(2.5, 2.5, 25.0), Blue},
	}
	for i, e := range expected {
		s := world.Spheres[i]
		if s.Center != e.center || s.Color != e.color || s.Radius != 5 {
			t.Errorf("Sphere %d: expected center %v color %v radius 5, got %+v", i, e.center, e.color, s)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name        string
		sceneName   string
		spheres     int
		expectError bool
	}{
		{"default scene", "default", 3, false},
		{"single scene", "single", 1, false},
		{"overlap scene", "overlap", 2, false},
		{"empty scene", "empty", 0, false},
		{"unknown scene", "nonexistent", 0, true},
		{"empty scene name", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world, err := Lookup(tt.sceneName)
			if tt.expectError {
				if !errors.Is(err, ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene for %q, got %v", tt.sceneName, err)
				}
				if world != nil {
					t.Errorf("Expected nil world for %q", tt.sceneName)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.sceneName, err)
			}
			if len(world.Spheres) != tt.spheres {
				t.Errorf("Expected %d spheres, got %d", tt.spheres, len(world.Spheres))
			}
		})
	}
}

func TestLookup_ReturnsFreshWorld(t *testing.T) {
	a, _ := Lookup("default")
	b, _ := Lookup("default")
	a.Add(geometry.NewSphere(core.NewVec3(0.0, 0.0, 5.0), 1, Red))

	if len(b.Spheres) != 3 {
		t.Errorf("Expected lookups to be independent, got %d spheres", len(b.Spheres))
	}
}

func TestListScenes(t *testing.T) {
	scenes := ListScenes()
	names := Names()

	if len(scenes) != len(names) {
		t.Fatalf("Expected %d scenes, got %d", len(names), len(scenes))
	}
	for i, info := range scenes {
		if info.Name != names[i] {
			t.Errorf("Expected scene %d to be %q, got %q", i, names[i], info.Name)
		}
		if info.Description == "" {
			t.Errorf("Expected description for scene %q", info.Name)
		}
	}
}
