package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Spheres     int    `json:"spheres"`
}

type builtin struct {
	description string
	create      func() *World
}

var builtins = map[string]builtin{
	"default": {"Purple sphere with overlapping red and blue spheres", NewDefaultWorld},
	"single":  {"One sphere on the view axis at z=30", NewSingleSphereWorld},
	"overlap": {"Two spheres on the view axis at z=23 and z=25", NewOverlapWorld},
	"empty":   {"No spheres, background only", NewEmptyWorld},
}

// Lookup creates a fresh world for the named built-in scene
func Lookup(name string) (*World, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return b.create(), nil
}

// Names returns the built-in scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListScenes returns a description of every built-in scene, sorted by name
func ListScenes() []SceneInfo {
	var scenes []SceneInfo
	for _, name := range Names() {
		b := builtins[name]
		scenes = append(scenes, SceneInfo{
			Name:        name,
			Description: b.description,
			Spheres:     len(b.create().Spheres),
		})
	}
	return scenes
}
