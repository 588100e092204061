package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Unique identifier, used on the command line
	DisplayName string // Human readable name
	Description string
	factory     func(logger core.Logger) *Scene
}

var builtinScenes = []SceneInfo{
	{
		ID:          "default",
		DisplayName: "Default Scene",
		Description: "Diffuse, hollow glass and metal spheres under a sky gradient",
		factory:     NewDefaultScene,
	},
	{
		ID:          "simple-light",
		DisplayName: "Simple Light",
		Description: "Red sphere lit by an emissive rectangle and sphere",
		factory:     NewSimpleLightScene,
	},
	{
		ID:          "cornell",
		DisplayName: "Cornell Box",
		Description: "Cornell box with two blocks",
		factory:     NewCornellScene,
	},
	{
		ID:          "cornell-glass",
		DisplayName: "Cornell Box - Glass",
		Description: "Cornell box with a glass sphere sampled as a light",
		factory:     NewCornellGlassScene,
	},
	{
		ID:          "cornell-smoke",
		DisplayName: "Cornell Box - Smoke",
		Description: "Cornell box with blocks of smoke and fog",
		factory:     NewCornellSmokeScene,
	},
	{
		ID:          "textures",
		DisplayName: "Textures",
		Description: "Checker, noise, marble and image textures",
		factory:     NewTextureScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	copy(scenes, builtinScenes)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds the built-in scene with the given ID
func Create(id string, logger core.Logger) (*Scene, error) {
	for _, info := range builtinScenes {
		if info.ID == id {
			return info.factory(logger), nil
		}
	}

	ids := make([]string, 0, len(builtinScenes))
	for _, info := range ListScenes() {
		ids = append(ids, info.ID)
	}
	return nil, fmt.Errorf("unknown scene %q (available: %s)", id, strings.Join(ids, ", "))
}
