package scene

import (
	"github.com/Carmen-Shannon/oxy-configurator/engine/camera"
	"github.com/Carmen-Shannon/oxy-configurator/engine/light"
	"github.com/Carmen-Shannon/oxy-configurator/engine/mesh"
	"github.com/Carmen-Shannon/oxy-configurator/engine/renderer"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithName sets the scene's identifier, used in GPU resource labels.
//
// Parameters:
//   - name: the scene name
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithName(name string) SceneBuilderOption {
	return func(s *scene) {
		s.name = name
	}
}

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithCamera sets the scene's camera.
//
// Parameters:
//   - cam: the camera to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *scene) {
		s.cam = cam
	}
}

// WithLight sets the scene's directional light.
//
// Parameters:
//   - lgt: the light to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLight(lgt light.Light) SceneBuilderOption {
	return func(s *scene) {
		s.lgt = lgt
	}
}

// WithRenderer sets the renderer the scene draws through. Required before
// Initialize.
//
// Parameters:
//   - rend: the renderer to use
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRenderer(rend renderer.Renderer) SceneBuilderOption {
	return func(s *scene) {
		s.rend = rend
	}
}

// WithMeshes registers initial meshes with the scene. GPU resources for these
// meshes are created during Initialize.
//
// Parameters:
//   - meshes: the meshes to register
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithMeshes(meshes ...mesh.Mesh) SceneBuilderOption {
	return func(s *scene) {
		s.meshes = append(s.meshes, meshes...)
	}
}
