package scene

import (
	"bytes"
	"testing"

	"github.com/Carmen-Shannon/oxy-configurator/common"
	"github.com/Carmen-Shannon/oxy-configurator/engine/camera"
	"github.com/Carmen-Shannon/oxy-configurator/engine/light"
	"github.com/Carmen-Shannon/oxy-configurator/engine/mesh"
	"github.com/Carmen-Shannon/oxy-configurator/engine/renderer/material"
	"github.com/cogentcore/webgpu/wgpu"
)

func TestNewSceneDefaults(t *testing.T) {
	s := NewScene()

	if s.Name() != "scene" {
		t.Errorf("expected default name %q, got %q", "scene", s.Name())
	}
	if !s.Active() {
		t.Error("expected a new scene to be active")
	}
	if s.Camera() == nil {
		t.Error("expected a default camera")
	}
	if s.Light() == nil {
		t.Error("expected a default light")
	}
}

func TestWithMeshesRegistersBeforeInitialize(t *testing.T) {
	body := mesh.NewMesh(mesh.WithName("body"))
	lid := mesh.NewMesh(mesh.WithName("lid"))
	s := NewScene(WithMeshes(body, lid))

	meshes := s.Meshes()
	if len(meshes) != 2 {
		t.Fatalf("expected 2 meshes, got %d", len(meshes))
	}
	if meshes[0] != body || meshes[1] != lid {
		t.Error("expected meshes in registration order")
	}
	if body.MeshProvider() != nil {
		t.Error("expected no GPU resources before Initialize")
	}
}

func TestInitializeWithoutRendererFails(t *testing.T) {
	s := NewScene()
	if err := s.Initialize(); err == nil {
		t.Error("expected an error when no renderer is configured")
	}
}

func TestUpdateBeforeInitializeFails(t *testing.T) {
	s := NewScene()
	if err := s.Update(); err == nil {
		t.Error("expected an error when Update runs before Initialize")
	}
}

func TestResizeUpdatesCameraAspect(t *testing.T) {
	cam := camera.NewCamera()
	s := NewScene(WithCamera(cam))

	s.Resize(800, 400)
	if got := cam.Aspect(); got != 2 {
		t.Errorf("expected aspect 2, got %f", got)
	}

	// A degenerate height must not produce a NaN aspect.
	s.Resize(800, 0)
	if got := cam.Aspect(); got != 2 {
		t.Errorf("expected aspect unchanged on zero height, got %f", got)
	}
}

func TestPipelineKeySelection(t *testing.T) {
	cases := []struct {
		name string
		mat  material.Material
		want string
	}{
		{"default material", material.NewMaterial(), PipelineKeyLit},
		{"wireframe material", material.NewMaterial(material.WithWireframe()), PipelineKeyWireframe},
		{"explicit key wins", func() material.Material {
			m := material.NewMaterial(material.WithWireframe())
			m.SetPipelineKey("custom")
			return m
		}(), "custom"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := pipelineKeyFor(tc.mat); got != tc.want {
				t.Errorf("expected pipeline key %q, got %q", tc.want, got)
			}
		})
	}
}

func TestGPUFrameUniformLayout(t *testing.T) {
	uniform := &GPUFrameUniform{}
	if uniform.Size() != 128 {
		t.Fatalf("expected a 128-byte frame uniform, got %d", uniform.Size())
	}

	uniform.Camera = camera.GPUCameraUniform{CameraPosition: [3]float32{1, 2, 3}}
	uniform.Light = light.GPULightUniform{Intensity: 0.5}

	buf := uniform.Marshal()
	if len(buf) != 128 {
		t.Fatalf("expected a 128-byte marshal buffer, got %d", len(buf))
	}
	if !bytes.Equal(buf[:80], uniform.Camera.Marshal()) {
		t.Error("expected the camera block at offset 0")
	}
	if !bytes.Equal(buf[80:], uniform.Light.Marshal()) {
		t.Error("expected the light block at offset 80")
	}
}

func TestTextureStagingFallsBackToPlaceholder(t *testing.T) {
	staging := textureStaging(nil)
	if staging.Width != 1 || staging.Height != 1 {
		t.Errorf("expected a 1x1 placeholder, got %dx%d", staging.Width, staging.Height)
	}
	if !bytes.Equal(staging.Pixels, []byte{255, 255, 255, 255}) {
		t.Errorf("expected opaque white pixels, got %v", staging.Pixels)
	}

	img := &common.TextureImage{Pixels: []byte{1, 2, 3, 4}, Width: 1, Height: 1}
	staging = textureStaging(img)
	if !bytes.Equal(staging.Pixels, img.Pixels) {
		t.Error("expected the image's own pixels when the texture is set")
	}
}

func TestSamplerForHonorsTextureOverride(t *testing.T) {
	def := samplerFor(nil)
	if def.AddressModeU != wgpu.AddressModeRepeat || def.MagFilter != wgpu.FilterModeLinear {
		t.Error("expected repeat addressing with linear filtering by default")
	}

	override := &common.SamplerStagingData{AddressModeU: wgpu.AddressModeClampToEdge}
	img := &common.TextureImage{SamplerData: override}
	if got := samplerFor(img); got.AddressModeU != wgpu.AddressModeClampToEdge {
		t.Error("expected the texture's sampler override to win")
	}
}
