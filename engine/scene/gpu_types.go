package scene

import (
	_ "embed"

	"github.com/Carmen-Shannon/oxy-configurator/engine/camera"
	"github.com/Carmen-Shannon/oxy-configurator/engine/light"
)

// GPUFrameUniformSource is the canonical WGSL definition of the FrameUniform
// struct bound at group 0. It nests the CameraUniform and LightUniform structs,
// whose canonical definitions live with their packages.
//
//go:embed assets/frame_uniform.wgsl
var GPUFrameUniformSource string

// GPUFrameUniform is the per-frame uniform bound at group 0 binding 0: the
// camera block followed by the light block. Both blocks are 16-byte aligned so
// the nested layout matches WGSL struct nesting exactly.
// Size: 128 bytes (80 camera + 48 light).
type GPUFrameUniform struct {
	Camera camera.GPUCameraUniform // offset  0: view-projection and camera position
	Light  light.GPULightUniform   // offset 80: directional light and ambient term
}

// Size returns the size of the GPUFrameUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (128)
func (g *GPUFrameUniform) Size() int {
	return g.Camera.Size() + g.Light.Size()
}

// Marshal serializes the GPUFrameUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUFrameUniform) Marshal() []byte {
	buf := make([]byte, 0, g.Size())
	buf = append(buf, g.Camera.Marshal()...)
	buf = append(buf, g.Light.Marshal()...)
	return buf
}
