package light

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPULightUniformSource is the canonical WGSL definition of the LightUniform struct.
// Matches GPULightUniform layout exactly (48 bytes, std430 aligned).
//
//go:embed assets/light_uniform.wgsl
var GPULightUniformSource string

// GPULightUniform is the GPU-aligned representation of the scene lighting
// uniform: a single directional light plus a pre-multiplied ambient term.
// Matches the WGSL LightUniform struct layout exactly (see GPULightUniformSource).
// Size: 48 bytes (std430 / WGSL aligned).
type GPULightUniform struct {
	Direction [3]float32 // offset  0: normalized light direction
	Intensity float32    // offset 12: scalar multiplier (0 when disabled)
	Color     [3]float32 // offset 16: directional light RGB
	_pad0     float32    // offset 28: padding to vec4 boundary
	Ambient   [3]float32 // offset 32: ambient RGB pre-multiplied by ambient intensity
	_pad1     float32    // offset 44: padding to 48 bytes
}

// Size returns the size of the GPULightUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (48)
func (g *GPULightUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULightUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload
func (g *GPULightUniform) Marshal() []byte {
	buf := make([]byte, 48)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Direction[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Direction[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Direction[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Intensity))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[28:32], 0) // _pad0
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(g.Ambient[0]))
	binary.LittleEndian.PutUint32(buf[36:40], math.Float32bits(g.Ambient[1]))
	binary.LittleEndian.PutUint32(buf[40:44], math.Float32bits(g.Ambient[2]))
	binary.LittleEndian.PutUint32(buf[44:48], 0) // _pad1
	return buf
}
