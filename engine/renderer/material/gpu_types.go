package material

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUMaterialParamsSource is the canonical WGSL definition of the MaterialParams struct.
// Matches GPUMaterialParams layout exactly (32 bytes, std430 aligned).
//
//go:embed assets/material_params.wgsl
var GPUMaterialParamsSource string

// GPUMaterialParams is the GPU-aligned uniform for the lit fragment shader.
// The texture presence flags tell the shader whether to sample the bound
// diffuse/bump textures or fall back to the base color and geometric normal.
// Matches the WGSL MaterialParams struct layout exactly (see GPUMaterialParamsSource).
// Size: 32 bytes (std430 aligned).
type GPUMaterialParams struct {
	BaseColor  [4]float32 // offset  0: RGBA albedo color (16 bytes)
	Shininess  float32    // offset 16: specular exponent (4 bytes)
	HasDiffuse uint32     // offset 20: 1 if a diffuse texture is bound (4 bytes)
	HasBump    uint32     // offset 24: 1 if a bump texture is bound (4 bytes)
	_pad       uint32     // offset 28: padding to 32 bytes
}

// Size returns the size of the GPUMaterialParams struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUMaterialParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMaterialParams struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUMaterialParams) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.BaseColor[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.BaseColor[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.BaseColor[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.BaseColor[3]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Shininess))
	binary.LittleEndian.PutUint32(buf[20:24], g.HasDiffuse)
	binary.LittleEndian.PutUint32(buf[24:28], g.HasBump)
	binary.LittleEndian.PutUint32(buf[28:32], 0) // _pad
	return buf
}
