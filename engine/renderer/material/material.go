package material

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-configurator/common"
	"github.com/Carmen-Shannon/oxy-configurator/engine/renderer/bind_group_provider"
)

// material is the implementation of the Material interface.
type material struct {
	mu                sync.RWMutex
	name              string
	baseColor         [4]float32
	shininess         float32
	wireframe         bool
	diffuseTexture    *common.TextureImage
	bumpTexture       *common.TextureImage
	pipelineKey       string
	bindGroupProvider bind_group_provider.BindGroupProvider
	dirty             bool
}

// Material defines the interface for a render material, encapsulating surface
// properties, texture references, and GPU resource bindings needed for draw calls.
//
// Unlike the surface properties (name, base color, shininess, wireframe flag),
// which are fixed at construction, the texture references are mutable at
// runtime: a configurator may swap the diffuse and bump maps of a material
// while the engine is rendering. Swapping textures marks the material dirty;
// the scene consumes the dirty flag on the next frame and rebuilds the
// material's GPU bindings. Draw calls themselves only ever read bindings that
// were already rebuilt, so a swap never tears mid-frame.
//
// Material values are shared by reference: two meshes configured with the same
// Material see each other's texture swaps, and identity comparison of the
// interface values tells callers whether two meshes share a material.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// BaseColor retrieves the albedo/diffuse RGBA color of the material.
	//
	// Returns:
	//   - [4]float32: the base color as RGBA values
	BaseColor() [4]float32

	// Shininess retrieves the specular exponent of the material.
	//
	// Returns:
	//   - float32: the shininess factor
	Shininess() float32

	// Wireframe reports whether the material renders as a line-list wireframe
	// instead of filled triangles.
	//
	// Returns:
	//   - bool: true if the material is a wireframe material
	Wireframe() bool

	// DiffuseTexture retrieves the currently applied diffuse/albedo texture, or nil if none is set.
	//
	// Returns:
	//   - *common.TextureImage: the diffuse texture, or nil
	DiffuseTexture() *common.TextureImage

	// BumpTexture retrieves the currently applied bump map texture, or nil if none is set.
	//
	// Returns:
	//   - *common.TextureImage: the bump texture, or nil
	BumpTexture() *common.TextureImage

	// SetTextures applies a diffuse/bump texture pair to the material and marks
	// it dirty so the scene rebuilds its GPU bindings on the next frame.
	// Either texture may be nil to clear that map.
	//
	// Parameters:
	//   - diffuse: the diffuse texture to apply, or nil
	//   - bump: the bump texture to apply, or nil
	SetTextures(diffuse, bump *common.TextureImage)

	// PipelineKey retrieves the key identifying the render pipeline this material uses.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// BindGroupProvider retrieves the bind group provider holding GPU-side resources for this material.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider, or nil if not yet initialized
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetPipelineKey sets the render pipeline key for this material.
	//
	// Parameters:
	//   - key: the pipeline key to associate with this material
	SetPipelineKey(key string)

	// SetBindGroupProvider sets the bind group provider for this material.
	//
	// Parameters:
	//   - provider: the bind group provider containing GPU resources for this material
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)

	// ConsumeDirty reports whether the material's textures changed since the
	// last call and clears the flag. The scene calls this once per frame per
	// material to decide which GPU bindings need a rebuild.
	//
	// Returns:
	//   - bool: true if the material was dirty
	ConsumeDirty() bool

	// Uniform packages the material's surface properties and texture presence
	// flags for GPU upload.
	//
	// Returns:
	//   - *GPUMaterialParams: the GPU-aligned uniform data
	Uniform() *GPUMaterialParams
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		baseColor: [4]float32{1, 1, 1, 1},
		shininess: 32.0,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) BaseColor() [4]float32 {
	return m.baseColor
}

func (m *material) Shininess() float32 {
	return m.shininess
}

func (m *material) Wireframe() bool {
	return m.wireframe
}

func (m *material) DiffuseTexture() *common.TextureImage {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.diffuseTexture
}

func (m *material) BumpTexture() *common.TextureImage {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bumpTexture
}

func (m *material) SetTextures(diffuse, bump *common.TextureImage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.diffuseTexture = diffuse
	m.bumpTexture = bump
	m.dirty = true
}

func (m *material) PipelineKey() string {
	return m.pipelineKey
}

func (m *material) BindGroupProvider() bind_group_provider.BindGroupProvider {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bindGroupProvider
}

func (m *material) SetPipelineKey(key string) {
	m.pipelineKey = key
}

func (m *material) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bindGroupProvider = provider
}

func (m *material) ConsumeDirty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := m.dirty
	m.dirty = false
	return d
}

func (m *material) Uniform() *GPUMaterialParams {
	m.mu.RLock()
	defer m.mu.RUnlock()
	params := &GPUMaterialParams{
		BaseColor: m.baseColor,
		Shininess: m.shininess,
	}
	if m.diffuseTexture != nil {
		params.HasDiffuse = 1
	}
	if m.bumpTexture != nil {
		params.HasBump = 1
	}
	return params
}
