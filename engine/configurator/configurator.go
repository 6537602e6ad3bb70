package configurator

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-configurator/common"
	"github.com/Carmen-Shannon/oxy-configurator/engine/mesh"
	"github.com/Carmen-Shannon/oxy-configurator/engine/renderer/material"
)

// TextureEntry is a registered texture option: a display name plus optional
// diffuse and bump images. A nil image means "no map of that kind". The entry
// at index 0 is always the "None" sentinel with both images nil.
type TextureEntry struct {
	// Name is the display name shown in selection UI.
	Name string
	// Diffuse is the diffuse color map, or nil.
	Diffuse *common.TextureImage
	// Bump is the bump/normal map, or nil.
	Bump *common.TextureImage
}

// materialEntry pairs a renderable material with the index of the texture it
// was last assigned. Mesh entries hold pointers to these, so two meshes
// assigned the same material index share one entry and see each other's
// texture changes.
type materialEntry struct {
	mat          material.Material
	textureIndex int
}

// meshEntry pairs a renderable mesh with its current material entry, which is
// nil until a material is assigned.
type meshEntry struct {
	m   mesh.Mesh
	mat *materialEntry
}

// configuratorImpl is the implementation of the Configurator interface.
type configuratorImpl struct {
	mu *sync.RWMutex

	meshes    []*meshEntry
	materials []*materialEntry
	textures  []TextureEntry
}

// Configurator tracks which mesh uses which material and which material uses
// which texture. It owns three registries (meshes, materials, textures) and
// the cross-references between them; selection UI calls the mutation
// operations and uses HaveSameMaterial to keep linked texture pickers in sync
// when two parts share a material.
//
// Texture state is recorded per material, not per mesh: a texture is a
// property of the material's shader inputs, so every mesh sharing a material
// shares its texture automatically.
//
// All index arguments must be in range; out-of-range indices are programming
// errors and panic.
type Configurator interface {
	// AddMesh appends a mesh to the registry and returns its index. If a
	// material index is supplied, that material is assigned to the mesh
	// immediately, exactly as SetMaterial would. Panics if a supplied material
	// index is out of range.
	//
	// Parameters:
	//   - m: the mesh to register
	//   - materialIndex: optional index of the initial material (at most one)
	//
	// Returns:
	//   - int: the new mesh's index
	AddMesh(m mesh.Mesh, materialIndex ...int) int

	// AddMaterial appends a material to the registry and returns its index.
	// The new entry's texture index defaults to 0, the "None" sentinel.
	//
	// Parameters:
	//   - mat: the material to register
	//
	// Returns:
	//   - int: the new material's index
	AddMaterial(mat material.Material) int

	// AddTexture appends a texture entry to the registry and returns its index.
	// Either image may be nil, meaning no map of that kind. Panics if the name
	// is empty.
	//
	// Parameters:
	//   - name: the display name for the texture
	//   - diffuse: the diffuse map, or nil
	//   - bump: the bump map, or nil
	//
	// Returns:
	//   - int: the new texture's index
	AddTexture(name string, diffuse, bump *common.TextureImage) int

	// SetMaterial reassigns a mesh's material and returns the texture index
	// that material last showed, so the caller can sync a linked texture
	// picker. Panics if either index is out of range.
	//
	// Parameters:
	//   - meshIndex: the mesh to reassign
	//   - materialIndex: the material to assign
	//
	// Returns:
	//   - int: the assigned material's remembered texture index
	SetMaterial(meshIndex, materialIndex int) int

	// SetTexture applies a texture's diffuse and bump maps to the material
	// currently assigned to the given mesh, and records the texture index on
	// that material entry so later SetMaterial calls restore it and meshes
	// sharing the material see the change. Panics if either index is out of
	// range or the mesh has no material assigned.
	//
	// Parameters:
	//   - meshIndex: the mesh whose current material receives the texture
	//   - textureIndex: the texture to apply
	SetTexture(meshIndex, textureIndex int)

	// HaveSameMaterial reports whether two meshes reference the same material
	// entry (reference identity, not value equality). Panics if either index
	// is out of range.
	//
	// Parameters:
	//   - meshIndex1, meshIndex2: the meshes to compare
	//
	// Returns:
	//   - bool: true if both meshes share one material entry
	HaveSameMaterial(meshIndex1, meshIndex2 int) bool

	// TextureIndex returns the texture index remembered on the given mesh's
	// current material, or 0 if the mesh has no material assigned. Panics if
	// the mesh index is out of range.
	//
	// Parameters:
	//   - meshIndex: the mesh to query
	//
	// Returns:
	//   - int: the remembered texture index
	TextureIndex(meshIndex int) int

	// Mesh returns the registered mesh at the given index.
	// Panics if the index is out of range.
	//
	// Parameters:
	//   - meshIndex: the mesh index
	//
	// Returns:
	//   - mesh.Mesh: the registered mesh
	Mesh(meshIndex int) mesh.Mesh

	// Materials returns the registered materials in registration order.
	//
	// Returns:
	//   - []material.Material: the materials registry
	Materials() []material.Material

	// Textures returns the registered texture entries in registration order,
	// starting with the "None" sentinel at index 0.
	//
	// Returns:
	//   - []TextureEntry: the textures registry
	Textures() []TextureEntry

	// MeshCount returns the number of registered meshes.
	//
	// Returns:
	//   - int: the mesh count
	MeshCount() int

	// MaterialCount returns the number of registered materials.
	//
	// Returns:
	//   - int: the material count
	MaterialCount() int

	// TextureCount returns the number of registered textures, including the
	// "None" sentinel.
	//
	// Returns:
	//   - int: the texture count
	TextureCount() int
}

var _ Configurator = &configuratorImpl{}

// NewConfigurator creates a Configurator with empty mesh and material
// registries and the "None" sentinel pre-seeded at texture index 0.
//
// Parameters:
//   - options: functional options to configure the registries
//
// Returns:
//   - Configurator: the newly created configurator
func NewConfigurator(options ...ConfiguratorBuilderOption) Configurator {
	c := &configuratorImpl{
		mu:       &sync.RWMutex{},
		textures: []TextureEntry{{Name: "None"}},
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *configuratorImpl) AddMesh(m mesh.Mesh, materialIndex ...int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(materialIndex) > 1 {
		panic("configurator: AddMesh accepts at most one material index")
	}

	entry := &meshEntry{m: m}
	if len(materialIndex) == 1 {
		idx := materialIndex[0]
		if idx < 0 || idx >= len(c.materials) {
			panic("configurator: material index out of range")
		}
		entry.mat = c.materials[idx]
		m.SetMaterial(entry.mat.mat)
	}
	c.meshes = append(c.meshes, entry)
	return len(c.meshes) - 1
}

func (c *configuratorImpl) AddMaterial(mat material.Material) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.materials = append(c.materials, &materialEntry{mat: mat})
	return len(c.materials) - 1
}

func (c *configuratorImpl) AddTexture(name string, diffuse, bump *common.TextureImage) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if name == "" {
		panic("configurator: AddTexture requires a name")
	}
	c.textures = append(c.textures, TextureEntry{Name: name, Diffuse: diffuse, Bump: bump})
	return len(c.textures) - 1
}

func (c *configuratorImpl) SetMaterial(meshIndex, materialIndex int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if meshIndex < 0 || meshIndex >= len(c.meshes) {
		panic("configurator: mesh index out of range")
	}
	if materialIndex < 0 || materialIndex >= len(c.materials) {
		panic("configurator: material index out of range")
	}

	entry := c.materials[materialIndex]
	c.meshes[meshIndex].mat = entry
	c.meshes[meshIndex].m.SetMaterial(entry.mat)
	return entry.textureIndex
}

func (c *configuratorImpl) SetTexture(meshIndex, textureIndex int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if meshIndex < 0 || meshIndex >= len(c.meshes) {
		panic("configurator: mesh index out of range")
	}
	if textureIndex < 0 || textureIndex >= len(c.textures) {
		panic("configurator: texture index out of range")
	}

	entry := c.meshes[meshIndex].mat
	if entry == nil {
		panic("configurator: mesh has no material assigned")
	}

	texture := c.textures[textureIndex]
	entry.mat.SetTextures(texture.Diffuse, texture.Bump)
	entry.textureIndex = textureIndex
}

func (c *configuratorImpl) HaveSameMaterial(meshIndex1, meshIndex2 int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if meshIndex1 < 0 || meshIndex1 >= len(c.meshes) ||
		meshIndex2 < 0 || meshIndex2 >= len(c.meshes) {
		panic("configurator: mesh index out of range")
	}

	// Pure reference equality: two meshes with no material assigned compare
	// equal, the same as two meshes sharing one entry.
	return c.meshes[meshIndex1].mat == c.meshes[meshIndex2].mat
}

func (c *configuratorImpl) TextureIndex(meshIndex int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if meshIndex < 0 || meshIndex >= len(c.meshes) {
		panic("configurator: mesh index out of range")
	}
	if c.meshes[meshIndex].mat == nil {
		return 0
	}
	return c.meshes[meshIndex].mat.textureIndex
}

func (c *configuratorImpl) Mesh(meshIndex int) mesh.Mesh {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if meshIndex < 0 || meshIndex >= len(c.meshes) {
		panic("configurator: mesh index out of range")
	}
	return c.meshes[meshIndex].m
}

func (c *configuratorImpl) Materials() []material.Material {
	c.mu.RLock()
	defer c.mu.RUnlock()

	mats := make([]material.Material, len(c.materials))
	for i, entry := range c.materials {
		mats[i] = entry.mat
	}
	return mats
}

func (c *configuratorImpl) Textures() []TextureEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	textures := make([]TextureEntry, len(c.textures))
	copy(textures, c.textures)
	return textures
}

func (c *configuratorImpl) MeshCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.meshes)
}

func (c *configuratorImpl) MaterialCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.materials)
}

func (c *configuratorImpl) TextureCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.textures)
}
