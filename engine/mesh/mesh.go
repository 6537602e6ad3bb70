package mesh

import (
	"github.com/Carmen-Shannon/oxy-configurator/common"
	"github.com/Carmen-Shannon/oxy-configurator/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-configurator/engine/renderer/material"
)

// mesh is the implementation of the Mesh interface.
type mesh struct {
	name           string
	vertexData     []byte
	indexData      []byte
	lineIndexData  []byte
	indexCount     int
	lineIndexCount int

	position [3]float32
	rotation [3]float32
	scale    [3]float32

	mat material.Material

	meshProvider  bind_group_provider.BindGroupProvider
	wireProvider  bind_group_provider.BindGroupProvider
	modelProvider bind_group_provider.BindGroupProvider

	boundingRadius float32
}

// Mesh defines the interface for a renderable part of the product.
// A Mesh is a GPU-ready container holding vertex and index data via
// BindGroupProviders, a world transform, and a reference to the Material
// it is currently drawn with.
//
// The Material reference is shared, not copied: several meshes may point at
// the same Material instance, and a change to that Material (such as a
// texture swap) is visible through every mesh that references it.
type Mesh interface {
	// Name retrieves the mesh identifier (e.g. "body", "lid").
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// VertexData returns the raw vertex data for this mesh.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the raw triangle-list index data for this mesh.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// LineIndexData returns the raw line-list index data used for wireframe
	// rendering. Derived from the triangle indices with shared edges deduplicated.
	//
	// Returns:
	//   - []byte: the line index data
	LineIndexData() []byte

	// IndexCount returns the number of triangle-list indices.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// LineIndexCount returns the number of line-list indices.
	//
	// Returns:
	//   - int: the line index count
	LineIndexCount() int

	// Material retrieves the Material this mesh is currently drawn with.
	//
	// Returns:
	//   - material.Material: the current material, or nil if none assigned
	Material() material.Material

	// SetMaterial assigns the Material this mesh is drawn with. The mesh stores
	// the reference as-is, so assigning the same Material to multiple meshes
	// makes them share it.
	//
	// Parameters:
	//   - mat: the material to assign
	SetMaterial(mat material.Material)

	// Position returns the mesh world-space position.
	//
	// Returns:
	//   - [3]float32: the position (x, y, z)
	Position() [3]float32

	// Rotation returns the mesh rotation in radians (pitch, yaw, roll).
	//
	// Returns:
	//   - [3]float32: the rotation
	Rotation() [3]float32

	// Scale returns the mesh per-axis scale factors.
	//
	// Returns:
	//   - [3]float32: the scale
	Scale() [3]float32

	// SetPosition sets the mesh world-space position.
	//
	// Parameters:
	//   - position: the position (x, y, z)
	SetPosition(position [3]float32)

	// SetRotation sets the mesh rotation in radians (pitch, yaw, roll).
	//
	// Parameters:
	//   - rotation: the rotation
	SetRotation(rotation [3]float32)

	// SetScale sets the mesh per-axis scale factors.
	//
	// Parameters:
	//   - scale: the scale
	SetScale(scale [3]float32)

	// ModelData builds the per-mesh GPU uniform containing the model-to-world
	// matrix derived from the current position, rotation, and scale.
	//
	// Returns:
	//   - *GPUModelData: the model uniform ready for upload
	ModelData() *GPUModelData

	// MeshProvider retrieves the BindGroupProvider holding the triangle-list
	// vertex and index buffers.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider
	MeshProvider() bind_group_provider.BindGroupProvider

	// SetMeshProvider assigns the BindGroupProvider for triangle-list rendering.
	//
	// Parameters:
	//   - provider: the provider to assign
	SetMeshProvider(provider bind_group_provider.BindGroupProvider)

	// WireProvider retrieves the BindGroupProvider holding the line-list index
	// buffer used for wireframe rendering, or nil if none has been initialized.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the wireframe provider, or nil
	WireProvider() bind_group_provider.BindGroupProvider

	// SetWireProvider assigns the BindGroupProvider for wireframe rendering.
	//
	// Parameters:
	//   - provider: the provider to assign
	SetWireProvider(provider bind_group_provider.BindGroupProvider)

	// ModelProvider retrieves the BindGroupProvider holding the per-mesh model
	// matrix uniform bind group.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the model uniform provider
	ModelProvider() bind_group_provider.BindGroupProvider

	// SetModelProvider assigns the BindGroupProvider for the model matrix uniform.
	//
	// Parameters:
	//   - provider: the provider to assign
	SetModelProvider(provider bind_group_provider.BindGroupProvider)

	// BoundingRadius returns the bounding sphere radius for this mesh, measured
	// as the maximum vertex distance from the mesh origin. Used by the camera to
	// frame the product.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32
}

var _ Mesh = &mesh{}

// NewMesh creates a new Mesh instance with the specified options applied.
// The default transform is identity (no translation or rotation, unit scale).
//
// Parameters:
//   - options: a variadic list of MeshBuilderOption functions to configure the Mesh
//
// Returns:
//   - Mesh: a new instance of Mesh configured with the provided options
func NewMesh(options ...MeshBuilderOption) Mesh {
	m := &mesh{
		scale: [3]float32{1, 1, 1},
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) VertexData() []byte {
	return m.vertexData
}

func (m *mesh) IndexData() []byte {
	return m.indexData
}

func (m *mesh) LineIndexData() []byte {
	return m.lineIndexData
}

func (m *mesh) IndexCount() int {
	return m.indexCount
}

func (m *mesh) LineIndexCount() int {
	return m.lineIndexCount
}

func (m *mesh) Material() material.Material {
	return m.mat
}

func (m *mesh) SetMaterial(mat material.Material) {
	m.mat = mat
}

func (m *mesh) Position() [3]float32 {
	return m.position
}

func (m *mesh) Rotation() [3]float32 {
	return m.rotation
}

func (m *mesh) Scale() [3]float32 {
	return m.scale
}

func (m *mesh) SetPosition(position [3]float32) {
	m.position = position
}

func (m *mesh) SetRotation(rotation [3]float32) {
	m.rotation = rotation
}

func (m *mesh) SetScale(scale [3]float32) {
	m.scale = scale
}

func (m *mesh) ModelData() *GPUModelData {
	data := &GPUModelData{}
	common.BuildModelMatrix(data.Model[:],
		m.position[0], m.position[1], m.position[2],
		m.rotation[0], m.rotation[1], m.rotation[2],
		m.scale[0], m.scale[1], m.scale[2],
	)
	return data
}

func (m *mesh) MeshProvider() bind_group_provider.BindGroupProvider {
	return m.meshProvider
}

func (m *mesh) SetMeshProvider(provider bind_group_provider.BindGroupProvider) {
	m.meshProvider = provider
}

func (m *mesh) WireProvider() bind_group_provider.BindGroupProvider {
	return m.wireProvider
}

func (m *mesh) SetWireProvider(provider bind_group_provider.BindGroupProvider) {
	m.wireProvider = provider
}

func (m *mesh) ModelProvider() bind_group_provider.BindGroupProvider {
	return m.modelProvider
}

func (m *mesh) SetModelProvider(provider bind_group_provider.BindGroupProvider) {
	m.modelProvider = provider
}

func (m *mesh) BoundingRadius() float32 {
	return m.boundingRadius
}
