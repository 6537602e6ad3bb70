package mesh

import (
	"github.com/Carmen-Shannon/oxy-configurator/common"
	"github.com/Carmen-Shannon/oxy-configurator/engine/renderer/material"
)

// MeshBuilderOption is a functional option for configuring a mesh during construction via NewMesh.
type MeshBuilderOption func(*mesh)

// WithName sets the mesh identifier.
//
// Parameters:
//   - name: the mesh name (e.g. "body", "lid")
//
// Returns:
//   - MeshBuilderOption: a function that applies the name option to a mesh
func WithName(name string) MeshBuilderOption {
	return func(m *mesh) {
		m.name = name
	}
}

// WithGeometry sets the mesh geometry from generated lathe data: the vertex
// buffer, the triangle-list index buffer, and the derived line-list index
// buffer for wireframe rendering. The bounding radius is computed from the
// vertex positions.
//
// Parameters:
//   - vertices: the mesh vertices
//   - indices: the triangle-list indices
//
// Returns:
//   - MeshBuilderOption: a function that applies the geometry option to a mesh
func WithGeometry(vertices []GPUVertex, indices []uint32) MeshBuilderOption {
	return func(m *mesh) {
		if len(vertices) == 0 {
			panic("mesh: WithGeometry requires at least one vertex")
		}
		lineIndices := LineIndices(indices)

		vertexData := make([]byte, 0, len(vertices)*vertices[0].Size())
		for i := range vertices {
			vertexData = append(vertexData, vertices[i].Marshal()...)
		}

		m.vertexData = vertexData
		m.indexData = common.SliceToBytes(indices)
		m.lineIndexData = common.SliceToBytes(lineIndices)
		m.indexCount = len(indices)
		m.lineIndexCount = len(lineIndices)
		m.boundingRadius = ComputeBoundingRadius(vertices)
	}
}

// WithMaterial assigns the initial Material reference for the mesh.
//
// Parameters:
//   - mat: the material to assign
//
// Returns:
//   - MeshBuilderOption: a function that applies the material option to a mesh
func WithMaterial(mat material.Material) MeshBuilderOption {
	return func(m *mesh) {
		m.mat = mat
	}
}

// WithPosition sets the initial world-space position of the mesh.
//
// Parameters:
//   - x, y, z: the position components
//
// Returns:
//   - MeshBuilderOption: a function that applies the position option to a mesh
func WithPosition(x, y, z float32) MeshBuilderOption {
	return func(m *mesh) {
		m.position = [3]float32{x, y, z}
	}
}

// WithScale sets the initial per-axis scale of the mesh.
//
// Parameters:
//   - x, y, z: the scale components
//
// Returns:
//   - MeshBuilderOption: a function that applies the scale option to a mesh
func WithScale(x, y, z float32) MeshBuilderOption {
	return func(m *mesh) {
		m.scale = [3]float32{x, y, z}
	}
}
