package mesh

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-configurator/engine/renderer/material"
)

func TestNewMeshDefaults(t *testing.T) {
	m := NewMesh(WithName("body"))

	if m.Name() != "body" {
		t.Errorf("expected name %q, got %q", "body", m.Name())
	}
	if m.Scale() != [3]float32{1, 1, 1} {
		t.Errorf("expected unit scale, got %v", m.Scale())
	}
	if m.Material() != nil {
		t.Error("expected no material on a fresh mesh")
	}
}

func TestWithGeometryDerivesBuffers(t *testing.T) {
	vertices, indices := Lathe(TeapotBodyProfile(), 8)
	m := NewMesh(WithName("body"), WithGeometry(vertices, indices))

	if got, want := len(m.VertexData()), len(vertices)*32; got != want {
		t.Errorf("expected %d vertex bytes, got %d", want, got)
	}
	if m.IndexCount() != len(indices) {
		t.Errorf("expected index count %d, got %d", len(indices), m.IndexCount())
	}
	if got, want := len(m.IndexData()), len(indices)*4; got != want {
		t.Errorf("expected %d index bytes, got %d", want, got)
	}
	if m.LineIndexCount() == 0 {
		t.Error("expected derived line indices for wireframe rendering")
	}
	if got, want := len(m.LineIndexData()), m.LineIndexCount()*4; got != want {
		t.Errorf("expected %d line index bytes, got %d", want, got)
	}
	if m.BoundingRadius() <= 0 {
		t.Errorf("expected positive bounding radius, got %f", m.BoundingRadius())
	}
}

func TestMeshMaterialReferenceIsShared(t *testing.T) {
	shared := material.NewMaterial(material.WithName("porcelain"))
	body := NewMesh(WithName("body"), WithMaterial(shared))
	lid := NewMesh(WithName("lid"))
	lid.SetMaterial(shared)

	if body.Material() != lid.Material() {
		t.Error("expected both meshes to reference the same material instance")
	}
}

func TestModelDataAppliesTranslation(t *testing.T) {
	m := NewMesh(WithPosition(1, 2, 3))
	data := m.ModelData()

	// Column-major: translation lives in elements 12..14.
	if data.Model[12] != 1 || data.Model[13] != 2 || data.Model[14] != 3 {
		t.Errorf("expected translation (1, 2, 3), got (%f, %f, %f)",
			data.Model[12], data.Model[13], data.Model[14])
	}
	if data.Model[0] != 1 || data.Model[5] != 1 || data.Model[10] != 1 {
		t.Error("expected unit scale on the diagonal")
	}
}

func TestComputeBoundingRadius(t *testing.T) {
	vertices := []GPUVertex{
		{Position: [3]float32{0, 0, 0}},
		{Position: [3]float32{3, 4, 0}},
		{Position: [3]float32{1, 1, 1}},
	}

	got := ComputeBoundingRadius(vertices)
	if math.Abs(float64(got)-5) > 1e-6 {
		t.Errorf("expected bounding radius 5, got %f", got)
	}
}

func TestGPUModelDataMarshalSize(t *testing.T) {
	data := &GPUModelData{}
	if data.Size() != 64 {
		t.Errorf("expected 64-byte model data, got %d", data.Size())
	}
	if len(data.Marshal()) != 64 {
		t.Errorf("expected 64-byte marshal buffer, got %d", len(data.Marshal()))
	}
}
