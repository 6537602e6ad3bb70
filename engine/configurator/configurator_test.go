package configurator

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-configurator/common"
	"github.com/Carmen-Shannon/oxy-configurator/engine/mesh"
	"github.com/Carmen-Shannon/oxy-configurator/engine/renderer/material"
)

func newTestMesh(name string) mesh.Mesh {
	return mesh.NewMesh(mesh.WithName(name))
}

func newTestImage(name string) *common.TextureImage {
	return &common.TextureImage{Name: name, Width: 1, Height: 1, Pixels: []byte{255, 255, 255, 255}}
}

func TestNewConfiguratorSeedsNoneSentinel(t *testing.T) {
	c := NewConfigurator()

	textures := c.Textures()
	if len(textures) != 1 {
		t.Fatalf("expected exactly the sentinel entry, got %d textures", len(textures))
	}
	if textures[0].Name != "None" {
		t.Errorf("expected sentinel name %q, got %q", "None", textures[0].Name)
	}
	if textures[0].Diffuse != nil || textures[0].Bump != nil {
		t.Error("expected sentinel to have nil diffuse and bump maps")
	}
}

func TestAddMaterialDefaultsToSentinelTexture(t *testing.T) {
	c := NewConfigurator()
	m0 := c.AddMaterial(material.NewMaterial(material.WithName("default")))
	m1 := c.AddMaterial(material.NewMaterial(material.WithName("blue")))

	meshIdx := c.AddMesh(newTestMesh("body"))
	for _, matIdx := range []int{m0, m1} {
		if got := c.SetMaterial(meshIdx, matIdx); got != 0 {
			t.Errorf("material %d: expected sentinel texture index 0, got %d", matIdx, got)
		}
	}
}

func TestAddMeshWithInitialMaterial(t *testing.T) {
	c := NewConfigurator()
	mat := material.NewMaterial(material.WithName("porcelain"))
	matIdx := c.AddMaterial(mat)

	m := newTestMesh("body")
	meshIdx := c.AddMesh(m, matIdx)

	if meshIdx != 0 {
		t.Errorf("expected mesh index 0, got %d", meshIdx)
	}
	if m.Material() != mat {
		t.Error("expected the registered material applied to the mesh handle")
	}
}

func TestAddMeshWithoutMaterial(t *testing.T) {
	c := NewConfigurator()
	m := newTestMesh("body")
	meshIdx := c.AddMesh(m)

	if m.Material() != nil {
		t.Error("expected no material on a mesh registered without one")
	}
	if got := c.TextureIndex(meshIdx); got != 0 {
		t.Errorf("expected texture index 0 for a mesh with no material, got %d", got)
	}
}

func TestSetMaterialAppliesHandleAndReturnsRememberedTexture(t *testing.T) {
	c := NewConfigurator()
	c.AddMaterial(material.NewMaterial(material.WithName("default")))
	blue := material.NewMaterial(material.WithName("blue"))
	blueIdx := c.AddMaterial(blue)
	rockIdx := c.AddTexture("Rock", newTestImage("rock_diffuse"), newTestImage("rock_bump"))

	body := newTestMesh("body")
	bodyIdx := c.AddMesh(body)

	// Assign blue, pick the rock texture, then reassign blue to another mesh:
	// the remembered texture index must come back.
	c.SetMaterial(bodyIdx, blueIdx)
	c.SetTexture(bodyIdx, rockIdx)

	lidIdx := c.AddMesh(newTestMesh("lid"))
	if got := c.SetMaterial(lidIdx, blueIdx); got != rockIdx {
		t.Errorf("expected remembered texture index %d, got %d", rockIdx, got)
	}
	if body.Material() != blue {
		t.Error("expected blue material applied to the body handle")
	}
}

func TestSetTextureAppliesMapsToSharedMaterial(t *testing.T) {
	c := NewConfigurator()
	c.AddMaterial(material.NewMaterial(material.WithName("default")))
	blue := material.NewMaterial(material.WithName("blue"))
	blueIdx := c.AddMaterial(blue)

	diffuse := newTestImage("rock_diffuse")
	bump := newTestImage("rock_bump")
	rockIdx := c.AddTexture("Rock", diffuse, bump)

	bodyIdx := c.AddMesh(newTestMesh("body"), blueIdx)
	c.SetTexture(bodyIdx, rockIdx)

	if blue.DiffuseTexture() != diffuse || blue.BumpTexture() != bump {
		t.Error("expected rock maps applied to the material handle")
	}
}

func TestSetTextureSentinelClearsMaps(t *testing.T) {
	c := NewConfigurator()
	mat := material.NewMaterial(material.WithName("blue"))
	matIdx := c.AddMaterial(mat)
	rockIdx := c.AddTexture("Rock", newTestImage("rock_diffuse"), nil)

	meshIdx := c.AddMesh(newTestMesh("body"), matIdx)
	c.SetTexture(meshIdx, rockIdx)
	c.SetTexture(meshIdx, 0)

	if mat.DiffuseTexture() != nil || mat.BumpTexture() != nil {
		t.Error("expected sentinel texture to clear both maps")
	}
	if got := c.TextureIndex(meshIdx); got != 0 {
		t.Errorf("expected remembered texture index 0, got %d", got)
	}
}

func TestHaveSameMaterialTracksSharedEntries(t *testing.T) {
	c := NewConfigurator()
	c.AddMaterial(material.NewMaterial(material.WithName("default")))
	blueIdx := c.AddMaterial(material.NewMaterial(material.WithName("blue")))
	greenIdx := c.AddMaterial(material.NewMaterial(material.WithName("green")))

	bodyIdx := c.AddMesh(newTestMesh("body"))
	lidIdx := c.AddMesh(newTestMesh("lid"))

	c.SetMaterial(bodyIdx, blueIdx)
	c.SetMaterial(lidIdx, blueIdx)
	if !c.HaveSameMaterial(bodyIdx, lidIdx) {
		t.Error("expected shared material after assigning the same index to both meshes")
	}

	c.SetMaterial(lidIdx, greenIdx)
	if c.HaveSameMaterial(bodyIdx, lidIdx) {
		t.Error("expected distinct materials after reassigning one mesh")
	}
}

func TestSharedMaterialPropagatesTextureIndex(t *testing.T) {
	c := NewConfigurator()
	c.AddMaterial(material.NewMaterial(material.WithName("default")))
	blueIdx := c.AddMaterial(material.NewMaterial(material.WithName("blue")))
	rockIdx := c.AddTexture("Rock", newTestImage("rock_diffuse"), newTestImage("rock_bump"))

	bodyIdx := c.AddMesh(newTestMesh("body"))
	lidIdx := c.AddMesh(newTestMesh("lid"))
	c.SetMaterial(bodyIdx, blueIdx)
	c.SetMaterial(lidIdx, blueIdx)

	// Changing the texture through one mesh updates the shared entry, so a
	// later assignment of the same material reports the new index.
	c.SetTexture(bodyIdx, rockIdx)
	if got := c.SetMaterial(lidIdx, blueIdx); got != rockIdx {
		t.Errorf("expected shared texture index %d, got %d", rockIdx, got)
	}
	if got := c.TextureIndex(lidIdx); got != rockIdx {
		t.Errorf("expected texture index %d via the lid, got %d", rockIdx, got)
	}
}

func TestDistinctMaterialsDoNotShareTextureState(t *testing.T) {
	c := NewConfigurator()
	c.AddMaterial(material.NewMaterial(material.WithName("default")))
	blueIdx := c.AddMaterial(material.NewMaterial(material.WithName("blue")))
	greenIdx := c.AddMaterial(material.NewMaterial(material.WithName("green")))
	rockIdx := c.AddTexture("Rock", newTestImage("rock_diffuse"), nil)

	bodyIdx := c.AddMesh(newTestMesh("body"), blueIdx)
	lidIdx := c.AddMesh(newTestMesh("lid"), greenIdx)

	if c.HaveSameMaterial(bodyIdx, lidIdx) {
		t.Error("expected distinct material entries")
	}

	c.SetTexture(bodyIdx, rockIdx)
	if got := c.TextureIndex(lidIdx); got != 0 {
		t.Errorf("expected lid's material texture index unchanged at 0, got %d", got)
	}
}

func TestRegistryAccessors(t *testing.T) {
	c := NewConfigurator(
		WithMaterials(
			material.NewMaterial(material.WithName("default")),
			material.NewMaterial(material.WithName("blue")),
		),
		WithTexture("Rock", newTestImage("rock_diffuse"), nil),
	)

	if got := c.MaterialCount(); got != 2 {
		t.Errorf("expected 2 materials, got %d", got)
	}
	if got := c.TextureCount(); got != 2 {
		t.Errorf("expected 2 textures (sentinel + Rock), got %d", got)
	}
	if mats := c.Materials(); mats[1].Name() != "blue" {
		t.Errorf("expected second material %q, got %q", "blue", mats[1].Name())
	}
	if textures := c.Textures(); textures[1].Name != "Rock" {
		t.Errorf("expected second texture %q, got %q", "Rock", textures[1].Name)
	}
}

func TestOutOfRangeIndicesPanic(t *testing.T) {
	c := NewConfigurator()
	matIdx := c.AddMaterial(material.NewMaterial())
	meshIdx := c.AddMesh(newTestMesh("body"), matIdx)

	cases := []struct {
		name string
		call func()
	}{
		{"AddMesh with bad material", func() { c.AddMesh(newTestMesh("x"), 5) }},
		{"SetMaterial bad mesh", func() { c.SetMaterial(9, matIdx) }},
		{"SetMaterial bad material", func() { c.SetMaterial(meshIdx, 9) }},
		{"SetMaterial negative mesh", func() { c.SetMaterial(-1, matIdx) }},
		{"SetTexture bad mesh", func() { c.SetTexture(9, 0) }},
		{"SetTexture bad texture", func() { c.SetTexture(meshIdx, 9) }},
		{"HaveSameMaterial bad index", func() { c.HaveSameMaterial(meshIdx, 7) }},
		{"TextureIndex bad index", func() { c.TextureIndex(-2) }},
		{"Mesh bad index", func() { c.Mesh(3) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("expected panic")
				}
			}()
			tc.call()
		})
	}
}

func TestSetTexturePanicsWithoutMaterial(t *testing.T) {
	c := NewConfigurator()
	meshIdx := c.AddMesh(newTestMesh("body"))

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic when the mesh has no material")
		}
	}()
	c.SetTexture(meshIdx, 0)
}

func TestAddTexturePanicsOnEmptyName(t *testing.T) {
	c := NewConfigurator()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for empty texture name")
		}
	}()
	c.AddTexture("", nil, nil)
}
