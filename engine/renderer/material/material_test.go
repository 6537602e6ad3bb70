package material

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-configurator/common"
)

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial(WithName("plain"))
	if m.Name() != "plain" {
		t.Errorf("Name() = %q, want %q", m.Name(), "plain")
	}
	if m.BaseColor() != [4]float32{1, 1, 1, 1} {
		t.Errorf("BaseColor() = %v, want white", m.BaseColor())
	}
	if m.Wireframe() {
		t.Error("Wireframe() = true for a default material")
	}
	if m.DiffuseTexture() != nil || m.BumpTexture() != nil {
		t.Error("default material has textures applied")
	}
}

func TestSetTexturesMarksDirty(t *testing.T) {
	m := NewMaterial(WithName("fabric"))
	if m.ConsumeDirty() {
		t.Error("fresh material reports dirty")
	}

	diffuse := &common.TextureImage{Name: "fabric-diffuse", Width: 1, Height: 1, Pixels: []byte{255, 255, 255, 255}}
	bump := &common.TextureImage{Name: "fabric-bump", Width: 1, Height: 1, Pixels: []byte{128, 128, 255, 255}}
	m.SetTextures(diffuse, bump)

	if m.DiffuseTexture() != diffuse {
		t.Error("DiffuseTexture() does not return the applied texture")
	}
	if m.BumpTexture() != bump {
		t.Error("BumpTexture() does not return the applied texture")
	}
	if !m.ConsumeDirty() {
		t.Error("material not dirty after SetTextures")
	}
	if m.ConsumeDirty() {
		t.Error("ConsumeDirty did not clear the dirty flag")
	}
}

func TestSetTexturesNilClearsMaps(t *testing.T) {
	diffuse := &common.TextureImage{Name: "d", Width: 1, Height: 1, Pixels: []byte{0, 0, 0, 255}}
	m := NewMaterial(WithDiffuseTexture(diffuse))

	m.SetTextures(nil, nil)
	if m.DiffuseTexture() != nil || m.BumpTexture() != nil {
		t.Error("SetTextures(nil, nil) did not clear the texture references")
	}
	u := m.Uniform()
	if u.HasDiffuse != 0 || u.HasBump != 0 {
		t.Errorf("Uniform() flags = (%d, %d) after clearing textures, want (0, 0)", u.HasDiffuse, u.HasBump)
	}
}

func TestUniformFlags(t *testing.T) {
	diffuse := &common.TextureImage{Name: "d", Width: 1, Height: 1, Pixels: []byte{0, 0, 0, 255}}
	m := NewMaterial(
		WithBaseColor([4]float32{0.5, 0.25, 0.125, 1}),
		WithShininess(64),
		WithDiffuseTexture(diffuse),
	)

	u := m.Uniform()
	if u.BaseColor != [4]float32{0.5, 0.25, 0.125, 1} {
		t.Errorf("Uniform().BaseColor = %v", u.BaseColor)
	}
	if u.Shininess != 64 {
		t.Errorf("Uniform().Shininess = %v, want 64", u.Shininess)
	}
	if u.HasDiffuse != 1 {
		t.Errorf("Uniform().HasDiffuse = %d, want 1", u.HasDiffuse)
	}
	if u.HasBump != 0 {
		t.Errorf("Uniform().HasBump = %d, want 0", u.HasBump)
	}
}

func TestMaterialsShareByReference(t *testing.T) {
	shared := NewMaterial(WithName("shared"))
	a, b := shared, shared
	other := NewMaterial(WithName("shared"))

	if a != b {
		t.Error("two references to the same material compare unequal")
	}
	if a == other {
		t.Error("distinct materials with the same name compare equal")
	}

	// A texture swap through one reference is visible through the other.
	diffuse := &common.TextureImage{Name: "d", Width: 1, Height: 1, Pixels: []byte{0, 0, 0, 255}}
	a.SetTextures(diffuse, nil)
	if b.DiffuseTexture() != diffuse {
		t.Error("texture applied through one reference not visible through the other")
	}
}

func TestGPUMaterialParamsMarshal(t *testing.T) {
	g := &GPUMaterialParams{
		BaseColor:  [4]float32{1, 0.5, 0.25, 1},
		Shininess:  32,
		HasDiffuse: 1,
		HasBump:    1,
	}
	buf := g.Marshal()
	if len(buf) != 32 {
		t.Fatalf("Marshal() length = %d, want 32", len(buf))
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8])); got != 0.5 {
		t.Errorf("BaseColor[1] decoded as %v, want 0.5", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[16:20])); got != 32 {
		t.Errorf("Shininess decoded as %v, want 32", got)
	}
	if got := binary.LittleEndian.Uint32(buf[20:24]); got != 1 {
		t.Errorf("HasDiffuse decoded as %d, want 1", got)
	}
	if g.Size() != 32 {
		t.Errorf("Size() = %d, want 32", g.Size())
	}
}
