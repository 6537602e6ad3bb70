package loader

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a solid-color PNG of the given size and returns its path.
func writeTestPNG(t *testing.T, dir, name string, w, h int, c color.NRGBA) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func writeTestCatalog(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test catalog: %v", err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "rock_diffuse.png", 4, 4, color.NRGBA{R: 120, G: 100, B: 80, A: 255})
	writeTestPNG(t, dir, "rock_bump.png", 4, 4, color.NRGBA{R: 128, G: 128, B: 128, A: 255})

	path := writeTestCatalog(t, dir, `
window:
  title: Teapot
  width: 1280
  height: 720
materials:
  - name: Porcelain
    base_color: [0.95, 0.95, 0.92, 1.0]
    shininess: 64
  - name: Wireframe
    wireframe: true
textures:
  - name: Rock
    diffuse: rock_diffuse.png
    bump: rock_bump.png
`)

	l := NewLoader()
	loaded, err := l.LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	if loaded.Spec.Window.Title != "Teapot" {
		t.Errorf("expected window title %q, got %q", "Teapot", loaded.Spec.Window.Title)
	}
	if len(loaded.Materials) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(loaded.Materials))
	}
	if loaded.Materials[0].Name() != "Porcelain" || loaded.Materials[0].Shininess() != 64 {
		t.Error("expected the first material built from its spec")
	}
	if !loaded.Materials[1].Wireframe() {
		t.Error("expected the second material to be a wireframe material")
	}

	if len(loaded.TextureSets) != 1 {
		t.Fatalf("expected 1 texture set, got %d", len(loaded.TextureSets))
	}
	set := loaded.TextureSets[0]
	if set.Name != "Rock" {
		t.Errorf("expected texture set %q, got %q", "Rock", set.Name)
	}
	if set.Diffuse == nil || set.Bump == nil {
		t.Fatal("expected both maps decoded")
	}
	if set.Diffuse.Width != 4 || set.Diffuse.Height != 4 {
		t.Errorf("expected a 4x4 diffuse map, got %dx%d", set.Diffuse.Width, set.Diffuse.Height)
	}
	if len(set.Diffuse.Pixels) != 4*4*4 {
		t.Errorf("expected 64 RGBA bytes, got %d", len(set.Diffuse.Pixels))
	}
}

func TestLoadCatalogValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"no materials", `
textures: []
`},
		{"unnamed material", `
materials:
  - base_color: [1, 0, 0, 1]
`},
		{"duplicate material", `
materials:
  - name: Blue
  - name: Blue
`},
		{"reserved texture name", `
materials:
  - name: Blue
textures:
  - name: None
    diffuse: x.png
`},
		{"texture without images", `
materials:
  - name: Blue
textures:
  - name: Rock
`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTestCatalog(t, t.TempDir(), tc.content)
			if _, err := NewLoader().LoadCatalog(path); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestLoadCatalogMissingImageFails(t *testing.T) {
	dir := t.TempDir()
	path := writeTestCatalog(t, dir, `
materials:
  - name: Blue
textures:
  - name: Rock
    diffuse: does_not_exist.png
`)

	if _, err := NewLoader().LoadCatalog(path); err == nil {
		t.Error("expected an error for a missing image file")
	}
}

func TestLoadTextureCachesByPath(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "shared.png", 2, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	l := NewLoader()
	first, err := l.LoadTexture(path, "shared")
	if err != nil {
		t.Fatalf("LoadTexture failed: %v", err)
	}
	second, err := l.LoadTexture(path, "shared-again")
	if err != nil {
		t.Fatalf("LoadTexture failed: %v", err)
	}

	if first != second {
		t.Error("expected the cached texture on the second load")
	}
	if len(l.Textures()) != 1 {
		t.Errorf("expected 1 cached texture, got %d", len(l.Textures()))
	}
}

func TestLoadTextureDownscalesOversizedImages(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "big.png", 64, 32, color.NRGBA{R: 200, G: 50, B: 50, A: 255})

	l := NewLoader(WithMaxTextureSize(16))
	img, err := l.LoadTexture(path, "big")
	if err != nil {
		t.Fatalf("LoadTexture failed: %v", err)
	}

	if img.Width != 16 || img.Height != 8 {
		t.Errorf("expected a 16x8 downscaled image, got %dx%d", img.Width, img.Height)
	}
	if len(img.Pixels) != 16*8*4 {
		t.Errorf("expected %d RGBA bytes, got %d", 16*8*4, len(img.Pixels))
	}
}

func TestDecodedPixelsAreRGBA(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "red.png", 1, 1, color.NRGBA{R: 255, A: 255})

	img, err := NewLoader().LoadTexture(path, "red")
	if err != nil {
		t.Fatalf("LoadTexture failed: %v", err)
	}
	want := []byte{255, 0, 0, 255}
	for i, b := range want {
		if img.Pixels[i] != b {
			t.Fatalf("pixel byte %d: expected %d, got %d", i, b, img.Pixels[i])
		}
	}
}
