package loader

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-configurator/common"
	"github.com/Carmen-Shannon/oxy-configurator/engine/renderer/material"
)

// Catalog is the YAML document describing everything the configurator offers:
// the window, the material options, and the texture sets. Paths inside the
// catalog are resolved relative to the catalog file's directory.
type Catalog struct {
	// Window configures the application window.
	Window WindowSpec `yaml:"window"`
	// Materials lists the selectable material options in display order.
	Materials []MaterialSpec `yaml:"materials"`
	// Textures lists the selectable texture sets in display order. The "None"
	// option is implicit and must not appear here.
	Textures []TextureSpec `yaml:"textures"`
}

// WindowSpec configures the application window from the catalog.
type WindowSpec struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// MaterialSpec describes one selectable material option.
type MaterialSpec struct {
	Name      string     `yaml:"name"`
	BaseColor [4]float32 `yaml:"base_color"`
	Shininess float32    `yaml:"shininess"`
	Wireframe bool       `yaml:"wireframe"`
}

// TextureSpec describes one selectable texture set by image file paths.
// Either path may be empty, meaning no map of that kind.
type TextureSpec struct {
	Name    string `yaml:"name"`
	Diffuse string `yaml:"diffuse"`
	Bump    string `yaml:"bump"`
}

// TextureSet is a fully decoded texture option ready to register with the
// configurator: a display name plus optional diffuse and bump images.
type TextureSet struct {
	Name    string
	Diffuse *common.TextureImage
	Bump    *common.TextureImage
}

// Validate checks the catalog for structural problems: missing names,
// duplicate names, textures without any image, and a reserved "None" entry.
//
// Returns:
//   - error: the first problem found, or nil
func (c *Catalog) Validate() error {
	if len(c.Materials) == 0 {
		return fmt.Errorf("catalog: at least one material is required")
	}

	seenMaterials := make(map[string]struct{}, len(c.Materials))
	for i, m := range c.Materials {
		if m.Name == "" {
			return fmt.Errorf("catalog: material %d has no name", i)
		}
		if _, dup := seenMaterials[m.Name]; dup {
			return fmt.Errorf("catalog: duplicate material name %q", m.Name)
		}
		seenMaterials[m.Name] = struct{}{}
	}

	seenTextures := make(map[string]struct{}, len(c.Textures))
	for i, t := range c.Textures {
		if t.Name == "" {
			return fmt.Errorf("catalog: texture %d has no name", i)
		}
		if t.Name == "None" {
			return fmt.Errorf("catalog: texture name %q is reserved for the built-in empty option", t.Name)
		}
		if _, dup := seenTextures[t.Name]; dup {
			return fmt.Errorf("catalog: duplicate texture name %q", t.Name)
		}
		seenTextures[t.Name] = struct{}{}
		if t.Diffuse == "" && t.Bump == "" {
			return fmt.Errorf("catalog: texture %q has neither a diffuse nor a bump path", t.Name)
		}
	}
	return nil
}

// BuildMaterial converts a MaterialSpec into a render material. A zero base
// color is treated as unset and replaced with opaque white; a zero shininess
// keeps the material default.
//
// Returns:
//   - material.Material: the constructed material
func (m MaterialSpec) BuildMaterial() material.Material {
	options := []material.MaterialBuilderOption{material.WithName(m.Name)}
	if m.BaseColor != ([4]float32{}) {
		options = append(options, material.WithBaseColor(m.BaseColor))
	}
	if m.Shininess > 0 {
		options = append(options, material.WithShininess(m.Shininess))
	}
	if m.Wireframe {
		options = append(options, material.WithWireframe())
	}
	return material.NewMaterial(options...)
}
