package configurator

import (
	"github.com/Carmen-Shannon/oxy-configurator/common"
	"github.com/Carmen-Shannon/oxy-configurator/engine/renderer/material"
)

// ConfiguratorBuilderOption is a functional option for configuring a Configurator during construction.
type ConfiguratorBuilderOption func(*configuratorImpl)

// WithMaterials registers the given materials in order during construction.
//
// Parameters:
//   - mats: the materials to register
//
// Returns:
//   - ConfiguratorBuilderOption: a function that applies the materials option to a configurator
func WithMaterials(mats ...material.Material) ConfiguratorBuilderOption {
	return func(c *configuratorImpl) {
		for _, mat := range mats {
			c.materials = append(c.materials, &materialEntry{mat: mat})
		}
	}
}

// WithTexture registers a texture entry during construction, after the "None"
// sentinel. Panics if the name is empty.
//
// Parameters:
//   - name: the display name for the texture
//   - diffuse: the diffuse map, or nil
//   - bump: the bump map, or nil
//
// Returns:
//   - ConfiguratorBuilderOption: a function that applies the texture option to a configurator
func WithTexture(name string, diffuse, bump *common.TextureImage) ConfiguratorBuilderOption {
	return func(c *configuratorImpl) {
		if name == "" {
			panic("configurator: WithTexture requires a name")
		}
		c.textures = append(c.textures, TextureEntry{Name: name, Diffuse: diffuse, Bump: bump})
	}
}
