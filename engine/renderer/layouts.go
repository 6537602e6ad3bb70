package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Bind group layout descriptors for the configurator's render pipelines.
// All shaders ship with the application, so the layouts are declared here on
// the Go side and the WGSL binding declarations must match by construction:
//
//	group 0: per-frame uniforms (camera view-projection + position, light)
//	group 1: per-mesh model matrix uniform
//	group 2: material (params uniform, diffuse texture, bump texture, sampler)
//
// Bind groups created from these descriptors are group-equivalent to the
// layouts used during pipeline creation, so the same descriptor values must be
// passed to both RegisterPipelines and the bind group init calls.

// UniformBindGroupLayout builds a single-binding uniform buffer layout descriptor.
//
// Parameters:
//   - label: a debug label for the layout
//   - visibility: the shader stages that read the uniform
//   - minSize: the minimum binding size in bytes (the marshaled uniform size)
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the layout descriptor
func UniformBindGroupLayout(label string, visibility wgpu.ShaderStage, minSize uint64) wgpu.BindGroupLayoutDescriptor {
	entry := wgpu.BindGroupLayoutEntry{
		Binding:    0,
		Visibility: visibility,
	}
	entry.Buffer.Type = wgpu.BufferBindingTypeUniform
	entry.Buffer.MinBindingSize = minSize

	return wgpu.BindGroupLayoutDescriptor{
		Label:   label,
		Entries: []wgpu.BindGroupLayoutEntry{entry},
	}
}

// Material bind group binding indices. The material WGSL declares the same
// bindings in group 2.
const (
	// MaterialBindingParams is the material params uniform buffer binding.
	MaterialBindingParams = 0
	// MaterialBindingDiffuse is the diffuse texture binding.
	MaterialBindingDiffuse = 1
	// MaterialBindingBump is the bump texture binding.
	MaterialBindingBump = 2
	// MaterialBindingSampler is the shared texture sampler binding.
	MaterialBindingSampler = 3
)

// MaterialBindGroupLayout builds the layout descriptor for a material's bind
// group: a params uniform, a diffuse texture, a bump texture, and a sampler,
// all visible to the fragment stage. Materials without one of the maps still
// bind a placeholder texture so the layout stays uniform across pipelines; the
// params uniform's presence flags tell the shader which maps to sample.
//
// Parameters:
//   - label: a debug label for the layout
//   - paramsSize: the marshaled size of the material params uniform in bytes
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the layout descriptor
func MaterialBindGroupLayout(label string, paramsSize uint64) wgpu.BindGroupLayoutDescriptor {
	params := wgpu.BindGroupLayoutEntry{
		Binding:    MaterialBindingParams,
		Visibility: wgpu.ShaderStageFragment,
	}
	params.Buffer.Type = wgpu.BufferBindingTypeUniform
	params.Buffer.MinBindingSize = paramsSize

	diffuse := wgpu.BindGroupLayoutEntry{
		Binding:    MaterialBindingDiffuse,
		Visibility: wgpu.ShaderStageFragment,
	}
	diffuse.Texture.SampleType = wgpu.TextureSampleTypeFloat
	diffuse.Texture.ViewDimension = wgpu.TextureViewDimension2D

	bump := wgpu.BindGroupLayoutEntry{
		Binding:    MaterialBindingBump,
		Visibility: wgpu.ShaderStageFragment,
	}
	bump.Texture.SampleType = wgpu.TextureSampleTypeFloat
	bump.Texture.ViewDimension = wgpu.TextureViewDimension2D

	sampler := wgpu.BindGroupLayoutEntry{
		Binding:    MaterialBindingSampler,
		Visibility: wgpu.ShaderStageFragment,
	}
	sampler.Sampler.Type = wgpu.SamplerBindingTypeFiltering

	return wgpu.BindGroupLayoutDescriptor{
		Label:   label,
		Entries: []wgpu.BindGroupLayoutEntry{params, diffuse, bump, sampler},
	}
}
