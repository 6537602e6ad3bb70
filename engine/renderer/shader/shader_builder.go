package shader

import "github.com/cogentcore/webgpu/wgpu"

// ShaderBuilderOption is a function that configures a shader instance during construction.
type ShaderBuilderOption func(*shader)

// WithVertexLayouts is an option builder that declares the vertex buffer
// layouts consumed by a vertex shader. The declared layouts must match the
// VertexInput struct in the WGSL source.
//
// Parameters:
//   - layouts: the vertex buffer layouts for this shader
//
// Returns:
//   - ShaderBuilderOption: a function that applies the vertex layouts to a shader
func WithVertexLayouts(layouts ...wgpu.VertexBufferLayout) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexLayouts = layouts
	}
}
