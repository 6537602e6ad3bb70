package shader

import "testing"

const vertSrc = `
struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
};

@vertex
fn vs_main(@location(0) position: vec3<f32>) -> VertexOutput {
    var out: VertexOutput;
    out.clip_position = vec4<f32>(position, 1.0);
    return out;
}
`

const fragSrc = `
@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 1.0, 1.0, 1.0);
}
`

func TestNewShaderParsesEntryPoint(t *testing.T) {
	v := NewShader("test-vert", ShaderTypeVertex, vertSrc)
	if v.EntryPoint() != "vs_main" {
		t.Errorf("vertex entry point = %q, want %q", v.EntryPoint(), "vs_main")
	}
	f := NewShader("test-frag", ShaderTypeFragment, fragSrc)
	if f.EntryPoint() != "fs_main" {
		t.Errorf("fragment entry point = %q, want %q", f.EntryPoint(), "fs_main")
	}
}

func TestNewShaderModule(t *testing.T) {
	s := NewShader("test-vert", ShaderTypeVertex, vertSrc)
	mod := s.Module()
	if mod == nil || mod.WGSLDescriptor == nil {
		t.Fatal("Module() descriptor not populated")
	}
	if mod.Label != "test-vert" {
		t.Errorf("module label = %q, want %q", mod.Label, "test-vert")
	}
	if mod.WGSLDescriptor.Code != vertSrc {
		t.Error("module WGSL code does not match the source")
	}
}

func TestNewShaderPanicsOnMissingEntryPoint(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewShader with a stage mismatch did not panic")
		}
	}()
	NewShader("bad", ShaderTypeVertex, fragSrc)
}

func TestNewShaderPanicsOnEmptySource(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewShader with empty source did not panic")
		}
	}()
	NewShader("empty", ShaderTypeFragment, "")
}
