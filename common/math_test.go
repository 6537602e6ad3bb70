package common

import (
	"math"
	"testing"
)

const eps = 1e-5

func approxEq(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

// mulVec4 applies a column-major 4x4 matrix to a vec4.
func mulVec4(m []float32, v [4]float32) [4]float32 {
	var out [4]float32
	for j := 0; j < 4; j++ {
		out[j] = m[0*4+j]*v[0] + m[1*4+j]*v[1] + m[2*4+j]*v[2] + m[3*4+j]*v[3]
	}
	return out
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i)
	}
	Identity(m)
	for i, v := range m {
		want := float32(0)
		if i == 0 || i == 5 || i == 10 || i == 15 {
			want = 1
		}
		if v != want {
			t.Errorf("Identity: m[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestMul4Identity(t *testing.T) {
	a := make([]float32, 16)
	Identity(a)
	b := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	out := make([]float32, 16)
	Mul4(out, a, b)
	for i := range b {
		if out[i] != b[i] {
			t.Errorf("Mul4 with identity: out[%d] = %v, want %v", i, out[i], b[i])
		}
	}
}

func TestMul4TranslateScale(t *testing.T) {
	translate := make([]float32, 16)
	Identity(translate)
	translate[12], translate[13], translate[14] = 1, 2, 3

	scale := make([]float32, 16)
	Identity(scale)
	scale[0], scale[5], scale[10] = 2, 2, 2

	out := make([]float32, 16)
	Mul4(out, translate, scale)

	// Scale first, then translate: point (1,1,1) -> (3,4,5).
	got := mulVec4(out, [4]float32{1, 1, 1, 1})
	want := [4]float32{3, 4, 5, 1}
	for i := range want {
		if !approxEq(got[i], want[i]) {
			t.Errorf("Mul4 translate*scale applied to (1,1,1): got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMul4AliasedOutput(t *testing.T) {
	a := make([]float32, 16)
	Identity(a)
	a[12] = 5
	b := make([]float32, 16)
	Identity(b)
	b[12] = 7

	// out aliases a; the product must still be correct.
	Mul4(a, a, b)
	if !approxEq(a[12], 12) {
		t.Errorf("Mul4 with aliased output: translation = %v, want 12", a[12])
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	proj := make([]float32, 16)
	near, far := float32(0.1), float32(100.0)
	Perspective(proj, float32(math.Pi/2), 1.0, near, far)

	// WebGPU clip space: near plane maps to depth 0, far plane to depth 1.
	nearClip := mulVec4(proj, [4]float32{0, 0, -near, 1})
	if !approxEq(nearClip[2]/nearClip[3], 0) {
		t.Errorf("near plane depth = %v, want 0", nearClip[2]/nearClip[3])
	}
	farClip := mulVec4(proj, [4]float32{0, 0, -far, 1})
	if !approxEq(farClip[2]/farClip[3], 1) {
		t.Errorf("far plane depth = %v, want 1", farClip[2]/farClip[3])
	}
}

func TestLookAtTransformsEyeToOrigin(t *testing.T) {
	view := make([]float32, 16)
	LookAt(view, 0, 0, 5, 0, 0, 0, 0, 1, 0)

	eye := mulVec4(view, [4]float32{0, 0, 5, 1})
	for i := 0; i < 3; i++ {
		if !approxEq(eye[i], 0) {
			t.Errorf("LookAt: eye maps to %v, want origin", eye)
			break
		}
	}

	// The look target sits 5 units down the view-space -Z axis.
	target := mulVec4(view, [4]float32{0, 0, 0, 1})
	if !approxEq(target[0], 0) || !approxEq(target[1], 0) || !approxEq(target[2], -5) {
		t.Errorf("LookAt: target maps to %v, want (0, 0, -5)", target)
	}
}

func TestBuildModelMatrixNoRotation(t *testing.T) {
	out := make([]float32, 16)
	BuildModelMatrix(out, 1, 2, 3, 0, 0, 0, 2, 3, 4)

	got := mulVec4(out, [4]float32{1, 1, 1, 1})
	want := [4]float32{3, 5, 7, 1}
	for i := range want {
		if !approxEq(got[i], want[i]) {
			t.Errorf("BuildModelMatrix: got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBuildModelMatrixYaw(t *testing.T) {
	out := make([]float32, 16)
	BuildModelMatrix(out, 0, 0, 0, 0, float32(math.Pi/2), 0, 1, 1, 1)

	// A quarter turn around Y sends +X to -Z.
	got := mulVec4(out, [4]float32{1, 0, 0, 1})
	if !approxEq(got[0], 0) || !approxEq(got[1], 0) || !approxEq(got[2], -1) {
		t.Errorf("BuildModelMatrix yaw 90°: +X maps to %v, want (0, 0, -1)", got)
	}
}
