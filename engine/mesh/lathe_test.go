package mesh

import (
	"math"
	"testing"
)

func TestLatheVertexCount(t *testing.T) {
	profile := []ProfilePoint{
		{Radius: 0, Height: 0},
		{Radius: 1, Height: 0},
		{Radius: 1, Height: 1},
	}
	segments := 8
	vertices, _ := Lathe(profile, segments)

	want := len(profile) * (segments + 1)
	if len(vertices) != want {
		t.Errorf("expected %d vertices, got %d", want, len(vertices))
	}
}

func TestLatheIndicesInRange(t *testing.T) {
	vertices, indices := Lathe(TeapotBodyProfile(), 16)

	if len(indices)%3 != 0 {
		t.Fatalf("index count %d is not a multiple of 3", len(indices))
	}
	for _, idx := range indices {
		if int(idx) >= len(vertices) {
			t.Fatalf("index %d out of range for %d vertices", idx, len(vertices))
		}
	}
}

func TestLatheAxisRowEmitsFans(t *testing.T) {
	// Bottom row on the axis: each quad in the first band collapses to a
	// single fan triangle instead of two.
	profile := []ProfilePoint{
		{Radius: 0, Height: 0},
		{Radius: 1, Height: 1},
		{Radius: 1, Height: 2},
	}
	segments := 6
	_, indices := Lathe(profile, segments)

	want := segments*3 + segments*6
	if len(indices) != want {
		t.Errorf("expected %d indices, got %d", want, len(indices))
	}
}

func TestLatheTexCoordRange(t *testing.T) {
	vertices, _ := Lathe(TeapotLidProfile(), 12)

	for i, v := range vertices {
		if v.TexCoord[0] < 0 || v.TexCoord[0] > 1 || v.TexCoord[1] < 0 || v.TexCoord[1] > 1 {
			t.Fatalf("vertex %d has out-of-range tex coord %v", i, v.TexCoord)
		}
	}

	// First vertex is at the seam start, last column wraps to u=1.
	if vertices[0].TexCoord[0] != 0 {
		t.Errorf("expected seam start u=0, got %f", vertices[0].TexCoord[0])
	}
	if vertices[12].TexCoord[0] != 1 {
		t.Errorf("expected seam end u=1, got %f", vertices[12].TexCoord[0])
	}
}

func TestLatheNormalsAreUnitLength(t *testing.T) {
	vertices, _ := Lathe(TeapotBodyProfile(), 24)

	for i, v := range vertices {
		n := v.Normal
		length := math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
		if math.Abs(length-1) > 1e-4 {
			t.Fatalf("vertex %d normal %v has length %f", i, n, length)
		}
	}
}

func TestLathePanicsOnShortProfile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for single-point profile")
		}
	}()
	Lathe([]ProfilePoint{{Radius: 1, Height: 0}}, 8)
}

func TestLathePanicsOnTooFewSegments(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for segments < 3")
		}
	}()
	Lathe(TeapotBodyProfile(), 2)
}

func TestLineIndicesDedupesSharedEdges(t *testing.T) {
	// Two triangles sharing the edge 0-2: five unique edges total.
	triangles := []uint32{0, 1, 2, 0, 2, 3}
	lines := LineIndices(triangles)

	if len(lines) != 10 {
		t.Errorf("expected 10 line indices (5 edges), got %d", len(lines))
	}
}

func TestLineIndicesPanicsOnNonTriangleInput(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for non-triangle index buffer")
		}
	}()
	LineIndices([]uint32{0, 1})
}
