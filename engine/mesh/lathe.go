package mesh

import (
	"math"
)

// ProfilePoint is a single point on a lathe profile curve, expressed as a
// radius from the axis of revolution and a height along it.
type ProfilePoint struct {
	// Radius is the distance from the Y axis.
	Radius float32
	// Height is the position along the Y axis.
	Height float32
}

// Lathe revolves a 2D profile curve around the Y axis to produce a surface of
// revolution. The profile runs bottom to top; points with a zero radius sit on
// the axis and close the surface (e.g. the bottom of a pot or the tip of a
// knob). The seam column is duplicated so texture coordinates wrap cleanly:
// u runs 0..1 around the circumference and v runs 0..1 along the profile's
// arc length.
//
// Panics if the profile has fewer than two points or segments is less than 3.
//
// Parameters:
//   - profile: the profile curve from bottom to top
//   - segments: the number of angular subdivisions around the axis
//
// Returns:
//   - []GPUVertex: the generated vertices
//   - []uint32: the triangle-list indices
func Lathe(profile []ProfilePoint, segments int) ([]GPUVertex, []uint32) {
	if len(profile) < 2 {
		panic("mesh: Lathe requires at least two profile points")
	}
	if segments < 3 {
		panic("mesh: Lathe requires at least three segments")
	}

	rows := len(profile)
	cols := segments + 1

	// Per-point 2D normals from averaged neighbor directions. For a segment
	// direction (dr, dy) along the profile, the outward surface normal in the
	// radius/height plane is (dy, -dr).
	normals2D := make([][2]float32, rows)
	for i := range profile {
		prev := profile[int(math.Max(0, float64(i-1)))]
		next := profile[int(math.Min(float64(rows-1), float64(i+1)))]
		dr := next.Radius - prev.Radius
		dy := next.Height - prev.Height
		nr, ny := dy, -dr
		length := float32(math.Sqrt(float64(nr*nr + ny*ny)))
		if length > 0 {
			nr /= length
			ny /= length
		}
		normals2D[i] = [2]float32{nr, ny}
	}

	// Cumulative arc length along the profile for the v texture coordinate.
	arc := make([]float32, rows)
	var total float32
	for i := 1; i < rows; i++ {
		dr := profile[i].Radius - profile[i-1].Radius
		dy := profile[i].Height - profile[i-1].Height
		total += float32(math.Sqrt(float64(dr*dr + dy*dy)))
		arc[i] = total
	}

	vertices := make([]GPUVertex, 0, rows*cols)
	for i, p := range profile {
		v := float32(0)
		if total > 0 {
			v = arc[i] / total
		}
		for j := 0; j < cols; j++ {
			theta := 2 * math.Pi * float64(j) / float64(segments)
			sin, cos := float32(math.Sin(theta)), float32(math.Cos(theta))
			vertices = append(vertices, GPUVertex{
				Position: [3]float32{p.Radius * sin, p.Height, p.Radius * cos},
				Normal:   [3]float32{normals2D[i][0] * sin, normals2D[i][1], normals2D[i][0] * cos},
				TexCoord: [2]float32{float32(j) / float32(segments), v},
			})
		}
	}

	indices := make([]uint32, 0, (rows-1)*segments*6)
	for i := 0; i < rows-1; i++ {
		onAxisLow := profile[i].Radius == 0
		onAxisHigh := profile[i+1].Radius == 0
		if onAxisLow && onAxisHigh {
			continue
		}
		for j := 0; j < segments; j++ {
			a := uint32(i*cols + j)
			b := uint32(i*cols + j + 1)
			c := uint32((i+1)*cols + j + 1)
			d := uint32((i+1)*cols + j)
			switch {
			case onAxisLow:
				// Bottom row sits on the axis: fan triangles only.
				indices = append(indices, a, c, d)
			case onAxisHigh:
				// Top row sits on the axis: fan triangles only.
				indices = append(indices, a, b, c)
			default:
				indices = append(indices, a, b, c, a, c, d)
			}
		}
	}

	return vertices, indices
}

// LineIndices expands triangle-list indices into line-list indices for
// wireframe rendering. Each triangle contributes its three edges; edges shared
// between adjacent triangles are emitted once.
//
// Parameters:
//   - triangles: the triangle-list indices (length must be a multiple of 3)
//
// Returns:
//   - []uint32: the deduplicated line-list indices
func LineIndices(triangles []uint32) []uint32 {
	if len(triangles)%3 != 0 {
		panic("mesh: LineIndices requires a triangle-list index buffer")
	}

	seen := make(map[uint64]struct{}, len(triangles))
	lines := make([]uint32, 0, len(triangles)*2)

	addEdge := func(a, b uint32) {
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		key := uint64(lo)<<32 | uint64(hi)
		if _, exists := seen[key]; exists {
			return
		}
		seen[key] = struct{}{}
		lines = append(lines, a, b)
	}

	for i := 0; i < len(triangles); i += 3 {
		addEdge(triangles[i], triangles[i+1])
		addEdge(triangles[i+1], triangles[i+2])
		addEdge(triangles[i+2], triangles[i])
	}

	return lines
}
