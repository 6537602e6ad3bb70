package mesh

// Teapot profile curves for the default product. Both parts are surfaces of
// revolution around the Y axis; the body closes at the bottom and opens at the
// rim where the lid sits, and the lid runs from its own rim up to the tip of
// the knob on the axis.

// TeapotBodyProfile returns the lathe profile for the teapot body, from the
// closed bottom up to the rim.
//
// Returns:
//   - []ProfilePoint: the body profile
func TeapotBodyProfile() []ProfilePoint {
	return []ProfilePoint{
		{Radius: 0.00, Height: 0.00},
		{Radius: 0.80, Height: 0.00},
		{Radius: 1.15, Height: 0.15},
		{Radius: 1.35, Height: 0.55},
		{Radius: 1.40, Height: 1.00},
		{Radius: 1.30, Height: 1.50},
		{Radius: 1.05, Height: 1.90},
		{Radius: 0.90, Height: 2.00},
	}
}

// TeapotLidProfile returns the lathe profile for the teapot lid, from its rim
// up to the tip of the knob.
//
// Returns:
//   - []ProfilePoint: the lid profile
func TeapotLidProfile() []ProfilePoint {
	return []ProfilePoint{
		{Radius: 0.95, Height: 2.00},
		{Radius: 0.90, Height: 2.10},
		{Radius: 0.60, Height: 2.28},
		{Radius: 0.30, Height: 2.42},
		{Radius: 0.12, Height: 2.50},
		{Radius: 0.12, Height: 2.68},
		{Radius: 0.26, Height: 2.78},
		{Radius: 0.00, Height: 2.86},
	}
}

// DefaultSegments is the angular resolution used for the teapot parts.
const DefaultSegments = 48

// NewTeapotBody builds the teapot body mesh centered on the Y axis.
//
// Parameters:
//   - options: additional builder options applied after the geometry
//
// Returns:
//   - Mesh: the body mesh
func NewTeapotBody(options ...MeshBuilderOption) Mesh {
	vertices, indices := Lathe(TeapotBodyProfile(), DefaultSegments)
	opts := append([]MeshBuilderOption{
		WithName("body"),
		WithGeometry(vertices, indices),
	}, options...)
	return NewMesh(opts...)
}

// NewTeapotLid builds the teapot lid mesh, positioned to rest on the body rim.
//
// Parameters:
//   - options: additional builder options applied after the geometry
//
// Returns:
//   - Mesh: the lid mesh
func NewTeapotLid(options ...MeshBuilderOption) Mesh {
	vertices, indices := Lathe(TeapotLidProfile(), DefaultSegments)
	opts := append([]MeshBuilderOption{
		WithName("lid"),
		WithGeometry(vertices, indices),
	}, options...)
	return NewMesh(opts...)
}
