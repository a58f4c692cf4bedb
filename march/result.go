package march

// Vertices is the flat, row-major list of emitted vertex positions: Dim
// components per vertex, grouped in the order the IntersectFinder produced
// them (by EdgeDirection axis, then row-major within each axis) — the same
// order IndexRemapper assigns ordinals in, which is what makes a March
// result deterministic and reproducible across runs on the same input.
type Vertices struct {
	Dim  int
	Data []float32
}

// Len returns the number of vertices.
func (v Vertices) Len() int {
	if v.Dim == 0 {
		return 0
	}
	return len(v.Data) / v.Dim
}

// At returns the i-th vertex's Dim coordinates, sharing storage with Data.
func (v Vertices) At(i int) []float32 {
	return v.Data[i*v.Dim : (i+1)*v.Dim]
}

// Geometry is the flat, row-major list of emitted simplices: each simplex
// is VerticesPerSimplex consecutive vertex ordinals into a matching
// Vertices value (2 for a line segment, 3 for a triangle).
type Geometry struct {
	VerticesPerSimplex int
	Indices            []uint32
}

// Len returns the number of simplices.
func (g Geometry) Len() int {
	if g.VerticesPerSimplex == 0 {
		return 0
	}
	return len(g.Indices) / g.VerticesPerSimplex
}

// At returns the i-th simplex's vertex ordinals, sharing storage with Indices.
func (g Geometry) At(i int) []uint32 {
	return g.Indices[i*g.VerticesPerSimplex : (i+1)*g.VerticesPerSimplex]
}
