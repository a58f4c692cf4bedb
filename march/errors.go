package march

import "errors"

// ErrInvalidInput covers malformed call arguments: a volume whose
// dimensionality does not match the bound Tables, a shape with fewer than
// two samples on some axis, or a step size that collapses an axis below two
// samples.
var ErrInvalidInput = errors.New("march: invalid input")

// ErrTypeTooNarrow indicates a Tables whose GeometryTable has fewer rows
// than the cell-type bitmask can address (2^(2^NDim)); it cannot represent
// every reachable cell type.
var ErrTypeTooNarrow = errors.New("march: geometry table too narrow for cell type range")

// ErrInvalidTable indicates an internally inconsistent Tables: mismatched
// EdgeDelta/EdgeDirection lengths, an EdgeDirection value outside the axis
// range, a geometry row whose length is not a multiple of
// VerticesPerSimplex, or a geometry cell referencing an edge number that
// does not exist.
var ErrInvalidTable = errors.New("march: invalid tables")

// ErrMissingVertex indicates the index remapper was asked to resolve an
// edge id that the intersect finder never produced — a geometry table
// referencing a cell-local edge that, for the crossing cell, never
// actually crossed the iso level.
var ErrMissingVertex = errors.New("march: geometry references a missing vertex")
