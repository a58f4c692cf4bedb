// Package march is the dimension-agnostic marching engine.
//
// What: five stages — IntersectFinder, CellTypeClassifier,
// AmbiguityResolver, GeometryLookup, IndexRemapper — bound together by a
// *Tables value and driven through Tables.March. Nothing in this package
// knows what "squares", "triangles", or "cubes" mean; those live in their
// own packages as a *Tables plus a thin wrapper function.
//
// Why: the marching-cubes/-squares/-triangles family of algorithms share
// one structure (classify a cell by corner sign, look up its crossing
// pattern in a table, dedup vertices by an implicit edge id) and differ
// only in their tables. Factoring the structure out once means adding a
// new bound operation is "write a table", not "write an algorithm".
//
// Complexity: O(N) in the number of grid cells for every stage; no stage
// allocates more than O(crossings) or O(cells) transient state. There is
// no recursion and no unbounded work per cell.
//
// Options: WithInterpolation, WithStepSize, WithResolveAmbiguous,
// WithDenseRemapThreshold. All are functional options over Tables.March's
// variadic Option parameter; none have observable effect beyond the single
// call they're passed to.
//
// Errors: ErrInvalidInput, ErrTypeTooNarrow, ErrInvalidTable,
// ErrMissingVertex — see errors.go. All are sentinel errors matched with
// errors.Is; none of them leave partial output behind; a failed March call
// always returns a zero Vertices/Geometry alongside the error.
package march
