// What: the 3D marching-cubes operation, extracting a triangle mesh from
// a scalar volume at an iso-level using Lorensen & Cline's original
// 256-entry corner-pattern table.
//
// Why: the volumetric analogue of marching squares/triangles, the
// standard technique for turning a sampled scalar field into a surface
// mesh.
//
// Complexity: O(W*H*D) in the volume's sample count.
//
// Options: every march.Option applies; WithResolveAmbiguous has no
// effect, since the classic Lorensen table ships without a resolver and
// can produce the documented cross-face inconsistency on ambiguous
// cases (see SPEC_FULL.md design notes).
//
// Errors: propagates march's sentinel errors unchanged.
package cubes
