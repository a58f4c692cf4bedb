// What: the triangle-split 2D marching operation. Pre-splitting every
// square cell along one diagonal sidesteps the saddle ambiguity marching
// squares needs an AmbiguityResolver for, at the cost of an extra vertex
// on the diagonal edge whenever a contour actually crosses it.
//
// Why: a second, ambiguity-free way to extract 2D contours, useful when a
// caller wants guaranteed-simple per-cell topology over squares' two
// saddle resolutions.
//
// Complexity: O(W*H) in the volume's sample count.
//
// Options: every march.Option applies except WithResolveAmbiguous, which
// has no effect (neither bound Tables has an AmbiguityResolver).
//
// Errors: propagates march's sentinel errors unchanged.
package triangles
