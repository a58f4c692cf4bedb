// What: the classic 2D marching-squares operation — iso-contour line
// segments from a 2D scalar Volume, wired into package march's pipeline via
// one bound *march.Tables.
//
// Why: marching squares is the 2D instance of the family march generalizes;
// this package is the thinnest possible binding (tables + one wrapper
// function) proving that generalization holds.
//
// Complexity: O(W*H) in the volume's sample count, same as march.Tables.March.
//
// Options: every march.Option applies; WithResolveAmbiguous controls
// whether the two saddle cell types get disambiguated by the face test
// (default true).
//
// Errors: propagates march's sentinel errors unchanged.
package squares
