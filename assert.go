//go:build !mortoncheck

package morton

// assertZero compiles to nothing in regular builds, keeping the
// deinterleave paths branch-free. The mortoncheck build tag swaps in a
// checked version.
func assertZero(uint32, uint32) {}
