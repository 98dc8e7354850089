package morton

import "golang.org/x/exp/slices"

// SortZ16 sorts 8-bit coordinate pairs in place into Z-order, the
// traversal order implied by ToZ16.
func SortZ16(points [][2]uint8) {
	slices.SortFunc(points, func(a, b [2]uint8) int {
		return int(ToZ16(uint32(a[0]), uint32(a[1]))) - int(ToZ16(uint32(b[0]), uint32(b[1])))
	})
}
