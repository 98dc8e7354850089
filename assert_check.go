//go:build mortoncheck

package morton

import "fmt"

// assertZero panics when v has bits set in the forbidden mask, i.e. when a
// caller violates a documented width precondition.
func assertZero(v, forbidden uint32) {
	if v&forbidden != 0 {
		panic(fmt.Errorf(`morton: input %#x has set bits in %#x`, v, forbidden))
	}
}
