// Package morton implements 2D Morton codes (Z-order curve encodings) for
// 8-bit and 16-bit coordinates. Sorting by Morton code linearizes 2D space
// while approximately preserving locality, which makes the codes useful as
// spatial hash keys and cache-friendly traversal orders.
//
// All functions are pure and run in a fixed number of shift/mask steps,
// with no data-dependent branching.
package morton

// ToZ32 interleaves the low 16 bits of x and y into a 32-bit Morton code:
// bit 2i of the code is bit i of x and bit 2i+1 is bit i of y. Bits above
// position 15 of either input are ignored.
func ToZ32(x, y uint32) uint32 {
	return spread16(x) | spread16(y)<<1
}

// spread16 inserts a zero bit before each of the low 16 bits of v.
func spread16(v uint32) uint32 {
	v &= 0x0000ffff             // 0000000000000000fedcba9876543210
	v = (v | v<<8) & 0x00ff00ff // 00000000fedcba980000000076543210
	v = (v | v<<4) & 0x0f0f0f0f // 0000fedc0000ba980000765400003210
	v = (v | v<<2) & 0x33333333 // 00fe00dc00ba00980076005400320010
	v = (v | v<<1) & 0x55555555 // 0f0e0d0c0b0a09080706050403020100
	return v
}

// ToZ16 interleaves the low 8 bits of x and y into a 16-bit Morton code.
// The code occupies the low 16 bits of the result, the rest is zero. Bits
// above position 7 of either input are ignored.
//
// Both coordinates travel through one 32-bit word, y in the high half.
// The xor rounds are equivalent to the or rounds in spread16 because the
// shifted copies never overlap the kept bit groups.
func ToZ16(x, y uint32) uint32 {
	j := (y&0xff)<<16 | x&0xff
	j = (j ^ j<<4) & 0x0f0f0f0f
	j = (j ^ j<<2) & 0x33333333
	j = (j ^ j<<1) & 0x55555555
	return j>>15 | j&0xffff
}

// FromZ16 is the inverse of ToZ16. Bits above position 15 of z must be
// zero; the output for any other input is unspecified (but never a panic
// or an error). Build with -tags mortoncheck to assert the precondition.
func FromZ16(z uint32) (x, y uint32) {
	assertZero(z, ^uint32(0xffff))
	j := (z>>1)<<16 | z          // odd (y) bits land on even positions of the high half
	j &= 0x55555555
	j = (j ^ j>>1) & 0x33333333
	j = (j ^ j>>2) & 0x0f0f0f0f
	j = (j ^ j>>4) & 0x00ff00ff
	return j & 0xff, j >> 16
}

// FromZ8 deinterleaves an 8-bit Morton code into its two 4-bit
// coordinates. Bits above position 7 of z must be zero; the output for any
// other input is unspecified. There is no matching 8-bit interleave here;
// callers construct such codes themselves, or get them as the per-lane
// halves handled by FromZ8x2.
//
// A single call costs about the same as FromZ8x2; prefer the latter
// whenever two codes are available at once.
func FromZ8(z uint32) (x, y uint32) {
	assertZero(z, ^uint32(0xff))
	j := (z>>1)<<8 | z
	j &= 0x00005555
	j = (j ^ j>>1) & 0x33333333
	j = (j ^ j>>2) & 0x0f0f0f0f
	return j & 0xf, j >> 8
}

// FromZ8x2 deinterleaves two independent 8-bit Morton codes, packed into
// the low and high 16-bit halves of z, in a single pass over both lanes.
// Bits 15 and 31 of z must be zero or the lanes contaminate each other.
// The x coordinates of both codes are returned packed into xs (low half's
// in bits [0:4), high half's in bits [16:20)) and the y coordinates
// likewise into ys.
func FromZ8x2(z uint32) (xs, ys uint32) {
	assertZero(z, 0x80008000)
	// clearing each lane's lowest bit makes the shared <<7 act as a
	// per-lane (z>>1)<<8
	j := (z&^0x00010001)<<7 | z
	j &= 0x55555555
	j = (j ^ j>>1) & 0x33333333
	j = (j ^ j>>2) & 0x0f0f0f0f
	return j & 0x000f000f, j >> 8 & 0x000f000f
}
