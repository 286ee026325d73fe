// Package hash implements the fast modular hash used to derive random streams.
package hash

// Hash mixes n with salt s and reduces the result into [0, max).
func Hash(n uint32, s uint32, max uint32) uint32 {
	var m = uint32(n) - uint32(s)

	// xor shift with prime coefficients
	m ^= m << 2
	m ^= m << 3
	m ^= m >> 5
	m ^= m >> 7
	m ^= m << 11
	m ^= m << 13
	m ^= m >> 17
	m ^= m << 19

	m += s

	// multiply shift instead of modulo
	// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
	return uint32((uint64(m) * uint64(max)) >> 32)
}
