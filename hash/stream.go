package hash

// Stream derives the seed of the n-th random stream of seed. Distinct n give
// independent-looking seeds, so work split by n stays reproducible regardless of
// the order or the parallelism it runs with.
func Stream(seed int64, n uint32) int64 {
	lo := Hash(uint32(seed), n, 0xffffffff)
	hi := Hash(uint32(uint64(seed)>>32)^lo, n+0x9e3779b9, 0xffffffff)
	return int64(uint64(hi)<<32 | uint64(lo))
}
