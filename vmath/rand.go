package vmath

import "math"

// FastRand is a xorshift64 generator, not safe for concurrent use
// Every consumer receives its instance explicitly; there is no package-level source
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator, zero seed is remapped since xorshift state must be non-zero
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	r := &FastRand{state: seed}
	// Low-entropy seeds (small integers) produce correlated first outputs
	for i := 0; i < 8; i++ {
		r.Next()
	}
	return r
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), 0 for n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Bool returns true with probability p, p outside [0, 1] saturates
func (r *FastRand) Bool(p float64) bool {
	if p <= 0 || math.IsNaN(p) {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

// Sample picks min(k, n) distinct indices from [0, n) using reservoir sampling
// Result order is unspecified
func (r *FastRand) Sample(n, k int) []int {
	if k <= 0 || n <= 0 {
		return nil
	}
	if k > n {
		k = n
	}

	reservoir := make([]int, k)
	for i := range reservoir {
		reservoir[i] = i
	}
	for i := k; i < n; i++ {
		if j := r.Intn(i + 1); j < k {
			reservoir[j] = i
		}
	}
	return reservoir
}
