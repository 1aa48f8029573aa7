package fake

import (
	mathrand "math/rand/v2"
)

// intN returns a random int in [0, n) using rng if non-nil, otherwise the
// global math/rand/v2 source.
func intN(rng *mathrand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	if rng != nil {
		return rng.IntN(n)
	}
	return mathrand.IntN(n)
}

// between returns a random int in [lo, hi). hi <= lo yields lo.
func between(rng *mathrand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + intN(rng, hi-lo)
}

func pick(rng *mathrand.Rand, list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[intN(rng, len(list))]
}

// rngReader adapts a PRNG to io.Reader so that libraries expecting an
// entropy source (uuid) draw from the seeded stream.
type rngReader struct {
	rng *mathrand.Rand
}

func (r rngReader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); {
		v := r.rng.Uint64()
		for j := 0; j < 8 && i < len(p); j++ {
			p[i] = byte(v)
			v >>= 8
			i++
		}
	}
	return len(p), nil
}
