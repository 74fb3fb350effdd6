package random

import (
	mathrand "math/rand/v2"
)

// intN returns a random int in [0, n) using the seeded source if one is
// configured, otherwise the global math/rand/v2 source. Draws from the
// seeded source are serialized, so a Random may be shared.
func (r *Random) intN(n int) int {
	if n <= 0 {
		return 0
	}
	if r.rng != nil {
		r.rngMu.Lock()
		defer r.rngMu.Unlock()
		return r.rng.IntN(n)
	}
	return mathrand.IntN(n)
}

// int64N is intN for spans that need 64 bits.
func (r *Random) int64N(n int64) int64 {
	if n <= 0 {
		return 0
	}
	if r.rng != nil {
		r.rngMu.Lock()
		defer r.rngMu.Unlock()
		return r.rng.Int64N(n)
	}
	return mathrand.Int64N(n)
}

// uint64 returns 64 random bits.
func (r *Random) uint64() uint64 {
	if r.rng != nil {
		r.rngMu.Lock()
		defer r.rngMu.Unlock()
		return r.rng.Uint64()
	}
	return mathrand.Uint64()
}

// float64 returns a random float64 in [0, 1).
func (r *Random) float64() float64 {
	if r.rng != nil {
		r.rngMu.Lock()
		defer r.rngMu.Unlock()
		return r.rng.Float64()
	}
	return mathrand.Float64()
}

// between returns a random int in [min, max]; the bounds may be given in
// either order.
func (r *Random) between(min, max int) int {
	if min > max {
		min, max = max, min
	}
	span := int64(max) - int64(min) + 1
	if span <= 0 {
		return int(r.uint64())
	}
	return min + int(r.int64N(span))
}

// Reader returns an io.Reader over the same stream. It feeds UUID
// generation so seeded runs produce reproducible identifiers.
func (r *Random) Reader() *ByteReader {
	return &ByteReader{r: r}
}

// ByteReader reads random bytes from a Random.
type ByteReader struct {
	r *Random
}

func (b *ByteReader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); {
		v := b.r.uint64()
		for j := 0; j < 8 && i < len(p); j++ {
			p[i] = byte(v >> (8 * j))
			i++
		}
	}
	return len(p), nil
}
