package simulation

import "math/rand/v2"

// Rand is the randomness the generators draw from. *rand.Rand satisfies it,
// so tests can pass a seeded source.
type Rand interface {
	IntN(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

type globalRand struct{}

func (globalRand) IntN(n int) int                     { return rand.IntN(n) }
func (globalRand) Float64() float64                   { return rand.Float64() }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultRand is safe for concurrent use.
var DefaultRand Rand = globalRand{}

// NewSeededRand returns a deterministic source.
func NewSeededRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func pick[T any](r Rand, items []T) T {
	return items[r.IntN(len(items))]
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
