// Package randomness isolates every source of randomness used to build a maze.
//
// Only two operations consume random numbers: the shuffle of the edge list
// before the spanning tree is built, and the tie-break when two sets are merged
// in the disjoint-set. Both go through Source, so tests can plug in a
// deterministic stub, and a seed fully determines the maze.
package randomness

import (
	"github.com/janpfeifer/mazeGo/internal/grid"
	"math/rand/v2"
)

// Source of randomness. *rand.Rand implements it.
type Source interface {
	// IntN returns a number in [0, n). It panics if n <= 0.
	IntN(n int) int

	// Shuffle pseudo-randomizes the order of n elements, using swap to exchange them.
	Shuffle(n int, swap func(i, j int))
}

// Assert *rand.Rand is a Source.
var _ Source = (*rand.Rand)(nil)

// New returns a deterministic Source for the given seed: a PCG generator on
// stream 0. The same seed always yields the same sequence.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// MaxRandomSeed is the upper bound (inclusive) for seeds drawn by RandomSeed.
const MaxRandomSeed = 1000

// RandomSeed draws a small seed in [0, MaxRandomSeed], easy to report and to type back in.
func RandomSeed() int64 {
	return rand.Int64N(MaxRandomSeed + 1)
}

// ChooseOne returns one of the candidates picked uniformly with rng.
func ChooseOne[T any](rng Source, candidates ...T) T {
	return candidates[rng.IntN(len(candidates))]
}

// ShuffleEdges returns a shuffled copy of edges. The input is not modified.
func ShuffleEdges(rng Source, edges []grid.Edge) []grid.Edge {
	shuffled := make([]grid.Edge, len(edges))
	copy(shuffled, edges)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// Fixed is a Source that never randomizes: IntN always returns Choice (clipped to n-1)
// and Shuffle keeps the original order. It is meant for tests and debugging.
type Fixed struct {
	Choice int
}

// Assert Fixed is a Source.
var _ Source = Fixed{}

// IntN implements Source.
func (f Fixed) IntN(n int) int {
	if n <= 0 {
		panic("randomness.Fixed.IntN: n must be positive")
	}
	return min(max(f.Choice, 0), n-1)
}

// Shuffle implements Source, and leaves the order untouched.
func (f Fixed) Shuffle(n int, swap func(i, j int)) {}
