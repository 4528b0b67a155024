package bitset

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/maxclique/mcerr"
)

const wordBits = 64

// maxWidth bounds the domain a Set may span. It is generous for any graph
// this suite's loaders can realistically produce (spec §6.2's size budget),
// and exists so a corrupt or adversarial input (e.g. a graph whose vertex
// count is far beyond what the exact solvers can search) fails fast with a
// clear error instead of driving an unbounded bitset allocation.
const maxWidth = 1 << 24

// Set is a dense bitmap over a fixed domain [0,n). The zero value is not
// usable; construct with New.
type Set struct {
	n     int
	words []uint64
}

// New allocates an all-clear Set over [0,n). n must be in [0, maxWidth].
func New(n int) (Set, error) {
	if n < 0 {
		return Set{}, fmt.Errorf("bitset: negative width %d: %w", n, mcerr.ErrInvalidInput)
	}
	if n > maxWidth {
		return Set{}, fmt.Errorf("bitset: width %d exceeds maximum %d: %w", n, maxWidth, mcerr.ErrResourceExhausted)
	}
	return Set{n: n, words: make([]uint64, wordCount(n))}, nil
}

func wordCount(n int) int { return (n + wordBits - 1) / wordBits }

// Len returns the domain size n this Set was constructed over.
func (s Set) Len() int { return s.n }

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	words := make([]uint64, len(s.words))
	copy(words, s.words)
	return Set{n: s.n, words: words}
}

// Test reports whether bit i is set. i must be in [0,n).
func (s Set) Test(i int) bool {
	return s.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// SetBit sets bit i.
func (s Set) SetBit(i int) {
	s.words[i/wordBits] |= 1 << uint(i%wordBits)
}

// ClearBit clears bit i.
func (s Set) ClearBit(i int) {
	s.words[i/wordBits] &^= 1 << uint(i%wordBits)
}

// ClearAll clears every bit without reallocating.
func (s Set) ClearAll() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// Popcount returns the number of set bits.
func (s Set) Popcount() int {
	c := 0
	for _, w := range s.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// None reports whether every bit is clear.
func (s Set) None() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// FirstSetBit returns the smallest set index and true, or (0, false) if s is
// empty. Deterministic: always the lowest index, used wherever the spec
// requires a "smallest vertex id" tie-break on a candidate set.
func (s Set) FirstSetBit() (int, bool) {
	for wi, w := range s.words {
		if w == 0 {
			continue
		}
		return wi*wordBits + bits.TrailingZeros64(w), true
	}
	return 0, false
}

// Iterate calls fn(i) for every set bit i, in ascending order.
func (s Set) Iterate(fn func(i int)) {
	for wi, w := range s.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			fn(wi*wordBits + tz)
			w &= w - 1 // clear lowest set bit
		}
	}
}

// Intersect sets dst = a & b. dst must have been allocated with the same
// width as a and b (the caller owns buffer reuse across recursion frames).
func Intersect(dst, a, b Set) {
	for i := range dst.words {
		dst.words[i] = a.words[i] & b.words[i]
	}
}

// Difference sets dst = a &^ b (a minus b).
func Difference(dst, a, b Set) {
	for i := range dst.words {
		dst.words[i] = a.words[i] &^ b.words[i]
	}
}

// Union sets dst = a | b.
func Union(dst, a, b Set) {
	for i := range dst.words {
		dst.words[i] = a.words[i] | b.words[i]
	}
}

// Complement sets dst = complement of a, restricted to the domain [0,n)
// (bits at index >= n in the final word are left clear, even though the
// word itself has spare high bits).
func Complement(dst, a Set) {
	n := a.n
	for i := range dst.words {
		dst.words[i] = ^a.words[i]
	}
	clearTrailing(dst, n)
}

func clearTrailing(s Set, n int) {
	if n%wordBits == 0 {
		return
	}
	last := wordCount(n) - 1
	if last < 0 || last >= len(s.words) {
		return
	}
	valid := uint(n % wordBits)
	s.words[last] &= (1 << valid) - 1
}
