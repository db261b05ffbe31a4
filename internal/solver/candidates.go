package solver

import (
	"math/bits"

	"svw.info/sudokit/internal/domain"
)

// candidateSet is a bitmask of the symbols still possible for one cell,
// bit v (1..9) meaning symbol v remains a candidate.
type candidateSet uint16

// fullSet has all nine symbols as candidates.
const fullSet candidateSet = 0b11_1111_1110

func singleton(v domain.Symbol) candidateSet { return 1 << v }

func (s candidateSet) has(v domain.Symbol) bool { return s&(1<<v) != 0 }

func (s candidateSet) count() int { return bits.OnesCount16(uint16(s)) }

// single returns the sole remaining candidate, if exactly one remains.
func (s candidateSet) single() (domain.Symbol, bool) {
	if s.count() != 1 {
		return domain.Empty, false
	}
	return domain.Symbol(bits.TrailingZeros16(uint16(s))), true
}

// candidates holds one candidate set per cell, indexed row-major
// (i = y*9 + x). It is a value type: copying it before a search branch is a
// plain array copy, which keeps branches fully independent.
type candidates [domain.Cells]candidateSet

// peers maps each cell to the 20 distinct cells sharing its row, column,
// or box.
var peers [domain.Cells][]int

func init() {
	for i := 0; i < domain.Cells; i++ {
		x, y := i%domain.Size, i/domain.Size
		bx, by := domain.BoxOf(x, y)
		var seen [domain.Cells]bool
		for k := 0; k < domain.Size; k++ {
			seen[y*domain.Size+k] = true // row
			seen[k*domain.Size+x] = true // column
		}
		for dy := 0; dy < domain.BoxSize; dy++ {
			for dx := 0; dx < domain.BoxSize; dx++ {
				seen[(by*domain.BoxSize+dy)*domain.Size+bx*domain.BoxSize+dx] = true
			}
		}
		seen[i] = false
		for j := 0; j < domain.Cells; j++ {
			if seen[j] {
				peers[i] = append(peers[i], j)
			}
		}
	}
}

// assign collapses cell i to the single candidate v and propagates the
// removal through peers with a worklist: every cell that collapses to one
// candidate in turn has that candidate removed from its own peers. It
// reports false as soon as any cell is left with no candidates, in which
// case the receiver holds a dead partial state and must be discarded.
func (c *candidates) assign(i int, v domain.Symbol) bool {
	c[i] = singleton(v)
	queue := make([]int, 0, domain.Size)
	queue = append(queue, i)
	for len(queue) > 0 {
		j := queue[0]
		queue = queue[1:]
		val, ok := c[j].single()
		if !ok {
			continue
		}
		for _, p := range peers[j] {
			if !c[p].has(val) {
				continue
			}
			c[p] &^= singleton(val)
			switch c[p].count() {
			case 0:
				return false
			case 1:
				queue = append(queue, p)
			}
		}
	}
	return true
}

// newCandidates runs the propagation phase: every cell starts with all nine
// candidates, then each given collapses its cell and sweeps its peers.
// Contradictory givens surface as ErrContradiction.
func newCandidates(b *domain.Board) (candidates, error) {
	var c candidates
	for i := range c {
		c[i] = fullSet
	}
	cells := b.Cells()
	for y := 0; y < domain.Size; y++ {
		for x := 0; x < domain.Size; x++ {
			v := cells[y][x]
			if v == domain.Empty {
				continue
			}
			if !c.assign(y*domain.Size+x, v) {
				return c, ErrContradiction
			}
		}
	}
	return c, nil
}

// board materializes the candidate state: cells with a single candidate take
// that symbol, all others stay empty. The result is a lax board; callers
// check validity themselves.
func (c *candidates) board() *domain.Board {
	buf := make([]byte, domain.Cells)
	for i := 0; i < domain.Cells; i++ {
		if v, ok := c[i].single(); ok {
			buf[i] = v.Char()
		} else {
			buf[i] = domain.EmptyChar
		}
	}
	b, err := domain.FromSymbolsLax(string(buf))
	if err != nil {
		// unreachable: buf only ever holds '.' and '1'-'9'
		panic(err)
	}
	return b
}
