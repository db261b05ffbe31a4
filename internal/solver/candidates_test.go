package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokit/internal/domain"
)

const givens = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func TestPeerTable(t *testing.T) {
	for i := 0; i < domain.Cells; i++ {
		require.Len(t, peers[i], 20, "cell %d", i)
		seen := map[int]bool{}
		for _, p := range peers[i] {
			assert.NotEqual(t, i, p, "cell %d lists itself as a peer", i)
			assert.False(t, seen[p], "cell %d lists peer %d twice", i, p)
			seen[p] = true
		}
	}
	// peer relation is symmetric
	for i := 0; i < domain.Cells; i++ {
		for _, p := range peers[i] {
			found := false
			for _, q := range peers[p] {
				if q == i {
					found = true
					break
				}
			}
			assert.True(t, found, "peer relation not symmetric for %d/%d", i, p)
		}
	}
}

func TestCandidateSet(t *testing.T) {
	assert.Equal(t, 9, fullSet.count())
	for v := domain.Symbol(1); v <= domain.Size; v++ {
		assert.True(t, fullSet.has(v))
	}

	s := singleton(4)
	assert.Equal(t, 1, s.count())
	v, ok := s.single()
	require.True(t, ok)
	assert.Equal(t, domain.Symbol(4), v)

	_, ok = fullSet.single()
	assert.False(t, ok)
}

func TestNewCandidatesCollapsesGivens(t *testing.T) {
	b, err := domain.FromSymbols(givens)
	require.NoError(t, err)
	c, err := newCandidates(b)
	require.NoError(t, err)

	cells := b.Cells()
	for y := 0; y < domain.Size; y++ {
		for x := 0; x < domain.Size; x++ {
			if cells[y][x] == domain.Empty {
				continue
			}
			v, ok := c[y*domain.Size+x].single()
			require.True(t, ok, "given at (%d,%d) not collapsed", x, y)
			assert.Equal(t, cells[y][x], v)
		}
	}
}

func TestPropagationIdempotent(t *testing.T) {
	b, err := domain.FromSymbols(givens)
	require.NoError(t, err)
	first, err := newCandidates(b)
	require.NoError(t, err)
	second, err := newCandidates(b)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNewCandidatesContradiction(t *testing.T) {
	// two 5s in the top row
	b, err := domain.FromSymbolsLax("55" + givens[2:])
	require.NoError(t, err)
	_, err = newCandidates(b)
	assert.ErrorIs(t, err, ErrContradiction)
}

func TestAssignPrunesPeers(t *testing.T) {
	var c candidates
	for i := range c {
		c[i] = fullSet
	}
	require.True(t, c.assign(0, 5))
	for _, p := range peers[0] {
		assert.False(t, c[p].has(5), "peer %d kept the assigned symbol", p)
		assert.Equal(t, 8, c[p].count())
	}
}

func TestMaterializeBoard(t *testing.T) {
	b, err := domain.FromSymbols(givens)
	require.NoError(t, err)
	c, err := newCandidates(b)
	require.NoError(t, err)
	m := c.board()
	assert.True(t, m.IsValid())

	// every given survives materialization
	cells, out := b.Cells(), m.Cells()
	for y := 0; y < domain.Size; y++ {
		for x := 0; x < domain.Size; x++ {
			if cells[y][x] != domain.Empty {
				assert.Equal(t, cells[y][x], out[y][x])
			}
		}
	}
}
