package solver

import "svw.info/sudokit/internal/domain"

// BacktrackingSolver is a straightforward recursive solver kept as an
// alternative engine to CandidateSolver. It tries symbols in ascending order
// at the first empty cell in row-major order.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func isAllowed(g *[domain.Size][domain.Size]domain.Symbol, x, y int, v domain.Symbol) bool {
	for i := 0; i < domain.Size; i++ {
		if g[y][i] == v || g[i][x] == v {
			return false
		}
	}
	bx, by := domain.BoxOf(x, y)
	for dy := 0; dy < domain.BoxSize; dy++ {
		for dx := 0; dx < domain.BoxSize; dx++ {
			if g[by*domain.BoxSize+dy][bx*domain.BoxSize+dx] == v {
				return false
			}
		}
	}
	return true
}

func findEmpty(g *[domain.Size][domain.Size]domain.Symbol) (x, y int, ok bool) {
	for y := 0; y < domain.Size; y++ {
		for x := 0; x < domain.Size; x++ {
			if g[y][x] == domain.Empty {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
