package hint

import (
	"context"
	"fmt"

	"svw.info/sudokit/internal/domain"
)

// Singles suggests naked singles: empty cells whose row, column, and box
// already rule out every symbol but one.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first naked single in row-major order.
func (h *Singles) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	cells := b.Cells()
	for y := 0; y < domain.Size; y++ {
		for x := 0; x < domain.Size; x++ {
			if cells[y][x] != domain.Empty {
				continue
			}
			v, ok := soleCandidate(&cells, x, y)
			if !ok {
				continue
			}
			return domain.Hint{
				Message: fmt.Sprintf("Single: only %s fits here", v),
				Cells:   []domain.CellCoord{{Row: y, Col: x}},
				Symbol:  v,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

// soleCandidate reports the only symbol allowed at (x, y), if exactly one is.
func soleCandidate(cells *[domain.Size][domain.Size]domain.Symbol, x, y int) (domain.Symbol, bool) {
	var used uint16
	for i := 0; i < domain.Size; i++ {
		used |= 1 << cells[y][i]
		used |= 1 << cells[i][x]
	}
	bx, by := domain.BoxOf(x, y)
	for dy := 0; dy < domain.BoxSize; dy++ {
		for dx := 0; dx < domain.BoxSize; dx++ {
			used |= 1 << cells[by*domain.BoxSize+dy][bx*domain.BoxSize+dx]
		}
	}
	var last domain.Symbol
	count := 0
	for v := domain.Symbol(1); v <= domain.Size; v++ {
		if used&(1<<v) == 0 {
			last = v
			count++
			if count > 1 {
				return domain.Empty, false
			}
		}
	}
	return last, count == 1
}
