package validator

import (
	"context"

	"svw.info/sudokit/internal/domain"
)

// FastValidator scans rows, columns, and boxes with per-unit bitmasks and
// reports the cells that repeat an earlier symbol.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	cells := b.Cells()
	conf := make([]domain.CellCoord, 0, 8)
	mark := func(seen *uint16, x, y int) {
		val := cells[y][x]
		if val == domain.Empty {
			return
		}
		bit := uint16(1) << val
		if *seen&bit != 0 {
			conf = append(conf, domain.CellCoord{Row: y, Col: x})
		}
		*seen |= bit
	}
	// rows
	for y := 0; y < domain.Size; y++ {
		var seen uint16
		for x := 0; x < domain.Size; x++ {
			mark(&seen, x, y)
		}
	}
	// columns
	for x := 0; x < domain.Size; x++ {
		var seen uint16
		for y := 0; y < domain.Size; y++ {
			mark(&seen, x, y)
		}
	}
	// boxes
	for by := 0; by < domain.BoxSize; by++ {
		for bx := 0; bx < domain.BoxSize; bx++ {
			var seen uint16
			for dy := 0; dy < domain.BoxSize; dy++ {
				for dx := 0; dx < domain.BoxSize; dx++ {
					mark(&seen, bx*domain.BoxSize+dx, by*domain.BoxSize+dy)
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
