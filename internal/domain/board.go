package domain

import (
	"fmt"
	"strings"
)

// Board is a 9x9 sudoku grid. Cells are addressed by (x, y) where x is the
// column and y is the row, both 0-based with (0, 0) at the top left.
//
// A strict board rejects assignments that would duplicate a symbol within a
// row, column, or box, leaving the board unchanged on rejection. Strictness
// is on by default; disable it to stage arbitrary (possibly invalid) states.
type Board struct {
	cells  [Size][Size]Symbol // indexed [y][x]
	strict bool
}

// New returns an empty strict board.
func New() *Board { return &Board{strict: true} }

// FromSymbols builds a strict board from an 81-character symbols string in
// row-major order, '.' denoting an empty cell. Strings that describe an
// invalid board are rejected.
func FromSymbols(symbols string) (*Board, error) {
	b := New()
	if err := b.SetSymbols(symbols); err != nil {
		return nil, err
	}
	return b, nil
}

// FromSymbolsLax is FromSymbols without the validity check: the resulting
// board may contain duplicates and has strict mode disabled.
func FromSymbolsLax(symbols string) (*Board, error) {
	b := &Board{}
	if err := b.SetSymbols(symbols); err != nil {
		return nil, err
	}
	return b, nil
}

// Strict reports whether strict mode is enabled.
func (b *Board) Strict() bool { return b.strict }

// SetStrict toggles strict mode. Enabling it on an invalid board fails.
func (b *Board) SetStrict(strict bool) error {
	if strict && !b.IsValid() {
		return fmt.Errorf("cannot enable strict mode: %w", ErrInvalidBoard)
	}
	b.strict = strict
	return nil
}

// Value returns the symbol at (x, y).
func (b *Board) Value(x, y int) (Symbol, error) {
	if err := checkCoord(x, y); err != nil {
		return Empty, err
	}
	return b.cells[y][x], nil
}

// Set places v at (x, y). On a strict board an assignment that makes the
// board invalid is rejected with ErrConflict and the board is unchanged.
func (b *Board) Set(x, y int, v Symbol) error {
	if err := checkCoord(x, y); err != nil {
		return err
	}
	if !v.Valid() {
		return fmt.Errorf("%w: %d", ErrBadSymbol, v)
	}
	old := b.cells[y][x]
	b.cells[y][x] = v
	if b.strict && !b.IsValid() {
		b.cells[y][x] = old
		return ErrConflict
	}
	return nil
}

// Cells returns a copy of the grid, indexed [row][column].
func (b *Board) Cells() [Size][Size]Symbol { return b.cells }

// Symbols serializes all 81 cells in row-major order.
func (b *Board) Symbols() string {
	var sb strings.Builder
	sb.Grow(Cells)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			sb.WriteByte(b.cells[y][x].Char())
		}
	}
	return sb.String()
}

// SetSymbols replaces all 81 cells from a row-major symbols string. The board
// is left unchanged when the string is malformed or, on a strict board, when
// it describes an invalid state.
func (b *Board) SetSymbols(symbols string) error {
	if len(symbols) != Cells {
		return fmt.Errorf("%w: got %d", ErrBadLength, len(symbols))
	}
	var cells [Size][Size]Symbol
	for i := 0; i < Cells; i++ {
		v, err := ParseSymbol(symbols[i])
		if err != nil {
			return err
		}
		cells[i/Size][i%Size] = v
	}
	old := b.cells
	b.cells = cells
	if b.strict && !b.IsValid() {
		b.cells = old
		return fmt.Errorf("symbols describe an invalid board: %w", ErrInvalidBoard)
	}
	return nil
}

// Clear sets every cell to Empty.
func (b *Board) Clear() { b.cells = [Size][Size]Symbol{} }

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Row returns the 9 symbols of row y, left to right.
func (b *Board) Row(y int) ([]Symbol, error) {
	if y < 0 || y >= Size {
		return nil, fmt.Errorf("row %d: %w", y, ErrOutOfRange)
	}
	row := make([]Symbol, Size)
	copy(row, b.cells[y][:])
	return row, nil
}

// Column returns the 9 symbols of column x, top to bottom.
func (b *Board) Column(x int) ([]Symbol, error) {
	if x < 0 || x >= Size {
		return nil, fmt.Errorf("column %d: %w", x, ErrOutOfRange)
	}
	col := make([]Symbol, Size)
	for y := 0; y < Size; y++ {
		col[y] = b.cells[y][x]
	}
	return col, nil
}

// Box returns the 9 symbols of the box at (bx, by), both in 0..2, ordered
// left to right within each box row, top box row first.
func (b *Board) Box(bx, by int) ([]Symbol, error) {
	if bx < 0 || bx >= BoxSize || by < 0 || by >= BoxSize {
		return nil, fmt.Errorf("box (%d, %d): %w", bx, by, ErrOutOfRange)
	}
	box := make([]Symbol, 0, Size)
	for y := by * BoxSize; y < (by+1)*BoxSize; y++ {
		for x := bx * BoxSize; x < (bx+1)*BoxSize; x++ {
			box = append(box, b.cells[y][x])
		}
	}
	return box, nil
}

// BoxOf returns the box coordinates containing cell (x, y).
func BoxOf(x, y int) (bx, by int) { return x / BoxSize, y / BoxSize }

// Rows returns all 9 rows, top to bottom.
func (b *Board) Rows() [][]Symbol {
	out := make([][]Symbol, Size)
	for y := 0; y < Size; y++ {
		out[y], _ = b.Row(y)
	}
	return out
}

// Columns returns all 9 columns, left to right.
func (b *Board) Columns() [][]Symbol {
	out := make([][]Symbol, Size)
	for x := 0; x < Size; x++ {
		out[x], _ = b.Column(x)
	}
	return out
}

// Boxes returns all 9 boxes, left to right then top to bottom.
func (b *Board) Boxes() [][]Symbol {
	out := make([][]Symbol, 0, Size)
	for by := 0; by < BoxSize; by++ {
		for bx := 0; bx < BoxSize; bx++ {
			box, _ := b.Box(bx, by)
			out = append(out, box)
		}
	}
	return out
}

// IsValidUnit reports whether a 9-symbol unit is free of duplicate non-empty
// symbols. Units of the wrong length or with bad symbols are errors.
func IsValidUnit(unit []Symbol) (bool, error) {
	if len(unit) != Size {
		return false, fmt.Errorf("%w: got %d", ErrBadUnit, len(unit))
	}
	var seen uint16
	for _, s := range unit {
		if !s.Valid() {
			return false, fmt.Errorf("%w: %d", ErrBadSymbol, s)
		}
		if s == Empty {
			continue
		}
		bit := uint16(1) << s
		if seen&bit != 0 {
			return false, nil
		}
		seen |= bit
	}
	return true, nil
}

// IsCompleteUnit reports whether a unit holds all 9 symbols with no repeats.
func IsCompleteUnit(unit []Symbol) (bool, error) {
	ok, err := IsValidUnit(unit)
	if err != nil || !ok {
		return false, err
	}
	for _, s := range unit {
		if s == Empty {
			return false, nil
		}
	}
	return true, nil
}

// IsValid reports whether no row, column, or box contains a duplicate
// non-empty symbol. Incomplete boards can be valid.
func (b *Board) IsValid() bool {
	// rows
	for y := 0; y < Size; y++ {
		var seen uint16
		for x := 0; x < Size; x++ {
			if !unitMark(&seen, b.cells[y][x]) {
				return false
			}
		}
	}
	// columns
	for x := 0; x < Size; x++ {
		var seen uint16
		for y := 0; y < Size; y++ {
			if !unitMark(&seen, b.cells[y][x]) {
				return false
			}
		}
	}
	// boxes
	for by := 0; by < BoxSize; by++ {
		for bx := 0; bx < BoxSize; bx++ {
			var seen uint16
			for dy := 0; dy < BoxSize; dy++ {
				for dx := 0; dx < BoxSize; dx++ {
					if !unitMark(&seen, b.cells[by*BoxSize+dy][bx*BoxSize+dx]) {
						return false
					}
				}
			}
		}
	}
	return true
}

// unitMark records s in the seen bitmask, reporting false on a duplicate.
func unitMark(seen *uint16, s Symbol) bool {
	if s == Empty {
		return true
	}
	bit := uint16(1) << s
	if *seen&bit != 0 {
		return false
	}
	*seen |= bit
	return true
}

// IsFull reports whether no cell is Empty.
func (b *Board) IsFull() bool {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.cells[y][x] == Empty {
				return false
			}
		}
	}
	return true
}

// IsSolved reports whether the board is full and valid.
func (b *Board) IsSolved() bool { return b.IsFull() && b.IsValid() }

// String renders the board with box separators:
//
//	5 3 . | . 7 . | . . .
//	6 . . | 1 9 5 | . . .
//	. 9 8 | . . . | . 6 .
//	------+-------+------
//	...
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if x == 3 || x == 6 {
				sb.WriteString("| ")
			}
			sb.WriteByte(b.cells[y][x].Char())
		}
		if y < Size-1 {
			sb.WriteByte('\n')
			if y == 2 || y == 5 {
				sb.WriteString("------+-------+------\n")
			}
		}
	}
	return sb.String()
}

// MarshalJSON encodes the board as its 81-character symbols string.
func (b *Board) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.Symbols() + `"`), nil
}

// UnmarshalJSON decodes a symbols string. Validity is not enforced here so
// that in-progress or conflicting boards can travel over the API; callers
// that need a consistent board check IsValid themselves.
func (b *Board) UnmarshalJSON(data []byte) error {
	if len(data) != Cells+2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("board JSON must be a quoted 81-character string: %w", ErrBadLength)
	}
	nb, err := FromSymbolsLax(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	b.cells = nb.cells
	return nil
}

func checkCoord(x, y int) error {
	if x < 0 || x >= Size {
		return fmt.Errorf("x index %d: %w", x, ErrOutOfRange)
	}
	if y < 0 || y >= Size {
		return fmt.Errorf("y index %d: %w", y, ErrOutOfRange)
	}
	return nil
}
