package domain

import "fmt"

// Board geometry. Boxes are the 3x3 sub-grids.
const (
	Size    = 9
	BoxSize = 3
	Cells   = Size * Size
)

// EmptyChar is the serialized form of an empty cell.
const EmptyChar = '.'

// Symbol is a single cell value: Empty or 1..9.
type Symbol uint8

// Empty marks a cell with no symbol placed.
const Empty Symbol = 0

// ParseSymbol converts a serialized character into a Symbol.
func ParseSymbol(c byte) (Symbol, error) {
	if c == EmptyChar {
		return Empty, nil
	}
	if c >= '1' && c <= '9' {
		return Symbol(c - '0'), nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrBadSymbol, c)
}

// Char returns the serialized character for s.
func (s Symbol) Char() byte {
	if s == Empty {
		return EmptyChar
	}
	return '0' + byte(s)
}

func (s Symbol) String() string { return string(s.Char()) }

// Valid reports whether s is Empty or in 1..9.
func (s Symbol) Valid() bool { return s <= Size }
