package domain

import "errors"

var (
	// ErrOutOfRange is returned for cell or unit indexes outside 0..8.
	ErrOutOfRange = errors.New("index out of range")

	// ErrBadSymbol is returned for characters other than '.' and '1'-'9'.
	ErrBadSymbol = errors.New("invalid symbol")

	// ErrBadLength is returned when a symbols string is not exactly 81 characters.
	ErrBadLength = errors.New("symbols must be a string of 81 characters")

	// ErrBadUnit is returned when a unit does not hold exactly 9 symbols.
	ErrBadUnit = errors.New("unit must hold exactly 9 symbols")

	// ErrConflict is returned by strict boards when an assignment would
	// duplicate a symbol within a row, column, or box.
	ErrConflict = errors.New("assignment conflicts with row, column, or box")

	// ErrInvalidBoard is returned when strict mode meets a board that
	// already contains duplicates.
	ErrInvalidBoard = errors.New("board is in an invalid state")
)
