package domain

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a forced move found by a hinter.
type Hint struct {
	Message string      `json:"message,omitempty"`
	Cells   []CellCoord `json:"cells,omitempty"`
	Symbol  Symbol      `json:"symbol,omitempty"`
}

// Puzzle is a persisted sudoku with metadata. The board travels as its
// 81-character symbols string. CreatedAt is Unix seconds.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Board     *Board `json:"board"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

// PuzzleMeta is a lightweight listing entry. CreatedAt is Unix seconds.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
