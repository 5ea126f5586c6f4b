package entity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Size is the side length of the grid.
const Size = 3

// Cell is the state of one square of the grid.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

// String returns the mark as it is shown to clients, empty cells render as "".
func (c Cell) String() string {
	switch c {
	case CellX:
		return PlayerX.String()
	case CellO:
		return PlayerO.String()
	default:
		return ""
	}
}

func (c Cell) symbol() byte {
	switch c {
	case CellX:
		return 'X'
	case CellO:
		return 'O'
	default:
		return '.'
	}
}

// Player is the side to move. It is never stored, only derived from a Board.
type Player uint8

const (
	PlayerX Player = iota + 1
	PlayerO
)

func (p Player) String() string {
	switch p {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Mark returns the cell value this player writes.
func (p Player) Mark() Cell {
	if p == PlayerO {
		return CellO
	}
	return CellX
}

func (p Player) Opponent() Player {
	if p == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// ParsePlayer accepts "X" or "O" in any case.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return 0, fmt.Errorf("unknown player mark %q", s)
	}
}

func (p Player) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Player) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("player must be a string: %w", err)
	}

	if s == "" {
		*p = 0
		return nil
	}

	parsed, err := ParsePlayer(s)
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}

// GameValue is the outcome of a position from X's point of view.
type GameValue int8

const (
	ValueOWins GameValue = -1
	ValueDraw  GameValue = 0
	ValueXWins GameValue = 1
)

func (v GameValue) String() string {
	switch v {
	case ValueXWins:
		return "X wins"
	case ValueOWins:
		return "O wins"
	default:
		return "draw"
	}
}

// Move is a (row, col) coordinate on the grid.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MoveFromIndex converts a row-major cell index into a Move.
func MoveFromIndex(i int) Move {
	return Move{Row: i / Size, Col: i % Size}
}

// Index returns the row-major cell index of the move.
func (m Move) Index() int {
	return m.Row*Size + m.Col
}

// InBounds reports whether both coordinates lie on the grid.
func (m Move) InBounds() bool {
	return m.Row >= 0 && m.Row < Size && m.Col >= 0 && m.Col < Size
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// Board is the 3x3 grid in row-major order. It is a value type: assigning
// or passing a Board copies every cell.
type Board [Size * Size]Cell

// Initial returns the empty board.
func Initial() Board {
	return Board{}
}

// Cell returns the cell under m. m must be in bounds.
func (b Board) Cell(m Move) Cell {
	return b[m.Index()]
}

// With returns a copy of b where the cell under m holds c.
func (b Board) With(m Move, c Cell) Board {
	b[m.Index()] = c
	return b
}

// Count returns the number of cells equal to c.
func (b Board) Count(c Cell) int {
	n := 0
	for _, cell := range b {
		if cell == c {
			n++
		}
	}
	return n
}

// Key is the compact form used as a storage key, e.g. "XO.|.X.|..O".
func (b Board) Key() string {
	var sb strings.Builder
	sb.Grow(len(b) + Size - 1)

	for i, cell := range b {
		if i > 0 && i%Size == 0 {
			sb.WriteByte('|')
		}
		sb.WriteByte(cell.symbol())
	}

	return sb.String()
}

func (b Board) String() string {
	return b.Key()
}

// Grid renders the board as three lines for terminal output.
func (b Board) Grid() string {
	var sb strings.Builder

	for row := 0; row < Size; row++ {
		if row > 0 {
			sb.WriteString("\n---+---+---\n")
		}
		for col := 0; col < Size; col++ {
			if col > 0 {
				sb.WriteByte('|')
			}
			sb.WriteByte(' ')
			c := b.Cell(Move{Row: row, Col: col})
			if c == CellEmpty {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte(c.symbol())
			}
			sb.WriteByte(' ')
		}
	}

	return sb.String()
}

// ParseBoard reads nine cells in row-major order. X and O are marks, any of
// ".-_ " is empty. Newlines, tabs and '|' or '/' row separators are skipped.
func ParseBoard(s string) (Board, error) {
	var (
		board Board
		n     int
	)

	for _, r := range s {
		var cell Cell
		switch r {
		case '\n', '\r', '\t', '|', '/':
			continue
		case 'X', 'x':
			cell = CellX
		case 'O', 'o':
			cell = CellO
		case '.', '-', '_', ' ':
			cell = CellEmpty
		default:
			return Board{}, fmt.Errorf("unexpected character %q in board", r)
		}

		if n == len(board) {
			return Board{}, fmt.Errorf("board has more than %d cells", len(board))
		}
		board[n] = cell
		n++
	}

	if n != len(board) {
		return Board{}, fmt.Errorf("board has %d cells, want %d", n, len(board))
	}

	return board, nil
}

// MarshalJSON encodes the board as nine strings: "X", "O" or "".
func (b Board) MarshalJSON() ([]byte, error) {
	var cells [Size * Size]string
	for i, cell := range b {
		cells[i] = cell.String()
	}
	return json.Marshal(cells)
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var cells []string
	if err := json.Unmarshal(data, &cells); err != nil {
		return fmt.Errorf("board must be an array of strings: %w", err)
	}

	if len(cells) != len(b) {
		return fmt.Errorf("board has %d cells, want %d", len(cells), len(b))
	}

	var board Board
	for i, cell := range cells {
		switch strings.ToUpper(strings.TrimSpace(cell)) {
		case "":
			board[i] = CellEmpty
		case "X":
			board[i] = CellX
		case "O":
			board[i] = CellO
		default:
			return fmt.Errorf("unexpected cell %q at index %d", cell, i)
		}
	}

	*b = board
	return nil
}
