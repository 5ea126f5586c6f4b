package entity

// MoveValue is the exact minimax value reached by playing Move.
type MoveValue struct {
	Move  Move      `json:"move"`
	Value GameValue `json:"value"`
}

// Analysis describes a solved position.
type Analysis struct {
	Board    Board       `json:"board"`
	Turn     Player      `json:"turn,omitempty"`
	Terminal bool        `json:"terminal"`
	Winner   Player      `json:"winner,omitempty"`
	Value    GameValue   `json:"value"`
	Move     *Move       `json:"move,omitempty"`
	Moves    []MoveValue `json:"moves,omitempty"`
}

// HasMove reports whether the analysis carries a move to play.
func (that *Analysis) HasMove() bool {
	return that.Move != nil
}

// Playout is a finished engine versus engine game.
type Playout struct {
	Moves  []Move    `json:"moves"`
	Board  Board     `json:"board"`
	Value  GameValue `json:"value"`
	Winner Player    `json:"winner,omitempty"`
}
