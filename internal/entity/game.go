package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	ResultTie = "-"
)

// Game is a human versus engine session.
type Game struct {
	ID        string `json:"id"`
	Board     Board  `json:"board"`
	Turn      Player `json:"player_turn,omitempty"`
	Winner    string `json:"winner"`
	Status    string `json:"status"`
	HumanMark Player `json:"human_mark"`
	BotMark   Player `json:"bot_mark"`
	History   []Move `json:"history,omitempty"`
}

func NewGame(id string, human Player) *Game {
	return &Game{
		ID:        id,
		Board:     Initial(),
		Turn:      PlayerX,
		Status:    StatusOngoing,
		HumanMark: human,
		BotMark:   human.Opponent(),
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// IsBotTurn reports whether the engine should move next.
func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Turn == that.BotMark
}
