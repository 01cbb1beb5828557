package entity

import "time"

// GameRecord is the archived form of a finished game.
type GameRecord struct {
	ID         string       `json:"id"`
	Size       int          `json:"size"`
	State      string       `json:"state"`
	Winner     string       `json:"winner,omitempty"`
	Moves      []MoveRecord `json:"moves"`
	FinishedAt time.Time    `json:"finished_at"`
}

// MoveRecord is a single move, stored in play order.
type MoveRecord struct {
	Marker string `json:"marker"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}
