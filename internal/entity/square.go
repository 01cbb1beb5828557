package entity

// Markers a square can carry. An empty mark means the square has not been played.
const (
	PlayerX   = "X"
	PlayerO   = "O"
	EmptyCell = ""
)

// Square is a single board cell. Its position is fixed when the board is built;
// only the mark changes, and it changes exactly once, when a player occupies it.
type Square struct {
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Mark string `json:"mark,omitempty"`
}

// Same reports whether two squares refer to the same board position. Marks are
// ignored: two squares with equal coordinates are the same square.
func (that *Square) Same(other *Square) bool {
	return other != nil && that.Row == other.Row && that.Col == other.Col
}

func (that *Square) IsMarked() bool {
	return that.Mark != EmptyCell
}
