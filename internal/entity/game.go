package entity

import (
	"errors"
	"fmt"
	"math/rand"
)

// Game states. A game leaves StateInProgress exactly once and never returns.
const (
	StateInProgress = "in_progress"
	StateComplete   = "complete"
	StateDraw       = "draw"
)

var (
	ErrBoardTooSmall = errors.New("board size must be at least 3")
	ErrOutOfRange    = errors.New("coordinate out of range")
)

// Game owns the board and both ends of the state machine. It is the only
// entity that transitions state.
type Game struct {
	Size          int
	Board         []*Square
	State         string
	Winner        string
	SquaresPlayed int
}

// NewGame builds an empty size×size board, addressable by CoordinateKey.
func NewGame(size int) (*Game, error) {
	if size < 3 {
		return nil, fmt.Errorf("%w: %d", ErrBoardTooSmall, size)
	}

	board := make([]*Square, 0, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			board = append(board, &Square{Row: row, Col: col})
		}
	}

	return &Game{
		Size:  size,
		Board: board,
		State: StateInProgress,
	}, nil
}

// CoordinateKey flattens row,col into the board slice offset.
func (that *Game) CoordinateKey(row, col int) int {
	return that.Size*row + col
}

// Square returns the square at row,col. Coordinates outside [0,size) come back
// as ErrOutOfRange; the caller decides how to recover, the game never does.
func (that *Game) Square(row, col int) (*Square, error) {
	if row < 0 || row >= that.Size || col < 0 || col >= that.Size {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, row, col)
	}
	return that.Board[that.CoordinateKey(row, col)], nil
}

// Occupy marks row,col and bumps the played counter. Callers are expected to
// have checked IsPlayed first; occupying a played square again is a contract
// violation, not a recoverable error.
func (that *Game) Occupy(row, col int, marker string) error {
	square, err := that.Square(row, col)
	if err != nil {
		return err
	}

	square.Mark = marker
	that.SquaresPlayed++

	return nil
}

// IsPlayed reports whether the square at row,col already carries a mark.
func (that *Game) IsPlayed(row, col int) bool {
	square, err := that.Square(row, col)
	if err != nil {
		return false
	}
	return square.IsMarked()
}

// SquaresAvailable reports whether any square is still open.
func (that *Game) SquaresAvailable() bool {
	return that.SquaresPlayed < that.Size*that.Size
}

// Complete finishes the game with the given outcome and optional winner.
// Terminal states are absorbing: completing an already finished game is a no-op.
func (that *Game) Complete(outcome, winner string) {
	if that.State != StateInProgress {
		return
	}

	that.State = outcome
	that.Winner = winner
}

func (that *Game) IsInProgress() bool {
	return that.State == StateInProgress
}

func (that *Game) IsComplete() bool {
	return that.State == StateComplete
}

func (that *Game) IsDraw() bool {
	return that.State == StateDraw
}

// AvailableCorner picks an unoccupied corner uniformly at random. The second
// return is false once all four corners are taken.
func (that *Game) AvailableCorner() (*Square, bool) {
	last := that.Size - 1
	corners := [4][2]int{{0, 0}, {0, last}, {last, 0}, {last, last}}

	open := make([]*Square, 0, len(corners))
	for _, corner := range corners {
		square := that.Board[that.CoordinateKey(corner[0], corner[1])]
		if !square.IsMarked() {
			open = append(open, square)
		}
	}

	return pickRandom(open)
}

// AvailableEdge picks an unoccupied non-corner boundary square uniformly at
// random. The second return is false once every such square is taken.
func (that *Game) AvailableEdge() (*Square, bool) {
	var open []*Square
	for _, square := range that.Board {
		if that.IsEdge(square) && !square.IsMarked() {
			open = append(open, square)
		}
	}

	return pickRandom(open)
}

// AvailableCenter picks an unoccupied interior square uniformly at random,
// interior meaning both coordinates strictly between 0 and size-1.
func (that *Game) AvailableCenter() (*Square, bool) {
	var open []*Square
	for row := 1; row < that.Size-1; row++ {
		for col := 1; col < that.Size-1; col++ {
			square := that.Board[that.CoordinateKey(row, col)]
			if !square.IsMarked() {
				open = append(open, square)
			}
		}
	}

	return pickRandom(open)
}

// AvailableSquare picks any unoccupied square uniformly at random.
func (that *Game) AvailableSquare() (*Square, bool) {
	var open []*Square
	for _, square := range that.Board {
		if !square.IsMarked() {
			open = append(open, square)
		}
	}

	return pickRandom(open)
}

func pickRandom(open []*Square) (*Square, bool) {
	if len(open) == 0 {
		return nil, false
	}
	return open[rand.Intn(len(open))], true //nolint: gosec // it's ok
}
