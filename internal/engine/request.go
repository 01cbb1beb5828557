package engine

// MoveRequest tags a move as either an explicit placement (a human move) or a
// request for the decision ladder to choose. Use the constructors; the zero
// value is an explicit move at (0,0).
type MoveRequest struct {
	row, col  int
	automated bool
}

// ExplicitMove requests a placement at row,col.
func ExplicitMove(row, col int) MoveRequest {
	return MoveRequest{row: row, col: col}
}

// AutomatedMove asks the decision ladder to pick the square.
func AutomatedMove() MoveRequest {
	return MoveRequest{automated: true}
}
