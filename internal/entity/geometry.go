package entity

// IsCorner reports whether the square sits on one of the four board corners.
func (that *Game) IsCorner(square *Square) bool {
	last := that.Size - 1
	return (square.Row == 0 || square.Row == last) && (square.Col == 0 || square.Col == last)
}

// IsEdge reports whether the square is a boundary cell that is not a corner:
// exactly one coordinate on the boundary, the other strictly inside.
func (that *Game) IsEdge(square *Square) bool {
	return that.IsAnyEdge(square) && !that.IsCorner(square)
}

// IsAnyEdge reports whether the square sits anywhere on the boundary,
// corner or not.
func (that *Game) IsAnyEdge(square *Square) bool {
	last := that.Size - 1
	return square.Row == 0 || square.Row == last || square.Col == 0 || square.Col == last
}

// The directed edge checks look only at the relevant fixed coordinate, so a
// corner satisfies two of them at once.

func (that *Game) IsTopEdge(square *Square) bool {
	return square.Row == 0
}

func (that *Game) IsBottomEdge(square *Square) bool {
	return square.Row == that.Size-1
}

func (that *Game) IsLeftEdge(square *Square) bool {
	return square.Col == 0
}

func (that *Game) IsRightEdge(square *Square) bool {
	return square.Col == that.Size-1
}
