package entity

// Direction tags the board line a path lies on. Every square sits on exactly
// one horizontal and one vertical line; the diagonals only pass through squares
// where row == col (Diagonal) or col == size-1-row (AntiDiagonal).
type Direction int

const (
	Horizontal Direction = iota
	Vertical
	Diagonal
	AntiDiagonal
)

func (that Direction) String() string {
	switch that {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	case AntiDiagonal:
		return "anti-diagonal"
	default:
		return "unknown"
	}
}

// Path is an ordered sequence of still-open squares on one potential winning
// line for one player. Its rank is the number of moves that player still needs
// to complete the line; a path that reaches rank 0 is removed by its owner,
// never kept around empty.
type Path struct {
	Direction Direction
	Squares   []*Square
}

func NewPath(direction Direction, squares []*Square) *Path {
	return &Path{Direction: direction, Squares: squares}
}

func (that *Path) Rank() int {
	return len(that.Squares)
}

func (that *Path) Contains(square *Square) bool {
	for _, member := range that.Squares {
		if member.Same(square) {
			return true
		}
	}
	return false
}

// Remove drops the square from the path, preserving the order of the rest.
func (that *Path) Remove(square *Square) {
	kept := that.Squares[:0]
	for _, member := range that.Squares {
		if !member.Same(square) {
			kept = append(kept, member)
		}
	}
	that.Squares = kept
}

func (that *Path) First() *Square {
	return that.Squares[0]
}

func (that *Path) Last() *Square {
	return that.Squares[len(that.Squares)-1]
}

// line is the carrier of a path in slope/intercept form, treating col as a
// function of row. Horizontal paths have a fixed row and no slope.
type line struct {
	fixedRow bool
	row      int
	m, b     int
}

func (that *Path) carrier(size int) line {
	switch that.Direction {
	case Horizontal:
		return line{fixedRow: true, row: that.First().Row}
	case Vertical:
		return line{m: 0, b: that.First().Col}
	case Diagonal:
		return line{m: 1, b: 0}
	default: // AntiDiagonal
		return line{m: -1, b: size - 1}
	}
}

// Intersect solves the two carrier lines for their crossing point. Parallel or
// identical lines have no crossing; neither do lines whose solution falls
// between cells (the two main diagonals of an even-sized board) or off the grid.
func (that *Path) Intersect(other *Path, size int) (int, int, bool) {
	a, b := that.carrier(size), other.carrier(size)

	switch {
	case a.fixedRow && b.fixedRow:
		return 0, 0, false
	case a.fixedRow:
		return onGrid(a.row, b.m*a.row+b.b, size)
	case b.fixedRow:
		return onGrid(b.row, a.m*b.row+a.b, size)
	case a.m == b.m:
		return 0, 0, false
	}

	num, den := b.b-a.b, a.m-b.m
	if num%den != 0 {
		return 0, 0, false
	}

	row := num / den
	return onGrid(row, a.m*row+a.b, size)
}

func onGrid(row, col, size int) (int, int, bool) {
	if row < 0 || row >= size || col < 0 || col >= size {
		return 0, 0, false
	}
	return row, col, true
}
