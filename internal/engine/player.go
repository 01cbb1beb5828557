package engine

import (
	"fmt"
	"sort"

	"github.com/shaunduncan/tictactoe/internal/entity"
)

// Player owns one side's marker, the squares it has played so far (in play
// order) and its currently open win paths. The path list is kept sorted
// ascending by rank; the sort is stable so paths of equal rank keep their
// insertion order. A path never contains a square occupied by either side.
type Player struct {
	Marker      string
	Occupations []*entity.Square
	Paths       []*entity.Path
}

func NewPlayer(marker string) *Player {
	return &Player{Marker: marker}
}

// CheckWinningMove reports whether playing square completes one of this
// player's paths right now. Paths are sorted by rank, so the scan stops at the
// first path needing more than one move.
func (that *Player) CheckWinningMove(square *entity.Square) bool {
	for _, path := range that.Paths {
		if path.Rank() > 1 {
			return false
		}
		if path.Contains(square) {
			return true
		}
	}
	return false
}

func (that *Player) sortPaths() {
	sort.SliceStable(that.Paths, func(i, j int) bool {
		return that.Paths[i].Rank() < that.Paths[j].Rank()
	})
}

// Destrategize drops every path running through row,col. The opponent calls
// this as the first step of its own Strategize once it has taken that square,
// since the line is no longer winnable for this player.
func (that *Player) Destrategize(game *entity.Game, row, col int) {
	square, err := game.Square(row, col)
	if err != nil {
		return
	}

	kept := that.Paths[:0]
	for _, path := range that.Paths {
		if !path.Contains(square) {
			kept = append(kept, path)
		}
	}
	that.Paths = kept

	that.sortPaths()
}

// Strategize rebuilds this player's open paths after it occupies row,col. The
// recomputation is local: only the opponent's paths through the square and the
// (at most four) lines through the square are touched.
func (that *Player) Strategize(game *entity.Game, opponent *Player, row, col int) {
	opponent.Destrategize(game, row, col)

	square, err := game.Square(row, col)
	if err != nil {
		return
	}

	// Collapse own paths already running through the square: the square is
	// consumed, not open. Their direction is handled, so the rebuild below
	// does not re-derive the same line; a path collapsed to rank 0 is dropped.
	handled := map[entity.Direction]bool{}
	kept := that.Paths[:0]
	for _, path := range that.Paths {
		if path.Contains(square) {
			path.Remove(square)
			handled[path.Direction] = true
		}
		if path.Rank() > 0 {
			kept = append(kept, path)
		}
	}
	that.Paths = kept

	members := map[entity.Direction][]*entity.Square{}
	excluded := map[entity.Direction]bool{}

	consider := func(r, c int, direction entity.Direction) {
		if handled[direction] || excluded[direction] {
			return
		}

		candidate := game.Board[game.CoordinateKey(r, c)]
		if !candidate.IsMarked() {
			members[direction] = append(members[direction], candidate)
			return
		}
		if candidate.Mark != that.Marker {
			// The opponent blocks this line; it is dead for us.
			excluded[direction] = true
		}
	}

	for i := 0; i < game.Size; i++ {
		consider(row, i, entity.Horizontal)
		consider(i, col, entity.Vertical)
		if row == col {
			consider(i, i, entity.Diagonal)
		}
		if col == game.Size-1-row {
			consider(i, game.Size-1-i, entity.AntiDiagonal)
		}
	}

	for _, direction := range []entity.Direction{entity.Horizontal, entity.Vertical, entity.Diagonal, entity.AntiDiagonal} {
		if handled[direction] || excluded[direction] {
			continue
		}
		if squares := members[direction]; len(squares) > 0 {
			that.Paths = append(that.Paths, entity.NewPath(direction, squares))
		}
	}

	that.sortPaths()
}

// Move plays one turn. An explicit request places the supplied square and,
// while the game is still on, delegates the reply to the opponent's automated
// move. An automated request runs the decision ladder.
func (that *Player) Move(game *entity.Game, opponent *Player, request MoveRequest) error {
	if request.automated {
		return that.moveAutomated(game, opponent)
	}
	return that.moveExplicit(game, opponent, request.row, request.col)
}

func (that *Player) moveExplicit(game *entity.Game, opponent *Player, row, col int) error {
	square, err := game.Square(row, col)
	if err != nil {
		return err
	}

	if err = game.Occupy(row, col, that.Marker); err != nil {
		return err
	}
	that.Occupations = append(that.Occupations, square)

	// A move completing one of this player's rank-1 paths is itself the win;
	// the check runs against the paths as they were before this move.
	if that.CheckWinningMove(square) {
		game.Complete(entity.StateComplete, that.Marker)
		return nil
	}

	if !game.SquaresAvailable() {
		game.Complete(entity.StateDraw, "")
		return nil
	}

	that.Strategize(game, opponent, row, col)

	return opponent.Move(game, that, AutomatedMove())
}

func (that *Player) moveAutomated(game *entity.Game, opponent *Player) error {
	if len(that.Occupations) == 0 {
		return that.moveOpening(game, opponent)
	}

	next, winning := that.nextMove(game, opponent)
	if next == nil {
		// Neither side has an open path left.
		game.Complete(entity.StateDraw, "")
		return nil
	}

	return that.playSquare(game, opponent, next, winning)
}

// moveOpening places this player's first mark. Moving second against a
// boundary opening we take a random center square; in every other case a
// random corner. Randomized so the opening cannot be learned and exploited.
func (that *Player) moveOpening(game *entity.Game, opponent *Player) error {
	var square *entity.Square
	var ok bool

	if len(opponent.Occupations) > 0 {
		latest := opponent.Occupations[len(opponent.Occupations)-1]
		if game.IsAnyEdge(latest) {
			square, ok = game.AvailableCenter()
		}
	}
	if !ok {
		square, ok = game.AvailableCorner()
	}
	if !ok {
		square, ok = game.AvailableSquare()
	}
	if !ok {
		game.Complete(entity.StateDraw, "")
		return nil
	}

	return that.playSquare(game, opponent, square, false)
}

// nextMove walks the decision ladder in strict priority order: immediate win,
// immediate block, double-corner defense, trap defense, threat intersection,
// steal. A nil square means no rule produced a move and the game is a draw.
func (that *Player) nextMove(game *entity.Game, opponent *Player) (*entity.Square, bool) {
	if len(that.Paths) > 0 && that.Paths[0].Rank() == 1 {
		return that.Paths[0].Last(), true
	}

	if len(opponent.Paths) > 0 && opponent.Paths[0].Rank() == 1 {
		block := opponent.Paths[0].Last()
		return block, that.CheckWinningMove(block)
	}

	if edge := that.doubleCornerDefense(game, opponent); edge != nil {
		return edge, false
	}

	if trap := that.trapDefense(game, opponent); trap != nil {
		return trap, false
	}

	if len(that.Paths) > 0 {
		return that.bestThreat(game, opponent), false
	}

	if len(opponent.Paths) > 0 {
		return opponent.Paths[0].Last(), false
	}

	return nil, false
}

// doubleCornerDefense answers an opposite-corner opening: on this player's
// second move, moving second, when the opponent's first two marks are corners
// differing in both coordinates. Taking any corner here, even to set up a
// block, hands the opponent a two-way fork. A non-corner edge square instead
// collapses its line through the center into an immediate threat the opponent
// has to answer.
func (that *Player) doubleCornerDefense(game *entity.Game, opponent *Player) *entity.Square {
	if len(that.Occupations) != 1 || len(opponent.Occupations) != 2 {
		return nil
	}

	first, second := opponent.Occupations[0], opponent.Occupations[1]
	if !game.IsCorner(first) || !game.IsCorner(second) {
		return nil
	}
	if first.Row == second.Row || first.Col == second.Col {
		return nil
	}

	if edge, ok := game.AvailableEdge(); ok {
		return edge
	}
	return nil
}

// trapDefense pre-empts an early two-way fork: on this player's second move,
// moving second, when the opponent's first two marks are boundary squares
// forming an L (one on a left/right edge, the other on a top/bottom edge,
// differing in both coordinates). The corner between the two threats is taken
// before the fork can open. Two corners across the board are not an L; they
// belong to doubleCornerDefense. Anywhere else the rule does not apply.
func (that *Player) trapDefense(game *entity.Game, opponent *Player) *entity.Square {
	if len(that.Occupations) != 1 || len(opponent.Occupations) != 2 {
		return nil
	}

	first, second := opponent.Occupations[0], opponent.Occupations[1]
	if !game.IsAnyEdge(first) || !game.IsAnyEdge(second) {
		return nil
	}
	if game.IsCorner(first) && game.IsCorner(second) {
		return nil
	}
	if first.Row == second.Row || first.Col == second.Col {
		return nil
	}

	var target *entity.Square
	switch {
	case (game.IsLeftEdge(first) || game.IsRightEdge(first)) && (game.IsTopEdge(second) || game.IsBottomEdge(second)):
		target = game.Board[game.CoordinateKey(second.Row, first.Col)]
	case (game.IsTopEdge(first) || game.IsBottomEdge(first)) && (game.IsLeftEdge(second) || game.IsRightEdge(second)):
		target = game.Board[game.CoordinateKey(first.Row, second.Col)]
	default:
		return nil
	}

	if target.IsMarked() {
		return nil
	}
	return target
}

// bestThreat weighs every playable crossing point between one of this player's
// paths and one of the opponent's, favoring points where short paths meet:
// each pair contributes 1/min of the two ranks to its crossing square. Ties keep
// the first square encountered in path order. With no playable crossing the
// fallback spreads along the lowest-rank path instead.
func (that *Player) bestThreat(game *entity.Game, opponent *Player) *entity.Square {
	type candidate struct {
		square *entity.Square
		weight float64
	}

	var candidates []*candidate
	index := map[int]*candidate{}

	for _, mine := range that.Paths {
		for _, theirs := range opponent.Paths {
			row, col, ok := mine.Intersect(theirs, game.Size)
			if !ok || game.IsPlayed(row, col) {
				continue
			}

			rank := mine.Rank()
			if theirs.Rank() < rank {
				rank = theirs.Rank()
			}

			key := game.CoordinateKey(row, col)
			entry, seen := index[key]
			if !seen {
				entry = &candidate{square: game.Board[key]}
				index[key] = entry
				candidates = append(candidates, entry)
			}
			entry.weight += 1 / float64(rank)
		}
	}

	var best *candidate
	for _, entry := range candidates {
		if best == nil || entry.weight > best.weight {
			best = entry
		}
	}
	if best != nil {
		return best.square
	}

	return that.spreadAlong(game, that.Paths[0])
}

// spreadAlong picks the end of the path farther from this player's latest
// move along the path's own axis, preferring the end farther from the board
// midpoint on ties, so threats spread out instead of clustering.
func (that *Player) spreadAlong(game *entity.Game, path *entity.Path) *entity.Square {
	first, last := path.First(), path.Last()
	if first.Same(last) {
		return last
	}

	latest := that.Occupations[len(that.Occupations)-1]
	axis := func(square *entity.Square) int {
		if path.Direction == entity.Horizontal {
			return square.Col
		}
		return square.Row
	}

	firstDist := abs(axis(first) - axis(latest))
	lastDist := abs(axis(last) - axis(latest))
	switch {
	case firstDist > lastDist:
		return first
	case lastDist > firstDist:
		return last
	}

	mid := (game.Size - 1) / 2
	if abs(axis(first)-mid) > abs(axis(last)-mid) {
		return first
	}
	return last
}

// playSquare commits a ladder-chosen square: occupy, record, restrategize and
// advance the game state.
func (that *Player) playSquare(game *entity.Game, opponent *Player, square *entity.Square, winning bool) error {
	if err := game.Occupy(square.Row, square.Col, that.Marker); err != nil {
		return fmt.Errorf("engine chose an unplayable square: %w", err)
	}
	that.Occupations = append(that.Occupations, square)
	that.Strategize(game, opponent, square.Row, square.Col)

	if winning {
		game.Complete(entity.StateComplete, that.Marker)
		return nil
	}

	if !game.SquaresAvailable() {
		game.Complete(entity.StateDraw, "")
	}

	return nil
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
