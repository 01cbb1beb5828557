package engine

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shaunduncan/tictactoe/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openSquares collects every unmarked square on the board.
func openSquares(game *entity.Game) []*entity.Square {
	var open []*entity.Square
	for _, square := range game.Board {
		if !square.IsMarked() {
			open = append(open, square)
		}
	}
	return open
}

// hasFullLine reports whether marker owns a complete row, column or diagonal.
// It reads the board directly and is independent of the path bookkeeping, so
// it can vouch for a declared winner.
func hasFullLine(game *entity.Game, marker string) bool {
	owns := func(row, col int) bool {
		return game.Board[game.CoordinateKey(row, col)].Mark == marker
	}

	for i := 0; i < game.Size; i++ {
		rowFull, colFull := true, true
		for j := 0; j < game.Size; j++ {
			rowFull = rowFull && owns(i, j)
			colFull = colFull && owns(j, i)
		}
		if rowFull || colFull {
			return true
		}
	}

	diagFull, antiFull := true, true
	for i := 0; i < game.Size; i++ {
		diagFull = diagFull && owns(i, i)
		antiFull = antiFull && owns(i, game.Size-1-i)
	}
	return diagFull || antiFull
}

// assertConsistent checks the standing invariants between moves: both path
// lists hold only unmarked squares, sorted ascending by rank, and the board's
// play counter agrees with the marks on it.
func assertConsistent(t *testing.T, game *entity.Game, players ...*Player) {
	t.Helper()

	marked := 0
	for _, square := range game.Board {
		if square.IsMarked() {
			marked++
		}
	}
	require.Equal(t, marked, game.SquaresPlayed)

	for _, player := range players {
		for i, path := range player.Paths {
			require.Positive(t, path.Rank())
			if i > 0 {
				require.GreaterOrEqual(t, path.Rank(), player.Paths[i-1].Rank())
			}
			for _, square := range path.Squares {
				require.False(t, square.IsMarked())
			}
		}
	}
}

// assertSettled checks a finished game: a declared winner holds a real line on
// the board, and a draw means nobody does.
func assertSettled(t *testing.T, game *entity.Game, markers ...string) {
	t.Helper()

	require.False(t, game.IsInProgress())
	if game.IsComplete() {
		assert.True(t, hasFullLine(game, game.Winner),
			"declared winner %s holds no complete line", game.Winner)
		return
	}
	for _, marker := range markers {
		assert.False(t, hasFullLine(game, marker),
			"draw declared while %s holds a complete line", marker)
	}
}

func TestSimulation_EngineVersusEngine(t *testing.T) {
	t.Run("A 3x3 self-play game always ends in a draw", func(t *testing.T) {
		// The opening corner is random, but the four variants are mirror
		// images of one play-out, so repetition covers them all.
		for round := 0; round < 20; round++ {
			game, err := entity.NewGame(3)
			require.NoError(t, err)
			first := NewPlayer(entity.PlayerX)
			second := NewPlayer(entity.PlayerO)

			current, next := first, second
			for game.IsInProgress() {
				require.NoError(t, current.Move(game, next, AutomatedMove()))
				assertConsistent(t, game, first, second)
				current, next = next, current
			}

			assert.True(t, game.IsDraw(), "round %d ended %s", round, game.State)
			assertSettled(t, game, entity.PlayerX, entity.PlayerO)
		}
	})

	t.Run("Self-play on larger boards always settles cleanly", func(t *testing.T) {
		for _, size := range []int{4, 5, 6} {
			t.Run(fmt.Sprintf("size %d", size), func(t *testing.T) {
				for round := 0; round < 10; round++ {
					game, err := entity.NewGame(size)
					require.NoError(t, err)
					first := NewPlayer(entity.PlayerX)
					second := NewPlayer(entity.PlayerO)

					current, next := first, second
					moves := 0
					for game.IsInProgress() {
						require.NoError(t, current.Move(game, next, AutomatedMove()))
						assertConsistent(t, game, first, second)
						current, next = next, current

						moves++
						require.LessOrEqual(t, moves, size*size)
					}

					assertSettled(t, game, entity.PlayerX, entity.PlayerO)
				}
			})
		}
	})
}

func TestSimulation_EngineVersusRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1)) //nolint: gosec // it's ok

	play := func(t *testing.T, size int, engineFirst bool) {
		t.Helper()

		game, err := entity.NewGame(size)
		require.NoError(t, err)

		var human, computer *Player
		if engineFirst {
			computer, human = NewPlayer(entity.PlayerX), NewPlayer(entity.PlayerO)
			require.NoError(t, computer.Move(game, human, AutomatedMove()))
		} else {
			human, computer = NewPlayer(entity.PlayerX), NewPlayer(entity.PlayerO)
		}

		// The engine's reply rides inside the explicit move, so the loop only
		// drives the random side.
		for game.IsInProgress() {
			open := openSquares(game)
			require.NotEmpty(t, open)
			pick := open[rng.Intn(len(open))]

			require.NoError(t, human.Move(game, computer, ExplicitMove(pick.Row, pick.Col)))
			assertConsistent(t, game, human, computer)
		}

		assertSettled(t, game, human.Marker, computer.Marker)

		// The engine never loses: a completed game is its win; anything else
		// is a draw.
		if game.IsComplete() {
			require.Equal(t, computer.Marker, game.Winner)
		}
	}

	for _, size := range []int{3, 4, 5} {
		for _, engineFirst := range []bool{false, true} {
			order := "engine second"
			if engineFirst {
				order = "engine first"
			}
			t.Run(fmt.Sprintf("Random play on a %dx%d board, %s", size, size, order), func(t *testing.T) {
				for round := 0; round < 100; round++ {
					play(t, size, engineFirst)
				}
			})
		}
	}
}
