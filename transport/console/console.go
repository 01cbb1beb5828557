package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/shaunduncan/tictactoe/internal/apperror"
	"github.com/shaunduncan/tictactoe/internal/engine"
	"github.com/shaunduncan/tictactoe/internal/entity"
	"github.com/shaunduncan/tictactoe/internal/service"
)

// Console is the interactive front end. It owns stdin/stdout, re-prompts on
// bad input and leaves every game-state decision to the gameplay service.
type Console struct {
	logger      *slog.Logger
	gameplay    service.GameplayService
	scanner     *bufio.Scanner
	out         io.Writer
	defaultSize int
}

func New(logger *slog.Logger, gameplay service.GameplayService, defaultSize int) *Console {
	return &Console{
		logger:      logger.With("component", "console"),
		gameplay:    gameplay,
		scanner:     bufio.NewScanner(os.Stdin),
		out:         os.Stdout,
		defaultSize: defaultSize,
	}
}

// Run drives the outer loop: one full game per iteration, then a play-again
// prompt. It returns when the player quits, input runs out, or the context is
// canceled.
func (that *Console) Run(ctx context.Context) error {
	fmt.Fprint(that.out, "\n[ TIC TAC TOE ]\n\n")

	for ctx.Err() == nil {
		size, ok := that.promptBoardSize()
		if !ok {
			break
		}
		fmt.Fprintf(that.out, "Great, I'll set up a %dx%d playing board\n\n", size, size)

		computerFirst, ok := that.promptMoveOrder()
		if !ok {
			break
		}
		if computerFirst {
			fmt.Fprint(that.out, "Ok, I'll go first\n")
		} else {
			fmt.Fprint(that.out, "That confident, eh? Ok, you'll go first\n")
		}

		fmt.Fprint(that.out, "\nGOOD LUCK!\n")

		if ok = that.playGame(ctx, size, computerFirst); !ok {
			break
		}

		again, ok := that.promptPlayAgain()
		if !ok || !again {
			break
		}
	}

	fmt.Fprint(that.out, "\nGoodbye! Thanks for playing!\n")
	return nil
}

// playGame runs a single session to completion. The false return means input
// ran out mid-game.
func (that *Console) playGame(ctx context.Context, size int, computerFirst bool) bool {
	session, err := that.gameplay.NewSession(size, computerFirst)
	if err != nil {
		that.logger.Error("could not start session", "error", err)
		return false
	}

	for session.Game.IsInProgress() {
		fmt.Fprint(that.out, RenderBoard(session.Game))

		if latest := lastOccupation(session.Computer); latest != nil {
			fmt.Fprintf(that.out, "My last move was at (%d,%d)\n", latest.Row, latest.Col)
		}
		fmt.Fprint(that.out, "Now it's your move\n")

		row, ok := that.promptCoordinate("row", size-1)
		if !ok {
			return false
		}
		col, ok := that.promptCoordinate("column", size-1)
		if !ok {
			return false
		}

		err = that.gameplay.HumanMove(session, row, col)
		if errors.Is(err, apperror.ErrCellOccupied) {
			fmt.Fprintf(that.out, "Oops. The position (%d,%d) is unavailable\n", row, col)
			continue
		}
		if err != nil {
			that.logger.Error("could not make move", "error", err)
			return false
		}

		fmt.Fprintf(that.out, "Making move at (%d,%d)\n", row, col)
		fmt.Fprint(that.out, "[ END TURN ]\n")
	}

	fmt.Fprint(that.out, RenderBoard(session.Game))
	that.announceResult(session)
	that.gameplay.FinishSession(ctx, session)

	return true
}

func (that *Console) announceResult(session *service.Session) {
	game := session.Game
	if game.IsDraw() {
		fmt.Fprint(that.out, "The game is a draw!\n\n")
		return
	}

	fmt.Fprintf(that.out, "Game Over! %s has won!\n", game.Winner)
	if game.Winner == session.Human.Marker {
		fmt.Fprintf(that.out, "YOU HAVE %s\n\n", aurora.Green("WON"))
	} else {
		fmt.Fprintf(that.out, "YOU HAVE %s\n\n", aurora.Red("LOST"))
	}
}

func lastOccupation(player *engine.Player) *entity.Square {
	if len(player.Occupations) == 0 {
		return nil
	}
	return player.Occupations[len(player.Occupations)-1]
}
