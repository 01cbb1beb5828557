package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shaunduncan/tictactoe/internal/apperror"
	"github.com/shaunduncan/tictactoe/internal/engine"
	"github.com/shaunduncan/tictactoe/internal/entity"
)

// Archiver records finished games somewhere durable. A nil Archiver disables
// archiving and the session plays on without it.
type Archiver interface {
	ArchiveGame(ctx context.Context, game *entity.Game, computer, human *engine.Player) (string, error)
}

// Session is one game between the human and the engine. Whoever moves first
// plays X.
type Session struct {
	Game     *entity.Game
	Computer *engine.Player
	Human    *engine.Player
}

type GameplayService interface {
	NewSession(size int, computerFirst bool) (*Session, error)
	HumanMove(session *Session, row, col int) error
	FinishSession(ctx context.Context, session *Session)
}

type gameplayService struct {
	logger   *slog.Logger
	archiver Archiver
}

func NewGameplayService(logger *slog.Logger, archiver Archiver) GameplayService {
	return &gameplayService{
		logger:   logger.With("component", "gameplay"),
		archiver: archiver,
	}
}

// NewSession builds a fresh board. When the computer moves first its opening
// move is already on the board by the time the session is returned.
func (that *gameplayService) NewSession(size int, computerFirst bool) (*Session, error) {
	game, err := entity.NewGame(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	session := &Session{Game: game}
	if computerFirst {
		session.Computer = engine.NewPlayer(entity.PlayerX)
		session.Human = engine.NewPlayer(entity.PlayerO)
		if err = session.Computer.Move(game, session.Human, engine.AutomatedMove()); err != nil {
			return nil, fmt.Errorf("computer failed to open: %w", err)
		}
	} else {
		session.Human = engine.NewPlayer(entity.PlayerX)
		session.Computer = engine.NewPlayer(entity.PlayerO)
	}

	return session, nil
}

// HumanMove validates and plays a human turn. The engine's reply, if the game
// is still on, happens inside the same call.
func (that *gameplayService) HumanMove(session *Session, row, col int) error {
	game := session.Game
	if !game.IsInProgress() {
		return apperror.ErrGameFinished
	}

	if _, err := game.Square(row, col); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	if game.IsPlayed(row, col) {
		return fmt.Errorf("%w: (%d,%d)", apperror.ErrCellOccupied, row, col)
	}

	if err := session.Human.Move(game, session.Computer, engine.ExplicitMove(row, col)); err != nil {
		return fmt.Errorf("failed to make move: %w", err)
	}

	return nil
}

// FinishSession hands a finished game to the archiver, when one is wired.
func (that *gameplayService) FinishSession(ctx context.Context, session *Session) {
	if that.archiver == nil {
		return
	}

	id, err := that.archiver.ArchiveGame(ctx, session.Game, session.Computer, session.Human)
	if err != nil {
		that.logger.Error("could not archive game", "error", err)
		return
	}

	that.logger.Info("game archived", "record_id", id, "state", session.Game.State, "winner", session.Game.Winner)
}
