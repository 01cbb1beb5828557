package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shaunduncan/tictactoe/internal/apperror"
	"github.com/shaunduncan/tictactoe/internal/engine"
	"github.com/shaunduncan/tictactoe/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeArchiver struct {
	calls int
	id    string
	err   error
}

func (that *fakeArchiver) ArchiveGame(_ context.Context, _ *entity.Game, _, _ *engine.Player) (string, error) {
	that.calls++
	return that.id, that.err
}

func newTestService(archiver Archiver) GameplayService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewGameplayService(logger, archiver)
}

func TestGameplayService_NewSession(t *testing.T) {
	t.Run("The human plays X when moving first", func(t *testing.T) {
		// Given: a service without archiving
		svc := newTestService(nil)

		// When: a session starts with the human first
		session, err := svc.NewSession(3, false)

		// Then: the board is untouched and markers are assigned
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, session.Human.Marker)
		assert.Equal(t, entity.PlayerO, session.Computer.Marker)
		assert.Zero(t, session.Game.SquaresPlayed)
		assert.True(t, session.Game.IsInProgress())
	})

	t.Run("The computer plays X and opens when moving first", func(t *testing.T) {
		svc := newTestService(nil)

		// When: a session starts with the computer first
		session, err := svc.NewSession(3, true)

		// Then: the opening move is already on the board
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, session.Computer.Marker)
		assert.Equal(t, entity.PlayerO, session.Human.Marker)
		assert.Equal(t, 1, session.Game.SquaresPlayed)
		require.Len(t, session.Computer.Occupations, 1)
		assert.True(t, session.Game.IsCorner(session.Computer.Occupations[0]))
	})

	t.Run("A board below the minimum size is rejected", func(t *testing.T) {
		svc := newTestService(nil)

		session, err := svc.NewSession(2, false)

		require.Error(t, err)
		assert.Nil(t, session)
		assert.ErrorIs(t, err, entity.ErrBoardTooSmall)
	})
}

func TestGameplayService_HumanMove(t *testing.T) {
	t.Run("A valid move triggers the computer's reply", func(t *testing.T) {
		// Given: a fresh human-first session
		svc := newTestService(nil)
		session, err := svc.NewSession(3, false)
		require.NoError(t, err)

		// When: the human opens in a corner
		require.NoError(t, svc.HumanMove(session, 0, 0))

		// Then: both sides have moved
		assert.Equal(t, 2, session.Game.SquaresPlayed)
		assert.Len(t, session.Human.Occupations, 1)
		assert.Len(t, session.Computer.Occupations, 1)
	})

	t.Run("A move outside the board is rejected", func(t *testing.T) {
		svc := newTestService(nil)
		session, err := svc.NewSession(3, false)
		require.NoError(t, err)

		err = svc.HumanMove(session, 3, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, entity.ErrOutOfRange)
		assert.Zero(t, session.Game.SquaresPlayed)
	})

	t.Run("A move onto an occupied cell is rejected", func(t *testing.T) {
		// Given: the computer already sits on its opening corner
		svc := newTestService(nil)
		session, err := svc.NewSession(3, true)
		require.NoError(t, err)
		taken := session.Computer.Occupations[0]

		// When: the human aims at the same cell
		err = svc.HumanMove(session, taken.Row, taken.Col)

		// Then: the move is refused and the board is unchanged
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, 1, session.Game.SquaresPlayed)
	})

	t.Run("No move is accepted once the game is over", func(t *testing.T) {
		svc := newTestService(nil)
		session, err := svc.NewSession(3, false)
		require.NoError(t, err)
		session.Game.Complete(entity.StateDraw, "")

		err = svc.HumanMove(session, 0, 0)

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGameplayService_FinishSession(t *testing.T) {
	t.Run("A finished game is handed to the archiver", func(t *testing.T) {
		// Given: a service with a working archiver
		archiver := &fakeArchiver{id: "record-1"}
		svc := newTestService(archiver)
		session, err := svc.NewSession(3, false)
		require.NoError(t, err)
		session.Game.Complete(entity.StateDraw, "")

		// When: the session finishes
		svc.FinishSession(context.Background(), session)

		// Then: the archiver saw the game exactly once
		assert.Equal(t, 1, archiver.calls)
	})

	t.Run("An archiver failure is swallowed", func(t *testing.T) {
		archiver := &fakeArchiver{err: errors.New("storage down")}
		svc := newTestService(archiver)
		session, err := svc.NewSession(3, false)
		require.NoError(t, err)

		svc.FinishSession(context.Background(), session)

		assert.Equal(t, 1, archiver.calls)
	})

	t.Run("No archiver means finishing is a no-op", func(t *testing.T) {
		svc := newTestService(nil)
		session, err := svc.NewSession(3, false)
		require.NoError(t, err)

		assert.NotPanics(t, func() {
			svc.FinishSession(context.Background(), session)
		})
	})
}
