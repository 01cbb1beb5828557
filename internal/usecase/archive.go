package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shaunduncan/tictactoe/internal/engine"
	"github.com/shaunduncan/tictactoe/internal/entity"
)

type ArchiveUseCase interface {
	ArchiveGame(ctx context.Context, game *entity.Game, computer, human *engine.Player) (string, error)
	GetRecord(ctx context.Context, id string) (*entity.GameRecord, error)
}

type archiveRepository interface {
	Save(ctx context.Context, record *entity.GameRecord) error
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
}

type archiveUseCase struct {
	repo archiveRepository
}

func NewArchiveUseCase(repo archiveRepository) ArchiveUseCase {
	return &archiveUseCase{
		repo: repo,
	}
}

// ArchiveGame stores a finished game and returns the record ID.
func (that *archiveUseCase) ArchiveGame(ctx context.Context, game *entity.Game, computer, human *engine.Player) (string, error) {
	record := &entity.GameRecord{
		ID:         uuid.NewString(),
		Size:       game.Size,
		State:      game.State,
		Winner:     game.Winner,
		Moves:      moveLog(computer, human),
		FinishedAt: time.Now().UTC(),
	}

	if err := that.repo.Save(ctx, record); err != nil {
		return "", fmt.Errorf("failed to save game record: %w", err)
	}

	return record.ID, nil
}

func (that *archiveUseCase) GetRecord(ctx context.Context, id string) (*entity.GameRecord, error) {
	record, err := that.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game record: %w", err)
	}

	return record, nil
}

// moveLog interleaves both players' occupations back into play order. X always
// moves first and the sides strictly alternate.
func moveLog(computer, human *engine.Player) []entity.MoveRecord {
	first, second := computer, human
	if human.Marker == entity.PlayerX {
		first, second = human, computer
	}

	moves := make([]entity.MoveRecord, 0, len(first.Occupations)+len(second.Occupations))
	for i := 0; i < len(first.Occupations) || i < len(second.Occupations); i++ {
		if i < len(first.Occupations) {
			moves = append(moves, moveRecord(first, i))
		}
		if i < len(second.Occupations) {
			moves = append(moves, moveRecord(second, i))
		}
	}

	return moves
}

func moveRecord(player *engine.Player, index int) entity.MoveRecord {
	square := player.Occupations[index]
	return entity.MoveRecord{
		Marker: player.Marker,
		Row:    square.Row,
		Col:    square.Col,
	}
}
