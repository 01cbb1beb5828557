package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shaunduncan/tictactoe/internal/apperror"
	"github.com/shaunduncan/tictactoe/internal/entity"
)

type ArchiveRepository interface {
	Save(ctx context.Context, record *entity.GameRecord) error
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbArchive struct {
	client *redis.Client
}

func NewArchiveRepository(client *redis.Client) ArchiveRepository {
	return &dbArchive{
		client: client,
	}
}

func (that *dbArchive) Save(ctx context.Context, record *entity.GameRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal game record: %w", err)
	}

	recordKey := "archive:" + record.ID
	if err = that.client.Set(ctx, recordKey, recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game record: %w", err)
	}

	return nil
}

func (that *dbArchive) GetByID(ctx context.Context, id string) (*entity.GameRecord, error) {
	recordKey := "archive:" + id

	response, err := that.client.Get(ctx, recordKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrRecordNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game record: %w", err)
	}

	var record entity.GameRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game record: %w", err)
	}

	return &record, nil
}

func (that *dbArchive) DeleteByID(ctx context.Context, id string) error {
	recordKey := "archive:" + id

	if err := that.client.Del(ctx, recordKey).Err(); err != nil {
		return fmt.Errorf("failed to delete game record: %w", err)
	}

	return nil
}
