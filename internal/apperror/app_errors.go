package apperror

import "errors"

var (
	ErrGameFinished   = errors.New("game is already finished")
	ErrCellOccupied   = errors.New("square is already occupied")
	ErrRecordNotFound = errors.New("game record not found")
)
