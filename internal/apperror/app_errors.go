package apperror

import "errors"

var (
	ErrInvalidPosition  = errors.New("invalid position")
	ErrRepeatedMover    = errors.New("same player moved twice in a row")
	ErrInvalidSymbol    = errors.New("invalid symbol")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrMalformedMessage = errors.New("malformed message")
	ErrEmptyBattleID    = errors.New("battle id is empty")
	ErrBattleNotFound   = errors.New("battle not found")
)
