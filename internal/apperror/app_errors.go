package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrInvalidMove      = errors.New("invalid move")
	ErrRoomFull         = errors.New("room is full")
	ErrMalformedCommand = errors.New("malformed command")
)
