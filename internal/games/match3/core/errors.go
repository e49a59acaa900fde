package core

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the engine.
var (
	ErrOutOfBounds  = errors.New("match3: cell out of bounds")
	ErrSameCell     = errors.New("match3: cannot swap a cell with itself")
	ErrBoardLocked  = errors.New("match3: board is locked")
	ErrInvalidPhase = errors.New("match3: operation not allowed in current phase")
	ErrUnknownLevel = errors.New("match3: unknown level")
	ErrNoLevels     = errors.New("match3: no levels configured")
)

// ValidationError contains details about a configuration that cannot be played.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}
