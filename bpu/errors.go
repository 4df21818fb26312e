package bpu

import (
	"errors"
	"fmt"
)

// Stage names the part of the pipeline that produced an error.
type Stage string

const (
	StageDecode   Stage = "decode"
	StageDerive   Stage = "derive"
	StageEnvelope Stage = "envelope"
	StageLoad     Stage = "load"
)

var (
	ErrEnvelopeNotFound = errors.New("invalid ord tx: script not found")
	ErrMaxDepth         = errors.New("conditional nesting exceeds limit")
	ErrTxNotFound       = errors.New("transaction not found")
)

type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StageOf returns the stage recorded on err, or "" when err carries none.
func StageOf(err error) Stage {
	var e *Error
	if errors.As(err, &e) {
		return e.Stage
	}
	return ""
}
