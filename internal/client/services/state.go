package services

import (
	"errors"

	"github.com/mbopage/ezycook-cli/internal/common"
)

// OpState is the lifecycle of one view-model operation.
type OpState int

const (
	StateIdle OpState = iota
	StateLoading
	StateSuccess
	StateFailed
)

// String returns a short label for prompts and logs.
func (s OpState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// OpStatus is the observable status of one operation kind: the state plus the
// failure message when State == StateFailed.
type OpStatus struct {
	State OpState
	Err   string
}

// failureMessage converts an operation error into the message stored on the
// Failed state. A missing session always reads "Not logged in".
func failureMessage(err error) string {
	if errors.Is(err, common.ErrNotLoggedIn) {
		return "Not logged in"
	}
	return err.Error()
}
