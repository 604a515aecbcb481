package cli

import (
	"errors"

	prerrors "prtrain.dev/prtrain/internal/errors"
	"prtrain.dev/prtrain/internal/tui"
)

// reportedError marks an error that was already printed to the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

// reportError prints a curated message for err; the full error goes to the log
func reportError(splog *tui.Splog, err error) {
	splog.Debug("run failed: %v", err)

	switch {
	case errors.Is(err, prerrors.ErrNotARepository):
		splog.Error("Not a git repo")
	case errors.Is(err, prerrors.ErrNotPartOfTrain):
		splog.Error("Current branch is not part of a PR train. Exiting.")
	default:
		splog.Error("%v", err)
	}
}
