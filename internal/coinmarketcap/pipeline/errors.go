package pipeline

import (
	"errors"
	"fmt"
)

// Stage names the step of a run that failed.
type Stage string

const (
	StageFetch  Stage = "fetch"
	StageBuild  Stage = "build"
	StageExport Stage = "export"
)

// StageError wraps a failure with the stage it happened in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// StageOf reports the stage of a pipeline error.
func StageOf(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}

func is(err error, stage Stage) bool {
	s, ok := StageOf(err)
	return ok && s == stage
}

func IsFetch(err error) bool  { return is(err, StageFetch) }
func IsBuild(err error) bool  { return is(err, StageBuild) }
func IsExport(err error) bool { return is(err, StageExport) }
