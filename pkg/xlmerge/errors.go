package xlmerge

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates a file is not an xlsx-family workbook.
var ErrInvalidFormat = errors.New("unsupported workbook format")

// ErrMissingSummary indicates an input has no summary sheet.
var ErrMissingSummary = errors.New("input file missing required summary sheet")

// ErrOutputIsInput indicates the output path names one of the inputs.
var ErrOutputIsInput = errors.New("output file is also an input")

// ErrNoInputs indicates a merge was requested without input files.
var ErrNoInputs = errors.New("no input files")

// Stage names the merge step an error happened in.
type Stage string

const (
	StageValidate Stage = "validate"
	StageOpen     Stage = "open"
	StageCopy     Stage = "copy"
	StageSummary  Stage = "summary"
	StageSave     Stage = "save"
)

// MergeError represents an error while merging a file.
type MergeError struct {
	File  string
	Sheet string // empty when the error is not tied to a sheet
	Stage Stage
	Err   error
}

func (e *MergeError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("%s %s (sheet %q): %v", e.Stage, e.File, e.Sheet, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Stage, e.File, e.Err)
}

func (e *MergeError) Unwrap() error {
	return e.Err
}

// NewMergeError creates a new MergeError.
func NewMergeError(file, sheet string, stage Stage, err error) *MergeError {
	return &MergeError{
		File:  file,
		Sheet: sheet,
		Stage: stage,
		Err:   err,
	}
}
