// Package model defines the domain types for the caro CLI.
//
// All entities here are transient in-memory representations built from a
// single directory listing at startup. A rename replaces a file's on-disk
// identity; the in-memory MatchedFile record is read-only after
// construction and is never updated to reflect the new path.
package model

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// MatchedFile describes one file whose name matches the NUMBER.EXTENSION
// pattern. It is the unit of work for the whole pipeline: the scanner
// produces them, the planner orders them, the executor consumes them.
type MatchedFile struct {
	// Number is the numeric prefix parsed from the filename (e.g. 5 for
	// "5.txt"). Always non-negative: the pattern only matches digit runs.
	// Leading zeros are dropped by integer parsing ("007.txt" → 7).
	Number int

	// Path is the file's location at scan time. It is the stable identity
	// used by the executor as the rename source.
	Path string

	// Extension is everything after the first dot following the digits.
	// The match is greedy, so it may itself contain dots: "5.tar.gz"
	// yields Extension "tar.gz".
	Extension string
}

// Name returns the file's basename at scan time, e.g. "5.txt".
func (f MatchedFile) Name() string {
	return filepath.Base(f.Path)
}

// TargetName computes the basename this file would be renamed to for the
// given offset: strconv(Number+offset) + "." + Extension.
//
// Callers must check for a negative target number themselves; TargetName
// does not validate because the skip decision (and its log line) belongs
// to the executor.
func (f MatchedFile) TargetName(offset int) string {
	return strconv.Itoa(f.Number+offset) + "." + f.Extension
}

// TargetPath computes the full rename destination for the given offset.
// The destination always stays in the file's original parent directory.
func (f MatchedFile) TargetPath(offset int) string {
	return filepath.Join(filepath.Dir(f.Path), f.TargetName(offset))
}

// Action classifies what the executor did with a single matched file.
type Action string

const (
	// ActionRenamed indicates the file was renamed successfully.
	ActionRenamed Action = "renamed"

	// ActionSkipped indicates the file was intentionally left alone.
	// The Outcome's SkipReason says why.
	ActionSkipped Action = "skipped"

	// ActionFailed indicates a rename was attempted and the operating
	// system rejected it. The Outcome's Err holds the OS error.
	ActionFailed Action = "failed"
)

// String returns the string representation of Action.
func (a Action) String() string {
	return string(a)
}

// SkipReason explains why the executor skipped a file. Skips are
// informational, not errors: the batch always continues.
type SkipReason string

const (
	// SkipNone is the zero value, used for outcomes that are not skips.
	SkipNone SkipReason = ""

	// SkipBelowThreshold means the file's original number is below the
	// user-supplied minimum b.
	SkipBelowThreshold SkipReason = "below-threshold"

	// SkipNegativeTarget means Number+offset would be negative, which
	// cannot be expressed as a NUMBER.EXTENSION filename.
	SkipNegativeTarget SkipReason = "negative-target"

	// SkipSameName means the computed target name equals the current
	// name, so the rename would be a no-op. This covers offset 0.
	SkipSameName SkipReason = "same-name"
)

// String returns the string representation of SkipReason.
func (r SkipReason) String() string {
	return string(r)
}

// Outcome records the executor's decision for one matched file, in
// processing order. The executor prints a human-readable line per outcome
// as it goes; the returned slice exists so tests and callers can assert
// on decisions without parsing output text.
type Outcome struct {
	// File is the matched file this outcome describes.
	File MatchedFile

	// NewName is the computed target basename. Empty for threshold and
	// negative-target skips, where no target name is ever formed.
	NewName string

	// Action says whether the file was renamed, skipped, or failed.
	Action Action

	// Reason is set when Action is ActionSkipped.
	Reason SkipReason

	// Err is set when Action is ActionFailed. It is the error returned
	// by os.Rename, unmodified.
	Err error
}

// ExitCode defines the CLI process exit codes.
//
// Unlike richer CLIs, caro only distinguishes success from failure:
// a run with skipped or failed renames still exits 0 because partial
// completion is a normal, expected outcome of the no-transaction design.
type ExitCode int

const (
	// ExitSuccess indicates the command completed, including the
	// "no matching files" case and runs with per-file failures.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates a fatal error: non-integer interactive
	// input, or failure to enumerate the working directory at all.
	ExitGeneralError ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
