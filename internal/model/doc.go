// Package model defines the domain types and value objects for the
// caro CLI.
//
// This package contains pure data structures with no external dependencies.
// The central entity is MatchedFile — one record per file in the working
// directory whose name conforms to the NUMBER.EXTENSION pattern. Records
// are transient: built by the scanner, ordered by the planner, consumed
// once by the rename executor, then discarded. Nothing is persisted.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling,
// plus the per-file outcome vocabulary (Action, SkipReason, Outcome) used
// by the executor to report what happened to each file.
package model
