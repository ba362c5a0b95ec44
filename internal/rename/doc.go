// Package rename applies a planned rename batch to the filesystem.
//
// The executor walks the files strictly in the order handed to it and
// makes exactly one decision per file: skip (below threshold, negative
// target, or no-op name), rename, or report an OS-level rename failure.
// Every decision produces a human-readable line, so the user sees one
// line per matched file regardless of outcome.
//
// There are no retries and no rollback. Each rename is a single atomic
// filesystem operation; a failure on one file never affects renames
// already completed or the plan for the files still pending.
package rename
