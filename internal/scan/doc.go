// Package scan lists the working directory and extracts the files that
// participate in a rename batch.
//
// A file participates when its full name matches ^(\d+)\.(.+)$ — a run of
// ASCII digits, a dot, then a non-empty remainder that may itself contain
// dots. Only regular files are considered; directories and symlinks are
// excluded. The scan reads name metadata only, never file contents.
//
// A matched name whose digit run does not fit in an int is a per-file
// warning, not a fatal error: the file is dropped from the batch and
// scanning continues. Failure to enumerate the directory at all is fatal
// and aborts the run before any rename is attempted.
package scan
