package scan

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/mmr-tortoise/caro/internal/model"
)

// filenameRegex selects batch participants. Anchored on the whole name:
//
//	^(\d+)  — the numeric prefix (first capture group)
//	\.      — a literal dot separating number from extension
//	(.+)$   — the extension (second capture group), greedy, so an
//	          extension like "tar.gz" is kept whole
var filenameRegex = regexp.MustCompile(`^(\d+)\.(.+)$`)

// Scanner produces the set of MatchedFiles for a directory.
//
// The struct is stateless apart from the warning writer. It is defined as
// a struct (rather than bare functions) so the warning destination can be
// injected — the CLI passes stderr, tests pass a buffer.
type Scanner struct {
	// warn receives one line per matched filename that had to be dropped
	// (currently only number-overflow cases).
	warn io.Writer
}

// NewScanner creates a Scanner that writes per-file warnings to warn.
func NewScanner(warn io.Writer) *Scanner {
	return &Scanner{warn: warn}
}

// Scan lists dir and returns one MatchedFile per regular file whose name
// matches the NUMBER.EXTENSION pattern.
//
// The result is sorted by filename. That order carries no meaning for the
// rename batch — the planner imposes the order that matters — but it makes
// warning output and tests deterministic across filesystems.
//
// An unreadable directory fails the whole scan; there is no partial
// recovery, because a partial listing could silently shrink the batch and
// break the planner's collision-freedom argument.
func (s *Scanner) Scan(dir string) ([]model.MatchedFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing directory %s: %w", dir, err)
	}

	files := make([]model.MatchedFile, 0, len(entries))
	for _, entry := range entries {
		// Type() reports the mode bits from the directory entry itself:
		// a symlink keeps its ModeSymlink bit here (no Stat follow), so
		// this excludes directories and symlinks in one check.
		if !entry.Type().IsRegular() {
			continue
		}

		name := entry.Name()
		m := filenameRegex.FindStringSubmatch(name)
		if m == nil {
			continue
		}

		number, err := strconv.Atoi(m[1])
		if err != nil {
			// Atoi on an all-digit string can only fail with ErrRange:
			// the digit run does not fit in an int. The file is dropped
			// from the batch; the rest of the scan is unaffected.
			fmt.Fprintf(s.warn, "Warning: number part of %q is out of range, skipping\n", name)
			continue
		}

		files = append(files, model.MatchedFile{
			Number:    number,
			Path:      filepath.Join(dir, name),
			Extension: m[2],
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })
	return files, nil
}
