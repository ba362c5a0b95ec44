package model

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMatchedFile_Name verifies that Name returns the basename of the
// scan-time path.
func TestMatchedFile_Name(t *testing.T) {
	f := MatchedFile{Number: 5, Path: filepath.Join("some", "dir", "5.txt"), Extension: "txt"}
	assert.Equal(t, "5.txt", f.Name())
}

// TestMatchedFile_TargetName verifies target name computation across
// offsets, including the zero boundary and multi-dot extensions.
func TestMatchedFile_TargetName(t *testing.T) {
	tests := []struct {
		name   string
		file   MatchedFile
		offset int
		want   string
	}{
		{"positive offset", MatchedFile{Number: 5, Extension: "txt"}, 2, "7.txt"},
		{"negative offset", MatchedFile{Number: 5, Extension: "txt"}, -2, "3.txt"},
		{"zero offset", MatchedFile{Number: 5, Extension: "txt"}, 0, "5.txt"},
		{"target of exactly zero", MatchedFile{Number: 1, Extension: "txt"}, -1, "0.txt"},
		{"multi-dot extension kept whole", MatchedFile{Number: 5, Extension: "tar.gz"}, 2, "7.tar.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.file.TargetName(tt.offset))
		})
	}
}

// TestMatchedFile_TargetPath verifies that the rename destination stays
// in the source file's parent directory.
func TestMatchedFile_TargetPath(t *testing.T) {
	f := MatchedFile{Number: 5, Path: filepath.Join("work", "5.txt"), Extension: "txt"}
	assert.Equal(t, filepath.Join("work", "7.txt"), f.TargetPath(2))
}

// TestCLIError verifies message formatting and error unwrapping.
func TestCLIError(t *testing.T) {
	t.Run("without underlying error", func(t *testing.T) {
		err := NewCLIError(ExitGeneralError, "something went wrong")
		assert.Equal(t, "something went wrong", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("with underlying error", func(t *testing.T) {
		underlying := errors.New("permission denied")
		err := WrapCLIError(ExitGeneralError, "cannot list working directory", underlying)
		assert.Equal(t, "cannot list working directory: permission denied", err.Error())
		assert.True(t, errors.Is(err, underlying), "errors.Is should see the wrapped error")
	})
}

// TestOutcomeVocabulary verifies the string forms used in log lines and
// assertions.
func TestOutcomeVocabulary(t *testing.T) {
	assert.Equal(t, "renamed", ActionRenamed.String())
	assert.Equal(t, "skipped", ActionSkipped.String())
	assert.Equal(t, "failed", ActionFailed.String())

	assert.Equal(t, "below-threshold", SkipBelowThreshold.String())
	assert.Equal(t, "negative-target", SkipNegativeTarget.String())
	assert.Equal(t, "same-name", SkipSameName.String())
	assert.Equal(t, "", SkipNone.String())
}
