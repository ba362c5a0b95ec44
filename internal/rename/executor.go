package rename

import (
	"fmt"
	"io"
	"os"

	"github.com/mmr-tortoise/caro/internal/model"
)

// Executor performs the renames for one batch.
//
// Progress lines (skips and successful renames) go to out; rename
// failures go to errOut. Both are injected so the CLI can pass
// stdout/stderr and tests can capture output in buffers.
type Executor struct {
	out    io.Writer
	errOut io.Writer
}

// NewExecutor creates an Executor writing progress to out and rename
// failures to errOut.
func NewExecutor(out, errOut io.Writer) *Executor {
	return &Executor{out: out, errOut: errOut}
}

// Execute processes files strictly in the given order, applying offset to
// each file's number and skipping files whose original number is below
// threshold. It returns one Outcome per file, in processing order.
//
// The order must come from the planner; Execute itself does not reorder.
// A failed rename is reported and the batch continues — partial
// completion is a normal outcome, there is no rollback.
func (e *Executor) Execute(files []model.MatchedFile, offset, threshold int) []model.Outcome {
	outcomes := make([]model.Outcome, 0, len(files))

	for _, f := range files {
		outcome := e.renameOne(f, offset, threshold)
		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

// renameOne makes the decision for a single file and prints its line.
func (e *Executor) renameOne(f model.MatchedFile, offset, threshold int) model.Outcome {
	name := f.Name()

	if f.Number < threshold {
		fmt.Fprintf(e.out, "Skipping %q: original number (%d) is less than the minimum (%d).\n",
			name, f.Number, threshold)
		return model.Outcome{File: f, Action: model.ActionSkipped, Reason: model.SkipBelowThreshold}
	}

	// A zero target is fine; only strictly negative numbers cannot be
	// expressed as a filename.
	newNumber := f.Number + offset
	if newNumber < 0 {
		fmt.Fprintf(e.out, "Skipping %q: new number (%d) would be negative.\n", name, newNumber)
		return model.Outcome{File: f, Action: model.ActionSkipped, Reason: model.SkipNegativeTarget}
	}

	newName := f.TargetName(offset)
	if newName == name {
		fmt.Fprintf(e.out, "Skipping %q: new filename is identical to original.\n", name)
		return model.Outcome{File: f, NewName: newName, Action: model.ActionSkipped, Reason: model.SkipSameName}
	}

	if err := os.Rename(f.Path, f.TargetPath(offset)); err != nil {
		fmt.Fprintf(e.errOut, "Error renaming %q to %q: %v\n", name, newName, err)
		return model.Outcome{File: f, NewName: newName, Action: model.ActionFailed, Err: err}
	}

	fmt.Fprintf(e.out, "Renamed %q to %q\n", name, newName)
	return model.Outcome{File: f, NewName: newName, Action: model.ActionRenamed}
}
