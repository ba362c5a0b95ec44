// Package cli — shift.go implements the rename run behind the root
// command.
//
// The flow is a single linear pass:
//  1. Print the intro banner and prompt for the offset a and threshold b.
//  2. Scan the current working directory for NUMBER.EXTENSION files.
//  3. Order the matches so renames can never collide inside the batch.
//  4. Apply the renames, printing one decision line per file.
//
// Only two things are fatal: non-integer input and a directory that
// cannot be listed. Everything after that point is per-file: a failed
// rename is reported and the batch continues.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mmr-tortoise/caro/internal/model"
	"github.com/mmr-tortoise/caro/internal/plan"
	"github.com/mmr-tortoise/caro/internal/rename"
	"github.com/mmr-tortoise/caro/internal/scan"
)

// runShift is the main logic function for the root command. It is
// factored over reader/writer pairs so tests can drive the prompts and
// capture output without touching the process's real streams.
func runShift(in io.Reader, out, errOut io.Writer) error {
	printIntro(out)

	// Both prompts share one buffered reader: the leftover input state
	// (a half-consumed line) must carry over between reads.
	prompts := bufio.NewScanner(in)

	offset, err := promptInt(prompts, out, "Enter an integer 'a' (the number to add for renaming): ")
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid input for 'a', please enter an integer", err)
	}

	threshold, err := promptInt(prompts, out, "Enter an integer 'b' (the minimum original number to rename): ")
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid input for 'b', please enter an integer", err)
	}

	dir, err := os.Getwd()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "cannot determine working directory", err)
	}
	fmt.Fprintf(out, "Searching for files in: %s\n", dir)

	files, err := scan.NewScanner(errOut).Scan(dir)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "cannot list working directory", err)
	}

	if len(files) == 0 {
		fmt.Fprintln(out, "No files matching 'NUMBER.EXTENSION' found in the current directory.")
		return nil
	}

	plan.Order(files, offset)
	if offset >= 0 {
		fmt.Fprintln(out, "Sorting files from highest original number to lowest for renaming...")
	} else {
		fmt.Fprintln(out, "Sorting files from lowest original number to highest for renaming...")
	}

	fmt.Fprintln(out, "\nAttempting to rename files:")
	rename.NewExecutor(out, errOut).Execute(files, offset, threshold)

	fmt.Fprintln(out, "\nRenaming process complete.")
	return nil
}

// printIntro explains the tool before the first prompt, so the two bare
// integer questions have context.
func printIntro(out io.Writer) {
	fmt.Fprintln(out, "This program renames files in the current directory.")
	fmt.Fprintln(out, "It targets files named like 'NUMBER.EXTENSION' (e.g., 5.txt, 33.jpg).")
	fmt.Fprintln(out, "It will add your input number 'a' to the numeric part of these filenames.")
	fmt.Fprintln(out, "For example, if 'a' is 2, 5.txt becomes 7.txt.")
	fmt.Fprintln(out, "If 'a' is -2, 5.txt becomes 3.txt (files with new negative numbers will be skipped).")
	fmt.Fprintln(out, "You will also enter a number 'b'. Only files with an original number >= 'b' will be renamed.")
	fmt.Fprintln(out)
}

// promptInt prints label and reads one line as a base-10 integer.
//
// bufio.Scanner handles different line endings across platforms (LF on
// Unix, CRLF on Windows). A closed stdin (EOF before any line) is an
// input error like any other: the caller turns it into exit code 1.
func promptInt(scanner *bufio.Scanner, out io.Writer, label string) (int, error) {
	fmt.Fprint(out, label)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}

	value, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, err
	}
	return value, nil
}
