package plan

import (
	"sort"

	"github.com/mmr-tortoise/caro/internal/model"
)

// Order sorts files in place into the collision-free processing order for
// the given offset and returns the slice for convenience.
//
// Direction follows the sign of the offset:
//   - offset >= 0: descending by number, so a file moving up can never
//     land on the not-yet-vacated name of a lower-numbered file.
//   - offset < 0: ascending by number, by the symmetric argument.
//
// Files sharing a number (same number, different extension — e.g. "5.txt"
// and "5.jpg") cannot collide with each other, so their relative order is
// irrelevant to safety. They are tie-broken by extension ascending purely
// to keep the order deterministic.
func Order(files []model.MatchedFile, offset int) []model.MatchedFile {
	descending := offset >= 0

	sort.Slice(files, func(i, j int) bool {
		a, b := files[i], files[j]
		if a.Number != b.Number {
			if descending {
				return a.Number > b.Number
			}
			return a.Number < b.Number
		}
		return a.Extension < b.Extension
	})

	return files
}
