// Package plan computes the collision-free processing order for a rename
// batch.
//
// The core guarantee: applying renames in the returned order never
// produces a target path equal to the current path of a file that has not
// been processed yet. For a non-negative offset every target number is
// greater than or equal to its source, so renaming highest-first means any
// in-batch name a rename could land on has already been vacated. For a
// negative offset the argument mirrors: lowest-first.
//
// The guarantee only covers collisions inside the batch. A target that
// coincides with an unrelated file outside the batch is not detected here;
// it surfaces as an OS rename error in the executor.
package plan
