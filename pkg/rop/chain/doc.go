// Package chain composes rop.Callback stages into a single callback that runs
// them left-to-right, feeding each stage's output into the next one.
//
// Evaluation stops at the first failing stage and its error is returned
// unchanged; later stages never run.
//
// Key operations:
// - All: compose any number of same-typed stages (identity when empty)
// - Then/Then3: compose stages that change the value's type
// - Pipeline: immutable builder over same-typed stages
package chain
