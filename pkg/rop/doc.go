// Package rop holds the shared vocabulary of the ropflag callbacks: the
// Callback type every stage implements, the Invocation a stage runs in and the
// BadParameterError that a failing stage returns.
//
// Callbacks are railway stages: the value moves forward while stages succeed
// and the first failure leaves the track and is returned as is. Building
// blocks live in the sub-packages:
//   - chain: compose callbacks left-to-right
//   - mass: lift a callback over a slice, deduplicate slices
//   - solo: turn plain functions into callbacks
//   - check: ready-made validators
//   - binding: attach callbacks to cobra/pflag flags
package rop
