// Package solo contains single-value stage constructors. Each function wraps a
// plain Go function into a rop.Callback so it can take part in a chain or be
// lifted over a slice by package mass.
//
// Highlights:
// - Validate/Check/Checkf: fail with a bad-parameter error on invalid input
// - Map: transform the value, cannot fail
// - Try: call a function (Out, error) and convert error to failure
// - FailOnError: keep the value unless the function returns an error
// - Tee: side-effect helper
package solo
