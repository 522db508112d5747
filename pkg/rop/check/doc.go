// Package check provides ready-made validators and transforms for flag values.
//
// Every constructor returns a rop.Callback, so validators compose with
// chain.All and lift with mass.Each:
//
//	limit := chain.All(check.Positive[int](), check.Max(100))
//	flags := mass.Each(limit)
//
// Failure messages are meant for end users and are returned as
// *rop.BadParameterError.
package check
