// Package mass lifts single-value callbacks over slices of values and provides
// Deduplicate for repeatable flags.
package mass
