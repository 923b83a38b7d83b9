// Package rangeset provides pure helpers for working with sparse sets of
// content IDs: coalescing sorted individual IDs into minimal contiguous runs
// and computing the power-of-ten alignment a run of a given length must start
// on.
//
// IDs are grouped in decades to keep related content together in-game: a run
// of length 37 must start on a multiple of 10, a run of length 240 on a
// multiple of 100.
//
// Every mutating reservation operation goes through Merge so that run
// coalescing lives in exactly one place.
package rangeset
