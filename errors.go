// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

import (
	"errors"
	"fmt"
)

// Failure is the error returned by FindPlan when no plan is found. It records
// the root and the bound of the last episode, together with the statistics of
// the run. A Failure unwraps to one of the failure kinds (ErrDeadEnd,
// ErrWidthCap, ...) and, when relevant, to the error that caused it.
type Failure struct {
	Kind  error // One of the ErrXXX failure kinds
	Root  State // Root of the last episode
	Bound int   // Bound of the last episode
	Stats Stats // Statistics of the run up to the failure
	cause error
}

func (f *Failure) Error() string {
	if f.cause != nil {
		return fmt.Sprintf("%s at bound %d (%d episodes)", f.cause, f.Bound, f.Stats.Episodes)
	}
	return fmt.Sprintf("%s at bound %d (%d episodes)", f.Kind, f.Bound, f.Stats.Episodes)
}

// Unwrap returns the failure kind and its cause, if any.
func (f *Failure) Unwrap() []error {
	if f.cause == nil {
		return []error{f.Kind}
	}
	return []error{f.Kind, f.cause}
}

// Unsolvable returns true if the failure denotes a structural impossibility
// (a dead end, or a width cap) rather than a limit on resources or on the
// number of episodes.
func (f *Failure) Unsolvable() bool {
	return errors.Is(f.Kind, ErrDeadEnd) || errors.Is(f.Kind, ErrWidthCap)
}

// seterror builds an error of the given kind with a formatted cause.
func seterror(kind error, format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, a...))
}

// kindof returns the failure kind wrapped in err, or nil if err is not one of
// ours.
func kindof(err error) error {
	for _, k := range []error{ErrResourceExhausted, ErrInterrupted, ErrDeadEnd, ErrWidthCap, ErrRuleCycle} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
