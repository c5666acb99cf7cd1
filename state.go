// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

import (
	"fmt"
	"slices"
	"strings"
)

// State is an immutable set of true fluents. The zero value is the empty
// state. States are compared by content, and their hash value is computed
// once, when they are built.
type State struct {
	fluents []int // sorted, without duplicates
	hash    uint64
}

// NewState returns the state where exactly the given fluents are true. The
// fluents can be given in any order, and duplicates are ignored.
func NewState(fluents ...int) State {
	fs := slices.Clone(fluents)
	slices.Sort(fs)
	fs = slices.Compact(fs)
	return State{fluents: fs, hash: statehash(fs)}
}

// Fluents returns the true fluents of s in increasing order. The result
// should not be modified.
func (s State) Fluents() []int {
	return s.fluents
}

// Len returns the number of true fluents in s.
func (s State) Len() int {
	return len(s.fluents)
}

// Has returns true if fluent f is true in s.
func (s State) Has(f int) bool {
	_, ok := slices.BinarySearch(s.fluents, f)
	return ok
}

// HasAll returns true if all the fluents in fs are true in s.
func (s State) HasAll(fs []int) bool {
	for _, f := range fs {
		if !s.Has(f) {
			return false
		}
	}
	return true
}

// Hash returns a hash value for s. Equal states have equal hash values.
func (s State) Hash() uint64 {
	return s.hash
}

// Equal tests equality between states.
func (s State) Equal(t State) bool {
	return s.hash == t.hash && slices.Equal(s.fluents, t.fluents)
}

// Update returns the state obtained from s by removing the fluents in del and
// then adding the fluents in add (STRIPS semantics). Receiver s is unchanged.
func (s State) Update(add, del []int) State {
	fs := make([]int, 0, len(s.fluents)+len(add))
	for _, f := range s.fluents {
		if !slices.Contains(del, f) {
			fs = append(fs, f)
		}
	}
	fs = append(fs, add...)
	return NewState(fs...)
}

func (s State) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for k, f := range s.fluents {
		if k > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", f)
	}
	sb.WriteByte('}')
	return sb.String()
}
