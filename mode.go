// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

import "fmt"

// Mode selects the subgoal detection policy used with sketches.
type Mode int

const (
	// Reroot restarts every episode with IW(1) and records a width of 0 for
	// segments of at most one action.
	Reroot Mode = iota
	// Lookahead starts every episode with a one-step lookahead (IW(0)), records
	// the bound actually used as the width of a segment, and never accepts the
	// same subgoal state twice in a run.
	Lookahead
)

var modenames = [2]string{
	Reroot:    "reroot",
	Lookahead: "lookahead",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modenames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modenames[m]
}

// ParseMode returns the Mode with the given name.
func ParseMode(name string) (Mode, error) {
	for k, v := range modenames {
		if v == name {
			return Mode(k), nil
		}
	}
	return Reroot, fmt.Errorf("unknown mode %q (want reroot or lookahead)", name)
}

// TableKind selects the implementation of novelty tables.
type TableKind int

const (
	MapTable   TableKind = iota // Sparse table based on Go maps
	DenseTable                  // Bitset indexed by the rank of tuples
)

var tablenames = [2]string{
	MapTable:   "map",
	DenseTable: "dense",
}

func (t TableKind) String() string {
	if t < 0 || int(t) >= len(tablenames) {
		return fmt.Sprintf("table(%d)", int(t))
	}
	return tablenames[t]
}

// ParseTableKind returns the TableKind with the given name.
func ParseTableKind(name string) (TableKind, error) {
	for k, v := range tablenames {
		if v == name {
			return TableKind(k), nil
		}
	}
	return MapTable, fmt.Errorf("unknown table kind %q (want map or dense)", name)
}
