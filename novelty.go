// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

import (
	"fmt"
	"math"
	"math/bits"
)

// table is the interface of novelty tables. A table records the tuples of
// fluents witnessed in the states seen during an episode, for every arity
// between 1 and the current bound. Tuples are never forgotten before a call to
// reset or resize.
type table interface {
	// resize sets the bound of the table and clears it.
	resize(bound int) error
	// reset clears all the witnessed tuples but keeps the bound.
	reset()
	// arity returns the current bound.
	arity() int
	// novelty returns the smallest arity k such that s contains a tuple of size
	// k never witnessed before, or arity()+1 if there are none. All the tuples
	// in s are witnessed as a side effect.
	novelty(s State) (int, error)
	// witnessed returns the number of tuples witnessed since the last reset.
	witnessed() int
}

func newtable(c *configs, fluents int) table {
	if c.tablekind == DenseTable {
		return &densetable{fluents: fluents, budget: uint64(max(c.tablesize, 0))}
	}
	return &maptable{fluents: fluents, maxtuples: c.maxtuples}
}

// ************************************************************

// _SATURATED marks binomial coefficients that do not fit on 64 bits.
const _SATURATED uint64 = math.MaxUint64

// binomials stores the values of C(n, k), with n the number of fluents, in the
// form binomials[k][n].
type binomials [][]uint64

func makebinomials(n, k int) binomials {
	b := make(binomials, k+1)
	for i := range b {
		b[i] = make([]uint64, n+1)
	}
	for m := 0; m <= n; m++ {
		b[0][m] = 1
	}
	for i := 1; i <= k; i++ {
		for m := 1; m <= n; m++ {
			x, y := b[i-1][m-1], b[i][m-1]
			s, carry := bits.Add64(x, y, 0)
			if carry != 0 || x == _SATURATED || y == _SATURATED || s == _SATURATED {
				s = _SATURATED
			}
			b[i][m] = s
		}
	}
	return b
}

// get returns C(n, k) and false if the value does not fit on 64 bits.
func (b binomials) get(n, k int) (uint64, bool) {
	v := b[k][n]
	return v, v != _SATURATED
}

// rank returns the position of a sorted tuple in the colexicographic order of
// tuples with the same size (combinatorial number system). The result is
// smaller than C(n, len(tuple)) when all the fluents are smaller than n.
func (b binomials) rank(tuple []int) uint64 {
	r := uint64(0)
	for i, c := range tuple {
		r += b[i+1][c]
	}
	return r
}

// ************************************************************

// scratch is used to enumerate the tuples of a state without allocation.
type scratch struct {
	idx   []int
	tuple []int
}

// each calls f on every sorted tuple of size k taken from fluents. The tuple
// passed to f is only valid during the call.
func (sc *scratch) each(fluents []int, k int, f func(tuple []int)) {
	n := len(fluents)
	if k <= 0 || k > n {
		return
	}
	sc.idx = sc.idx[:0]
	sc.tuple = sc.tuple[:0]
	for i := 0; i < k; i++ {
		sc.idx = append(sc.idx, i)
		sc.tuple = append(sc.tuple, fluents[i])
	}
	for {
		f(sc.tuple)
		i := k - 1
		for i >= 0 && sc.idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		sc.idx[i]++
		sc.tuple[i] = fluents[sc.idx[i]]
		for j := i + 1; j < k; j++ {
			sc.idx[j] = sc.idx[j-1] + 1
			sc.tuple[j] = fluents[sc.idx[j]]
		}
	}
}

// checkrange returns an error if s mentions a fluent outside [0..fluents).
func checkrange(s State, fluents int) error {
	fs := s.Fluents()
	if len(fs) == 0 {
		return nil
	}
	if fs[0] < 0 || fs[len(fs)-1] >= fluents {
		return fmt.Errorf("state %s has fluents outside of range [0..%d)", s, fluents)
	}
	return nil
}

// checkbinomials builds the binomials for a table of the given bound and
// returns an error if one of the C(fluents, k) overflows.
func checkbinomials(fluents, bound int) (binomials, error) {
	if bound < 0 {
		return nil, fmt.Errorf("negative bound (%d) for novelty table", bound)
	}
	b := makebinomials(fluents, bound)
	for k := 1; k <= bound; k++ {
		if _, ok := b.get(fluents, k); !ok {
			return nil, seterror(ErrResourceExhausted, "cannot index tuples of size %d over %d fluents", k, fluents)
		}
	}
	return b, nil
}
