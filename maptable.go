// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

// maptable implements a novelty table using the runtime hashmap. We keep one
// set of ranks per arity. We use space proportional to the number of witnessed
// tuples, which is much smaller than the number of possible tuples in most
// problems.
type maptable struct {
	fluents   int                   // Number of fluents in the model
	bound     int                   // Largest arity of witnessed tuples
	binom     binomials             // Used to compute the rank of tuples
	seen      []map[uint64]struct{} // Ranks of witnessed tuples, by arity (k-1)
	count     int                   // Number of witnessed tuples
	maxtuples int                   // Maximal number of witnessed tuples (0 if no limit)
	scratch
}

func (t *maptable) resize(bound int) error {
	binom, err := checkbinomials(t.fluents, bound)
	if err != nil {
		return err
	}
	t.binom = binom
	t.bound = bound
	t.seen = make([]map[uint64]struct{}, bound)
	for k := range t.seen {
		t.seen[k] = make(map[uint64]struct{})
	}
	t.count = 0
	return nil
}

func (t *maptable) reset() {
	for _, m := range t.seen {
		clear(m)
	}
	t.count = 0
}

func (t *maptable) arity() int {
	return t.bound
}

func (t *maptable) witnessed() int {
	return t.count
}

func (t *maptable) novelty(s State) (int, error) {
	if err := checkrange(s, t.fluents); err != nil {
		return 0, err
	}
	res := t.bound + 1
	for k := 1; k <= t.bound; k++ {
		seen := t.seen[k-1]
		t.each(s.Fluents(), k, func(tuple []int) {
			r := t.binom.rank(tuple)
			if _, ok := seen[r]; !ok {
				seen[r] = struct{}{}
				t.count++
				if k < res {
					res = k
				}
			}
		})
		if t.maxtuples > 0 && t.count > t.maxtuples {
			return res, seterror(ErrResourceExhausted, "more than %d tuples witnessed", t.maxtuples)
		}
	}
	return res, nil
}
