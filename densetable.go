// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

// densetable implements a novelty table using one bitset per arity. The bit
// of a tuple of size k is given by its rank, so the bitset for arity k has
// C(n, k) bits, where n is the number of fluents. The total number of bits is
// bounded by the Tablesize option.
type densetable struct {
	fluents int        // Number of fluents in the model
	bound   int        // Largest arity of witnessed tuples
	binom   binomials  // Used to compute the rank of tuples
	bits    [][]uint64 // Bitsets, by arity (k-1)
	count   int        // Number of witnessed tuples
	budget  uint64     // Maximal number of bits
	scratch
}

func (t *densetable) resize(bound int) error {
	binom, err := checkbinomials(t.fluents, bound)
	if err != nil {
		return err
	}
	total := uint64(0)
	for k := 1; k <= bound; k++ {
		c, _ := binom.get(t.fluents, k)
		if c > t.budget-total {
			return seterror(ErrResourceExhausted, "dense table for width %d needs more than %d bits", bound, t.budget)
		}
		total += c
	}
	t.bits = make([][]uint64, bound)
	for k := 1; k <= bound; k++ {
		c, _ := binom.get(t.fluents, k)
		t.bits[k-1] = make([]uint64, (c+63)/64)
	}
	t.binom = binom
	t.bound = bound
	t.count = 0
	return nil
}

func (t *densetable) reset() {
	for _, b := range t.bits {
		clear(b)
	}
	t.count = 0
}

func (t *densetable) arity() int {
	return t.bound
}

func (t *densetable) witnessed() int {
	return t.count
}

func (t *densetable) novelty(s State) (int, error) {
	if err := checkrange(s, t.fluents); err != nil {
		return 0, err
	}
	res := t.bound + 1
	for k := 1; k <= t.bound; k++ {
		set := t.bits[k-1]
		t.each(s.Fluents(), k, func(tuple []int) {
			r := t.binom.rank(tuple)
			w, m := r/64, uint64(1)<<(r%64)
			if set[w]&m == 0 {
				set[w] |= m
				t.count++
				if k < res {
					res = k
				}
			}
		})
	}
	return res, nil
}
