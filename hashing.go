// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

// Hash functions

// _PAIR is a mapping function that maps (bijectively) a pair of integer (a, b)
// into a unique integer. We let the result wrap around on 64 bits, so it is
// only a perfect hash for small values.
func _PAIR(a, b uint64) uint64 {
	return ((a+b)*(a+b+1))/2 + a
}

// _MIX scrambles the bits of a hash value (finalizer of splitmix64).
func _MIX(h uint64) uint64 {
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return h
}

// ************************************************************

// The hash function for states is #(len, f1, #(f2, ...)) over the sorted list
// of fluents. Equal states always have equal hash values.
func statehash(fluents []int) uint64 {
	h := uint64(len(fluents))
	for _, f := range fluents {
		h = _MIX(_PAIR(h, uint64(f)+1))
	}
	return h
}

// slot returns the index of a hash value in a table of size len.
func slot(h uint64, len int) int {
	return int(h % uint64(len))
}
