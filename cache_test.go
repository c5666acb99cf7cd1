// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoalcache(t *testing.T) {
	var gc goalcache
	gc.cacheinit(10)
	assert.Equal(t, 11, len(gc.table))
	s := NewState(1, 2)
	_, ok := gc.match(s)
	assert.False(t, ok)
	gc.set(s, false)
	res, ok := gc.match(NewState(2, 1))
	assert.True(t, ok)
	assert.False(t, res)
	// a different state in the same slot is a miss
	other := NewState(3)
	other.hash = s.hash
	_, ok = gc.match(other)
	assert.False(t, ok)
	gc.cachereset()
	_, ok = gc.match(s)
	assert.False(t, ok)
	assert.Equal(t, 1, gc.hit)
	assert.Equal(t, 3, gc.miss)
	assert.Contains(t, gc.String(), "Hits:         1")
}

func TestDenotations(t *testing.T) {
	var nilcache *Denotations
	nilcache.Store(0, []int{1})
	_, ok := nilcache.Lookup(0)
	assert.False(t, ok)
	assert.Equal(t, 0, nilcache.Len())

	d := &Denotations{}
	d.Store(3, []int{1, 0})
	v, ok := d.Lookup(3)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 0}, v)
	assert.Equal(t, 1, d.Hits())
	d.Reset()
	assert.Equal(t, 0, d.Len())
	_, ok = d.Lookup(3)
	assert.False(t, ok)
}

func TestPrimeGte(t *testing.T) {
	for _, tt := range [][2]int{{0, 2}, {2, 2}, {10, 11}, {14, 17}, {10000, 10007}, {121, 127}} {
		assert.Equal(t, tt[1], primeGte(tt[0]), "primeGte(%d)", tt[0])
	}
}
