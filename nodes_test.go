// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaPath(t *testing.T) {
	var a arena
	root := a.add(NewState(0), -1, NoAction, 0)
	n1 := a.add(NewState(1), root, 3, 2)
	n2 := a.add(NewState(2), n1, 5, 1.5)
	a.add(NewState(3), root, 4, 1)
	path := a.path(n2)
	assert.Len(t, path, 3)
	assert.Equal(t, []Action{NoAction, 3, 5}, []Action{path[0].Action, path[1].Action, path[2].Action})
	assert.Equal(t, 2, path[2].G)
	assert.Equal(t, 3.5, path[2].Cost)
	a.reset()
	assert.Equal(t, 0, a.len())
}

func TestClosed(t *testing.T) {
	var a arena
	c := newclosed(&a)
	for k := 0; k < 100; k++ {
		id := a.add(NewState(k, k+1), -1, NoAction, 0)
		if k%2 == 0 {
			c.put(id)
		}
	}
	assert.Equal(t, 50, c.len())
	for k := 0; k < 100; k++ {
		id, ok := c.seek(NewState(k+1, k))
		if k%2 == 0 {
			assert.True(t, ok)
			assert.Equal(t, k, id)
		} else {
			assert.False(t, ok)
		}
	}
	order := []int{}
	assert.NoError(t, c.each(func(n Node) error {
		order = append(order, n.ID)
		return nil
	}))
	assert.Equal(t, 50, len(order))
	assert.Equal(t, 0, order[0])
	assert.Equal(t, 98, order[49])
	stop := errors.New("stop")
	assert.Equal(t, stop, c.each(func(Node) error { return stop }))
	c.reset()
	_, ok := c.seek(NewState(0, 1))
	assert.False(t, ok)
	assert.Equal(t, 0, c.len())
}

// Two nodes with the same hash value are chained in the same bucket.
func TestClosedCollision(t *testing.T) {
	var a arena
	c := newclosed(&a)
	s1, s2 := NewState(1), NewState(2)
	s2.hash = s1.hash
	c.put(a.add(s1, -1, NoAction, 0))
	c.put(a.add(s2, -1, NoAction, 0))
	id, ok := c.seek(s1)
	assert.True(t, ok)
	assert.Equal(t, 0, id)
	id, ok = c.seek(s2)
	assert.True(t, ok)
	assert.Equal(t, 1, id)
}

func TestFifo(t *testing.T) {
	var q fifo
	for k := 0; k < 5; k++ {
		q.push(k)
	}
	assert.Equal(t, 0, q.pop())
	assert.Equal(t, 1, q.pop())
	q.push(5)
	assert.Equal(t, 4, q.len())
	for k := 2; k <= 5; k++ {
		assert.Equal(t, k, q.pop())
	}
	assert.Equal(t, 0, q.len())
}
