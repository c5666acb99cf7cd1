// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hasfluent(f int) goaltest {
	return func(_ int, s State) bool { return s.Has(f) }
}

func TestIWBounds(t *testing.T) {
	tests := []struct {
		name     string
		bound    int
		goal     int
		expanded int
		pruned   int
		length   int
	}{
		{"width 1 fails", 1, -1, 2, 2, 0},
		{"width 2 solves", 2, 2, 3, 2, 2},
		{"width 3 solves", 3, 2, 3, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := diamond()
			e := newengine(m, makeconfigs())
			require.NoError(t, e.setbound(tt.bound))
			out, err := e.run(context.Background(), m.Init(), hasfluent(fg))
			require.NoError(t, err)
			assert.Equal(t, tt.expanded, out.expanded)
			assert.Equal(t, tt.pruned, out.pruned)
			if tt.goal < 0 {
				assert.Equal(t, -1, out.goal)
				return
			}
			path := e.nodes.path(out.goal)
			assert.Equal(t, tt.length, len(path)-1)
			assert.Equal(t, Action(1), path[1].Action)
			assert.Equal(t, Action(2), path[2].Action)
		})
	}
}

// Running IW twice from the same root gives the same result, since all the
// structures are reset between episodes.
func TestIWIdempotent(t *testing.T) {
	m := diamond()
	e := newengine(m, makeconfigs())
	require.NoError(t, e.setbound(2))
	out1, err := e.run(context.Background(), m.Init(), hasfluent(fg))
	require.NoError(t, err)
	p1 := e.nodes.path(out1.goal)
	out2, err := e.run(context.Background(), m.Init(), hasfluent(fg))
	require.NoError(t, err)
	p2 := e.nodes.path(out2.goal)
	assert.Equal(t, out1, out2)
	assert.Equal(t, p1, p2)
}

func TestIWRootIsGoal(t *testing.T) {
	m := diamond()
	e := newengine(m, makeconfigs())
	require.NoError(t, e.setbound(1))
	out, err := e.run(context.Background(), m.Init(), hasfluent(fa))
	require.NoError(t, err)
	assert.Equal(t, 0, out.goal)
	assert.Equal(t, 0, out.expanded)
}

func TestIWLookahead(t *testing.T) {
	m := diamond()
	e := newengine(m, makeconfigs())
	require.NoError(t, e.setbound(0))
	out, err := e.run(context.Background(), m.Init(), hasfluent(fg))
	require.NoError(t, err)
	assert.Equal(t, -1, out.goal)
	assert.Equal(t, 1, out.expanded)
	assert.Equal(t, 2, out.generated)
	assert.Equal(t, 2, out.pruned)

	out, err = e.run(context.Background(), m.Init(), hasfluent(fc))
	require.NoError(t, err)
	assert.Equal(t, 1, out.goal)
	assert.Equal(t, Action(0), e.nodes.get(out.goal).Action)
}

func TestIWInterrupt(t *testing.T) {
	m := diamond()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := newengine(m, makeconfigs())
	require.NoError(t, e.setbound(1))
	_, err := e.run(ctx, m.Init(), hasfluent(fg))
	assert.True(t, errors.Is(err, ErrInterrupted))
	assert.True(t, errors.Is(err, context.Canceled))

	c := makeconfigs()
	c.maxexpansions = 1
	e = newengine(m, c)
	require.NoError(t, e.setbound(1))
	out, err := e.run(context.Background(), m.Init(), hasfluent(fg))
	assert.True(t, errors.Is(err, ErrInterrupted))
	assert.Equal(t, 1, out.expanded)
}
