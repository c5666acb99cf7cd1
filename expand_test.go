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

func TestExpandSwitch(t *testing.T) {
	sp, err := Expand(context.Background(), lightswitch(true))
	require.NoError(t, err)
	assert.True(t, sp.Complete)
	assert.Equal(t, 2, sp.Len())
	assert.Equal(t, 2, sp.Edges())
	assert.Equal(t, []int{1}, sp.Goals)
	assert.Equal(t, []bool{true, true}, sp.Alive)
	assert.Empty(t, sp.DeadEnds())
	assert.Equal(t, [][]int{{1}, {0}}, sp.Children)
	assert.Equal(t, [][]int{{1}, {0}}, sp.Parents)
}

func TestExpandDiamond(t *testing.T) {
	sp, err := Expand(context.Background(), diamond())
	require.NoError(t, err)
	// {a,b} {b,c} {a,c} {c} {a,c,g} {c,g}
	assert.Equal(t, 6, sp.Len())
	assert.Equal(t, []int{4, 5}, sp.Goals)
	// {b,c} and {c} cannot reach g
	assert.Equal(t, []int{1, 3}, sp.DeadEnds())
	// {c} has two predecessors
	assert.ElementsMatch(t, []int{1, 2}, sp.Parents[3])
	assert.Equal(t, 0, sp.Nodes[0].ID)
	assert.Equal(t, -1, sp.Nodes[0].Parent)
}

func TestExpandUnreachable(t *testing.T) {
	sp, err := Expand(context.Background(), lightswitch(false))
	require.NoError(t, err)
	assert.Empty(t, sp.Goals)
	assert.Equal(t, []int{0, 1}, sp.DeadEnds())
}

func TestExpandBudget(t *testing.T) {
	sp, err := Expand(context.Background(), diamond(), Maxexpansions(2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInterrupted))
	assert.False(t, sp.Complete)
	// root and its two successors, plus {c} generated from {b,c}
	assert.Equal(t, 4, sp.Len())
}

func TestExpandCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sp, err := Expand(ctx, diamond())
	assert.True(t, errors.Is(err, ErrInterrupted))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, sp.Len())
}

func TestExpandSample(t *testing.T) {
	sp1, err := Expand(context.Background(), diamond(), Seed(7), Samplesize(3))
	require.NoError(t, err)
	sp2, err := Expand(context.Background(), diamond(), Seed(7), Samplesize(3))
	require.NoError(t, err)
	assert.Len(t, sp1.Sample, 3)
	assert.Equal(t, sp1.Sample, sp2.Sample)
	assert.IsIncreasing(t, sp1.Sample)
	for _, id := range sp1.Sample {
		assert.Less(t, id, sp1.Len())
	}

	sp3, err := Expand(context.Background(), diamond(), Samplesize(100))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, sp3.Sample)
}
