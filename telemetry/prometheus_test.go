// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package telemetry

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dalzilio/siw"
	"github.com/dalzilio/siw/strips"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "solved"},
		{siw.ErrDeadEnd, "dead_end"},
		{fmt.Errorf("wrapped: %w", siw.ErrWidthCap), "width_cap"},
		{siw.ErrRuleCycle, "rule_cycle"},
		{siw.ErrResourceExhausted, "resource_exhausted"},
		{fmt.Errorf("%w: %w", siw.ErrInterrupted, context.Canceled), "interrupted"},
		{errors.New("boom"), "error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Result(tt.err))
	}
}

func TestSink(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink := NewPrometheus(reg, "siw")
	p, err := strips.Compile(strips.Gripper(2))
	require.NoError(t, err)

	plan, err := siw.FindPlan(context.Background(), p, siw.Observer(sink))
	require.NoError(t, err)
	sink.Result(plan, err)

	_, err = siw.FindPlan(context.Background(), p, siw.Observer(sink), siw.Maxwidth(1))
	require.Error(t, err)
	sink.Result(nil, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(sink.runs.WithLabelValues("solved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.runs.WithLabelValues("width_cap")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(sink.expanded), float64(plan.Stats.Expanded))
	assert.GreaterOrEqual(t, testutil.ToFloat64(sink.generated), float64(plan.Stats.Generated))
	assert.Equal(t, 1, testutil.CollectAndCount(sink.length))
	assert.Equal(t, 1, testutil.CollectAndCount(sink.width))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}
