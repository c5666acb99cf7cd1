// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package siw

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// named adds names to the light switch model.
type named struct {
	*toy
}

func (named) FluentName(f int) string {
	return [3]string{"off", "on", "g"}[f]
}

func (named) ActionName(a Action) string {
	return [2]string{"toggle", "untoggle"}[a]
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "{}", Describe(NewState(), nil))
	assert.Equal(t, "{f0, f2}", Describe(NewState(2, 0), nil))
	assert.Equal(t, "{off, g}", Describe(NewState(0, 2), named{}))
}

func TestPrintState(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, PrintState(&sb, NewState(1, 2), named{}))
	assert.Equal(t, "1\ton\n2\tg\n", sb.String())
}

func TestPrintSpace(t *testing.T) {
	m := named{lightswitch(true)}
	sp, err := Expand(context.Background(), m)
	require.NoError(t, err)
	var sb strings.Builder
	require.NoError(t, PrintSpace(&sb, sp, m))
	assert.Equal(t, "(N) 0 A {off}\n(N) 1 G {on}\n(E) 0 1\n(E) 1 0\n", sb.String())
}

func TestPrintPlan(t *testing.T) {
	m := named{lightswitch(true)}
	p, err := FindPlan(context.Background(), m)
	require.NoError(t, err)
	var sb strings.Builder
	require.NoError(t, PrintPlan(&sb, p, m))
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{";", "segment", "1", "width", "0", "goal"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "(toggle)", "1"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{";", "cost", "1", "1", "actions", "1", "segments"}, strings.Fields(lines[2]))
}

func TestPrintStats(t *testing.T) {
	p, err := FindPlan(context.Background(), diamond())
	require.NoError(t, err)
	var sb strings.Builder
	require.NoError(t, PrintStats(&sb, p.Stats))
	assert.Contains(t, sb.String(), "Expanded:     5\n")
	assert.Contains(t, sb.String(), "Episodes:     1 (2 calls to IW)\n")
	assert.Contains(t, sb.String(), "Max width:    2\n")
}

func TestPrintSpaceCodes(t *testing.T) {
	sp, err := Expand(context.Background(), diamond())
	require.NoError(t, err)
	var sb strings.Builder
	require.NoError(t, PrintSpace(&sb, sp, nil))
	lines := strings.Split(sb.String(), "\n")
	codes := []string{}
	for _, l := range lines[:sp.Len()] {
		codes = append(codes, strings.Fields(l)[2])
	}
	assert.Equal(t, []string{"A", "D", "A", "D", "G", "G"}, codes)
}
