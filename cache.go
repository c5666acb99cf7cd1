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
	"fmt"
)

// ************************************************************

// goalcache is a direct-mapped cache used to remember the result of goal tests
// with sketches. Entries are indexed by the hash of states and checked for
// equality, so a collision only evicts the previous entry.
type goalcache struct {
	table  []goalentry
	hit    int // entries found in the cache
	miss   int // entries not found in the cache
	stored int // entries stored since the last reset
}

type goalentry struct {
	state  State
	valid  bool
	result bool
}

func (gc *goalcache) cacheinit(size int) {
	// we never check if the creation of the slice panic because of lack of memory
	gc.table = make([]goalentry, primeGte(size))
	gc.cachereset()
}

func (gc *goalcache) cachereset() {
	for k := range gc.table {
		gc.table[k] = goalentry{}
	}
	gc.stored = 0
}

// match returns the result stored for state s, if any.
func (gc *goalcache) match(s State) (bool, bool) {
	entry := gc.table[slot(s.Hash(), len(gc.table))]
	if entry.valid && entry.state.Equal(s) {
		gc.hit++
		return entry.result, true
	}
	gc.miss++
	return false, false
}

func (gc *goalcache) set(s State, result bool) bool {
	gc.table[slot(s.Hash(), len(gc.table))] = goalentry{state: s, valid: true, result: result}
	gc.stored++
	return result
}

func (gc *goalcache) String() string {
	res := fmt.Sprintf("Goal cache:   %d entries\n", len(gc.table))
	res += fmt.Sprintf("Hits:         %d\n", gc.hit)
	res += fmt.Sprintf("Misses:       %d\n", gc.miss)
	if gc.hit+gc.miss > 0 {
		res += fmt.Sprintf("Hit ratio:    %.1f%%\n", 100*float64(gc.hit)/float64(gc.hit+gc.miss))
	}
	return res
}

// ************************************************************

// Denotations is a cache for the values of features in the nodes of an
// episode. Values are indexed by node ID. Since node IDs are only unique
// inside an episode, the cache is cleared every time a new episode starts. A
// nil *Denotations is a valid, always empty, cache.
type Denotations struct {
	values map[int][]int
	hit    int
	miss   int
}

// Lookup returns the values stored for node id.
func (d *Denotations) Lookup(id int) ([]int, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.values[id]
	if ok {
		d.hit++
	} else {
		d.miss++
	}
	return v, ok
}

// Store records the values of node id.
func (d *Denotations) Store(id int, values []int) {
	if d == nil {
		return
	}
	if d.values == nil {
		d.values = make(map[int][]int)
	}
	d.values[id] = values
}

// Len returns the number of nodes in the cache.
func (d *Denotations) Len() int {
	if d == nil {
		return 0
	}
	return len(d.values)
}

// Hits returns the number of successful lookups since the cache was created.
func (d *Denotations) Hits() int {
	if d == nil {
		return 0
	}
	return d.hit
}

// Reset clears the cache.
func (d *Denotations) Reset() {
	if d == nil {
		return
	}
	clear(d.values)
}
