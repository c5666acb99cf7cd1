// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package siw implements width-based search for classical planning problems,
that is problems where states are sets of true fluents (Boolean state
variables) and actions have preconditions and effects over those fluents. The
package answers the question: find a sequence of actions that transforms the
initial state into a state satisfying a goal condition.

Basics

Problems are given through the Model interface, which exposes the initial
state, the goal test, the set of applicable actions and the successor function.
Package strips provides a concrete Model for grounded STRIPS problems read from
YAML files.

Search does not rely on heuristics but on the notion of novelty. A state is
novel at width b if it makes true a combination of at most b fluents that was
never seen before in the current search episode. The IW(b) algorithm is a
breadth-first search that prunes every state that is not novel. SIW, for
Serialized IW, repeatedly calls IW(1), IW(2), ... to reach one more goal atom at
a time, re-rooting the search at each subgoal it reaches.

Sketches

Instead of fixed goal atoms, subgoals can also be discovered dynamically with a
policy sketch: an ordered set of rules over features of states, see option
Sketch and package policy. A rule fires when its conditions hold in the state
where the episode started and its effects hold between this state and a
candidate state. Two subgoal detection policies are available, see type Mode.

Use of tables

The novelty of states is tracked in a table of witnessed tuples. Our default
implementation (MapTable) uses the Go runtime hashmap. Option Tablekind can be
used to switch to a dense bitset implementation (DenseTable), indexed with the
combinatorial number system, that trades memory for speed and whose size can be
bounded with option Tablesize.

To get access to a trace of every node generated during search, you can
compile your executable with the build tag `debug`.

Search is single-threaded and never spawns goroutines. Long running searches
can be interrupted between two node expansions by cancelling the context given
to FindPlan, or by setting an expansion budget with option Maxexpansions.
*/
package siw
