// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package strips provides a siw.Model for grounded STRIPS problems.

Problems are described in YAML with a list of fluent names, an initial state,
a goal and a list of ground actions, each with a precondition, an add list and
a delete list:

	name: switch
	fluents: [off, on]
	init: [off]
	goal: [on]
	actions:
	  - name: toggle
	    pre: [off]
	    add: [on]
	    del: [off]

The list of fluents is optional; when it is missing, fluents are numbered in
their order of appearance in the file. Actions have a default cost of 1.
Successor states are computed by removing the delete list and then adding the
add list.
*/
package strips
