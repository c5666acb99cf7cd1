// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

// Node is a search node. Nodes are stored in an arena and refer to their
// parent by index, with Parent equal to -1 for the root of an episode.
type Node struct {
	ID     int     // Index of the node in its arena
	State  State   // The state reached by this node
	G      int     // Depth of the node from the root
	Parent int     // Index of the parent node, -1 for the root
	Action Action  // Action applied in the parent, NoAction for the root
	Cost   float64 // Accumulated cost from the root
}

// ************************************************************

// arena stores the nodes created during one episode. Nodes are never removed
// before the arena is reset.
type arena struct {
	nodes []Node
}

func (a *arena) reset() {
	clear(a.nodes)
	a.nodes = a.nodes[:0]
}

// add creates a new node and returns its index
func (a *arena) add(s State, parent int, act Action, cost float64) int {
	id := len(a.nodes)
	n := Node{ID: id, State: s, Parent: parent, Action: act, Cost: cost}
	if parent >= 0 {
		n.G = a.nodes[parent].G + 1
		n.Cost += a.nodes[parent].Cost
	}
	a.nodes = append(a.nodes, n)
	return id
}

func (a *arena) get(id int) Node {
	return a.nodes[id]
}

func (a *arena) len() int {
	return len(a.nodes)
}

// path returns the nodes from the root to node id, both included.
func (a *arena) path(id int) []Node {
	res := []Node{}
	for ; id >= 0; id = a.nodes[id].Parent {
		res = append(res, a.nodes[id])
	}
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return res
}

// ************************************************************

// closed is a closed list over the nodes of an arena. Nodes with the same hash
// value are chained using the next slice, indexed by node id, where -1 marks
// the end of a chain. The state of a node is its identity, so a closed list
// never contains two equal states.
type closed struct {
	a     *arena
	heads map[uint64]int
	next  []int
	order []int
}

func newclosed(a *arena) *closed {
	return &closed{a: a, heads: make(map[uint64]int)}
}

func (c *closed) reset() {
	clear(c.heads)
	c.next = c.next[:0]
	c.order = c.order[:0]
}

// put adds node id to the closed list. It does not check if an equal state is
// already present; callers use seek for that.
func (c *closed) put(id int) {
	for len(c.next) <= id {
		c.next = append(c.next, -1)
	}
	h := c.a.nodes[id].State.Hash()
	if head, ok := c.heads[h]; ok {
		c.next[id] = head
	} else {
		c.next[id] = -1
	}
	c.heads[h] = id
	c.order = append(c.order, id)
}

// seek returns the index of the node with state s, if any.
func (c *closed) seek(s State) (int, bool) {
	head, ok := c.heads[s.Hash()]
	if !ok {
		return -1, false
	}
	for id := head; id >= 0; id = c.next[id] {
		if c.a.nodes[id].State.Equal(s) {
			return id, true
		}
	}
	return -1, false
}

func (c *closed) len() int {
	return len(c.order)
}

// each calls f on every node of the list, in insertion order, and stops at the
// first error.
func (c *closed) each(f func(Node) error) error {
	for _, id := range c.order {
		if err := f(c.a.nodes[id]); err != nil {
			return err
		}
	}
	return nil
}

// ************************************************************

// fifo is the open list of breadth-first searches.
type fifo struct {
	buf  []int
	head int
}

func (q *fifo) reset() {
	q.buf = q.buf[:0]
	q.head = 0
}

func (q *fifo) push(id int) {
	q.buf = append(q.buf, id)
}

func (q *fifo) pop() int {
	id := q.buf[q.head]
	q.head++
	if q.head == len(q.buf) {
		q.reset()
	}
	return id
}

func (q *fifo) len() int {
	return len(q.buf) - q.head
}
