package mcts

import "math"

// NodeID addresses a node inside a Tree
type NodeID int32

// NoNode marks an absent parent or child
const NoNode NodeID = -1

// Node is one decision point. Children are created lazily by Expand.
type Node struct {
	Round  Round
	IsStay bool // choice that led here; meaningless for the root
	Visits int
	Value  float64 // sum of rollout outcomes, 1 win and 0 loss
	Parent NodeID
	Stay   NodeID
	Fold   NodeID
}

// Expanded reports whether the node has children
func (n *Node) Expanded() bool {
	return n.Stay != NoNode
}

// Folded reports whether the node was reached by folding
func (n *Node) Folded() bool {
	return n.Parent != NoNode && !n.IsStay
}

// Terminal reports whether no decision remains below the node: the hand has
// reached the river or the tracked player folded.
func (n *Node) Terminal() bool {
	return n.Round.Terminal() || n.Folded()
}

// Mean returns the average rollout value, 0 for an unvisited node
func (n *Node) Mean() float64 {
	if n.Visits == 0 {
		return 0
	}
	return n.Value / float64(n.Visits)
}

// Tree is an arena of nodes. Parents and children refer to each other by
// index, so backpropagation walks up without owning pointers.
type Tree struct {
	nodes []Node
}

// NewTree creates a tree holding a single unvisited root
func NewTree(root Round) *Tree {
	t := &Tree{nodes: make([]Node, 0, 16)}
	t.nodes = append(t.nodes, Node{
		Round:  root,
		Parent: NoNode,
		Stay:   NoNode,
		Fold:   NoNode,
	})
	return t
}

// Root returns the root node ID
func (t *Tree) Root() NodeID {
	return 0
}

// Node returns the node for id. The pointer is invalidated by Expand.
func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

// Len returns the number of nodes in the tree
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Children returns the node's children in selection order, stay first
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.nodes[id]
	if !n.Expanded() {
		return nil
	}
	return []NodeID{n.Stay, n.Fold}
}

// CanExpand reports whether id is a visited, non-terminal leaf
func (t *Tree) CanExpand(id NodeID) bool {
	n := &t.nodes[id]
	return n.Visits > 0 && !n.Expanded() && !n.Terminal()
}

// Expand creates the stay and fold children of id. It returns false and
// leaves the tree unchanged when the node cannot be expanded.
func (t *Tree) Expand(id NodeID) (stay, fold NodeID, ok bool) {
	if !t.CanExpand(id) {
		return NoNode, NoNode, false
	}

	next := t.nodes[id].Round.Next()
	stay = NodeID(len(t.nodes))
	fold = stay + 1
	t.nodes = append(t.nodes,
		Node{Round: next, IsStay: true, Parent: id, Stay: NoNode, Fold: NoNode},
		Node{Round: next, IsStay: false, Parent: id, Stay: NoNode, Fold: NoNode},
	)
	t.nodes[id].Stay = stay
	t.nodes[id].Fold = fold
	return stay, fold, true
}

// SelectChild returns the child of id with the highest UCB1 score. Unvisited
// children win outright and ties keep stay before fold.
func (t *Tree) SelectChild(id NodeID, exploration float64) NodeID {
	parent := t.nodes[id]
	best := NoNode
	bestScore := math.Inf(-1)
	for _, child := range t.Children(id) {
		c := t.nodes[child]
		score := ucb1(c.Value, c.Visits, parent.Visits, exploration)
		if score > bestScore || best == NoNode {
			best, bestScore = child, score
		}
	}
	return best
}

// Backpropagate adds one visit and value to id and every ancestor
func (t *Tree) Backpropagate(id NodeID, value float64) {
	for id != NoNode {
		n := &t.nodes[id]
		n.Visits++
		n.Value += value
		id = n.Parent
	}
}

// Depth returns the number of edges between id and the root
func (t *Tree) Depth(id NodeID) int {
	depth := 0
	for t.nodes[id].Parent != NoNode {
		id = t.nodes[id].Parent
		depth++
	}
	return depth
}

// ucb1 scores a child as mean + c*sqrt(ln(N)/n). An unvisited child scores
// +Inf so every child is tried once before the formula applies.
func ucb1(value float64, visits, parentVisits int, exploration float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	mean := value / float64(visits)
	if parentVisits <= 1 {
		return mean
	}
	return mean + exploration*math.Sqrt(math.Log(float64(parentVisits))/float64(visits))
}
