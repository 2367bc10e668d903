package poa

// NodeType distinguishes the representative of an aligned-equivalence class
// from a later member forked off to hold a mismatching letter.
type NodeType uint8

const (
	// TypeRepresentative marks the node at which an aligned-equivalence
	// class was first created. Every class has exactly one of these.
	TypeRepresentative NodeType = 0

	// TypeSecondary marks a node added later because a mismatching letter
	// needed a new node aligned to an existing class.
	TypeSecondary NodeType = 1
)

// Node is a letter-bearing vertex in the POA graph. Its letter and type are
// immutable after creation; its edge lists and aligned set grow
// monotonically as sequences are incorporated.
type Node struct {
	id     int
	letter byte
	typ    NodeType

	outEdges []int // edge ids, in insertion order
	inEdges  []int // edge ids, in insertion order

	// aligned holds the ids of nodes occupying the same MSA column as this
	// one, in the order they were linked. It is an ordered append-only set:
	// duplicates are never inserted.
	aligned []int
}

func newNode(id int, letter byte, typ NodeType) *Node {
	return &Node{id: id, letter: letter, typ: typ}
}

// ID returns the node's stable, dense, 0-based identity.
func (n *Node) ID() int { return n.id }

// Letter returns the byte this node represents.
func (n *Node) Letter() byte { return n.letter }

// Type reports whether this node is a class representative or a secondary
// member of an aligned-equivalence class.
func (n *Node) Type() NodeType { return n.typ }

// OutEdges returns the ids of edges leaving this node, in insertion order.
func (n *Node) OutEdges() []int { return n.outEdges }

// InEdges returns the ids of edges entering this node, in insertion order.
func (n *Node) InEdges() []int { return n.inEdges }

// AlignedNodeIDs returns the ids of nodes aligned to this one (same MSA
// column, distinct letters), in the order they were linked.
func (n *Node) AlignedNodeIDs() []int { return n.aligned }

func (n *Node) addOutEdge(edgeID int) { n.outEdges = append(n.outEdges, edgeID) }
func (n *Node) addInEdge(edgeID int)  { n.inEdges = append(n.inEdges, edgeID) }

// addAligned appends id to the aligned set if it is not already present.
func (n *Node) addAligned(id int) {
	for _, existing := range n.aligned {
		if existing == id {
			return
		}
	}
	n.aligned = append(n.aligned, id)
}
