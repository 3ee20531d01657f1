package bt

// Node is the evaluation unit of a behavior tree.
// Leaves call back into agent logic, composites combine the statuses of their children.
type Node interface {
	// Evaluate runs the node once for the current tick.
	// A non-nil error always comes with StatusFailure and is returned to the tick caller as is.
	Evaluate() (Status, error)
	// Label is a human-readable name used for diagnostics only.
	Label() string
}

// Composite is a node with an ordered, fixed list of children.
type Composite interface {
	Node
	Children() []Node
}

type baseNode struct{ label string }

func (b baseNode) Label() string { return b.label }

// Walk visits node and its descendants depth-first in priority order.
// depth is 0 for the node passed in. Returning false from fn skips the node's children.
func Walk(node Node, fn func(n Node, depth int) bool) {
	walk(node, 0, fn)
}

func walk(node Node, depth int, fn func(Node, int) bool) {
	if node == nil || !fn(node, depth) {
		return
	}
	if c, ok := node.(Composite); ok {
		for _, ch := range c.Children() {
			walk(ch, depth+1, fn)
		}
	}
}

// Kind returns the node variant name used in outlines and logs.
func Kind(node Node) string {
	switch node.(type) {
	case *Condition:
		return "Condition"
	case *Action:
		return "Action"
	case *Sequence:
		return "Sequence"
	case *Selector:
		return "Selector"
	default:
		return "Node"
	}
}
