package bt

// Composite nodes: Sequence, Selector.
// Both walk their children from the first one on every evaluation. Nothing
// about a previous tick is remembered, so priorities are re-checked each time.

type composite struct {
	baseNode
	children []Node
}

func newComposite(label string, children []Node) (composite, error) {
	if len(children) == 0 {
		return composite{}, configErr(label, ErrNoChildren)
	}
	for _, ch := range children {
		if ch == nil {
			return composite{}, configErr(label, ErrNilChild)
		}
	}
	return composite{
		baseNode: baseNode{label: label},
		children: append([]Node(nil), children...),
	}, nil
}

// Children returns a copy of the children in priority order.
func (c *composite) Children() []Node { return append([]Node(nil), c.children...) }

// Sequence runs children in order until one does not succeed; success if all succeed.
type Sequence struct {
	composite
}

// NewSequence creates a Sequence over at least one child.
func NewSequence(label string, children ...Node) (*Sequence, error) {
	c, err := newComposite(label, children)
	if err != nil {
		return nil, err
	}
	return &Sequence{composite: c}, nil
}

func (s *Sequence) Evaluate() (Status, error) {
	for _, ch := range s.children {
		st, err := ch.Evaluate()
		if err != nil {
			return StatusFailure, err
		}
		if st != StatusSuccess {
			return st, nil
		}
	}
	return StatusSuccess, nil
}

// Selector runs children in order until one does not fail; failure if all fail.
type Selector struct {
	composite
}

// NewSelector creates a Selector over at least one child.
func NewSelector(label string, children ...Node) (*Selector, error) {
	c, err := newComposite(label, children)
	if err != nil {
		return nil, err
	}
	return &Selector{composite: c}, nil
}

func (s *Selector) Evaluate() (Status, error) {
	for _, ch := range s.children {
		st, err := ch.Evaluate()
		if err != nil {
			return StatusFailure, err
		}
		if st != StatusFailure {
			return st, nil
		}
	}
	return StatusFailure, nil
}
