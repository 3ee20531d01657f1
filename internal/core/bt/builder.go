package bt

import "errors"

// Builder constructs a tree in one pass and collects every configuration
// error instead of stopping at the first one.
//
//	b := bt.NewBuilder()
//	wander := b.Sequence("Wander",
//		b.Action("Set random location", z.setRandomLocation),
//		b.Action("Move to", z.moveTo, bt.WithArgs(0.5)),
//	)
//	tree, err := b.Build(wander)
type Builder struct {
	errs []error
}

func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) Condition(label string, fn PredicateFunc, opts ...LeafOption) Node {
	n, err := NewCondition(label, fn, opts...)
	if err != nil {
		b.errs = append(b.errs, err)
		return nil
	}
	return n
}

func (b *Builder) Action(label string, fn ActionFunc, opts ...LeafOption) Node {
	n, err := NewAction(label, fn, opts...)
	if err != nil {
		b.errs = append(b.errs, err)
		return nil
	}
	return n
}

func (b *Builder) Sequence(label string, children ...Node) Node {
	n, err := NewSequence(label, children...)
	if err != nil {
		b.record(err)
		return nil
	}
	return n
}

func (b *Builder) Selector(label string, children ...Node) Node {
	n, err := NewSelector(label, children...)
	if err != nil {
		b.record(err)
		return nil
	}
	return n
}

// record drops nil-child errors caused by a child that already failed to build.
func (b *Builder) record(err error) {
	if len(b.errs) > 0 && errors.Is(err, ErrNilChild) {
		return
	}
	b.errs = append(b.errs, err)
}

// Err returns the configuration errors recorded so far.
func (b *Builder) Err() error { return errors.Join(b.errs...) }

// Build returns the tree rooted at root, or every recorded configuration error.
func (b *Builder) Build(root Node, opts ...TreeOption) (*BehaviorTree, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	return New(root, opts...)
}
