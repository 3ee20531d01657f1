package bt

import "fmt"

// Args is the positional argument tuple captured by a leaf at construction.
type Args []float64

// At returns the i-th argument. Leaves declared with WithArity can index
// required positions without checking.
func (a Args) At(i int) float64 { return a[i] }

// Or returns the i-th argument, or def when it was not captured.
func (a Args) Or(i int, def float64) float64 {
	if i < 0 || i >= len(a) {
		return def
	}
	return a[i]
}

// PredicateFunc is the callable bound to a Condition.
type PredicateFunc func(args Args) (bool, error)

// ActionFunc is the callable bound to an Action. It is the authority on
// whether its work is still in progress.
type ActionFunc func(args Args) (Status, error)

type leafConfig struct {
	args  Args
	arity int
}

// LeafOption configures a Condition or Action at construction.
type LeafOption func(*leafConfig)

// WithArgs captures positional arguments passed to the callable on every evaluation.
func WithArgs(args ...float64) LeafOption {
	return func(c *leafConfig) { c.args = append(Args(nil), args...) }
}

// WithArity declares how many positional arguments the callable requires.
func WithArity(n int) LeafOption {
	return func(c *leafConfig) { c.arity = n }
}

func newLeafConfig(label string, hasFn bool, opts []LeafOption) (leafConfig, error) {
	var cfg leafConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if !hasFn {
		return cfg, configErr(label, ErrMissingCallable)
	}
	if len(cfg.args) < cfg.arity {
		return cfg, configErr(label, fmt.Errorf("%w: want %d, got %d", ErrMissingArgs, cfg.arity, len(cfg.args)))
	}
	return cfg, nil
}

// Condition maps a predicate onto Success or Failure. It never returns Running.
type Condition struct {
	baseNode
	fn   PredicateFunc
	args Args
}

// NewCondition binds fn and its arguments into a Condition node.
func NewCondition(label string, fn PredicateFunc, opts ...LeafOption) (*Condition, error) {
	cfg, err := newLeafConfig(label, fn != nil, opts)
	if err != nil {
		return nil, err
	}
	return &Condition{baseNode: baseNode{label: label}, fn: fn, args: cfg.args}, nil
}

func (c *Condition) Evaluate() (Status, error) {
	ok, err := c.fn(c.args)
	if err != nil {
		return StatusFailure, err
	}
	if ok {
		return StatusSuccess, nil
	}
	return StatusFailure, nil
}

// Args returns a copy of the captured arguments.
func (c *Condition) Args() Args { return append(Args(nil), c.args...) }

// Action runs a state-mutating callable and returns its status unchanged.
type Action struct {
	baseNode
	fn   ActionFunc
	args Args
}

// NewAction binds fn and its arguments into an Action node.
func NewAction(label string, fn ActionFunc, opts ...LeafOption) (*Action, error) {
	cfg, err := newLeafConfig(label, fn != nil, opts)
	if err != nil {
		return nil, err
	}
	return &Action{baseNode: baseNode{label: label}, fn: fn, args: cfg.args}, nil
}

func (a *Action) Evaluate() (Status, error) {
	st, err := a.fn(a.args)
	if err != nil {
		return StatusFailure, err
	}
	if !st.Valid() {
		return StatusFailure, fmt.Errorf("%w: %q returned %d", ErrInvalidStatus, a.label, int(st))
	}
	return st, nil
}

// Args returns a copy of the captured arguments.
func (a *Action) Args() Args { return append(Args(nil), a.args...) }
