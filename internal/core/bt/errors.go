package bt

import (
	"errors"
	"fmt"
)

var (
	ErrNoChildren      = errors.New("composite has no children")
	ErrNilChild        = errors.New("composite has a nil child")
	ErrMissingCallable = errors.New("leaf has no callable")
	ErrMissingArgs     = errors.New("leaf is missing required arguments")
	ErrNilRoot         = errors.New("tree has no root")
	ErrInvalidStatus   = errors.New("action returned an invalid status")
)

// ConfigError reports a malformed node found while a tree is being built.
type ConfigError struct {
	Node string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("bt: node %q: %v", e.Node, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErr(node string, err error) error {
	return &ConfigError{Node: node, Err: err}
}
