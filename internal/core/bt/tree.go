package bt

import (
	"fmt"
	"strings"

	"github.com/zeusync/horde/internal/core/observability/log"
)

// BehaviorTree owns a root node and drives one evaluation per external tick.
// It is not safe for concurrent use; each agent owns its own tree.
type BehaviorTree struct {
	root   Node
	logger log.Log
	ticks  uint64
}

// TreeOption configures a BehaviorTree.
type TreeOption func(*BehaviorTree)

// WithLogger attaches a logger used for per-tick diagnostics.
func WithLogger(l log.Log) TreeOption {
	return func(t *BehaviorTree) {
		if l != nil {
			t.logger = l
		}
	}
}

// New creates a tree around root.
func New(root Node, opts ...TreeOption) (*BehaviorTree, error) {
	if root == nil {
		return nil, configErr("", ErrNilRoot)
	}
	t := &BehaviorTree{root: root, logger: log.NewNop()}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Tick evaluates the root once. The root status is not returned: the tree drives
// behavior through its leaves' side effects. Errors raised by a leaf callable are
// returned unchanged.
func (t *BehaviorTree) Tick() error {
	st, err := t.root.Evaluate()
	t.ticks++
	if err != nil {
		t.logger.Warn("behavior tree tick failed", log.Uint64("tick", t.ticks), log.Error(err))
		return err
	}
	if t.logger.Enabled(log.LevelDebug) {
		t.logger.Debug("behavior tree tick", log.Uint64("tick", t.ticks), log.Stringer("status", st))
	}
	return nil
}

// Root returns the root node.
func (t *BehaviorTree) Root() Node { return t.root }

// Ticks returns how many ticks have been run.
func (t *BehaviorTree) Ticks() uint64 { return t.ticks }

// Describe returns an indented outline of the tree, one node per line.
func (t *BehaviorTree) Describe() string {
	var sb strings.Builder
	Walk(t.root, func(n Node, depth int) bool {
		fmt.Fprintf(&sb, "%s%s %q", strings.Repeat("  ", depth), Kind(n), n.Label())
		switch leaf := n.(type) {
		case *Condition:
			writeArgs(&sb, leaf.args)
		case *Action:
			writeArgs(&sb, leaf.args)
		}
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}

func writeArgs(sb *strings.Builder, args Args) {
	if len(args) == 0 {
		return
	}
	fmt.Fprintf(sb, " %v", []float64(args))
}
