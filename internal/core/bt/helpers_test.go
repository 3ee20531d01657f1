package bt

import "testing"

// probe is an Action whose status is set by the test and which counts calls.
type probe struct {
	status Status
	err    error
	calls  int
}

func (p *probe) fn(Args) (Status, error) {
	p.calls++
	return p.status, p.err
}

func newProbe(t *testing.T, label string, st Status) (*probe, Node) {
	t.Helper()
	p := &probe{status: st}
	n, err := NewAction(label, p.fn)
	if err != nil {
		t.Fatalf("new action %s: %v", label, err)
	}
	return p, n
}

// flag is a Condition whose outcome is toggled by the test.
type flag struct {
	value bool
	calls int
}

func (f *flag) fn(Args) (bool, error) {
	f.calls++
	return f.value, nil
}

func newFlag(t *testing.T, label string, v bool) (*flag, Node) {
	t.Helper()
	f := &flag{value: v}
	n, err := NewCondition(label, f.fn)
	if err != nil {
		t.Fatalf("new condition %s: %v", label, err)
	}
	return f, n
}

func mustSequence(t *testing.T, label string, children ...Node) *Sequence {
	t.Helper()
	s, err := NewSequence(label, children...)
	if err != nil {
		t.Fatalf("new sequence %s: %v", label, err)
	}
	return s
}

func mustSelector(t *testing.T, label string, children ...Node) *Selector {
	t.Helper()
	s, err := NewSelector(label, children...)
	if err != nil {
		t.Fatalf("new selector %s: %v", label, err)
	}
	return s
}

var allStatuses = []Status{StatusSuccess, StatusFailure, StatusRunning}
