package bt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceStopsAtFirstNonSuccess(t *testing.T) {
	for _, halt := range []Status{StatusFailure, StatusRunning} {
		p1, c1 := newProbe(t, "c1", StatusSuccess)
		p2, c2 := newProbe(t, "c2", halt)
		p3, c3 := newProbe(t, "c3", StatusSuccess)
		seq := mustSequence(t, "seq", c1, c2, c3)

		st, err := seq.Evaluate()
		require.NoError(t, err)
		assert.Equal(t, halt, st)
		assert.Equal(t, 1, p1.calls)
		assert.Equal(t, 1, p2.calls)
		assert.Zero(t, p3.calls, "children after %v must not run", halt)
	}
}

func TestSequenceAllSucceed(t *testing.T) {
	_, c1 := newProbe(t, "c1", StatusSuccess)
	_, c2 := newProbe(t, "c2", StatusSuccess)
	st, err := mustSequence(t, "seq", c1, c2).Evaluate()
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, st)
}

func TestSelectorStopsAtFirstNonFailure(t *testing.T) {
	for _, win := range []Status{StatusSuccess, StatusRunning} {
		p1, c1 := newProbe(t, "c1", StatusFailure)
		p2, c2 := newProbe(t, "c2", win)
		p3, c3 := newProbe(t, "c3", StatusSuccess)
		sel := mustSelector(t, "sel", c1, c2, c3)

		st, err := sel.Evaluate()
		require.NoError(t, err)
		assert.Equal(t, win, st)
		assert.Equal(t, 1, p1.calls)
		assert.Equal(t, 1, p2.calls)
		assert.Zero(t, p3.calls)
	}
}

func TestSingleChildIsPassThrough(t *testing.T) {
	for _, want := range allStatuses {
		_, leaf := newProbe(t, "only", want)
		direct, err := leaf.Evaluate()
		require.NoError(t, err)

		seqSt, err := mustSequence(t, "seq", leaf).Evaluate()
		require.NoError(t, err)
		selSt, err := mustSelector(t, "sel", leaf).Evaluate()
		require.NoError(t, err)

		assert.Equal(t, direct, seqSt, "sequence with %v", want)
		assert.Equal(t, direct, selSt, "selector with %v", want)
	}
}

func TestSequenceRestartsEveryTick(t *testing.T) {
	f, cond := newFlag(t, "cond", true)
	p, act := newProbe(t, "act", StatusRunning)
	seq := mustSequence(t, "seq", cond, act)

	for i := 0; i < 2; i++ {
		st, err := seq.Evaluate()
		require.NoError(t, err)
		assert.Equal(t, StatusRunning, st)
	}
	assert.Equal(t, 2, f.calls, "condition is re-evaluated on each tick")
	assert.Equal(t, 2, p.calls)
}

func TestSelectorOverSequences(t *testing.T) {
	_, no := newFlag(t, "no", false)
	_, yes := newFlag(t, "yes", true)
	_, done := newProbe(t, "done", StatusSuccess)

	sel := mustSelector(t, "sel",
		mustSequence(t, "first", no),
		mustSequence(t, "second", yes, done),
	)
	st, err := sel.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, st)
}

func TestSelectorAllFail(t *testing.T) {
	_, a := newFlag(t, "a", false)
	_, b := newFlag(t, "b", false)
	_, c := newFlag(t, "c", false)
	st, err := mustSelector(t, "sel", a, b, c).Evaluate()
	require.NoError(t, err)
	assert.Equal(t, StatusFailure, st)
}

func TestSelectorDoesNotLatchLowerPriority(t *testing.T) {
	gate, cond := newFlag(t, "gate", false)
	hi, act := newProbe(t, "high", StatusRunning)
	lo, fallback := newProbe(t, "low", StatusRunning)
	sel := mustSelector(t, "sel", mustSequence(t, "a", cond, act), fallback)

	st, err := sel.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, st)
	assert.Equal(t, 1, lo.calls)
	assert.Zero(t, hi.calls)

	gate.value = true
	hi.status = StatusSuccess
	st, err = sel.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, st)
	assert.Equal(t, 1, hi.calls)
	assert.Equal(t, 1, lo.calls, "running lower-priority branch is abandoned")
}

func TestCompositesAreIdempotent(t *testing.T) {
	_, c := newFlag(t, "c", true)
	_, a := newProbe(t, "a", StatusRunning)
	_, b := newFlag(t, "b", false)
	root := mustSelector(t, "root", mustSequence(t, "s", b), mustSequence(t, "t", c, a))

	first, err := root.Evaluate()
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		st, err := root.Evaluate()
		require.NoError(t, err)
		assert.Equal(t, first, st)
	}
}

func TestCompositeErrorStopsEvaluation(t *testing.T) {
	boom := errors.New("boom")
	bad, c1 := newProbe(t, "c1", StatusFailure)
	bad.err = boom
	p2, c2 := newProbe(t, "c2", StatusSuccess)

	st, err := mustSelector(t, "sel", c1, c2).Evaluate()
	assert.Equal(t, StatusFailure, st)
	assert.Same(t, boom, err)
	assert.Zero(t, p2.calls)

	st, err = mustSequence(t, "seq", c1, c2).Evaluate()
	assert.Equal(t, StatusFailure, st)
	assert.Same(t, boom, err)
	assert.Zero(t, p2.calls)
}

func TestCompositeConstructionErrors(t *testing.T) {
	_, err := NewSequence("empty")
	assert.ErrorIs(t, err, ErrNoChildren)
	_, err = NewSelector("empty")
	assert.ErrorIs(t, err, ErrNoChildren)

	_, leaf := newFlag(t, "leaf", true)
	_, err = NewSequence("holes", leaf, nil)
	assert.ErrorIs(t, err, ErrNilChild)
}

func TestChildrenAreFixed(t *testing.T) {
	_, a := newFlag(t, "a", true)
	_, b := newFlag(t, "b", false)
	kids := []Node{a, b}
	seq := mustSequence(t, "seq", kids...)

	kids[1] = a
	got := seq.Children()
	got[0] = b
	assert.Equal(t, []Node{a, b}, seq.Children())
}
