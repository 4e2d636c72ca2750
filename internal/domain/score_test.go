package domain

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pass() error { return nil }

func fail() error { return errors.New("nope") }

func descriptions(examples []*Example) []string {
	out := make([]string, len(examples))
	for i, e := range examples {
		out[i] = e.Description()
	}
	return out
}

// buildForest returns two roots with a mix of passing, failing and pending examples.
func buildForest(t *testing.T) (*ContextCollection, *Context, *Context) {
	t.Helper()

	first := NewContext("first")
	attach(t, first, NewExample("f-pass", pass))
	inner := nest(t, first, NewContext("inner"))
	attach(t, inner, NewExample("i-fail", fail))
	attach(t, inner, NewExample("i-todo", nil))
	attach(t, first, NewExample("f-fail", fail))

	second := NewContext("second")
	require.NoError(t, second.MarkPending())
	attach(t, second, NewExample("s-pending", pass))
	deep := nest(t, second, NewContext("deep"))
	attach(t, deep, NewExample("d-pending", fail))

	cc, err := NewContextCollection(first, second)
	require.NoError(t, err)
	return cc, first, second
}

func TestAllExamples_DepthFirstDeclarationOrder(t *testing.T) {
	cc, first, _ := buildForest(t)

	got := descriptions(slices.Collect(first.AllExamples()))
	assert.Equal(t, []string{"i-fail", "i-todo", "f-pass", "f-fail"}, got)

	all := descriptions(slices.Collect(cc.AllExamples()))
	want := []string{"i-fail", "i-todo", "f-pass", "f-fail", "d-pending", "s-pending"}
	if diff := cmp.Diff(want, all); diff != "" {
		t.Errorf("AllExamples mismatch (-want +got):\n%s", diff)
	}
}

func TestScore_BeforeRun(t *testing.T) {
	cc, _, _ := buildForest(t)

	score := Tally(cc)

	assert.Equal(t, Score{Total: 6, Pending: 3, NotRun: 3}, score)
	assert.Zero(t, Count(cc.Failures()))
}

func TestScore_AfterRun(t *testing.T) {
	cc, first, second := buildForest(t)

	cc.Run(nil)

	assert.Equal(t, Score{Total: 6, Passed: 1, Failed: 2, Pending: 3}, Tally(cc))
	assert.Equal(t, []string{"i-fail", "f-fail"}, descriptions(slices.Collect(cc.Failures())))
	assert.Equal(t, []string{"i-todo", "d-pending", "s-pending"}, descriptions(slices.Collect(cc.Pendings())))

	// The collection's counts are the sum of its roots
	assert.Equal(t,
		Count(first.Failures())+Count(second.Failures()),
		Count(cc.Failures()))
	assert.Equal(t,
		Count(first.Pendings())+Count(second.Pendings()),
		Count(cc.Pendings()))
}

func TestScore_ContextIsSumOfChildrenAndOwnExamples(t *testing.T) {
	cc, _, _ := buildForest(t)
	cc.Run(nil)

	var check func(c *Context)
	check = func(c *Context) {
		failures, pendings, total := 0, 0, 0
		for _, child := range c.Children() {
			check(child)
			failures += Count(child.Failures())
			pendings += Count(child.Pendings())
			total += Count(child.AllExamples())
		}
		for _, e := range c.Examples() {
			total++
			switch e.Outcome() {
			case Failed:
				failures++
			case Pending:
				pendings++
			}
		}
		assert.Equal(t, failures, Count(c.Failures()), c.FullContext())
		assert.Equal(t, pendings, Count(c.Pendings()), c.FullContext())
		assert.Equal(t, total, Count(c.AllExamples()), c.FullContext())
	}
	for _, root := range cc.Contexts() {
		check(root)
	}
}

func TestScore_ReadsAreIdempotent(t *testing.T) {
	cc, _, _ := buildForest(t)
	cc.Run(nil)

	firstRead := slices.Collect(cc.Failures())
	secondRead := slices.Collect(cc.Failures())
	assert.Equal(t, firstRead, secondRead)
	assert.Equal(t, slices.Collect(cc.AllExamples()), slices.Collect(cc.AllExamples()))
}

func TestAllExamples_StopsEarly(t *testing.T) {
	cc, _, _ := buildForest(t)

	var seen []string
	for e := range cc.AllExamples() {
		seen = append(seen, e.Description())
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"i-fail", "i-todo"}, seen)
}

func TestContextCollection_RejectsNonRoot(t *testing.T) {
	root := NewContext("root")
	child := nest(t, root, NewContext("child"))

	_, err := NewContextCollection(child)
	assert.ErrorIs(t, err, ErrReparent)

	cc, err := NewContextCollection(root)
	require.NoError(t, err)
	assert.ErrorIs(t, cc.Add(root), ErrReparent)
}

func TestContextCollection_Find(t *testing.T) {
	cc, _, _ := buildForest(t)

	found := cc.Find("second. deep")
	require.NotNil(t, found)
	assert.Equal(t, "deep", found.Name())
	assert.Nil(t, cc.Find("missing"))
}

func TestContextCollection_ContextFailures(t *testing.T) {
	a := NewContext("a")
	a.BeforeAll = fail
	attach(t, a, NewExample("x", pass))
	b := NewContext("b")
	attach(t, b, NewExample("y", pass))

	cc, err := NewContextCollection(a, b)
	require.NoError(t, err)
	cc.Run(nil)

	failed := cc.ContextFailures()
	require.Len(t, failed, 1)
	assert.Same(t, a, failed[0])

	cc.Reset()
	assert.Empty(t, cc.ContextFailures())
}

func TestOutcome_StringRoundTrip(t *testing.T) {
	for _, o := range []Outcome{NotRun, Passed, Failed, Pending} {
		parsed, err := ParseOutcome(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, parsed)
	}
	_, err := ParseOutcome("bogus")
	assert.Error(t, err)
	assert.Equal(t, "outcome(42)", Outcome(42).String())
}

func TestExample_FullDescription(t *testing.T) {
	root := NewContext("calculator")
	e := attach(t, root, NewExample("adds", pass))

	assert.Equal(t, "calculator. adds", e.FullDescription())
	assert.Equal(t, "loose", NewExample("loose", pass).FullDescription())
}
