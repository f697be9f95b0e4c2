package ref

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inputkiterrors "github.com/alexisbeaulieu97/inputkit/pkg/errors"
)

type handle struct{ id string }

type call struct {
	holder string
	value  *handle
}

func TestMergeWritesEveryHolderInOrder(t *testing.T) {
	t.Parallel()

	var calls []call
	internal := New[*handle]()
	external := Func[*handle](func(v *handle) { calls = append(calls, call{"external", v}) })
	recorder := Func[*handle](func(v *handle) { calls = append(calls, call{"recorder", v}) })

	merged := Merge[*handle](internal, external, recorder)
	h := &handle{id: "box"}
	require.NoError(t, merged.Set(h))

	assert.Same(t, h, internal.Current)
	assert.Equal(t, []call{{"external", h}, {"recorder", h}}, calls)
}

func TestMergeTeardownIsSymmetric(t *testing.T) {
	t.Parallel()

	var log []string
	record := func(name string) Holder[*handle] {
		return Func[*handle](func(v *handle) {
			if v == nil {
				log = append(log, name+":clear")
				return
			}
			log = append(log, name+":set")
		})
	}

	merged := Merge(record("internal"), record("wrapper"))
	require.NoError(t, merged.Set(&handle{id: "box"}))
	require.NoError(t, merged.Release())

	assert.Equal(t, []string{"internal:set", "wrapper:set", "internal:clear", "wrapper:clear"}, log)
}

func TestMergeReleaseClearsCells(t *testing.T) {
	t.Parallel()

	a, b := New[*handle](), New[*handle]()
	merged := Merge[*handle](a, b)
	require.NoError(t, merged.Set(&handle{id: "box"}))
	require.NoError(t, merged.Release())

	assert.Nil(t, a.Current)
	assert.Nil(t, b.Current)
}

func TestMergeSkipsNilHolders(t *testing.T) {
	t.Parallel()

	var nilRef *Ref[*handle]
	var nilFunc Func[*handle]
	cell := New[*handle]()

	merged := Merge[*handle](nil, nilRef, cell, nilFunc)
	assert.Equal(t, 1, merged.Len())
	require.NoError(t, merged.Set(&handle{id: "x"}))
	assert.Equal(t, "x", cell.Current.id)
}

func TestMergePropagatesWriteFailures(t *testing.T) {
	t.Parallel()

	readOnly := errors.New("holder is read-only")
	first := New[*handle]()
	last := New[*handle]()
	merged := Merge[*handle](first, FuncE[*handle](func(*handle) error { return readOnly }), last)

	err := merged.Set(&handle{id: "box"})
	require.Error(t, err)

	var refErr *inputkiterrors.RefError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, 1, refErr.Index)
	assert.ErrorIs(t, err, readOnly)

	assert.NotNil(t, first.Current)
	assert.NotNil(t, last.Current, "holders after a failing one are still written")
}

func TestMergedCanBeNested(t *testing.T) {
	t.Parallel()

	inner := New[*handle]()
	outer := New[*handle]()
	merged := Merge[*handle](Merge[*handle](inner), outer)

	require.NoError(t, merged.Set(&handle{id: "n"}))
	assert.Equal(t, "n", inner.Current.id)
	assert.Equal(t, "n", outer.Current.id)
}
