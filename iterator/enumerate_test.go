package iterator_test

import (
	"testing"

	"github.com/ddjerqq/rustkit"
	"github.com/ddjerqq/rustkit/iter/slice"
	"github.com/ddjerqq/rustkit/iterator"
	"github.com/ddjerqq/rustkit/option"
	"github.com/stretchr/testify/assert"
)

func TestEnumerate(t *testing.T) {
	assert := assert.New(t)

	it := iterator.Enumerate[string](slice.New([]string{"a", "b", "c"}))

	want := []rustkit.Pair[int, string]{
		{First: 0, Second: "a"},
		{First: 1, Second: "b"},
		{First: 2, Second: "c"},
	}
	assert.Equal(want, iterator.Collect[rustkit.Pair[int, string]](it))
	assert.True(it.Next().IsNone())
}

func TestEnumerateNthKeepsIndexing(t *testing.T) {
	assert := assert.New(t)

	it := iterator.Enumerate[string](slice.New([]string{"a", "b", "c", "d"}))

	// jumping ahead still reports the absolute position
	assert.Equal(option.Some(rustkit.Pair[int, string]{First: 2, Second: "c"}), it.Nth(2))
	assert.Equal(option.Some(rustkit.Pair[int, string]{First: 3, Second: "d"}), it.Next())
}

func TestEnumerateCount(t *testing.T) {
	assert := assert.New(t)

	it := iterator.Enumerate[int](slice.New([]int{7, 8, 9}))
	assert.Equal(3, iterator.Count[rustkit.Pair[int, int]](it))
}

func TestEnumerateAdvanceBy(t *testing.T) {
	assert := assert.New(t)

	it := iterator.Enumerate[string](slice.New([]string{"a", "b", "c"}))
	assert.True(iterator.AdvanceBy[rustkit.Pair[int, string]](it, 2).IsOk())
	assert.Equal(option.Some(rustkit.Pair[int, string]{First: 2, Second: "c"}), it.Next())
}

func TestEnumerateFoldIndices(t *testing.T) {
	assert := assert.New(t)

	got := iterator.Fold[rustkit.Pair[int, string]](
		iterator.Enumerate[string](slice.New([]string{"x", "y"})),
		[]int{},
		func(acc []int, p rustkit.Pair[int, string]) []int {
			return append(acc, p.First)
		})
	assert.Equal([]int{0, 1}, got)
}
