package iterator_test

import (
	"testing"

	"github.com/ddjerqq/rustkit/iter/slice"
	"github.com/ddjerqq/rustkit/iterator"
	"github.com/ddjerqq/rustkit/option"
	"github.com/ddjerqq/rustkit/result"
	"github.com/stretchr/testify/assert"
)

func TestChain(t *testing.T) {
	assert := assert.New(t)

	it := iterator.Chain[int](slice.New([]int{1, 2}), slice.New([]int{3, 4}))
	assert.Equal([]int{1, 2, 3, 4}, iterator.Collect[int](it))
}

func TestChainEmptySides(t *testing.T) {
	assert := assert.New(t)

	it := iterator.Chain[int](slice.New([]int(nil)), slice.New([]int{1}))
	assert.Equal([]int{1}, iterator.Collect[int](it))

	it = iterator.Chain[int](slice.New([]int{1}), slice.New([]int(nil)))
	assert.Equal([]int{1}, iterator.Collect[int](it))

	it = iterator.Chain[int](slice.New([]int(nil)), slice.New([]int(nil)))
	assert.True(it.Next().IsNone())
}

func TestChainFirstSideDropped(t *testing.T) {
	assert := assert.New(t)

	a := counting(slice.New([]int{1}))
	it := iterator.Chain[int](a, slice.New([]int{2, 3}))

	assert.Equal(option.Some(1), it.Next())
	assert.Equal(option.Some(2), it.Next())
	assert.Equal(option.Some(3), it.Next())
	assert.True(it.Next().IsNone())

	// the exhausted first side was pulled exactly twice: its element
	// and the None that retired it
	assert.Equal(2, a.pulls)
}

func TestChainCount(t *testing.T) {
	assert := assert.New(t)

	it := iterator.Chain[int](slice.New([]int{1, 2}), slice.New([]int{3, 4, 5}))
	assert.Equal(5, iterator.Count[int](it))
}

func TestChainLast(t *testing.T) {
	assert := assert.New(t)

	it := iterator.Chain[int](slice.New([]int{1, 2}), slice.New([]int{3, 4}))
	assert.Equal(option.Some(4), iterator.Last[int](it))

	// an empty second side falls back to the first
	it = iterator.Chain[int](slice.New([]int{1, 2}), slice.New([]int(nil)))
	assert.Equal(option.Some(2), iterator.Last[int](it))

	it = iterator.Chain[int](slice.New([]int(nil)), slice.New([]int(nil)))
	assert.True(iterator.Last[int](it).IsNone())
}

func TestChainNthCrossesBoundary(t *testing.T) {
	assert := assert.New(t)

	it := iterator.Chain[int](slice.New([]int{1, 2}), slice.New([]int{3, 4, 5}))
	assert.Equal(option.Some(4), iterator.Nth[int](it, 3))
	assert.Equal(option.Some(5), it.Next())
}

func TestChainAdvanceBy(t *testing.T) {
	assert := assert.New(t)

	it := iterator.Chain[int](slice.New([]int{1, 2}), slice.New([]int{3, 4}))
	assert.True(iterator.AdvanceBy[int](it, 3).IsOk())
	assert.Equal(option.Some(4), it.Next())

	// shortfalls across both sides are combined
	it = iterator.Chain[int](slice.New([]int{1, 2}), slice.New([]int{3}))
	assert.Equal(result.Err[struct{}, int](3), iterator.AdvanceBy[int](it, 10))
}

func TestChainFind(t *testing.T) {
	assert := assert.New(t)

	it := iterator.Chain[int](slice.New([]int{1, 2}), slice.New([]int{3, 4}))
	assert.Equal(option.Some(3), iterator.Find[int](it, func(n int) bool { return n > 2 }))
	assert.Equal(option.Some(4), it.Next())
}

func TestChainTryFoldShortCircuits(t *testing.T) {
	assert := assert.New(t)

	b := counting(slice.New([]int{3, 4}))
	it := iterator.Chain[int](slice.New([]int{1, 2}), b)

	r := iterator.TryFold[int](it, 0, func(acc, x int) result.Result[int, string] {
		if x == 2 {
			return result.Err[int, string]("stop")
		}
		return result.Ok[int, string](acc + x)
	})

	assert.Equal(result.Err[int, string]("stop"), r)
	// the failure happened on the first side, so the second stays cold
	assert.Equal(0, b.pulls)
}
