package iterator_test

import (
	"strconv"
	"testing"

	"github.com/ddjerqq/rustkit/iter/slice"
	"github.com/ddjerqq/rustkit/iterator"
	"github.com/ddjerqq/rustkit/option"
	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert := assert.New(t)

	it := iterator.Map(slice.New([]int{1, 2, 3}), strconv.Itoa)

	assert.Equal(option.Some("1"), it.Next())
	assert.Equal(option.Some("2"), it.Next())
	assert.Equal(option.Some("3"), it.Next())
	assert.True(it.Next().IsNone())
}

func TestMapIsLazy(t *testing.T) {
	assert := assert.New(t)

	calls := 0
	it := iterator.Map(slice.New([]int{1, 2, 3}), func(n int) int {
		calls++
		return n * 10
	})

	// building the adapter evaluates nothing
	assert.Equal(0, calls)

	assert.Equal(option.Some(10), it.Next())
	assert.Equal(1, calls)
}

func TestMapFold(t *testing.T) {
	assert := assert.New(t)

	it := iterator.Map(slice.New([]int{1, 2, 3}), func(n int) int { return n * n })
	assert.Equal(14, iterator.Sum[int](it))
}

func TestMapFindShortCircuits(t *testing.T) {
	assert := assert.New(t)

	calls := 0
	inner := counting(slice.New([]int{1, 2, 3, 4}))
	it := iterator.Map(inner, func(n int) int {
		calls++
		return n * 10
	})

	assert.Equal(option.Some(20), iterator.Find[int](it, func(n int) bool { return n == 20 }))
	assert.Equal(2, calls)
	assert.Equal(2, inner.pulls)
}
