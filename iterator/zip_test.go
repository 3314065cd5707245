package iterator_test

import (
	"testing"

	"github.com/ddjerqq/rustkit"
	"github.com/ddjerqq/rustkit/iter/slice"
	"github.com/ddjerqq/rustkit/iterator"
	"github.com/ddjerqq/rustkit/option"
	"github.com/stretchr/testify/assert"
)

func TestZip(t *testing.T) {
	assert := assert.New(t)

	it := iterator.Zip[int, string](slice.New([]int{1, 2}), slice.New([]string{"a", "b"}))

	assert.Equal(option.Some(rustkit.Pair[int, string]{First: 1, Second: "a"}), it.Next())
	assert.Equal(option.Some(rustkit.Pair[int, string]{First: 2, Second: "b"}), it.Next())
	assert.True(it.Next().IsNone())
}

func TestZipStopsAtShorterSide(t *testing.T) {
	assert := assert.New(t)

	right := counting(slice.New([]int{10, 20, 30}))
	it := iterator.Zip[int, int](slice.New([]int{1, 2}), right)

	assert.Equal(2, len(iterator.Collect[rustkit.Pair[int, int]](it)))

	// the left side exhausted first, so the right was never pulled for
	// a partner it could not have
	assert.Equal(2, right.pulls)
	assert.Equal(option.Some(30), right.it.Next())
}

func TestZipNth(t *testing.T) {
	assert := assert.New(t)

	it := iterator.Zip[int, string](
		slice.New([]int{1, 2, 3, 4}),
		slice.New([]string{"a", "b", "c", "d"}))

	assert.Equal(option.Some(rustkit.Pair[int, string]{First: 3, Second: "c"}), it.Nth(2))
	assert.Equal(option.Some(rustkit.Pair[int, string]{First: 4, Second: "d"}), it.Next())
	assert.True(it.Nth(0).IsNone())
}
