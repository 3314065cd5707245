package iterator_test

import (
	"testing"

	"github.com/ddjerqq/rustkit/iter/slice"
	"github.com/ddjerqq/rustkit/iterator"
	"github.com/ddjerqq/rustkit/option"
	"github.com/stretchr/testify/assert"
)

func TestStepBy(t *testing.T) {
	assert := assert.New(t)

	it := iterator.StepBy[int](slice.New([]int{0, 1, 2, 3, 4, 5, 6}), 2)
	assert.Equal([]int{0, 2, 4, 6}, iterator.Collect[int](it))

	it = iterator.StepBy[int](slice.New([]int{0, 1, 2, 3, 4, 5, 6}), 3)
	assert.Equal([]int{0, 3, 6}, iterator.Collect[int](it))

	// step one is the identity
	it = iterator.StepBy[int](slice.New([]int{1, 2, 3}), 1)
	assert.Equal([]int{1, 2, 3}, iterator.Collect[int](it))
}

func TestStepByZeroPanics(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() {
		iterator.StepBy[int](slice.New([]int{1}), 0)
	})
}

func TestStepByEmpty(t *testing.T) {
	assert := assert.New(t)

	it := iterator.StepBy[int](slice.New([]int(nil)), 2)
	assert.True(it.Next().IsNone())
}

func TestStepByNth(t *testing.T) {
	assert := assert.New(t)

	it := iterator.StepBy[int](slice.New([]int{0, 1, 2, 3, 4, 5, 6, 7, 8}), 2)

	// nth counts in strides: element n of the stepped sequence
	assert.Equal(option.Some(4), it.Nth(2))
	assert.Equal(option.Some(6), it.Next())

	it2 := iterator.StepBy[int](slice.New([]int{0, 1, 2, 3}), 3)
	assert.Equal(option.Some(0), it2.Nth(0))
	assert.Equal(option.Some(3), it2.Nth(0))
	assert.True(it2.Nth(0).IsNone())
}

func TestStepByFold(t *testing.T) {
	assert := assert.New(t)

	it := iterator.StepBy[int](slice.New([]int{1, 9, 2, 9, 3}), 2)
	assert.Equal(6, iterator.Sum[int](it))
}
