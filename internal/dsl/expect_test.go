package dsl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.NoError(t, Equal([]int{1, 2}, []int{1, 2}))

	err := Equal("a", "b")
	assert.Error(t, err)
	assert.True(t, IsExpectation(err))
}

func TestTrue(t *testing.T) {
	assert.NoError(t, True(true, "unused"))
	assert.EqualError(t, True(false, "want %d items", 3), "want 3 items")
}

func TestNoError(t *testing.T) {
	assert.NoError(t, NoError(nil))

	err := NoError(errors.New("disk full"))
	assert.EqualError(t, err, "unexpected error: disk full")
	assert.False(t, IsExpectation(errors.New("plain")))
}
