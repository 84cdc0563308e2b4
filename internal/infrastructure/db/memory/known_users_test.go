package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownUsers_Exists(t *testing.T) {
	k := NewKnownUsers(DefaultKnownUserIDs)

	for _, id := range []int{1, 2, 3, 4, 5} {
		ok, err := k.Exists(context.Background(), id)
		assert.NoError(t, err)
		assert.True(t, ok, "id %d", id)
	}
	for _, id := range []int{0, -1, 6, 100} {
		ok, err := k.Exists(context.Background(), id)
		assert.NoError(t, err)
		assert.False(t, ok, "id %d", id)
	}
}

func TestKnownUsers_CopiesInput(t *testing.T) {
	ids := []int{7, 8}
	k := NewKnownUsers(ids)
	ids[0] = 9

	ok, _ := k.Exists(context.Background(), 7)
	assert.True(t, ok)
	ok, _ = k.Exists(context.Background(), 9)
	assert.False(t, ok)
	assert.Equal(t, 2, k.Len())
}
