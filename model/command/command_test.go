package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKnown(t *testing.T) {
	assert.True(t, NewSession.IsKnown())
	assert.True(t, MouseMoveTo.IsKnown())
	assert.False(t, ID("drawCircle").IsKnown())
	assert.False(t, ID("").IsKnown())
}

func TestKnown(t *testing.T) {
	ids := Known()
	assert.Equal(t, len(known), len(ids))
	for _, id := range ids {
		assert.True(t, id.IsKnown())
	}
}
