package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLifecycle(t *testing.T) {
	s := NewAppState()

	first := s.SetStatus("copied", false)
	second := s.SetStatus("failed", true)

	assert.False(t, s.ClearStatus(first), "an older message does not clear a newer one")
	assert.Equal(t, "failed", s.StatusMessage)
	assert.True(t, s.StatusIsError)

	assert.True(t, s.ClearStatus(second))
	assert.Empty(t, s.StatusMessage)
	assert.False(t, s.StatusIsError)
	assert.False(t, s.ClearStatus(second))
}
