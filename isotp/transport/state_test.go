package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateString(t *testing.T) {
	assert.Equal(t, "Idle", StateIdle.String())
	assert.Equal(t, "Sending", StateSending.String())
	assert.Equal(t, "WaitFlowCtrl | Sending", (StateSending | StateWaitFlowCtrl).String())
	assert.Equal(t, "Error", StateError.String())
}

func TestStateContains(t *testing.T) {
	s := StateSending | StateWaitFlowCtrl
	assert.True(t, s.Contains(StateSending))
	assert.True(t, s.Contains(StateWaitFlowCtrl))
	assert.False(t, s.Contains(StateWaitBusy))
	assert.True(t, s.Contains(StateSending|StateWaitFlowCtrl))
}
