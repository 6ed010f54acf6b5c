package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rob-gra/go-diagcan/isotp/frame"
)

func TestFlowControlContextStMinMillis(t *testing.T) {
	ctx, err := NewFlowControlContext(frame.FlowControlContinue, 8, 0x0A)
	require.NoError(t, err)
	assert.EqualValues(t, 10000, ctx.StMinMicros())
}

func TestFlowControlContextStMinMicros(t *testing.T) {
	ctx, err := NewFlowControlContext(frame.FlowControlContinue, 8, 0xF5)
	require.NoError(t, err)
	assert.EqualValues(t, 500, ctx.StMinMicros())
}

func TestFlowControlContextInvalidStMin(t *testing.T) {
	_, err := NewFlowControlContext(frame.FlowControlContinue, 0, 0x90)
	assert.Error(t, err)

	_, err = NewFlowControlContext(frame.FlowControlContinue, 0, 0xFC)
	assert.Error(t, err)
}
