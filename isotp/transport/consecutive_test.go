package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsecutiveAppendWithoutStart(t *testing.T) {
	var c consecutive
	_, _, err := c.append(1, []byte{1})
	assert.ErrorIs(t, err, ErrMixFrames)
}

func TestConsecutiveAppendSequenceAndCompletion(t *testing.T) {
	var c consecutive
	c.start(10, []byte{1, 2, 3, 4, 5, 6})

	_, done, err := c.append(1, []byte{7, 8, 9})
	require.NoError(t, err)
	assert.False(t, done)

	data, done, err := c.append(2, []byte{10, 11, 12})
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, data)
}

func TestConsecutiveWrongSequence(t *testing.T) {
	var c consecutive
	c.start(20, []byte{1, 2, 3, 4, 5, 6})
	_, _, err := c.append(5, []byte{1})
	require.Error(t, err)
	var seqErr *InvalidSequenceError
	assert.ErrorAs(t, err, &seqErr)
	assert.EqualValues(t, 1, seqErr.Expected)
	assert.EqualValues(t, 5, seqErr.Actual)
}

func TestConsecutiveSequenceWrapAroundFifteen(t *testing.T) {
	var c consecutive
	c.start(200, make([]byte, 6))
	seq := uint8(1)
	for i := 0; i < 20; i++ {
		_, _, err := c.append(seq, []byte{0})
		require.NoError(t, err)
		if seq == 0x0F {
			seq = 0
		} else {
			seq++
		}
	}
}
