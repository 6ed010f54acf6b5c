package bytecodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutUintRoundTrip(t *testing.T) {
	cases := []struct {
		v     uint64
		width int
	}{
		{0, 1}, {0xFF, 1}, {0xFFFF, 2}, {0xFFFFFF, 3}, {0x12345678, 4},
	}
	for _, c := range cases {
		b, err := PutUint(nil, c.v, c.width)
		require.NoError(t, err)
		assert.Len(t, b, c.width)
		got, rest, err := Uint(b, c.width)
		require.NoError(t, err)
		assert.Empty(t, rest)
		assert.Equal(t, c.v, got)
	}
}

func TestPutUintOverflow(t *testing.T) {
	_, err := PutUint(nil, 0x100, 1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestUintShort(t *testing.T) {
	_, _, err := Uint([]byte{0x01}, 2)
	assert.ErrorIs(t, err, ErrShort)
}

func TestCheckLength(t *testing.T) {
	assert.NoError(t, CheckLength(3, 3, true))
	assert.Error(t, CheckLength(2, 3, true))
	assert.NoError(t, CheckLength(5, 3, false))
	assert.Error(t, CheckLength(2, 3, false))
}
