package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeSingleShort(t *testing.T) {
	f, err := NewSingle([]byte{0x01, 0x02, 0x03})
	require.NoError(t, err)

	b, err := Encode(f, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x01, 0x02, 0x03, 0xCC, 0xCC, 0xCC, 0xCC}, b)

	got, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, TypeSingle, got.Type())
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, got.Single.Data)
}

func TestEncodeSingleCustomPadding(t *testing.T) {
	f, err := NewSingle([]byte{0xAA})
	require.NoError(t, err)
	pad := byte(0x00)
	b, err := Encode(f, &pad)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0xAA, 0, 0, 0, 0, 0, 0}, b)
}

func TestSingleFrameTooLong(t *testing.T) {
	data := make([]byte, SingleFrameSize2016+1)
	_, err := NewSingle(data)
	assert.Error(t, err)
}

func TestSingleEscapeForm(t *testing.T) {
	data := make([]byte, 20)
	for i := range data {
		data[i] = byte(i)
	}
	f, err := NewSingle(data)
	require.NoError(t, err)
	b, err := Encode(f, nil)
	require.NoError(t, err)
	require.Len(t, b, 22)
	assert.Equal(t, byte(0x00), b[0])
	assert.Equal(t, byte(20), b[1])

	got, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, data, got.Single.Data)
}

func TestEmptyPduRejected(t *testing.T) {
	_, err := NewSingle(nil)
	assert.ErrorIs(t, err, ErrEmptyPdu)

	_, err = FromData(nil)
	assert.ErrorIs(t, err, ErrEmptyPdu)

	_, err = Decode(nil)
	assert.ErrorIs(t, err, ErrEmptyPdu)
}

func TestFromDataSplitsConsecutiveFrames(t *testing.T) {
	payload := make([]byte, 20)
	for i := range payload {
		payload[i] = byte(i)
	}
	frames, err := FromData(payload)
	require.NoError(t, err)
	require.Len(t, frames, 3) // 1 first (6 bytes) + 2 consecutive (7+7 = 14 remaining bytes)

	first := frames[0]
	require.NotNil(t, first.First)
	assert.EqualValues(t, 20, first.First.Length)
	assert.Equal(t, payload[:FirstFrameSize2004], first.First.Data)

	for i, fr := range frames[1:] {
		require.NotNil(t, fr.Consecutive)
		assert.EqualValues(t, (i+1)%16, fr.Consecutive.Sequence)
	}
}

func TestConsecutiveSequenceWrap(t *testing.T) {
	payload := make([]byte, FirstFrameSize2004+7*16+1)
	frames, err := FromData(payload)
	require.NoError(t, err)

	seq := ConsecutiveSequenceStart
	for _, fr := range frames[1:] {
		assert.Equal(t, seq, fr.Consecutive.Sequence)
		if seq == 0x0F {
			seq = 0
		} else {
			seq++
		}
	}
}

func TestEncodeDecodeFirst2004Header(t *testing.T) {
	f := Frame{First: &First{Length: 20, Data: []byte{0, 1, 2, 3, 4, 5}}}
	b, err := Encode(f, nil)
	require.NoError(t, err)
	require.Len(t, b, MaxClassicFrameSize)
	assert.Equal(t, byte(0x10), b[0])
	assert.Equal(t, byte(20), b[1])

	got, err := Decode(b)
	require.NoError(t, err)
	assert.EqualValues(t, 20, got.First.Length)
	assert.Equal(t, []byte{0, 1, 2, 3, 4, 5}, got.First.Data)
}

func TestEncodeDecodeFirstEscapeHeader(t *testing.T) {
	f := Frame{First: &First{Length: MaxLength2004 + 1, Data: []byte{0xAA, 0xBB}}}
	b, err := Encode(f, nil)
	require.NoError(t, err)
	require.Len(t, b, MaxClassicFrameSize)
	assert.Equal(t, byte(0x10), b[0])
	assert.Equal(t, byte(0x00), b[1])

	got, err := Decode(b)
	require.NoError(t, err)
	assert.EqualValues(t, MaxLength2004+1, got.First.Length)
	assert.Equal(t, []byte{0xAA, 0xBB}, got.First.Data)
}

func TestFirstFrameTooShort(t *testing.T) {
	_, err := decodeFirst([]byte{0x10, 0x14, 0, 1, 2})
	assert.Error(t, err)
}

func TestEncodeDecodeConsecutive(t *testing.T) {
	f := Frame{Consecutive: &Consecutive{Sequence: 3, Data: []byte{1, 2, 3}}}
	b, err := Encode(f, nil)
	require.NoError(t, err)
	assert.Equal(t, byte(0x23), b[0])

	got, err := Decode(b)
	require.NoError(t, err)
	assert.EqualValues(t, 3, got.Consecutive.Sequence)
	assert.Equal(t, []byte{1, 2, 3}, got.Consecutive.Data)
}

func TestConsecutiveSequenceOutOfRange(t *testing.T) {
	_, err := encodeConsecutive(0x10, []byte{1}, DefaultPadding)
	assert.Error(t, err)
}

func TestDefaultFlowControlFrame(t *testing.T) {
	f := DefaultFlowControlFrame()
	b, err := Encode(f, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x30, 0x00, 0x00, 0xCC, 0xCC, 0xCC, 0xCC, 0xCC}, b)

	got, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, FlowControlContinue, got.FlowControl.State)
}

func TestFlowControlStates(t *testing.T) {
	for _, st := range []FlowControlState{FlowControlContinue, FlowControlWait, FlowControlOverload} {
		f := Frame{FlowControl: &FlowControl{State: st, BlockSize: 8, StMin: 0x14}}
		b, err := Encode(f, nil)
		require.NoError(t, err)
		got, err := Decode(b)
		require.NoError(t, err)
		assert.Equal(t, st, got.FlowControl.State)
		assert.EqualValues(t, 8, got.FlowControl.BlockSize)
		assert.EqualValues(t, 0x14, got.FlowControl.StMin)
	}
}

func TestFlowControlStateInvalid(t *testing.T) {
	_, err := ParseFlowControlState(0x03)
	assert.Error(t, err)
}

func TestFrameTypeString(t *testing.T) {
	assert.Equal(t, "Single", TypeSingle.String())
	assert.Equal(t, "First", TypeFirst.String())
	assert.Equal(t, "Consecutive", TypeConsecutive.String())
	assert.Equal(t, "FlowControl", TypeFlowControl.String())
}
