package transport

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rob-gra/go-diagcan/isotp"
	"github.com/rob-gra/go-diagcan/isotp/frame"
)

type fakeFrame struct {
	id      isotp.CanID
	data    []byte
	channel string
}

func (f *fakeFrame) ID() isotp.CanID        { return f.id }
func (f *fakeFrame) Data() []byte           { return f.data }
func (f *fakeFrame) Channel() string        { return f.channel }
func (f *fakeFrame) SetChannel(c string)    { f.channel = c }

func newFakeCanFrame(id isotp.CanID, data []byte) (isotp.CanFrame, error) {
	return &fakeFrame{id: id, data: append([]byte(nil), data...)}, nil
}

// fakeDevice is a loopback-style test double: sent frames are appended to
// Sent, and a test can push frames onto the inbound queue for Receive to
// return. inject, when set, is called synchronously from Transmit so
// tests can simulate an immediate peer reply (e.g. flow control).
type fakeDevice struct {
	mu      sync.Mutex
	sent    []isotp.CanFrame
	inbound []isotp.CanFrame
	inject  func(sent isotp.CanFrame) []isotp.CanFrame
}

func (d *fakeDevice) Transmit(ctx context.Context, f isotp.CanFrame, timeoutMs uint64) error {
	d.mu.Lock()
	d.sent = append(d.sent, f)
	if d.inject != nil {
		d.inbound = append(d.inbound, d.inject(f)...)
	}
	d.mu.Unlock()
	return nil
}

func (d *fakeDevice) Receive(ctx context.Context, channel string, timeoutMs uint64) ([]isotp.CanFrame, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.inbound) == 0 {
		time.Sleep(time.Millisecond)
		return nil, nil
	}
	out := d.inbound
	d.inbound = nil
	return out, nil
}

func (d *fakeDevice) OpenedChannels() []string { return []string{"can0"} }
func (d *fakeDevice) IsClosed() bool           { return false }
func (d *fakeDevice) Shutdown() error          { return nil }

func testAddress() Address {
	return Address{TxID: 0x7E0, RxID: 0x7E8, FID: 0x7DF}
}

func TestEngineTransmitSingleFrame(t *testing.T) {
	dev := &fakeDevice{}
	eng, err := NewEngine(dev, newFakeCanFrame, "can0", testAddress(), DefaultConfig())
	require.NoError(t, err)

	err = eng.Transmit(context.Background(), Physical, []byte{0x10, 0x01})
	require.NoError(t, err)

	require.Len(t, dev.sent, 1)
	assert.Equal(t, isotp.CanID(0x7E0), dev.sent[0].ID())
	assert.Equal(t, StateIdle, eng.State())

	got, err := frame.Decode(dev.sent[0].Data())
	require.NoError(t, err)
	assert.Equal(t, []byte{0x10, 0x01}, got.Single.Data)
}

func TestEngineTransmitMultiFrameWithFlowControl(t *testing.T) {
	dev := &fakeDevice{}
	dev.inject = func(sent isotp.CanFrame) []isotp.CanFrame {
		fr, err := frame.Decode(sent.Data())
		if err != nil || fr.First == nil {
			return nil
		}
		fc := frame.DefaultFlowControlFrame()
		encoded, _ := frame.Encode(fc, nil)
		return []isotp.CanFrame{&fakeFrame{id: 0x7E8, data: encoded}}
	}

	eng, err := NewEngine(dev, newFakeCanFrame, "can0", testAddress(), DefaultConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eng.Start(ctx)
	defer eng.Stop()

	payload := make([]byte, 20)
	for i := range payload {
		payload[i] = byte(i + 1)
	}

	err = eng.Transmit(context.Background(), Physical, payload)
	require.NoError(t, err)

	require.Len(t, dev.sent, 3) // 1 first + 2 consecutive
	assert.Equal(t, StateIdle, eng.State())

	first, err := frame.Decode(dev.sent[0].Data())
	require.NoError(t, err)
	require.NotNil(t, first.First)
	assert.EqualValues(t, 20, first.First.Length)
}

func TestEngineReassembleSingleFrame(t *testing.T) {
	dev := &fakeDevice{}
	eng, err := NewEngine(dev, newFakeCanFrame, "can0", testAddress(), DefaultConfig())
	require.NoError(t, err)

	f, err := frame.NewSingle([]byte{0xAA, 0xBB})
	require.NoError(t, err)
	encoded, err := frame.Encode(f, nil)
	require.NoError(t, err)

	eng.onCanFrame(context.Background(), &fakeFrame{id: 0x7E8, data: encoded})

	data, err := eng.WaitData(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB}, data)
}

func TestEngineReassembleMultiFrame(t *testing.T) {
	dev := &fakeDevice{}
	eng, err := NewEngine(dev, newFakeCanFrame, "can0", testAddress(), DefaultConfig())
	require.NoError(t, err)

	payload := make([]byte, 13)
	for i := range payload {
		payload[i] = byte(i + 1)
	}
	frames, err := frame.FromData(payload)
	require.NoError(t, err)
	require.Len(t, frames, 2)

	for _, fr := range frames {
		encoded, err := frame.Encode(fr, nil)
		require.NoError(t, err)
		eng.onCanFrame(context.Background(), &fakeFrame{id: 0x7E8, data: encoded})
	}

	data, err := eng.WaitData(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestEngineInvalidSequenceRaisesError(t *testing.T) {
	dev := &fakeDevice{}
	eng, err := NewEngine(dev, newFakeCanFrame, "can0", testAddress(), DefaultConfig())
	require.NoError(t, err)

	firstFrame := frame.Frame{First: &frame.First{Length: 20, Data: make([]byte, frame.FirstFrameSize2004)}}
	encoded, err := frame.Encode(firstFrame, nil)
	require.NoError(t, err)
	eng.onCanFrame(context.Background(), &fakeFrame{id: 0x7E8, data: encoded})

	bad := frame.Frame{Consecutive: &frame.Consecutive{Sequence: 5, Data: []byte{1}}}
	encodedBad, err := frame.Encode(bad, nil)
	require.NoError(t, err)
	eng.onCanFrame(context.Background(), &fakeFrame{id: 0x7E8, data: encodedBad})

	_, err = eng.WaitData(context.Background(), 50)
	require.Error(t, err)
	var seqErr *InvalidSequenceError
	assert.ErrorAs(t, err, &seqErr)
	assert.True(t, eng.State().Contains(StateError))
}

func TestEngineOverloadFlowControl(t *testing.T) {
	dev := &fakeDevice{}
	eng, err := NewEngine(dev, newFakeCanFrame, "can0", testAddress(), DefaultConfig())
	require.NoError(t, err)

	overload := frame.Frame{FlowControl: &frame.FlowControl{State: frame.FlowControlOverload}}
	encoded, err := frame.Encode(overload, nil)
	require.NoError(t, err)
	eng.onCanFrame(context.Background(), &fakeFrame{id: 0x7E8, data: encoded})

	_, err = eng.WaitData(context.Background(), 50)
	assert.ErrorIs(t, err, ErrOverloadFlow)
}
