package transport

import (
	"errors"
	"fmt"
)

// ErrMixFrames is returned when a Consecutive frame arrives without a
// preceding First frame for the current transfer.
var ErrMixFrames = errors.New("isotp/transport: consecutive frame without first frame")

// ErrOverloadFlow is returned when the peer aborts with FlowControl(Overload).
var ErrOverloadFlow = errors.New("isotp/transport: peer flow control overload")

// ErrDeviceError wraps a failure from the underlying CanDevice.
var ErrDeviceError = errors.New("isotp/transport: device error")

// InvalidSequenceError reports a Consecutive frame sequence number that
// does not match the expected next value.
type InvalidSequenceError struct {
	Expected uint8
	Actual   uint8
}

func (e *InvalidSequenceError) Error() string {
	return fmt.Sprintf("isotp/transport: invalid sequence, expected %d got %d", e.Expected, e.Actual)
}

// InvalidStMinError reports an st_min byte in a reserved range
// (0x80-0xF0, 0xFA-0xFF).
type InvalidStMinError struct {
	StMin uint8
}

func (e *InvalidStMinError) Error() string {
	return fmt.Sprintf("isotp/transport: invalid st_min %#x", e.StMin)
}

// TimeoutError reports any of N_As/N_Bs/N_Cr/P2* exceeded.
type TimeoutError struct {
	Value uint64
	Unit  string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("isotp/transport: timeout after %d%s", e.Value, e.Unit)
}
