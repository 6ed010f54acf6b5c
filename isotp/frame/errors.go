package frame

import (
	"errors"
	"fmt"
)

// ErrEmptyPdu is returned when encoding or splitting a zero-length payload,
// or decoding a Single-frame header that claims zero data bytes.
var ErrEmptyPdu = errors.New("isotp/frame: empty pdu")

// LengthOutOfRangeError reports a payload longer than MaxLength2016 can
// express, or a Single-frame payload longer than SingleFrameSize2016.
type LengthOutOfRangeError struct {
	Length int
}

func (e *LengthOutOfRangeError) Error() string {
	return fmt.Sprintf("isotp/frame: length %d out of range", e.Length)
}

// InvalidParamError reports a malformed field value that fails a narrow
// domain check (a flow control state outside 0x0-0x2, a sequence number
// outside 0x0-0xF).
type InvalidParamError struct {
	What string
}

func (e *InvalidParamError) Error() string {
	return "isotp/frame: invalid " + e.What
}

// InvalidPduError reports a frame whose header cannot be parsed as any
// known PDU type.
type InvalidPduError struct {
	Data []byte
}

func (e *InvalidPduError) Error() string {
	return fmt.Sprintf("isotp/frame: invalid pdu % x", e.Data)
}

// InvalidDataLengthError reports a frame shorter than its type requires.
type InvalidDataLengthError struct {
	Expect int
	Actual int
}

func (e *InvalidDataLengthError) Error() string {
	return fmt.Sprintf("isotp/frame: expect at least %d bytes, got %d", e.Expect, e.Actual)
}
