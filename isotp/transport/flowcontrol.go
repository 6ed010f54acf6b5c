package transport

import "github.com/rob-gra/go-diagcan/isotp/frame"

// FlowControlContext is the validated, decoded form of a received
// FlowControl frame: st_min is range-checked once here rather than on
// every wire decode.
type FlowControlContext struct {
	State     frame.FlowControlState
	BlockSize uint8
	StMin     uint8
}

// NewFlowControlContext validates stMin and returns the decoded context.
// 0x80..=0xF0 and 0xFA..=0xFF are reserved and rejected.
func NewFlowControlContext(state frame.FlowControlState, blockSize, stMin uint8) (FlowControlContext, error) {
	switch {
	case stMin >= 0x80 && stMin <= 0xF0:
		return FlowControlContext{}, &InvalidStMinError{StMin: stMin}
	case stMin >= 0xFA:
		return FlowControlContext{}, &InvalidStMinError{StMin: stMin}
	default:
		return FlowControlContext{State: state, BlockSize: blockSize, StMin: stMin}, nil
	}
}

// StMinMicros decodes StMin into microseconds: 0x00-0x7F is milliseconds,
// 0xF1-0xF9 is hundreds of microseconds (100us increments).
func (c FlowControlContext) StMinMicros() uint32 {
	switch {
	case c.StMin <= 0x7F:
		return 1000 * uint32(c.StMin)
	case c.StMin >= 0xF1 && c.StMin <= 0xF9:
		return 100 * uint32(c.StMin&0x0F)
	default:
		// unreachable: NewFlowControlContext already rejected this range.
		return 0
	}
}

func flowControlContextFromFrame(fc frame.FlowControl) (FlowControlContext, error) {
	return NewFlowControlContext(fc.State, fc.BlockSize, fc.StMin)
}
