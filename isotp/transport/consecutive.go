package transport

import "github.com/rob-gra/go-diagcan/isotp/frame"

// consecutive is the inbound reassembly buffer for a multi-frame payload.
// It is populated by a First frame and completed by a run of Consecutive
// frames whose sequence numbers wrap 1,2,...,15,0,1,...
type consecutive struct {
	expectedLength *uint32
	nextSequence   *uint8
	buffer         []byte
}

func (c *consecutive) reset() {
	c.expectedLength = nil
	c.nextSequence = nil
	c.buffer = c.buffer[:0]
}

func (c *consecutive) start(length uint32, data []byte) {
	l := length
	c.expectedLength = &l
	c.nextSequence = nil
	c.buffer = append(c.buffer[:0], data...)
}

// append validates sequence and appends data, returning the completed
// payload (truncated to expectedLength) once the buffer is full.
func (c *consecutive) append(sequence uint8, data []byte) ([]byte, bool, error) {
	if c.expectedLength == nil {
		return nil, false, ErrMixFrames
	}

	target := frame.ConsecutiveSequenceStart
	if c.nextSequence != nil {
		if *c.nextSequence <= 0x0E {
			target = *c.nextSequence + 1
		} else {
			target = 0
		}
	}
	c.nextSequence = &target
	if sequence != target {
		return nil, false, &InvalidSequenceError{Expected: target, Actual: sequence}
	}

	c.buffer = append(c.buffer, data...)
	if len(c.buffer) >= int(*c.expectedLength) {
		c.buffer = c.buffer[:*c.expectedLength]
		return c.buffer, true, nil
	}
	return nil, false, nil
}
