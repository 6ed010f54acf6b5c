// Package isotp defines the abstract CAN device capability the ISO-TP
// transport engine is built on. Concrete hardware drivers are out of
// scope; callers supply an implementation (a SocketCAN binding, a USB-CAN
// adapter, a loopback test double, ...).
package isotp

import "context"

// CanID is an 11-bit or 29-bit CAN identifier.
type CanID uint32

// CanFrame is a single classic or CAN-FD frame exchanged with a device.
type CanFrame interface {
	ID() CanID
	Data() []byte
	Channel() string
	SetChannel(channel string)
}

// CanDevice is the transmit/receive capability the engine consumes. It
// does not own channel lifecycle beyond reporting which are open.
type CanDevice interface {
	Transmit(ctx context.Context, frame CanFrame, timeoutMs uint64) error
	Receive(ctx context.Context, channel string, timeoutMs uint64) ([]CanFrame, error)
	OpenedChannels() []string
	IsClosed() bool
	Shutdown() error
}

// NewCanFrameFunc builds a frame addressed to id carrying data, on no
// particular channel (callers call SetChannel before transmitting).
type NewCanFrameFunc func(id CanID, data []byte) (CanFrame, error)
