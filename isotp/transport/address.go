package transport

import "github.com/rob-gra/go-diagcan/isotp"

// AddressType selects which identifier of an Address a transmit targets.
type AddressType byte

const (
	// Physical addresses a single ECU; the engine sends to Address.TxID.
	Physical AddressType = iota
	// Functional broadcasts to a group; the engine sends to Address.FID.
	Functional
)

func (t AddressType) String() string {
	if t == Functional {
		return "Functional"
	}
	return "Physical"
}

// Address is the triple of CAN identifiers an ISO-TP session is bound to.
type Address struct {
	// TxID is used for physical (point-to-point) requests.
	TxID isotp.CanID
	// RxID is the identifier replies are expected on.
	RxID isotp.CanID
	// FID is used for functional (broadcast) requests.
	FID isotp.CanID
}

// Target resolves the outbound CAN identifier for t.
func (a Address) Target(t AddressType) isotp.CanID {
	if t == Functional {
		return a.FID
	}
	return a.TxID
}
