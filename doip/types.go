package doip

import (
	"fmt"

	"github.com/rob-gra/go-diagcan/bytecodec"
)

// SizeOfAddress is the wire width of a LogicAddress field.
const SizeOfAddress = 2

// LengthOfVIN is the fixed length of a VIN string (ISO 13400-2 Table 4).
const LengthOfVIN = 17

// LogicAddress is a DoIP logical address (ISO 13400-2 §7.8).
type LogicAddress uint16

// Eid is a 6-byte entity identifier, typically a MAC address.
type Eid [6]byte

func (Eid) length() int { return 6 }

// ParseEid reads a 6-byte Eid from the front of data.
func ParseEid(data []byte) (Eid, error) {
	if len(data) < 6 {
		return Eid{}, &InvalidLengthError{Expect: 6, Actual: len(data)}
	}
	var e Eid
	copy(e[:], data[:6])
	return e, nil
}

// Bytes encodes the Eid.
func (e Eid) Bytes() []byte { return append([]byte(nil), e[:]...) }

// Gid is a 6-byte group identifier.
type Gid [6]byte

func (Gid) length() int { return 6 }

// ParseGid reads a 6-byte Gid from the front of data.
func ParseGid(data []byte) (Gid, error) {
	if len(data) < 6 {
		return Gid{}, &InvalidLengthError{Expect: 6, Actual: len(data)}
	}
	var g Gid
	copy(g[:], data[:6])
	return g, nil
}

// Bytes encodes the Gid.
func (g Gid) Bytes() []byte { return append([]byte(nil), g[:]...) }

// FurtherAction advertises whether a vehicle announcement requires
// further action from the client (ISO 13400-2 Table 8).
type FurtherAction uint8

const (
	NoFurtherActionRequired FurtherAction = 0x00
	RoutingActivationRequired FurtherAction = 0x10
)

func (f FurtherAction) String() string {
	switch f {
	case NoFurtherActionRequired:
		return "NoFurtherActionRequired"
	case RoutingActivationRequired:
		return "RoutingActivationRequired"
	default:
		return fmt.Sprintf("Reserved(0x%02X)", uint8(f))
	}
}

// SyncStatus reports whether the VIN/GID pair is synchronized across the
// vehicle's DoIP entities (ISO 13400-2 Table 9).
type SyncStatus uint8

const (
	VINGIDSynchronized   SyncStatus = 0x00
	VINGIDNotSynchronized SyncStatus = 0x10
)

func (s SyncStatus) String() string {
	switch s {
	case VINGIDSynchronized:
		return "VINGIDSynchronized"
	case VINGIDNotSynchronized:
		return "VINGIDNotSynchronized"
	default:
		return fmt.Sprintf("Reserved(0x%02X)", uint8(s))
	}
}

// NodeType distinguishes a DoIP gateway from a plain node (ISO 13400-2
// §7.2 EntityStatusResponse).
type NodeType uint8

const (
	NodeTypeGateway NodeType = 0x00
	NodeTypeNode    NodeType = 0x01
)

func (n NodeType) String() string {
	switch n {
	case NodeTypeGateway:
		return "Gateway"
	case NodeTypeNode:
		return "Node"
	default:
		return fmt.Sprintf("Reserved(0x%02X)", uint8(n))
	}
}

// PowerMode is the diagnostic power mode reported by DiagnosticPowerMode
// (ISO 13400-2 §7.3).
type PowerMode uint8

const (
	PowerModeNotReady PowerMode = 0x00
	PowerModeReady    PowerMode = 0x01
	PowerModeNotSupported PowerMode = 0x02
)

func (p PowerMode) String() string {
	switch p {
	case PowerModeNotReady:
		return "NotReady"
	case PowerModeReady:
		return "Ready"
	case PowerModeNotSupported:
		return "NotSupported"
	default:
		return fmt.Sprintf("Reserved(0x%02X)", uint8(p))
	}
}

// RoutingActiveType is the activation type carried on a routing
// activation request (ISO 13400-2 Table 24).
type RoutingActiveType uint8

const (
	RoutingActiveDefault          RoutingActiveType = 0x00
	RoutingActiveWWHOBD           RoutingActiveType = 0x01
	RoutingActiveCentralSecurity  RoutingActiveType = 0xE0
)

func (r RoutingActiveType) String() string {
	switch r {
	case RoutingActiveDefault:
		return "Default"
	case RoutingActiveWWHOBD:
		return "WWHOBD"
	case RoutingActiveCentralSecurity:
		return "CentralSecurity"
	default:
		return fmt.Sprintf("Reserved(0x%02X)", uint8(r))
	}
}

// ActiveCode is the routing activation result code (ISO 13400-2 Table 25).
type ActiveCode uint8

const (
	ActiveUnknownSourceAddress      ActiveCode = 0x00
	ActiveNoSocketResources         ActiveCode = 0x01
	ActiveDifferentSocketAlreadyActive ActiveCode = 0x02
	ActiveSourceAddressAlreadyActive ActiveCode = 0x03
	ActiveSourceAddressAlreadyRegistered ActiveCode = 0x04
	ActiveMissingAuthentication     ActiveCode = 0x05
	ActiveRejectedConfirmation      ActiveCode = 0x06
	ActiveUnsupportedRoutingType    ActiveCode = 0x07
	ActiveSuccess                   ActiveCode = 0x10
	ActiveSuccessConfirmationRequired ActiveCode = 0x11
)

func (a ActiveCode) String() string {
	switch a {
	case ActiveUnknownSourceAddress:
		return "UnknownSourceAddress"
	case ActiveNoSocketResources:
		return "NoSocketResources"
	case ActiveDifferentSocketAlreadyActive:
		return "DifferentSocketAlreadyActive"
	case ActiveSourceAddressAlreadyActive:
		return "SourceAddressAlreadyActive"
	case ActiveSourceAddressAlreadyRegistered:
		return "SourceAddressAlreadyRegistered"
	case ActiveMissingAuthentication:
		return "MissingAuthentication"
	case ActiveRejectedConfirmation:
		return "RejectedConfirmation"
	case ActiveUnsupportedRoutingType:
		return "UnsupportedRoutingType"
	case ActiveSuccess:
		return "Success"
	case ActiveSuccessConfirmationRequired:
		return "SuccessConfirmationRequired"
	default:
		return fmt.Sprintf("Reserved(0x%02X)", uint8(a))
	}
}

// HeaderNegativeCode is the generic header's own negative ack reason
// (ISO 13400-2 Table 3).
type HeaderNegativeCode uint8

const (
	IncorrectPatternFormat HeaderNegativeCode = 0x00
	UnknownPayloadType     HeaderNegativeCode = 0x01
	MessageTooLarge        HeaderNegativeCode = 0x02
	OutOfMemory            HeaderNegativeCode = 0x03
	InvalidPayloadLength   HeaderNegativeCode = 0x04
)

func (c HeaderNegativeCode) String() string {
	switch c {
	case IncorrectPatternFormat:
		return "IncorrectPatternFormat"
	case UnknownPayloadType:
		return "UnknownPayloadType"
	case MessageTooLarge:
		return "MessageTooLarge"
	case OutOfMemory:
		return "OutOfMemory"
	case InvalidPayloadLength:
		return "InvalidPayloadLength"
	default:
		return fmt.Sprintf("Reserved(0x%02X)", uint8(c))
	}
}

// DiagnosticPositiveCode acknowledges a diagnostic message was routed
// onward (ISO 13400-2 Table 27).
type DiagnosticPositiveCode uint8

const (
	DiagnosticPositiveConfirm DiagnosticPositiveCode = 0x00
)

func (c DiagnosticPositiveCode) String() string {
	if c == DiagnosticPositiveConfirm {
		return "Confirm"
	}
	return fmt.Sprintf("Reserved(0x%02X)", uint8(c))
}

// DiagnosticNegativeCode rejects a diagnostic message (ISO 13400-2 Table 28).
type DiagnosticNegativeCode uint8

const (
	DiagnosticNegativeInvalidSourceAddress      DiagnosticNegativeCode = 0x02
	DiagnosticNegativeUnknownTargetAddress      DiagnosticNegativeCode = 0x03
	DiagnosticNegativeDiagnosticMessageTooLarge DiagnosticNegativeCode = 0x04
	DiagnosticNegativeOutOfMemory               DiagnosticNegativeCode = 0x05
	DiagnosticNegativeTargetUnreachable         DiagnosticNegativeCode = 0x06
	DiagnosticNegativeUnknownNetwork            DiagnosticNegativeCode = 0x07
	DiagnosticNegativeTransportProtocolError    DiagnosticNegativeCode = 0x08
)

func (c DiagnosticNegativeCode) String() string {
	switch c {
	case DiagnosticNegativeInvalidSourceAddress:
		return "InvalidSourceAddress"
	case DiagnosticNegativeUnknownTargetAddress:
		return "UnknownTargetAddress"
	case DiagnosticNegativeDiagnosticMessageTooLarge:
		return "DiagnosticMessageTooLarge"
	case DiagnosticNegativeOutOfMemory:
		return "OutOfMemory"
	case DiagnosticNegativeTargetUnreachable:
		return "TargetUnreachable"
	case DiagnosticNegativeUnknownNetwork:
		return "UnknownNetwork"
	case DiagnosticNegativeTransportProtocolError:
		return "TransportProtocolError"
	default:
		return fmt.Sprintf("Reserved(0x%02X)", uint8(c))
	}
}

func putAddress(dst []byte, addr LogicAddress) []byte {
	dst, _ = bytecodec.PutUint(dst, uint64(addr), SizeOfAddress)
	return dst
}

func takeAddress(data []byte) (LogicAddress, []byte, error) {
	v, rest, err := bytecodec.Uint(data, SizeOfAddress)
	if err != nil {
		return 0, nil, err
	}
	return LogicAddress(v), rest, nil
}
