package doip

import (
	"unicode/utf8"

	"github.com/rob-gra/go-diagcan/bytecodec"
)

// HeaderNegativeResponse builds a HeaderNegative (0x0000): the generic
// header's own reject, sent when the header itself (not a message body)
// is malformed.
func HeaderNegativeResponse(code HeaderNegativeCode) Header {
	return Header{Type: HeaderNegative, Body: []byte{byte(code)}}
}

// ParseHeaderNegativeResponse decodes a HeaderNegative body.
func ParseHeaderNegativeResponse(data []byte) (HeaderNegativeCode, error) {
	if _, err := lengthCheck(data, 1, true); err != nil {
		return 0, err
	}
	return HeaderNegativeCode(data[0]), nil
}

// VehicleIDResponse is the VehicleIdentificationResponse (0x0004) every
// DoIP entity announces itself with, whether solicited or broadcast on
// power-up.
type VehicleIDResponse struct {
	VIN        string
	Address    LogicAddress
	EID        Eid
	GID        Gid
	FurtherAct FurtherAction
	SyncStatus *SyncStatus
}

const vehicleIDResponseLength = LengthOfVIN + SizeOfAddress + 6 + 6 + 1

// VehicleIDAnnouncement builds the wire body for a VehicleIDResponse.
// vin must be exactly LengthOfVIN bytes.
func VehicleIDAnnouncement(r VehicleIDResponse) (Header, error) {
	if len(r.VIN) != LengthOfVIN {
		return Header{}, &InvalidParamError{What: "length of vin must equal 17"}
	}
	dst := make([]byte, 0, vehicleIDResponseLength+1)
	dst = append(dst, []byte(r.VIN)...)
	dst = putAddress(dst, r.Address)
	dst = append(dst, r.EID.Bytes()...)
	dst = append(dst, r.GID.Bytes()...)
	dst = append(dst, byte(r.FurtherAct))
	if r.SyncStatus != nil {
		dst = append(dst, byte(*r.SyncStatus))
	}
	return Header{Type: UDPRespVehicleID, Body: dst}, nil
}

// ParseVehicleIDAnnouncement decodes a VehicleIDResponse body. Invalid
// UTF-8 in the VIN field is replaced with dashes rather than rejected,
// matching the lenient decode used for the request-side VIN field.
func ParseVehicleIDAnnouncement(data []byte) (VehicleIDResponse, error) {
	n, err := lengthCheck(data, vehicleIDResponseLength, false)
	if err != nil {
		return VehicleIDResponse{}, err
	}
	vinBytes := data[:LengthOfVIN]
	vin := string(vinBytes)
	if !utf8.Valid(vinBytes) {
		vin = dashFill(LengthOfVIN)
	}
	offset := LengthOfVIN
	addr, _, err := takeAddress(data[offset:])
	if err != nil {
		return VehicleIDResponse{}, err
	}
	offset += SizeOfAddress
	eid, err := ParseEid(data[offset:])
	if err != nil {
		return VehicleIDResponse{}, err
	}
	offset += 6
	gid, err := ParseGid(data[offset:])
	if err != nil {
		return VehicleIDResponse{}, err
	}
	offset += 6
	furtherAct := FurtherAction(data[offset])
	offset++
	var sync *SyncStatus
	switch n - offset {
	case 0:
	case 1:
		s := SyncStatus(data[offset])
		sync = &s
	default:
		return VehicleIDResponse{}, &InvalidLengthError{Expect: vehicleIDResponseLength + 1, Actual: n}
	}
	return VehicleIDResponse{VIN: vin, Address: addr, EID: eid, GID: gid, FurtherAct: furtherAct, SyncStatus: sync}, nil
}

// EntityStatusResponse is the DoIPEntityStatusResponse (0x4002): how many
// TCP_DATA sockets this entity supports and has open.
type EntityStatusResponse struct {
	NodeType    NodeType
	MaxSockets  uint8
	OpenSockets uint8
	MaxDataSize *uint32
}

const entityStatusResponseLength = 3

// EntityStatusAnnouncement builds the wire body for an EntityStatusResponse.
func EntityStatusAnnouncement(r EntityStatusResponse) Header {
	dst := make([]byte, 0, entityStatusResponseLength+4)
	dst = append(dst, byte(r.NodeType), r.MaxSockets, r.OpenSockets)
	if r.MaxDataSize != nil {
		dst, _ = bytecodec.PutUint(dst, uint64(*r.MaxDataSize), 4)
	}
	return Header{Type: UDPRespEntityStatus, Body: dst}
}

// ParseEntityStatusAnnouncement decodes an EntityStatusResponse body.
func ParseEntityStatusAnnouncement(data []byte) (EntityStatusResponse, error) {
	n, err := lengthCheck(data, entityStatusResponseLength, false)
	if err != nil {
		return EntityStatusResponse{}, err
	}
	nodeType := NodeType(data[0])
	mcts, ncts := data[1], data[2]
	var maxSize *uint32
	switch n - entityStatusResponseLength {
	case 0:
	case 4:
		v, _, err := bytecodec.Uint(data[entityStatusResponseLength:], 4)
		if err != nil {
			return EntityStatusResponse{}, err
		}
		u := uint32(v)
		maxSize = &u
	default:
		return EntityStatusResponse{}, &InvalidLengthError{Expect: entityStatusResponseLength + 4, Actual: n}
	}
	return EntityStatusResponse{NodeType: nodeType, MaxSockets: mcts, OpenSockets: ncts, MaxDataSize: maxSize}, nil
}

// DiagnosticPowerModeResponse is the DiagnosticPowerModeResponse (0x4004).
func DiagnosticPowerModeResponse(mode PowerMode) Header {
	return Header{Type: UDPRespPowerMode, Body: []byte{byte(mode)}}
}

// ParseDiagnosticPowerModeResponse decodes a DiagnosticPowerModeResponse body.
func ParseDiagnosticPowerModeResponse(data []byte) (PowerMode, error) {
	if _, err := lengthCheck(data, 1, true); err != nil {
		return 0, err
	}
	return PowerMode(data[0]), nil
}

// RoutingActiveResponse is the TCP RoutingActivationResponse (0x0006).
type RoutingActiveResponse struct {
	DstAddr    LogicAddress
	SrcAddr    LogicAddress
	ActiveCode ActiveCode
	UserDef    *uint32
}

const routingActiveResponseLength = SizeOfAddress + SizeOfAddress + 1 + 4

// RoutingActivation builds the wire body for a RoutingActiveResponse.
func RoutingActivation(r RoutingActiveResponse) Header {
	dst := make([]byte, 0, routingActiveResponseLength+4)
	dst = putAddress(dst, r.DstAddr)
	dst = putAddress(dst, r.SrcAddr)
	dst = append(dst, byte(r.ActiveCode))
	dst, _ = bytecodec.PutUint(dst, 0, 4) // reserved
	if r.UserDef != nil {
		dst, _ = bytecodec.PutUint(dst, uint64(*r.UserDef), 4)
	}
	return Header{Type: TCPRespRoutingActive, Body: dst}
}

// ParseRoutingActivation decodes a RoutingActiveResponse body.
func ParseRoutingActivation(data []byte) (RoutingActiveResponse, error) {
	n, err := lengthCheck(data, routingActiveResponseLength, false)
	if err != nil {
		return RoutingActiveResponse{}, err
	}
	dstAddr, rest, err := takeAddress(data)
	if err != nil {
		return RoutingActiveResponse{}, err
	}
	srcAddr, rest, err := takeAddress(rest)
	if err != nil {
		return RoutingActiveResponse{}, err
	}
	activeCode := ActiveCode(rest[0])
	rest = rest[1:]
	_, rest, err = bytecodec.Uint(rest, 4) // reserved, ignored
	if err != nil {
		return RoutingActiveResponse{}, err
	}
	var userDef *uint32
	switch n - routingActiveResponseLength {
	case 0:
	case 4:
		v, _, err := bytecodec.Uint(rest, 4)
		if err != nil {
			return RoutingActiveResponse{}, err
		}
		u := uint32(v)
		userDef = &u
	default:
		return RoutingActiveResponse{}, &InvalidLengthError{Expect: routingActiveResponseLength + 4, Actual: n}
	}
	return RoutingActiveResponse{DstAddr: dstAddr, SrcAddr: srcAddr, ActiveCode: activeCode, UserDef: userDef}, nil
}

// AliveCheckResponse is the TCP AliveCheckResponse (0x0008): the source
// address of the tester confirming it is still alive.
func AliveCheckResponse(srcAddr LogicAddress) Header {
	return Header{Type: TCPRespAliveCheck, Body: putAddress(nil, srcAddr)}
}

// ParseAliveCheckResponse decodes an AliveCheckResponse body.
func ParseAliveCheckResponse(data []byte) (LogicAddress, error) {
	if _, err := lengthCheck(data, SizeOfAddress, true); err != nil {
		return 0, err
	}
	addr, _, err := takeAddress(data)
	return addr, err
}

// DiagnosticPositive is the TCP DiagnosticMessagePositiveAck (0x8002):
// the routing entity confirms it forwarded a UDS payload onward, with
// the UDS bytes it forwarded echoed back in PreDiagData.
type DiagnosticPositive struct {
	SrcAddr     LogicAddress
	DstAddr     LogicAddress
	Code        DiagnosticPositiveCode
	PreDiagData []byte
}

const diagnosticAckLength = SizeOfAddress + SizeOfAddress + 1

// DiagnosticPositiveAck builds the wire body for a DiagnosticPositive ack.
func DiagnosticPositiveAck(a DiagnosticPositive) Header {
	dst := make([]byte, 0, diagnosticAckLength+len(a.PreDiagData))
	dst = putAddress(dst, a.SrcAddr)
	dst = putAddress(dst, a.DstAddr)
	dst = append(dst, byte(a.Code))
	dst = append(dst, a.PreDiagData...)
	return Header{Type: TCPDiagnosticPositive, Body: dst}
}

// ParseDiagnosticPositiveAck decodes a DiagnosticPositive body.
func ParseDiagnosticPositiveAck(data []byte) (DiagnosticPositive, error) {
	if _, err := lengthCheck(data, diagnosticAckLength, false); err != nil {
		return DiagnosticPositive{}, err
	}
	srcAddr, rest, err := takeAddress(data)
	if err != nil {
		return DiagnosticPositive{}, err
	}
	dstAddr, rest, err := takeAddress(rest)
	if err != nil {
		return DiagnosticPositive{}, err
	}
	code := DiagnosticPositiveCode(rest[0])
	preDiag := append([]byte(nil), rest[1:]...)
	return DiagnosticPositive{SrcAddr: srcAddr, DstAddr: dstAddr, Code: code, PreDiagData: preDiag}, nil
}

// DiagnosticNegative is the TCP DiagnosticMessageNegativeAck (0x8003):
// the routing entity rejects a UDS payload outright, before it ever
// reaches the target ECU.
type DiagnosticNegative struct {
	SrcAddr     LogicAddress
	DstAddr     LogicAddress
	Code        DiagnosticNegativeCode
	PreDiagData []byte
}

// DiagnosticNegativeAck builds the wire body for a DiagnosticNegative ack.
func DiagnosticNegativeAck(a DiagnosticNegative) Header {
	dst := make([]byte, 0, diagnosticAckLength+len(a.PreDiagData))
	dst = putAddress(dst, a.SrcAddr)
	dst = putAddress(dst, a.DstAddr)
	dst = append(dst, byte(a.Code))
	dst = append(dst, a.PreDiagData...)
	return Header{Type: TCPDiagnosticNegative, Body: dst}
}

// ParseDiagnosticNegativeAck decodes a DiagnosticNegative body.
func ParseDiagnosticNegativeAck(data []byte) (DiagnosticNegative, error) {
	if _, err := lengthCheck(data, diagnosticAckLength, false); err != nil {
		return DiagnosticNegative{}, err
	}
	srcAddr, rest, err := takeAddress(data)
	if err != nil {
		return DiagnosticNegative{}, err
	}
	dstAddr, rest, err := takeAddress(rest)
	if err != nil {
		return DiagnosticNegative{}, err
	}
	code := DiagnosticNegativeCode(rest[0])
	preDiag := append([]byte(nil), rest[1:]...)
	return DiagnosticNegative{SrcAddr: srcAddr, DstAddr: dstAddr, Code: code, PreDiagData: preDiag}, nil
}
