package doip

import (
	"unicode/utf8"

	"github.com/rob-gra/go-diagcan/bytecodec"
)

// VehicleID builds a VehicleIdentificationRequest (0x0001): an empty
// broadcast probe every DoIP entity on the network answers.
func VehicleID() Header {
	return Header{Type: UDPReqVehicleID}
}

// ParseVehicleID validates an empty VehicleIdentificationRequest body.
func ParseVehicleID(data []byte) error {
	_, err := lengthCheck(data, 0, true)
	return err
}

// VehicleIDWithEID builds a VehicleIdentificationRequestWithEID (0x0002),
// addressed to a single entity by its EID.
func VehicleIDWithEID(eid Eid) Header {
	return Header{Type: UDPReqVehicleIDWithEID, Body: eid.Bytes()}
}

// ParseVehicleIDWithEID decodes the Eid out of a
// VehicleIdentificationRequestWithEID body.
func ParseVehicleIDWithEID(data []byte) (Eid, error) {
	if _, err := lengthCheck(data, 6, true); err != nil {
		return Eid{}, err
	}
	return ParseEid(data)
}

// VehicleIDWithVIN builds a VehicleIdentificationRequestWithVIN (0x0003).
// vin must be exactly LengthOfVIN bytes.
func VehicleIDWithVIN(vin string) (Header, error) {
	if len(vin) != LengthOfVIN {
		return Header{}, &InvalidParamError{What: "length of vin must equal 17"}
	}
	return Header{Type: UDPReqVehicleIDWithVIN, Body: []byte(vin)}, nil
}

// ParseVehicleIDWithVIN decodes the VIN out of a
// VehicleIdentificationRequestWithVIN body. Invalid UTF-8 is not
// surfaced as an error: it is replaced with a dash-filled string of the
// same length, matching the lenient decode this message has always used.
func ParseVehicleIDWithVIN(data []byte) (string, error) {
	if _, err := lengthCheck(data, LengthOfVIN, true); err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return dashFill(len(data)), nil
	}
	return string(data), nil
}

// EntityStatus builds a DoIPEntityStatusRequest (0x4001): an empty probe
// for the entity's TCP_DATA socket capacity.
func EntityStatus() Header {
	return Header{Type: UDPReqEntityStatus}
}

// ParseEntityStatus validates an empty DoIPEntityStatusRequest body.
func ParseEntityStatus(data []byte) error {
	_, err := lengthCheck(data, 0, true)
	return err
}

// DiagnosticPowerMode builds a DiagnosticPowerModeRequest (0x4003): an
// empty probe for the entity's current power mode.
func DiagnosticPowerMode() Header {
	return Header{Type: UDPReqPowerMode}
}

// ParseDiagnosticPowerMode validates an empty DiagnosticPowerModeRequest body.
func ParseDiagnosticPowerMode(data []byte) error {
	_, err := lengthCheck(data, 0, true)
	return err
}

// RoutingActiveRequest is a TCP RoutingActivationRequest (0x0005): opens
// a routing channel for SrcAddr at the given activation type.
type RoutingActiveRequest struct {
	SrcAddr LogicAddress
	Active  RoutingActiveType
	UserDef *uint32
}

const routingActiveRequestLength = SizeOfAddress + 1 + 4

// RoutingActive builds the wire body for a RoutingActiveRequest.
func RoutingActive(req RoutingActiveRequest) Header {
	dst := make([]byte, 0, routingActiveRequestLength+4)
	dst = putAddress(dst, req.SrcAddr)
	dst = append(dst, byte(req.Active))
	dst, _ = bytecodec.PutUint(dst, 0, 4) // reserved
	if req.UserDef != nil {
		dst, _ = bytecodec.PutUint(dst, uint64(*req.UserDef), 4)
	}
	return Header{Type: TCPReqRoutingActive, Body: dst}
}

// ParseRoutingActive decodes a RoutingActivationRequest body.
func ParseRoutingActive(data []byte) (RoutingActiveRequest, error) {
	if _, err := lengthCheck(data, routingActiveRequestLength, false); err != nil {
		return RoutingActiveRequest{}, err
	}
	srcAddr, rest, err := takeAddress(data)
	if err != nil {
		return RoutingActiveRequest{}, err
	}
	active := RoutingActiveType(rest[0])
	rest = rest[1:]
	_, rest, err = bytecodec.Uint(rest, 4) // reserved, ignored
	if err != nil {
		return RoutingActiveRequest{}, err
	}
	var userDef *uint32
	switch len(rest) {
	case 0:
	case 4:
		v, _, err := bytecodec.Uint(rest, 4)
		if err != nil {
			return RoutingActiveRequest{}, err
		}
		u := uint32(v)
		userDef = &u
	default:
		return RoutingActiveRequest{}, &InvalidLengthError{Expect: routingActiveRequestLength + 4, Actual: len(data)}
	}
	return RoutingActiveRequest{SrcAddr: srcAddr, Active: active, UserDef: userDef}, nil
}

// AliveCheck builds an AliveCheckRequest (0x0007): an empty keep-alive
// probe sent to a TCP_DATA socket.
func AliveCheck() Header {
	return Header{Type: TCPReqAliveCheck}
}

// ParseAliveCheck validates an empty AliveCheckRequest body.
func ParseAliveCheck(data []byte) error {
	_, err := lengthCheck(data, 0, true)
	return err
}

func dashFill(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '-'
	}
	return string(b)
}
