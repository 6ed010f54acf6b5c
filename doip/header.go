package doip

import "github.com/rob-gra/go-diagcan/bytecodec"

// PayloadType identifies a DoIP generic header's payload (ISO 13400-2
// Table 2).
type PayloadType uint16

const (
	HeaderNegative PayloadType = 0x0000

	UDPReqVehicleID        PayloadType = 0x0001
	UDPReqVehicleIDWithEID PayloadType = 0x0002
	UDPReqVehicleIDWithVIN PayloadType = 0x0003
	UDPRespVehicleID       PayloadType = 0x0004

	TCPReqRoutingActive  PayloadType = 0x0005
	TCPRespRoutingActive PayloadType = 0x0006
	TCPReqAliveCheck     PayloadType = 0x0007
	TCPRespAliveCheck    PayloadType = 0x0008

	UDPReqEntityStatus   PayloadType = 0x4001
	UDPRespEntityStatus  PayloadType = 0x4002
	UDPReqPowerMode      PayloadType = 0x4003
	UDPRespPowerMode     PayloadType = 0x4004

	TCPDiagnosticPositive PayloadType = 0x8002
	TCPDiagnosticNegative PayloadType = 0x8003
)

var payloadTypeNames = map[PayloadType]string{
	HeaderNegative:         "HeaderNegative",
	UDPReqVehicleID:        "VehicleIdentificationRequest",
	UDPReqVehicleIDWithEID: "VehicleIdentificationRequestWithEID",
	UDPReqVehicleIDWithVIN: "VehicleIdentificationRequestWithVIN",
	UDPRespVehicleID:       "VehicleIdentificationResponse",
	TCPReqRoutingActive:    "RoutingActivationRequest",
	TCPRespRoutingActive:   "RoutingActivationResponse",
	TCPReqAliveCheck:       "AliveCheckRequest",
	TCPRespAliveCheck:      "AliveCheckResponse",
	UDPReqEntityStatus:     "DoIPEntityStatusRequest",
	UDPRespEntityStatus:    "DoIPEntityStatusResponse",
	UDPReqPowerMode:        "DiagnosticPowerModeRequest",
	UDPRespPowerMode:       "DiagnosticPowerModeResponse",
	TCPDiagnosticPositive:  "DiagnosticMessagePositiveAck",
	TCPDiagnosticNegative:  "DiagnosticMessageNegativeAck",
}

func (t PayloadType) String() string {
	if name, ok := payloadTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Header is the 2-byte-type + 4-byte-length generic header every DoIP
// payload is wrapped in (ISO 13400-2 §7.1).
type Header struct {
	Type PayloadType
	Body []byte
}

// Bytes encodes the header and its body as the wire envelope:
// type(u16) | length(u32) | body.
func (h Header) Bytes() []byte {
	dst := make([]byte, 0, 6+len(h.Body))
	dst, _ = bytecodec.PutUint(dst, uint64(h.Type), 2)
	dst, _ = bytecodec.PutUint(dst, uint64(len(h.Body)), 4)
	dst = append(dst, h.Body...)
	return dst
}

// ParseHeader splits a raw DoIP datagram into its type and body, checking
// that at least the declared length actually follows. Bytes beyond the
// declared length are not part of the returned body.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < 6 {
		return Header{}, &InvalidLengthError{Expect: 6, Actual: len(data)}
	}
	typ, rest, err := bytecodec.Uint(data, 2)
	if err != nil {
		return Header{}, err
	}
	length, rest, err := bytecodec.Uint(rest, 4)
	if err != nil {
		return Header{}, err
	}
	if uint64(len(rest)) < length {
		return Header{}, &InvalidLengthError{Expect: int(length), Actual: len(rest)}
	}
	return Header{Type: PayloadType(typ), Body: rest[:length]}, nil
}
