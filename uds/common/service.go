// Package common holds the UDS wire vocabulary shared by the request and
// response codecs: the Service enum, the DID taxonomy, sub-function
// encoding, packed memory-location fields and the NRC code table.
package common

import "fmt"

// Service is a UDS service identifier (ISO 14229-1 Table 9/Annex A).
type Service uint8

const (
	SessionCtrl         Service = 0x10
	ECUReset             Service = 0x11
	ClearDiagnosticInfo  Service = 0x14
	ReadDTCInfo          Service = 0x19
	ReadDID              Service = 0x22
	ReadMemByAddr        Service = 0x23
	ReadScalingDID       Service = 0x24
	SecurityAccess       Service = 0x27
	CommunicationCtrl    Service = 0x28
	Authentication       Service = 0x29 // std2020
	ReadDataByPeriodID   Service = 0x2A
	DynamicallyDefineDID Service = 0x2C
	WriteDID             Service = 0x2E
	IOCtrl               Service = 0x2F
	RoutineCtrl          Service = 0x31
	RequestDownload      Service = 0x34
	RequestUpload        Service = 0x35
	TransferData         Service = 0x36
	RequestTransferExit  Service = 0x37
	RequestFileTransfer  Service = 0x38 // std2013, std2020
	WriteMemByAddr       Service = 0x3D
	TesterPresent        Service = 0x3E
	AccessTimingParam    Service = 0x83 // std2006, std2013
	SecuredDataTrans     Service = 0x84
	CtrlDTCSetting       Service = 0x85
	ResponseOnEvent      Service = 0x86
	LinkCtrl             Service = 0x87
	NRC                  Service = 0x7F
)

// PositiveOffset is ORed into a request service ID to form its positive
// response ID (ISO 14229-1 §6.1).
const PositiveOffset = 0x40

// SuppressPositive is the sub-function MSB requesting no positive response.
const SuppressPositive = 0x80

var serviceNames = map[Service]string{
	SessionCtrl:          "DiagnosticSessionControl",
	ECUReset:             "ECUReset",
	ClearDiagnosticInfo:  "ClearDiagnosticInformation",
	ReadDTCInfo:          "ReadDTCInformation",
	ReadDID:              "ReadDataByIdentifier",
	ReadMemByAddr:        "ReadMemoryByAddress",
	ReadScalingDID:       "ReadScalingDataByIdentifier",
	SecurityAccess:       "SecurityAccess",
	CommunicationCtrl:    "CommunicationControl",
	Authentication:       "Authentication",
	ReadDataByPeriodID:   "ReadDataByPeriodicIdentifier",
	DynamicallyDefineDID: "DynamicallyDefineDataIdentifier",
	WriteDID:             "WriteDataByIdentifier",
	IOCtrl:               "InputOutputControlByIdentifier",
	RoutineCtrl:          "RoutineControl",
	RequestDownload:      "RequestDownload",
	RequestUpload:        "RequestUpload",
	TransferData:         "TransferData",
	RequestTransferExit:  "RequestTransferExit",
	RequestFileTransfer:  "RequestFileTransfer",
	WriteMemByAddr:       "WriteMemoryByAddress",
	TesterPresent:        "TesterPresent",
	AccessTimingParam:    "AccessTimingParameter",
	SecuredDataTrans:     "SecuredDataTransmission",
	CtrlDTCSetting:       "ControlDTCSetting",
	ResponseOnEvent:      "ResponseOnEvent",
	LinkCtrl:             "LinkControl",
	NRC:                  "NegativeResponse",
}

func (s Service) String() string {
	if name, ok := serviceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Service(0x%02X)", uint8(s))
}

// ReservedError reports a request/response byte that is not a known
// Service identifier.
type ReservedError struct {
	Value uint8
}

func (e *ReservedError) Error() string {
	return fmt.Sprintf("uds: reserved or unknown service 0x%02X", e.Value)
}

// ParseService round-trips a wire byte into a Service, or *ReservedError
// when the byte names no service in this standard's vocabulary.
func ParseService(b uint8) (Service, error) {
	if _, ok := serviceNames[Service(b)]; ok {
		return Service(b), nil
	}
	return 0, &ReservedError{Value: b}
}

// RequiresSubFunction reports whether the given service's requests MUST
// carry a sub-function byte (ISO 14229-1 §4.4 service table).
func RequiresSubFunction(s Service) bool {
	switch s {
	case SessionCtrl, ECUReset, ReadDTCInfo, SecurityAccess, CommunicationCtrl,
		Authentication, DynamicallyDefineDID, RoutineCtrl, RequestFileTransfer,
		TesterPresent, AccessTimingParam, CtrlDTCSetting, LinkCtrl, ResponseOnEvent:
		return true
	default:
		return false
	}
}

// ForbidsSubFunction reports whether the given service's requests MUST NOT
// carry a sub-function byte.
func ForbidsSubFunction(s Service) bool {
	switch s {
	case ClearDiagnosticInfo, ReadDID, ReadMemByAddr, ReadScalingDID, ReadDataByPeriodID,
		WriteDID, IOCtrl, RequestDownload, RequestUpload, TransferData,
		RequestTransferExit, WriteMemByAddr, SecuredDataTrans:
		return true
	default:
		return false
	}
}

// SubFunctionError reports a sub-function byte present on a service that
// forbids one, or absent on one that requires it.
type SubFunctionError struct {
	Service Service
}

func (e *SubFunctionError) Error() string {
	return fmt.Sprintf("uds: invalid sub-function presence for service %s", e.Service)
}
