// Package response implements the UDS response-side wire codec: the
// generic Response envelope (positive-offset service byte or the 0x7F
// NRC envelope) plus one decoder/encoder pair per service (ISO 14229-1
// §4.4), mirroring uds/request's structure.
package response

import (
	"github.com/rob-gra/go-diagcan/uds/common"
)

// Response is the generic response envelope. When Negative is true, Data
// holds exactly one byte: the NRC Code.
type Response struct {
	Service  common.Service
	Negative bool
	SubFunc  *common.SubFunction
	Data     []byte
}

// requiresSubFuncResponse mirrors common.RequiresSubFunction except for
// ResponseOnEvent: its request carries an event-type sub-function, but its
// response does not (the event type is implicit in the body layout).
func requiresSubFuncResponse(service common.Service) bool {
	return common.RequiresSubFunction(service) && service != common.ResponseOnEvent
}

// New validates sub-function presence against the service's requirement,
// exactly as uds/request.New does for requests, and builds a positive
// Response.
func New(service common.Service, subFunc *common.SubFunction, data []byte) (Response, error) {
	if service == common.NRC {
		return Response{}, &common.InvalidParamError{What: "NRC is not a response service"}
	}
	if requiresSubFuncResponse(service) && subFunc == nil {
		return Response{}, &common.SubFunctionError{Service: service}
	}
	if common.ForbidsSubFunction(service) && subFunc != nil {
		return Response{}, &common.SubFunctionError{Service: service}
	}
	return Response{Service: service, SubFunc: subFunc, Data: data}, nil
}

// NewNegative builds the {0x7F, service, code} negative response. A
// common.Positive code here is a caller error: use New for positive
// responses.
func NewNegative(service common.Service, code common.Code) Response {
	return Response{Service: service, Negative: true, Data: []byte{uint8(code)}}
}

// NRCCode extracts the negative-response code. Returns an error if this
// Response is not negative or the data length is not the expected one byte.
func (r Response) NRCCode() (common.Code, error) {
	if !r.Negative {
		return 0, &common.InvalidParamError{What: "response is not negative"}
	}
	if len(r.Data) != 1 {
		return 0, &common.InvalidDataLengthError{Expect: 1, Actual: len(r.Data)}
	}
	return common.ParseCode(r.Data[0]), nil
}

// Bytes reassembles the wire form: {0x7F, service, code} when negative,
// else {service|PositiveOffset, sub_func?, data...}.
func (r Response) Bytes() []byte {
	if r.Negative {
		out := make([]byte, 0, 2+len(r.Data))
		out = append(out, uint8(common.NRC), uint8(r.Service))
		return append(out, r.Data...)
	}
	out := make([]byte, 0, 2+len(r.Data))
	out = append(out, uint8(r.Service)|common.PositiveOffset)
	if r.SubFunc != nil {
		out = append(out, r.SubFunc.Byte())
	}
	return append(out, r.Data...)
}

// Parse peels the leading service byte. 0x7F introduces a negative
// response {0x7F, service, code}; any other byte is a positive response
// service|PositiveOffset, optionally followed by a sub-function byte for
// services that require one. A positive response's body is then validated
// against its service's shape (ISO 14229-1 §4.4) by dispatching to that
// service's decoder, mirroring the iso14229-1 crate's Response::new match
// over Service. cfg resolves DID payload lengths for the DID-keyed
// services (ReadDID, WriteDID, IOCtrl).
func Parse(data []byte, cfg common.DidConfig) (Response, error) {
	if len(data) < 1 {
		return Response{}, &common.InvalidDataLengthError{Expect: 1, Actual: 0}
	}
	if data[0] == uint8(common.NRC) {
		if err := common.DataLengthCheck(len(data), 3, true); err != nil {
			return Response{}, err
		}
		svc, err := common.ParseService(data[1])
		if err != nil {
			return Response{}, err
		}
		return Response{Service: svc, Negative: true, Data: data[2:3]}, nil
	}

	svc, err := common.ParseService(data[0] &^ common.PositiveOffset)
	if err != nil {
		return Response{}, err
	}
	rest := data[1:]
	var subFunc *common.SubFunction
	if requiresSubFuncResponse(svc) {
		if len(rest) < 1 {
			return Response{}, &common.SubFunctionError{Service: svc}
		}
		sf := common.ParseSubFunction(rest[0])
		subFunc = &sf
		rest = rest[1:]
	}
	resp, err := New(svc, subFunc, rest)
	if err != nil {
		return Response{}, err
	}
	if err := validateBody(resp, cfg); err != nil {
		return Response{}, err
	}
	return resp, nil
}

// validateBody routes a parsed positive Response to the same body-shape
// checks its service's typed constructor performs, so a malformed ECU
// reply is rejected at Parse time instead of only when a caller later
// happens to decode it with the matching Parts function.
func validateBody(r Response, cfg common.DidConfig) error {
	switch r.Service {
	case common.TesterPresent, common.ClearDiagnosticInfo, common.LinkCtrl:
		return common.DataLengthCheck(len(r.Data), 0, true)
	case common.ReadDTCInfo, common.RequestTransferExit, common.CtrlDTCSetting,
		common.ReadMemByAddr, common.ResponseOnEvent:
		return nil
	case common.SessionCtrl:
		_, _, err := SessionCtrlTiming(r)
		return err
	case common.ECUReset:
		return validateECUReset(r)
	case common.ReadDID:
		_, err := ReadDIDRecords(r, cfg)
		return err
	case common.ReadScalingDID:
		_, _, err := ReadScalingDIDParts(r)
		return err
	case common.SecurityAccess:
		return validateSecurityAccess(r)
	case common.CommunicationCtrl:
		return common.DataLengthCheck(len(r.Data), 0, true)
	case common.Authentication:
		_, _, err := AuthenticationParts(r)
		return err
	case common.ReadDataByPeriodID:
		_, _, err := ReadDataByPeriodIDParts(r)
		return err
	case common.DynamicallyDefineDID:
		_, err := DynamicallyDefineDIDEcho(r)
		return err
	case common.WriteDID:
		_, err := WriteDIDEcho(r)
		return err
	case common.IOCtrl:
		_, _, err := IOCtrlParts(r, cfg)
		return err
	case common.RoutineCtrl:
		_, _, _, err := RoutineCtrlParts(r)
		return err
	case common.RequestDownload, common.RequestUpload:
		_, _, err := RequestDownloadUploadParts(r)
		return err
	case common.TransferData:
		_, _, err := TransferDataParts(r)
		return err
	case common.RequestFileTransfer:
		_, _, _, err := RequestFileTransferParts(r)
		return err
	case common.WriteMemByAddr:
		_, err := WriteMemByAddrLocation(r)
		return err
	case common.AccessTimingParam:
		return validateAccessTimingParam(r)
	case common.SecuredDataTrans:
		_, _, _, _, _, _, err := SecuredDataTransParts(r)
		return err
	default:
		return nil
	}
}
