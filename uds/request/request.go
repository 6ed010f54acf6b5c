// Package request implements the UDS request-side wire codec: one
// validator/serializer pair per service (ISO 14229-1 §4.4), plus the
// generic Request envelope and dispatch used by uds/request.New.
package request

import (
	"github.com/rob-gra/go-diagcan/uds/common"
)

// Request is the generic request envelope: {service, sub_func?, data}.
type Request struct {
	Service common.Service
	SubFunc *common.SubFunction
	Data    []byte
}

// New validates sub-function presence against the service's requirement
// and builds a Request. Per-service body validation happens in the
// service-specific constructors in this package; New is the low-level
// envelope factory they all funnel through.
func New(service common.Service, subFunc *common.SubFunction, data []byte) (Request, error) {
	if service == common.NRC {
		return Request{}, &common.InvalidParamError{What: "NRC is not a request service"}
	}
	if common.RequiresSubFunction(service) && subFunc == nil {
		return Request{}, &common.SubFunctionError{Service: service}
	}
	if common.ForbidsSubFunction(service) && subFunc != nil {
		return Request{}, &common.SubFunctionError{Service: service}
	}
	return Request{Service: service, SubFunc: subFunc, Data: data}, nil
}

// Bytes reassembles the wire form: {service, sub_func?, data...}, ORing
// SuppressPositive into the sub-function byte where set.
func (r Request) Bytes() []byte {
	out := make([]byte, 0, 2+len(r.Data))
	out = append(out, uint8(r.Service))
	if r.SubFunc != nil {
		out = append(out, r.SubFunc.Byte())
	}
	out = append(out, r.Data...)
	return out
}

// Parse peels the service byte, then the sub-function byte if the service
// requires one, and validates the remaining bytes against the per-service
// body shape (ISO 14229-1 §4.4) by dispatching to that service's decoder,
// mirroring the iso14229-1 crate's Request::new match over Service. cfg
// resolves DID payload lengths for the DID-keyed services (ReadDID,
// WriteDID, IOCtrl).
func Parse(data []byte, cfg common.DidConfig) (Request, error) {
	if len(data) < 1 {
		return Request{}, &common.InvalidDataLengthError{Expect: 1, Actual: 0}
	}
	svc, err := common.ParseService(data[0])
	if err != nil {
		return Request{}, err
	}
	rest := data[1:]
	var subFunc *common.SubFunction
	if common.RequiresSubFunction(svc) {
		if len(rest) < 1 {
			return Request{}, &common.SubFunctionError{Service: svc}
		}
		sf := common.ParseSubFunction(rest[0])
		subFunc = &sf
		rest = rest[1:]
	}
	if len(rest) == 0 {
		rest = nil
	}
	req, err := New(svc, subFunc, rest)
	if err != nil {
		return Request{}, err
	}
	if err := validateBody(req, cfg); err != nil {
		return Request{}, err
	}
	return req, nil
}

// validateBody routes a parsed Request to the same body-shape checks its
// service's typed constructor performs, so a malformed wire payload is
// rejected at Parse time instead of only when a caller later happens to
// decode it with the matching Parts function.
func validateBody(r Request, cfg common.DidConfig) error {
	switch r.Service {
	case common.SessionCtrl, common.ECUReset, common.TesterPresent:
		return common.DataLengthCheck(len(r.Data), 0, true)
	case common.ClearDiagnosticInfo:
		return common.DataLengthCheck(len(r.Data), 3, true)
	case common.ReadDTCInfo, common.RequestTransferExit, common.CtrlDTCSetting:
		return nil
	case common.ReadDID:
		_, err := ReadDIDs(r)
		return err
	case common.ReadMemByAddr:
		_, err := ReadMemByAddrLocation(r)
		return err
	case common.ReadScalingDID:
		return common.DataLengthCheck(len(r.Data), 2, true)
	case common.SecurityAccess:
		if r.SubFunc != nil && r.SubFunc.Function%2 == 0 && len(r.Data) == 0 {
			return &common.InvalidParamError{What: "SecurityAccess key submission needs non-empty data"}
		}
		return nil
	case common.CommunicationCtrl:
		return validateCommunicationCtrl(r)
	case common.Authentication:
		return validateAuthentication(r)
	case common.ReadDataByPeriodID:
		if len(r.Data) < 2 {
			return &common.InvalidDataLengthError{Expect: 2, Actual: len(r.Data)}
		}
		return nil
	case common.DynamicallyDefineDID:
		return validateDynamicDefine(r)
	case common.WriteDID:
		_, _, err := WriteDIDParts(r, cfg)
		return err
	case common.IOCtrl:
		_, _, _, _, err := IOCtrlParts(r, cfg)
		return err
	case common.RoutineCtrl:
		if len(r.Data) < 2 {
			return &common.InvalidDataLengthError{Expect: 2, Actual: len(r.Data)}
		}
		return nil
	case common.RequestDownload, common.RequestUpload:
		_, _, err := DownloadUploadParts(r)
		return err
	case common.TransferData:
		_, _, err := TransferDataParts(r)
		return err
	case common.RequestFileTransfer:
		_, _, _, err := RequestFileTransferParts(r)
		return err
	case common.WriteMemByAddr:
		_, _, err := WriteMemByAddrParts(r)
		return err
	case common.AccessTimingParam:
		return validateAccessTimingParam(r)
	case common.SecuredDataTrans:
		_, _, _, _, _, _, err := SecuredDataTransParts(r)
		return err
	case common.ResponseOnEvent:
		return validateResponseOnEvent(r)
	case common.LinkCtrl:
		return validateLinkCtrl(r)
	default:
		return nil
	}
}
