package response

import (
	"github.com/rob-gra/go-diagcan/bytecodec"
	"github.com/rob-gra/go-diagcan/uds/common"
	"github.com/rob-gra/go-diagcan/uds/request"
)

// SessionCtrl builds a 0x50 response: session echoed as sub-function,
// p2/p2Star timing in milliseconds (p2Star given in 10ms units on the
// wire, per Table 25).
func SessionCtrl(session request.DiagnosticSessionType, p2, p2StarTensMs uint16) (Response, error) {
	data, _ := bytecodec.PutUint(nil, uint64(p2), 2)
	data, _ = bytecodec.PutUint(data, uint64(p2StarTensMs), 2)
	sf := common.NewSubFunction(uint8(session), false)
	return New(common.SessionCtrl, &sf, data)
}

// SessionCtrlTiming decodes the p2/p2Star pair out of a SessionCtrl response.
func SessionCtrlTiming(r Response) (p2, p2StarTensMs uint16, err error) {
	if r.Service != common.SessionCtrl || r.SubFunc == nil {
		return 0, 0, &common.InvalidParamError{What: "not a SessionCtrl response"}
	}
	if err := common.DataLengthCheck(len(r.Data), 4, true); err != nil {
		return 0, 0, err
	}
	v1, rest, err := bytecodec.Uint(r.Data, 2)
	if err != nil {
		return 0, 0, err
	}
	v2, _, err := bytecodec.Uint(rest, 2)
	if err != nil {
		return 0, 0, err
	}
	return uint16(v1), uint16(v2), nil
}

// ECUReset builds a 0x51 response. second is only present for
// EnableRapidPowerShutDown (the number of seconds until shutdown).
func ECUReset(reset request.ResetType, second *uint8) (Response, error) {
	var data []byte
	if reset == request.EnableRapidPowerShutDown {
		if second == nil {
			return Response{}, &common.InvalidParamError{What: "EnableRapidPowerShutDown needs the powerDownTime byte"}
		}
		data = []byte{*second}
	} else if second != nil {
		return Response{}, &common.InvalidParamError{What: "only EnableRapidPowerShutDown carries a body"}
	}
	sf := common.NewSubFunction(uint8(reset), false)
	return New(common.ECUReset, &sf, data)
}

// validateECUReset re-checks the powerDownTime-byte rule ECUReset's
// constructor enforces.
func validateECUReset(r Response) error {
	if r.SubFunc == nil {
		return &common.SubFunctionError{Service: common.ECUReset}
	}
	if request.ResetType(r.SubFunc.Function) == request.EnableRapidPowerShutDown {
		return common.DataLengthCheck(len(r.Data), 1, true)
	}
	return common.DataLengthCheck(len(r.Data), 0, true)
}

// TesterPresent builds a 0x7E response: sub-function only, empty body.
func TesterPresent() (Response, error) {
	sf := common.NewSubFunction(uint8(request.ZeroSubFunction), false)
	return New(common.TesterPresent, &sf, nil)
}

// CtrlDTCSetting builds a 0x C5 response: sub-function echoed, opaque body.
func CtrlDTCSetting(kind request.DTCSettingType, data []byte) (Response, error) {
	sf := common.NewSubFunction(uint8(kind), false)
	return New(common.CtrlDTCSetting, &sf, data)
}

// ClearDiagnosticInfo builds a 0x54 response: no sub-function, empty body.
func ClearDiagnosticInfo() (Response, error) {
	return New(common.ClearDiagnosticInfo, nil, nil)
}
