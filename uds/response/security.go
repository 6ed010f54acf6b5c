package response

import (
	"github.com/rob-gra/go-diagcan/uds/common"
	"github.com/rob-gra/go-diagcan/uds/request"
)

// SecurityAccess builds a 0x67 response: seed levels (odd) carry the
// non-empty seed in Data; key levels (even) carry an empty body.
func SecurityAccess(level uint8, seed []byte) (Response, error) {
	if level%2 != 0 && len(seed) == 0 {
		return Response{}, &common.InvalidParamError{What: "security access response needs a non-empty seed"}
	}
	sf := common.NewSubFunction(level, false)
	return New(common.SecurityAccess, &sf, seed)
}

// SecurityAccessSeed returns the seed bytes of a SecurityAccess response
// (empty for a key-submission echo).
func SecurityAccessSeed(r Response) ([]byte, error) {
	if r.Service != common.SecurityAccess || r.SubFunc == nil {
		return nil, &common.InvalidParamError{What: "not a SecurityAccess response"}
	}
	return r.Data, nil
}

// validateSecurityAccess re-checks the non-empty-seed-for-odd-level rule
// SecurityAccess's constructor enforces.
func validateSecurityAccess(r Response) error {
	if r.SubFunc == nil {
		return &common.SubFunctionError{Service: common.SecurityAccess}
	}
	if r.SubFunc.Function%2 != 0 && len(r.Data) == 0 {
		return &common.InvalidParamError{What: "security access response needs a non-empty seed"}
	}
	return nil
}

// CommunicationCtrl builds a 0x68 response: sub-function echoed, always
// an empty body.
func CommunicationCtrl(ctrl request.CommunicationCtrlType) (Response, error) {
	sf := common.NewSubFunction(uint8(ctrl), false)
	return New(common.CommunicationCtrl, &sf, nil)
}
