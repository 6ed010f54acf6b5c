package response

import (
	"github.com/rob-gra/go-diagcan/uds/common"
	"github.com/rob-gra/go-diagcan/uds/request"
)

// AccessTimingParam builds a 0x C3 response: sub-function echoed. Only
// ReadExtendedTimingParameterSet carries a non-empty body; every other
// task's response body must be empty.
func AccessTimingParam(kind request.TimingParameterAccessType, data []byte) (Response, error) {
	if kind == request.ReadExtendedTimingParameterSet && len(data) == 0 {
		return Response{}, &common.InvalidParamError{What: "ReadExtendedTimingParameterSet needs a non-empty body"}
	}
	if kind != request.ReadExtendedTimingParameterSet && len(data) != 0 {
		return Response{}, &common.InvalidParamError{What: "this timing-parameter task carries no body"}
	}
	sf := common.NewSubFunction(uint8(kind), false)
	return New(common.AccessTimingParam, &sf, data)
}

// validateAccessTimingParam re-checks the non-empty-body-only-for-
// ReadExtendedTimingParameterSet rule AccessTimingParam's constructor
// enforces.
func validateAccessTimingParam(r Response) error {
	if r.SubFunc == nil {
		return &common.SubFunctionError{Service: common.AccessTimingParam}
	}
	kind := request.TimingParameterAccessType(r.SubFunc.Function)
	if kind == request.ReadExtendedTimingParameterSet && len(r.Data) == 0 {
		return &common.InvalidParamError{What: "ReadExtendedTimingParameterSet needs a non-empty body"}
	}
	if kind != request.ReadExtendedTimingParameterSet && len(r.Data) != 0 {
		return &common.InvalidParamError{What: "this timing-parameter task carries no body"}
	}
	return nil
}
