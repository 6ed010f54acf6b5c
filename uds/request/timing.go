package request

import "github.com/rob-gra/go-diagcan/uds/common"

// TimingParameterAccessType is the sub-function payload of
// AccessTimingParam (std2006/std2013 only).
type TimingParameterAccessType uint8

const (
	ReadExtendedTimingParameterSet    TimingParameterAccessType = 0x01
	SetTimingParametersToDefaultValues TimingParameterAccessType = 0x02
	ReadCurrentlyActiveTimingParameters TimingParameterAccessType = 0x03
	SetTimingParametersToGivenValues   TimingParameterAccessType = 0x04
)

// AccessTimingParam builds a 0x83 request. Only
// SetTimingParametersToGivenValues carries a non-empty body.
func AccessTimingParam(kind TimingParameterAccessType, data []byte, suppressPositive bool) (Request, error) {
	if kind == SetTimingParametersToGivenValues && len(data) == 0 {
		return Request{}, &common.InvalidParamError{What: "SetTimingParametersToGivenValues needs a non-empty body"}
	}
	if kind != SetTimingParametersToGivenValues && len(data) != 0 {
		return Request{}, &common.InvalidParamError{What: "this timing-parameter task carries no body"}
	}
	sf := common.NewSubFunction(uint8(kind), suppressPositive)
	return New(common.AccessTimingParam, &sf, data)
}

// validateAccessTimingParam re-checks the non-empty-body-only-for-
// SetTimingParametersToGivenValues rule AccessTimingParam's constructor
// enforces.
func validateAccessTimingParam(r Request) error {
	if r.SubFunc == nil {
		return &common.SubFunctionError{Service: common.AccessTimingParam}
	}
	kind := TimingParameterAccessType(r.SubFunc.Function)
	if kind == SetTimingParametersToGivenValues && len(r.Data) == 0 {
		return &common.InvalidParamError{What: "SetTimingParametersToGivenValues needs a non-empty body"}
	}
	if kind != SetTimingParametersToGivenValues && len(r.Data) != 0 {
		return &common.InvalidParamError{What: "this timing-parameter task carries no body"}
	}
	return nil
}
