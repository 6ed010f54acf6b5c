package response

import (
	"github.com/rob-gra/go-diagcan/bytecodec"
	"github.com/rob-gra/go-diagcan/uds/common"
	"github.com/rob-gra/go-diagcan/uds/request"
)

// IOCtrl builds a 0x6F response: did, did_cfg[did] bytes of control status
// (param echoed as the first status byte per Table 205), no sub-function.
func IOCtrl(did uint16, status []byte, cfg common.DidConfig) (Response, error) {
	want, ok := cfg[did]
	if !ok {
		return Response{}, &common.DidNotSupportedError{DID: did}
	}
	if err := common.DataLengthCheck(len(status), want, false); err != nil {
		return Response{}, err
	}
	data, _ := bytecodec.PutUint(nil, uint64(did), 2)
	data = append(data, status...)
	return New(common.IOCtrl, nil, data)
}

// IOCtrlParts decodes the did and status bytes of an IOCtrl response.
func IOCtrlParts(r Response, cfg common.DidConfig) (uint16, []byte, error) {
	if r.Service != common.IOCtrl {
		return 0, nil, &common.InvalidParamError{What: "not an IOCtrl response"}
	}
	v, rest, err := bytecodec.Uint(r.Data, 2)
	if err != nil {
		return 0, nil, err
	}
	did := uint16(v)
	want, ok := cfg[did]
	if !ok {
		return 0, nil, &common.DidNotSupportedError{DID: did}
	}
	if err := common.DataLengthCheck(len(rest), want, false); err != nil {
		return 0, nil, err
	}
	return did, rest, nil
}

// RoutineCtrl builds a 0x71 response: routine_id echoed, an optional
// routine_info byte, then an opaque status record which must be empty
// when routine_info is absent.
func RoutineCtrl(kind request.RoutineCtrlType, routineID uint16, routineInfo *uint8, status []byte) (Response, error) {
	if routineInfo == nil && len(status) != 0 {
		return Response{}, &common.InvalidParamError{What: "routine status record must be empty when routine info is absent"}
	}
	data, _ := bytecodec.PutUint(nil, uint64(routineID), 2)
	if routineInfo != nil {
		data = append(data, *routineInfo)
		data = append(data, status...)
	}
	sf := common.NewSubFunction(uint8(kind), false)
	return New(common.RoutineCtrl, &sf, data)
}

// RoutineCtrlParts decodes the routine id, optional routine info byte and
// status record of a RoutineCtrl response.
func RoutineCtrlParts(r Response) (routineID uint16, routineInfo *uint8, status []byte, err error) {
	if r.Service != common.RoutineCtrl || r.SubFunc == nil {
		return 0, nil, nil, &common.InvalidParamError{What: "not a RoutineCtrl response"}
	}
	v, rest, err := bytecodec.Uint(r.Data, 2)
	if err != nil {
		return 0, nil, nil, err
	}
	routineID = uint16(v)
	if len(rest) == 0 {
		return routineID, nil, nil, nil
	}
	info := rest[0]
	return routineID, &info, rest[1:], nil
}
