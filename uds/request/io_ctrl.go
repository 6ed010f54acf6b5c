package request

import (
	"github.com/rob-gra/go-diagcan/bytecodec"
	"github.com/rob-gra/go-diagcan/uds/common"
)

// IOCtrlParam is the "inputOutputControlParameter" byte of an IOCtrl
// request.
type IOCtrlParam uint8

const (
	ReturnControlToECU IOCtrlParam = 0x00
	ResetToDefault      IOCtrlParam = 0x01
	FreezeCurrentState  IOCtrlParam = 0x02
	ShortTermAdjustment IOCtrlParam = 0x03
)

// IOCtrl builds a 0x2F request: did, param, did_cfg[did] bytes of control
// state (must be empty for param in {0,1,2}), then an opaque control mask.
func IOCtrl(did uint16, param IOCtrlParam, controlState []byte, controlMask []byte, cfg common.DidConfig) (Request, error) {
	if param != ShortTermAdjustment && len(controlState) != 0 {
		return Request{}, &common.InvalidParamError{What: "control state must be empty unless param is ShortTermAdjustment"}
	}
	if param == ShortTermAdjustment {
		want, ok := cfg[did]
		if !ok {
			return Request{}, &common.DidNotSupportedError{DID: did}
		}
		if err := common.DataLengthCheck(len(controlState), want, true); err != nil {
			return Request{}, err
		}
	}
	data, _ := bytecodec.PutUint(nil, uint64(did), 2)
	data = append(data, uint8(param))
	data = append(data, controlState...)
	data = append(data, controlMask...)
	return New(common.IOCtrl, nil, data)
}

// IOCtrlParts decodes the did, param, control state and control mask of
// an IOCtrl request, validating the control-state length against cfg for
// ShortTermAdjustment the way IOCtrl's constructor does.
func IOCtrlParts(r Request, cfg common.DidConfig) (did uint16, param IOCtrlParam, controlState, controlMask []byte, err error) {
	if r.Service != common.IOCtrl {
		return 0, 0, nil, nil, &common.InvalidParamError{What: "not an IOCtrl request"}
	}
	v, rest, err := bytecodec.Uint(r.Data, 2)
	if err != nil {
		return 0, 0, nil, nil, err
	}
	did = uint16(v)
	if len(rest) < 1 {
		return 0, 0, nil, nil, &common.InvalidDataLengthError{Expect: 1, Actual: len(rest)}
	}
	param = IOCtrlParam(rest[0])
	rest = rest[1:]
	if param != ShortTermAdjustment {
		return did, param, nil, rest, nil
	}
	want, ok := cfg[did]
	if !ok {
		return 0, 0, nil, nil, &common.DidNotSupportedError{DID: did}
	}
	if err := common.DataLengthCheck(len(rest), want, false); err != nil {
		return 0, 0, nil, nil, err
	}
	return did, param, rest[:want], rest[want:], nil
}

// RoutineCtrlType is the sub-function payload of RoutineCtrl.
type RoutineCtrlType uint8

const (
	StartRoutine          RoutineCtrlType = 0x01
	StopRoutine           RoutineCtrlType = 0x02
	RequestRoutineResults RoutineCtrlType = 0x03
)

// RoutineCtrl builds a 0x31 request: routine_id followed by an opaque
// option record.
func RoutineCtrl(kind RoutineCtrlType, routineID uint16, options []byte, suppressPositive bool) (Request, error) {
	data, _ := bytecodec.PutUint(nil, uint64(routineID), 2)
	data = append(data, options...)
	sf := common.NewSubFunction(uint8(kind), suppressPositive)
	return New(common.RoutineCtrl, &sf, data)
}
