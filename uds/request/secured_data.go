package request

import (
	"github.com/rob-gra/go-diagcan/bytecodec"
	"github.com/rob-gra/go-diagcan/uds/common"
)

// AdministrativeParameter is the bit-packed apar field of
// SecuredDataTrans: bit0 = request, bit1 = signed, bit2 = encrypted.
type AdministrativeParameter uint16

const (
	AparRequest   AdministrativeParameter = 0x0001
	AparSigned    AdministrativeParameter = 0x0002
	AparEncrypted AdministrativeParameter = 0x0004
)

// SecuredDataTrans builds a 0x84 request; apar's request bit is forced on
// regardless of the caller's value, matching the source's request_set(true).
func SecuredDataTrans(apar AdministrativeParameter, sigCalc uint8, antiReplayCnt uint16, innerService uint8, innerData, signature []byte) (Request, error) {
	if sigCalc > 0x8F {
		return Request{}, &common.InvalidParamError{What: "sig_calc out of range 0x00..=0x8F"}
	}
	if len(signature) > 0xFFFF {
		return Request{}, &common.InvalidParamError{What: "signature length out of range"}
	}
	apar |= AparRequest

	data, _ := bytecodec.PutUint(nil, uint64(apar), 2)
	data = append(data, sigCalc)
	data, _ = bytecodec.PutUint(data, uint64(len(signature)), 2)
	data, _ = bytecodec.PutUint(data, uint64(antiReplayCnt), 2)
	data = append(data, innerService)
	data = append(data, innerData...)
	data = append(data, signature...)
	return New(common.SecuredDataTrans, nil, data)
}

// SecuredDataTransParts decodes the apar, signature algorithm, anti-replay
// counter, inner service id, inner data and signature of a SecuredDataTrans
// request.
func SecuredDataTransParts(r Request) (apar AdministrativeParameter, sigCalc uint8, antiReplayCnt uint16, innerService uint8, innerData, signature []byte, err error) {
	if r.Service != common.SecuredDataTrans {
		return 0, 0, 0, 0, nil, nil, &common.InvalidParamError{What: "not a SecuredDataTrans request"}
	}
	v, rest, err := bytecodec.Uint(r.Data, 2)
	if err != nil {
		return 0, 0, 0, 0, nil, nil, err
	}
	apar = AdministrativeParameter(v)
	if len(rest) < 1 {
		return 0, 0, 0, 0, nil, nil, &common.InvalidDataLengthError{Expect: 1, Actual: len(rest)}
	}
	sigCalc = rest[0]
	rest = rest[1:]
	sigLenV, rest, err := bytecodec.Uint(rest, 2)
	if err != nil {
		return 0, 0, 0, 0, nil, nil, err
	}
	sigLen := int(sigLenV)
	replayV, rest, err := bytecodec.Uint(rest, 2)
	if err != nil {
		return 0, 0, 0, 0, nil, nil, err
	}
	antiReplayCnt = uint16(replayV)
	if len(rest) < 1 {
		return 0, 0, 0, 0, nil, nil, &common.InvalidDataLengthError{Expect: 1, Actual: len(rest)}
	}
	innerService = rest[0]
	body := rest[1:]
	if len(body) < sigLen {
		return 0, 0, 0, 0, nil, nil, &common.InvalidDataLengthError{Expect: sigLen, Actual: len(body)}
	}
	split := len(body) - sigLen
	return apar, sigCalc, antiReplayCnt, innerService, body[:split], body[split:], nil
}

// LinkCtrlType is the sub-function payload of LinkCtrl.
type LinkCtrlType uint8

const (
	VerifyModeTransitionWithFixedParameter    LinkCtrlType = 0x01
	VerifyModeTransitionWithSpecificParameter LinkCtrlType = 0x02
	TransitionMode                            LinkCtrlType = 0x03
)

// LinkCtrl builds a 0x87 request. Fixed-mode bodies are exactly 1 byte,
// specific-mode bodies exactly 3 bytes, TransitionMode is empty; anything
// else (vendor/supplier sub-functions) is carried through unvalidated.
func LinkCtrl(kind LinkCtrlType, data []byte, suppressPositive bool) (Request, error) {
	switch kind {
	case VerifyModeTransitionWithFixedParameter:
		if err := common.DataLengthCheck(len(data), 1, true); err != nil {
			return Request{}, err
		}
	case VerifyModeTransitionWithSpecificParameter:
		if err := common.DataLengthCheck(len(data), 3, true); err != nil {
			return Request{}, err
		}
	case TransitionMode:
		if err := common.DataLengthCheck(len(data), 0, true); err != nil {
			return Request{}, err
		}
	}
	sf := common.NewSubFunction(uint8(kind), suppressPositive)
	return New(common.LinkCtrl, &sf, data)
}

// validateLinkCtrl re-checks the fixed/specific/transition body shapes
// LinkCtrl's constructor enforces, using only the parsed sub-function and
// data since Parse has no typed LinkCtrlType argument to validate against.
func validateLinkCtrl(r Request) error {
	if r.SubFunc == nil {
		return &common.SubFunctionError{Service: common.LinkCtrl}
	}
	switch LinkCtrlType(r.SubFunc.Function) {
	case VerifyModeTransitionWithFixedParameter:
		return common.DataLengthCheck(len(r.Data), 1, true)
	case VerifyModeTransitionWithSpecificParameter:
		return common.DataLengthCheck(len(r.Data), 3, true)
	case TransitionMode:
		return common.DataLengthCheck(len(r.Data), 0, true)
	}
	return nil
}
