package response

import (
	"github.com/rob-gra/go-diagcan/bytecodec"
	"github.com/rob-gra/go-diagcan/uds/common"
	"github.com/rob-gra/go-diagcan/uds/request"
)

// SecuredDataTrans builds a 0x C4 response (Table 492): apar with the
// request bit cleared, sig_calc, anti-replay counter, internal service
// response id, response params and signature data.
func SecuredDataTrans(apar request.AdministrativeParameter, sigCalc uint8, antiReplayCnt uint16, innerResponse uint8, responseParams, signature []byte) (Response, error) {
	if len(signature) > 0xFFFF {
		return Response{}, &common.InvalidParamError{What: "signature length out of range"}
	}
	apar &^= request.AparRequest

	data, _ := bytecodec.PutUint(nil, uint64(apar), 2)
	data = append(data, sigCalc)
	data, _ = bytecodec.PutUint(data, uint64(len(signature)), 2)
	data, _ = bytecodec.PutUint(data, uint64(antiReplayCnt), 2)
	data = append(data, innerResponse)
	data = append(data, responseParams...)
	data = append(data, signature...)
	return New(common.SecuredDataTrans, nil, data)
}

// SecuredDataTransParts decodes the apar, signature algorithm, anti-replay
// counter, inner response id, response params and signature of a
// SecuredDataTrans response.
func SecuredDataTransParts(r Response) (apar request.AdministrativeParameter, sigCalc uint8, antiReplayCnt uint16, innerResponse uint8, responseParams, signature []byte, err error) {
	if r.Service != common.SecuredDataTrans {
		return 0, 0, 0, 0, nil, nil, &common.InvalidParamError{What: "not a SecuredDataTrans response"}
	}
	v, rest, err := bytecodec.Uint(r.Data, 2)
	if err != nil {
		return 0, 0, 0, 0, nil, nil, err
	}
	apar = request.AdministrativeParameter(v)
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
	innerResponse = rest[0]
	body := rest[1:]
	if len(body) < sigLen {
		return 0, 0, 0, 0, nil, nil, &common.InvalidDataLengthError{Expect: sigLen, Actual: len(body)}
	}
	split := len(body) - sigLen
	return apar, sigCalc, antiReplayCnt, innerResponse, body[:split], body[split:], nil
}

// LinkCtrl builds a 0x C7 response: sub-function echoed, always an empty
// body.
func LinkCtrl(kind request.LinkCtrlType) (Response, error) {
	sf := common.NewSubFunction(uint8(kind), false)
	return New(common.LinkCtrl, &sf, nil)
}
