package response

import (
	"github.com/rob-gra/go-diagcan/bytecodec"
	"github.com/rob-gra/go-diagcan/uds/common"
)

// ReadDataByPeriodID builds a 0x6A response: the echoed periodicDID byte
// followed by its data record, no sub-function.
func ReadDataByPeriodID(periodicDID uint8, record []byte) (Response, error) {
	data := append([]byte{periodicDID}, record...)
	return New(common.ReadDataByPeriodID, nil, data)
}

// ReadDataByPeriodIDParts decodes the periodicDID and record of a
// ReadDataByPeriodID response.
func ReadDataByPeriodIDParts(r Response) (uint8, []byte, error) {
	if r.Service != common.ReadDataByPeriodID {
		return 0, nil, &common.InvalidParamError{What: "not a ReadDataByPeriodID response"}
	}
	if len(r.Data) < 1 {
		return 0, nil, &common.InvalidDataLengthError{Expect: 1, Actual: 0}
	}
	return r.Data[0], r.Data[1:], nil
}

// ReadScalingDID builds a 0x64 response: the echoed did followed by an
// opaque scalingByte-prefixed record list, no sub-function.
func ReadScalingDID(did uint16, record []byte) (Response, error) {
	data, _ := bytecodec.PutUint(nil, uint64(did), 2)
	data = append(data, record...)
	return New(common.ReadScalingDID, nil, data)
}

// ReadScalingDIDParts decodes the did and scaling record of a
// ReadScalingDID response.
func ReadScalingDIDParts(r Response) (uint16, []byte, error) {
	if r.Service != common.ReadScalingDID {
		return 0, nil, &common.InvalidParamError{What: "not a ReadScalingDID response"}
	}
	v, rest, err := bytecodec.Uint(r.Data, 2)
	return uint16(v), rest, err
}
