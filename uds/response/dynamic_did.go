package response

import (
	"github.com/rob-gra/go-diagcan/bytecodec"
	"github.com/rob-gra/go-diagcan/uds/common"
	"github.com/rob-gra/go-diagcan/uds/request"
)

// DynamicallyDefineDID builds a 0x6C response: sub-function echoed, and
// for DefineByIdentifier/DefineByMemoryAddress an optional echoed dynDID
// (0 or 2 bytes); ClearDynamicallyDefinedDataIdentifier always empty.
func DynamicallyDefineDID(kind request.DynamicDefineType, dynDID *uint16) (Response, error) {
	var data []byte
	if dynDID != nil {
		data, _ = bytecodec.PutUint(nil, uint64(*dynDID), 2)
	}
	sf := common.NewSubFunction(uint8(kind), false)
	return New(common.DynamicallyDefineDID, &sf, data)
}

// DynamicallyDefineDIDEcho decodes the optional echoed dynDID out of a
// DynamicallyDefineDID response.
func DynamicallyDefineDIDEcho(r Response) (*uint16, error) {
	if r.Service != common.DynamicallyDefineDID {
		return nil, &common.InvalidParamError{What: "not a DynamicallyDefineDID response"}
	}
	switch len(r.Data) {
	case 0:
		return nil, nil
	case 2:
		v, _, err := bytecodec.Uint(r.Data, 2)
		if err != nil {
			return nil, err
		}
		did := uint16(v)
		return &did, nil
	default:
		return nil, &common.InvalidDataLengthError{Expect: 2, Actual: len(r.Data)}
	}
}
