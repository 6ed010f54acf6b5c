package request

import (
	"github.com/rob-gra/go-diagcan/bytecodec"
	"github.com/rob-gra/go-diagcan/uds/common"
)

// ReadDID builds a 0x22 request: N>=1 big-endian u16 DIDs, no sub-function.
func ReadDID(dids []uint16) (Request, error) {
	if len(dids) == 0 {
		return Request{}, &common.InvalidParamError{What: "ReadDID needs at least one did"}
	}
	data := make([]byte, 0, 2*len(dids))
	for _, did := range dids {
		data, _ = bytecodec.PutUint(data, uint64(did), 2)
	}
	return New(common.ReadDID, nil, data)
}

// ReadDIDs decodes the DID list out of a ReadDID request's Data.
func ReadDIDs(r Request) ([]uint16, error) {
	if r.Service != common.ReadDID {
		return nil, &common.InvalidParamError{What: "not a ReadDID request"}
	}
	if len(r.Data) == 0 || len(r.Data)%2 != 0 {
		return nil, &common.InvalidDataLengthError{Expect: 2, Actual: len(r.Data)}
	}
	rest := r.Data
	dids := make([]uint16, 0, len(r.Data)/2)
	for len(rest) > 0 {
		var v uint64
		var err error
		v, rest, err = bytecodec.Uint(rest, 2)
		if err != nil {
			return nil, err
		}
		dids = append(dids, uint16(v))
	}
	return dids, nil
}

// WriteDID builds a 0x2E request: did followed by did_cfg[did] bytes of
// data, no sub-function.
func WriteDID(did uint16, data []byte, cfg common.DidConfig) (Request, error) {
	want, ok := cfg[did]
	if !ok {
		return Request{}, &common.DidNotSupportedError{DID: did}
	}
	if err := common.DataLengthCheck(len(data), want, true); err != nil {
		return Request{}, err
	}
	out, _ := bytecodec.PutUint(nil, uint64(did), 2)
	out = append(out, data...)
	return New(common.WriteDID, nil, out)
}

// WriteDIDParts decodes the did and payload out of a WriteDID request.
func WriteDIDParts(r Request, cfg common.DidConfig) (uint16, []byte, error) {
	if r.Service != common.WriteDID {
		return 0, nil, &common.InvalidParamError{What: "not a WriteDID request"}
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
	if err := common.DataLengthCheck(len(rest), want, true); err != nil {
		return 0, nil, err
	}
	return did, rest, nil
}
