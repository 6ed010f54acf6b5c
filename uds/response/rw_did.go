package response

import (
	"github.com/rob-gra/go-diagcan/bytecodec"
	"github.com/rob-gra/go-diagcan/uds/common"
)

// DIDRecord is one {did, data} pair of a ReadDID response.
type DIDRecord struct {
	DID  uint16
	Data []byte
}

// ReadDID builds a 0x62 response: one or more {did, did_cfg[did] bytes}
// records concatenated back to back, no sub-function.
func ReadDID(records []DIDRecord, cfg common.DidConfig) (Response, error) {
	if len(records) == 0 {
		return Response{}, &common.InvalidParamError{What: "ReadDID response needs at least one record"}
	}
	var data []byte
	for _, rec := range records {
		want, ok := cfg[rec.DID]
		if !ok {
			return Response{}, &common.DidNotSupportedError{DID: rec.DID}
		}
		if err := common.DataLengthCheck(len(rec.Data), want, true); err != nil {
			return Response{}, err
		}
		data, _ = bytecodec.PutUint(data, uint64(rec.DID), 2)
		data = append(data, rec.Data...)
	}
	return New(common.ReadDID, nil, data)
}

// ReadDIDRecords decodes the {did, data} records out of a ReadDID response.
func ReadDIDRecords(r Response, cfg common.DidConfig) ([]DIDRecord, error) {
	if r.Service != common.ReadDID {
		return nil, &common.InvalidParamError{What: "not a ReadDID response"}
	}
	var records []DIDRecord
	rest := r.Data
	for len(rest) > 0 {
		v, tail, err := bytecodec.Uint(rest, 2)
		if err != nil {
			return nil, err
		}
		did := uint16(v)
		want, ok := cfg[did]
		if !ok {
			return nil, &common.DidNotSupportedError{DID: did}
		}
		if err := common.DataLengthCheck(len(tail), want, false); err != nil {
			return nil, err
		}
		records = append(records, DIDRecord{DID: did, Data: tail[:want]})
		rest = tail[want:]
	}
	return records, nil
}

// WriteDID builds a 0x6E response: the echoed did, no sub-function.
func WriteDID(did uint16) (Response, error) {
	data, _ := bytecodec.PutUint(nil, uint64(did), 2)
	return New(common.WriteDID, nil, data)
}

// WriteDIDEcho decodes the echoed did out of a WriteDID response.
func WriteDIDEcho(r Response) (uint16, error) {
	if r.Service != common.WriteDID {
		return 0, &common.InvalidParamError{What: "not a WriteDID response"}
	}
	if err := common.DataLengthCheck(len(r.Data), 2, true); err != nil {
		return 0, err
	}
	v, _, err := bytecodec.Uint(r.Data, 2)
	return uint16(v), err
}
