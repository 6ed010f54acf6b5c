package response

import "github.com/rob-gra/go-diagcan/uds/common"

// ReadMemByAddr builds a 0x63 response: raw memory bytes, no sub-function.
func ReadMemByAddr(data []byte) (Response, error) {
	return New(common.ReadMemByAddr, nil, data)
}

// ReadMemByAddrData returns the raw memory bytes of a ReadMemByAddr response.
func ReadMemByAddrData(r Response) ([]byte, error) {
	if r.Service != common.ReadMemByAddr {
		return nil, &common.InvalidParamError{What: "not a ReadMemByAddr response"}
	}
	return r.Data, nil
}

// WriteMemByAddr builds a 0x7D response: the echoed packed MemoryLocation,
// no sub-function.
func WriteMemByAddr(loc common.MemoryLocation) (Response, error) {
	return New(common.WriteMemByAddr, nil, loc.Encode())
}

// WriteMemByAddrLocation decodes the echoed MemoryLocation out of a
// WriteMemByAddr response.
func WriteMemByAddrLocation(r Response) (common.MemoryLocation, error) {
	if r.Service != common.WriteMemByAddr {
		return common.MemoryLocation{}, &common.InvalidParamError{What: "not a WriteMemByAddr response"}
	}
	loc, _, err := common.DecodeMemoryLocation(r.Data)
	return loc, err
}
