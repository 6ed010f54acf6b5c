package request

import "github.com/rob-gra/go-diagcan/uds/common"

// ReadMemByAddr builds a 0x23 request: a packed MemoryLocation, no
// sub-function.
func ReadMemByAddr(loc common.MemoryLocation) (Request, error) {
	return New(common.ReadMemByAddr, nil, loc.Encode())
}

// ReadMemByAddrLocation decodes the MemoryLocation out of a ReadMemByAddr
// request.
func ReadMemByAddrLocation(r Request) (common.MemoryLocation, error) {
	if r.Service != common.ReadMemByAddr {
		return common.MemoryLocation{}, &common.InvalidParamError{What: "not a ReadMemByAddr request"}
	}
	loc, _, err := common.DecodeMemoryLocation(r.Data)
	return loc, err
}

// WriteMemByAddr builds a 0x3D request: a packed MemoryLocation followed
// by exactly loc.Size bytes of data, no sub-function.
func WriteMemByAddr(loc common.MemoryLocation, data []byte) (Request, error) {
	if uint64(len(data)) != loc.Size {
		return Request{}, &common.InvalidDataLengthError{Expect: int(loc.Size), Actual: len(data)}
	}
	out := loc.Encode()
	out = append(out, data...)
	return New(common.WriteMemByAddr, nil, out)
}

// WriteMemByAddrParts decodes the MemoryLocation and data out of a
// WriteMemByAddr request.
func WriteMemByAddrParts(r Request) (common.MemoryLocation, []byte, error) {
	if r.Service != common.WriteMemByAddr {
		return common.MemoryLocation{}, nil, &common.InvalidParamError{What: "not a WriteMemByAddr request"}
	}
	loc, n, err := common.DecodeMemoryLocation(r.Data)
	if err != nil {
		return common.MemoryLocation{}, nil, err
	}
	data := r.Data[n:]
	if uint64(len(data)) != loc.Size {
		return common.MemoryLocation{}, nil, &common.InvalidDataLengthError{Expect: int(loc.Size), Actual: len(data)}
	}
	return loc, data, nil
}
