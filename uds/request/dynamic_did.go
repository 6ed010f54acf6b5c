package request

import (
	"github.com/rob-gra/go-diagcan/bytecodec"
	"github.com/rob-gra/go-diagcan/uds/common"
)

// DynamicDefineType is the sub-function payload of DynamicallyDefineDID.
type DynamicDefineType uint8

const (
	DefineByIdentifier                     DynamicDefineType = 0x01
	DefineByMemoryAddress                   DynamicDefineType = 0x02
	ClearDynamicallyDefinedDataIdentifier   DynamicDefineType = 0x03
)

// SourceDIDEntry is one (source_did, position, mem_size) tuple of a
// DefineByIdentifier request.
type SourceDIDEntry struct {
	SourceDID uint16
	Position  uint8
	MemSize   uint8
}

func (e SourceDIDEntry) encode() []byte {
	out, _ := bytecodec.PutUint(nil, uint64(e.SourceDID), 2)
	return append(out, e.Position, e.MemSize)
}

// DynamicDefineByIdentifier builds a 0x2C DefineByIdentifier request:
// dyn_did followed by one or more source-DID tuples. dynDID must fall in
// the Periodic or DynamicallyDefined DID ranges.
func DynamicDefineByIdentifier(dynDID uint16, entries []SourceDIDEntry, suppressPositive bool) (Request, error) {
	cat := common.ParseDID(dynDID).Category
	if cat != common.DIDPeriodic && cat != common.DIDDynamicallyDefined {
		return Request{}, &common.InvalidParamError{What: "dynamically-defined did out of range"}
	}
	if len(entries) == 0 {
		return Request{}, &common.InvalidParamError{What: "DefineByIdentifier needs at least one source entry"}
	}
	data, _ := bytecodec.PutUint(nil, uint64(dynDID), 2)
	for _, e := range entries {
		data = append(data, e.encode()...)
	}
	sf := common.NewSubFunction(uint8(DefineByIdentifier), suppressPositive)
	return New(common.DynamicallyDefineDID, &sf, data)
}

// MemoryEntry is one (addr, size) pair of a DefineByMemoryAddress request.
type MemoryEntry struct {
	Addr uint64
	Size uint64
}

// DynamicDefineByMemoryAddress builds a 0x2C DefineByMemoryAddress
// request: dyn_did, an auto-sized ALFI wide enough for the largest
// addr/size in entries, then the entries themselves at that width.
func DynamicDefineByMemoryAddress(dynDID uint16, entries []MemoryEntry, suppressPositive bool) (Request, error) {
	if len(entries) == 0 {
		return Request{}, &common.InvalidParamError{What: "DefineByMemoryAddress needs at least one memory entry"}
	}
	var maxAddr, maxSize uint64
	for _, e := range entries {
		if e.Addr > maxAddr {
			maxAddr = e.Addr
		}
		if e.Size > maxSize {
			maxSize = e.Size
		}
	}
	addrLen := widthOf(maxAddr)
	sizeLen := widthOf(maxSize)
	alfi := common.AddressAndLengthFormatIdentifier{SizeLen: sizeLen, AddrLen: addrLen}

	data, _ := bytecodec.PutUint(nil, uint64(dynDID), 2)
	data = append(data, alfi.Byte())
	for _, e := range entries {
		data, _ = bytecodec.PutUint(data, e.Addr, int(addrLen))
		data, _ = bytecodec.PutUint(data, e.Size, int(sizeLen))
	}
	sf := common.NewSubFunction(uint8(DefineByMemoryAddress), suppressPositive)
	return New(common.DynamicallyDefineDID, &sf, data)
}

// widthOf returns the minimum byte width (1..=8) able to hold v.
func widthOf(v uint64) uint8 {
	w := uint8(1)
	for v>>(8*w) != 0 {
		w++
	}
	return w
}

// DynamicClear builds a 0x2C Clear request with zero or one target DID.
func DynamicClear(dynDID *uint16, suppressPositive bool) (Request, error) {
	var data []byte
	if dynDID != nil {
		data, _ = bytecodec.PutUint(nil, uint64(*dynDID), 2)
	}
	sf := common.NewSubFunction(uint8(ClearDynamicallyDefinedDataIdentifier), suppressPositive)
	return New(common.DynamicallyDefineDID, &sf, data)
}

// validateDynamicDefine re-checks the per-sub-function body shape of a
// DynamicallyDefineDID request: a dyn_did plus N source-DID tuples for
// DefineByIdentifier, a dyn_did plus an ALFI-prefixed entry list for
// DefineByMemoryAddress, and an optional dyn_did for Clear.
func validateDynamicDefine(r Request) error {
	if r.SubFunc == nil {
		return &common.SubFunctionError{Service: common.DynamicallyDefineDID}
	}
	switch DynamicDefineType(r.SubFunc.Function) {
	case DefineByIdentifier:
		if len(r.Data) < 6 || (len(r.Data)-2)%4 != 0 {
			return &common.InvalidDataLengthError{Expect: 6, Actual: len(r.Data)}
		}
	case DefineByMemoryAddress:
		if len(r.Data) < 3 {
			return &common.InvalidDataLengthError{Expect: 3, Actual: len(r.Data)}
		}
	case ClearDynamicallyDefinedDataIdentifier:
		if len(r.Data) != 0 && len(r.Data) != 2 {
			return &common.InvalidDataLengthError{Expect: 2, Actual: len(r.Data)}
		}
	}
	return nil
}
