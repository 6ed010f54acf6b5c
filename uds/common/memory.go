package common

import (
	"fmt"

	"github.com/rob-gra/go-diagcan/bytecodec"
)

// AddressAndLengthFormatIdentifier packs two nibbles: the byte-width of
// the memorySize field (high) and of the memoryAddress field (low).
// ISO 14229-1 Table H.1. Go has no native u128, so addresses and sizes
// here are carried as uint64, wide enough for every automotive memory map
// in practice; widths above 8 bytes are rejected at construction.
type AddressAndLengthFormatIdentifier struct {
	SizeLen uint8
	AddrLen uint8
}

// ErrInvalidALFI is returned when either nibble of an ALFI byte is zero
// or exceeds the 8-byte width this implementation supports.
type ErrInvalidALFI struct {
	SizeLen, AddrLen uint8
}

func (e *ErrInvalidALFI) Error() string {
	return fmt.Sprintf("uds: invalid address-and-length-format-identifier size_len=%d addr_len=%d", e.SizeLen, e.AddrLen)
}

// NewALFI validates both nibbles are in 1..=8.
func NewALFI(sizeLen, addrLen uint8) (AddressAndLengthFormatIdentifier, error) {
	if sizeLen == 0 || sizeLen > 8 || addrLen == 0 || addrLen > 8 {
		return AddressAndLengthFormatIdentifier{}, &ErrInvalidALFI{SizeLen: sizeLen, AddrLen: addrLen}
	}
	return AddressAndLengthFormatIdentifier{SizeLen: sizeLen, AddrLen: addrLen}, nil
}

// Byte packs the ALFI for the wire: size_len in bits 7-4, addr_len in bits 3-0.
func (a AddressAndLengthFormatIdentifier) Byte() uint8 {
	return (a.SizeLen << 4) | (a.AddrLen & 0x0F)
}

// ParseALFI unpacks an ALFI byte without validating range; callers that
// need the 1..=8 invariant enforced should route through NewALFI.
func ParseALFI(b uint8) AddressAndLengthFormatIdentifier {
	return AddressAndLengthFormatIdentifier{SizeLen: b >> 4, AddrLen: b & 0x0F}
}

// MemoryLocation is the packed (alfi, address, size) triple shared by
// ReadMemoryByAddress, WriteMemoryByAddress, RequestDownload and
// RequestUpload (ISO 14229-1 common/rw_mem_by_addr.rs).
type MemoryLocation struct {
	ALFI    AddressAndLengthFormatIdentifier
	Address uint64
	Size    uint64
}

// NewMemoryLocation rejects a zero address or size, matching the source's
// invalid-param check.
func NewMemoryLocation(alfi AddressAndLengthFormatIdentifier, address, size uint64) (MemoryLocation, error) {
	if address == 0 || size == 0 {
		return MemoryLocation{}, fmt.Errorf("uds: memory address and size must be nonzero")
	}
	return MemoryLocation{ALFI: alfi, Address: address, Size: size}, nil
}

// Len is the encoded byte length: 1 (ALFI) + addr_len + size_len.
func (m MemoryLocation) Len() int {
	return 1 + int(m.ALFI.AddrLen) + int(m.ALFI.SizeLen)
}

// Encode appends the ALFI byte, then the address and size, each
// big-endian and truncated to the width named in the ALFI.
func (m MemoryLocation) Encode() []byte {
	out := make([]byte, 0, m.Len())
	out = append(out, m.ALFI.Byte())
	addr, size := m.Address, m.Size
	if w := m.ALFI.AddrLen; w < 8 {
		addr &= uint64(1)<<(8*uint(w)) - 1
	}
	if w := m.ALFI.SizeLen; w < 8 {
		size &= uint64(1)<<(8*uint(w)) - 1
	}
	out, _ = bytecodec.PutUint(out, addr, int(m.ALFI.AddrLen))
	out, _ = bytecodec.PutUint(out, size, int(m.ALFI.SizeLen))
	return out
}

// DecodeMemoryLocation reads an ALFI byte followed by width-prefixed
// address and size fields; data must be at least 1+addr_len+size_len long.
func DecodeMemoryLocation(data []byte) (MemoryLocation, int, error) {
	if len(data) < 1 {
		return MemoryLocation{}, 0, fmt.Errorf("uds: memory location too short")
	}
	alfi := ParseALFI(data[0])
	need := 1 + int(alfi.AddrLen) + int(alfi.SizeLen)
	if len(data) < need {
		return MemoryLocation{}, 0, fmt.Errorf("uds: memory location needs %d bytes, got %d", need, len(data))
	}
	addr, rest, err := bytecodec.Uint(data[1:], int(alfi.AddrLen))
	if err != nil {
		return MemoryLocation{}, 0, err
	}
	size, _, err := bytecodec.Uint(rest, int(alfi.SizeLen))
	if err != nil {
		return MemoryLocation{}, 0, err
	}
	return MemoryLocation{ALFI: alfi, Address: addr, Size: size}, need, nil
}

// LengthFormatIdentifier packs the byte-width of maxNumberOfBlockLength
// into the high nibble of the LFI byte returned by RequestDownload and
// RequestUpload positive responses; the low nibble is reserved zero.
type LengthFormatIdentifier struct {
	MaxBlockLenWidth uint8
}

func (l LengthFormatIdentifier) Byte() uint8 { return l.MaxBlockLenWidth << 4 }

func ParseLengthFormatIdentifier(b uint8) LengthFormatIdentifier {
	return LengthFormatIdentifier{MaxBlockLenWidth: b >> 4}
}
