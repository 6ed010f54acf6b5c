package request

import "github.com/rob-gra/go-diagcan/uds/common"

// DataFormatIdentifier packs compressionMethod (high nibble) and
// encryptingMethod (low nibble) for RequestDownload/RequestUpload.
type DataFormatIdentifier struct {
	Compression uint8
	Encryption  uint8
}

func (d DataFormatIdentifier) Byte() uint8 { return (d.Compression << 4) | (d.Encryption & 0x0F) }

func ParseDataFormatIdentifier(b uint8) DataFormatIdentifier {
	return DataFormatIdentifier{Compression: b >> 4, Encryption: b & 0x0F}
}

// RequestDownload builds a 0x34 request: dfi followed by a packed
// MemoryLocation, no sub-function.
func RequestDownload(dfi DataFormatIdentifier, loc common.MemoryLocation) (Request, error) {
	data := append([]byte{dfi.Byte()}, loc.Encode()...)
	return New(common.RequestDownload, nil, data)
}

// RequestUpload builds a 0x35 request with the same shape as
// RequestDownload.
func RequestUpload(dfi DataFormatIdentifier, loc common.MemoryLocation) (Request, error) {
	data := append([]byte{dfi.Byte()}, loc.Encode()...)
	return New(common.RequestUpload, nil, data)
}

// DownloadUploadParts decodes the dfi and MemoryLocation shared by
// RequestDownload and RequestUpload requests.
func DownloadUploadParts(r Request) (DataFormatIdentifier, common.MemoryLocation, error) {
	if r.Service != common.RequestDownload && r.Service != common.RequestUpload {
		return DataFormatIdentifier{}, common.MemoryLocation{}, &common.InvalidParamError{What: "not a RequestDownload/RequestUpload request"}
	}
	if len(r.Data) < 1 {
		return DataFormatIdentifier{}, common.MemoryLocation{}, &common.InvalidDataLengthError{Expect: 1, Actual: len(r.Data)}
	}
	dfi := ParseDataFormatIdentifier(r.Data[0])
	loc, _, err := common.DecodeMemoryLocation(r.Data[1:])
	return dfi, loc, err
}

// TransferData builds a 0x36 request: a block sequence counter plus
// opaque payload bytes, no sub-function.
func TransferData(sequence uint8, data []byte) (Request, error) {
	out := append([]byte{sequence}, data...)
	return New(common.TransferData, nil, out)
}

// TransferDataParts decodes the sequence counter and payload out of a
// TransferData request.
func TransferDataParts(r Request) (uint8, []byte, error) {
	if len(r.Data) < 1 {
		return 0, nil, &common.InvalidDataLengthError{Expect: 1, Actual: len(r.Data)}
	}
	return r.Data[0], r.Data[1:], nil
}

// RequestTransferExit builds a 0x37 request; the body is opaque and may
// be empty.
func RequestTransferExit(data []byte) (Request, error) {
	return New(common.RequestTransferExit, nil, data)
}
