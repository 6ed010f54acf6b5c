package response

import (
	"github.com/rob-gra/go-diagcan/bytecodec"
	"github.com/rob-gra/go-diagcan/uds/common"
	"github.com/rob-gra/go-diagcan/uds/request"
)

// RequestFileTransfer builds a 0x78 response: sub-function echoed, a
// lengthFormatIdentifier byte, maxNumberOfBlockLength at that width, then
// (for ReadFile/ReadDir/AddFile/ReplaceFile/ResumeFile) a data format
// identifier and, for directory listings, an opaque fileSizeOrDirInfo
// record that the caller has already shaped.
func RequestFileTransfer(mode request.ModeOfOperation, maxBlockLen uint64, dfi *request.DataFormatIdentifier, dirInfo []byte, suppressPositive bool) (Response, error) {
	width := widthOfResp(maxBlockLen)
	data := []byte{width}
	data, err := bytecodec.PutUint(data, maxBlockLen, int(width))
	if err != nil {
		return Response{}, err
	}
	if dfi != nil {
		data = append(data, dfi.Byte())
	}
	data = append(data, dirInfo...)
	sf := common.NewSubFunction(uint8(mode), suppressPositive)
	return New(common.RequestFileTransfer, &sf, data)
}

func widthOfResp(v uint64) uint8 {
	w := uint8(1)
	for v>>(8*w) != 0 {
		w++
	}
	return w
}

// RequestFileTransferParts decodes the maxNumberOfBlockLength and, where
// present, the data format identifier of a RequestFileTransfer response.
func RequestFileTransferParts(r Response) (maxBlockLen uint64, dfi *request.DataFormatIdentifier, dirInfo []byte, err error) {
	if r.Service != common.RequestFileTransfer || r.SubFunc == nil {
		return 0, nil, nil, &common.InvalidParamError{What: "not a RequestFileTransfer response"}
	}
	if len(r.Data) < 1 {
		return 0, nil, nil, &common.InvalidDataLengthError{Expect: 1, Actual: 0}
	}
	width := int(r.Data[0])
	maxBlockLen, rest, err := bytecodec.Uint(r.Data[1:], width)
	if err != nil {
		return 0, nil, nil, err
	}
	mode := request.ModeOfOperation(r.SubFunc.Function)
	if mode == request.DeleteFile {
		return maxBlockLen, nil, rest, nil
	}
	if len(rest) < 1 {
		return 0, nil, nil, &common.InvalidDataLengthError{Expect: 1, Actual: 0}
	}
	parsed := request.ParseDataFormatIdentifier(rest[0])
	return maxBlockLen, &parsed, rest[1:], nil
}
