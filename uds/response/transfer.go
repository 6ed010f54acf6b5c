package response

import (
	"github.com/rob-gra/go-diagcan/bytecodec"
	"github.com/rob-gra/go-diagcan/uds/common"
)

// RequestDownload builds a 0x74 response: lengthFormatIdentifier byte
// followed by maxNumberOfBlockLength at the width it names, no sub-function.
func RequestDownload(lfi common.LengthFormatIdentifier, maxBlockLen uint64) (Response, error) {
	return uploadDownloadResponse(common.RequestDownload, lfi, maxBlockLen)
}

// RequestUpload builds a 0x75 response with the same shape as RequestDownload.
func RequestUpload(lfi common.LengthFormatIdentifier, maxBlockLen uint64) (Response, error) {
	return uploadDownloadResponse(common.RequestUpload, lfi, maxBlockLen)
}

func uploadDownloadResponse(service common.Service, lfi common.LengthFormatIdentifier, maxBlockLen uint64) (Response, error) {
	data, err := bytecodec.PutUint([]byte{lfi.Byte()}, maxBlockLen, int(lfi.MaxBlockLenWidth))
	if err != nil {
		return Response{}, err
	}
	return New(service, nil, data)
}

// RequestDownloadUploadParts decodes the lengthFormatIdentifier and
// maxNumberOfBlockLength shared by RequestDownload and RequestUpload
// responses.
func RequestDownloadUploadParts(r Response) (common.LengthFormatIdentifier, uint64, error) {
	if r.Service != common.RequestDownload && r.Service != common.RequestUpload {
		return common.LengthFormatIdentifier{}, 0, &common.InvalidParamError{What: "not a RequestDownload/RequestUpload response"}
	}
	if len(r.Data) < 1 {
		return common.LengthFormatIdentifier{}, 0, &common.InvalidDataLengthError{Expect: 1, Actual: len(r.Data)}
	}
	lfi := common.ParseLengthFormatIdentifier(r.Data[0])
	v, _, err := bytecodec.Uint(r.Data[1:], int(lfi.MaxBlockLenWidth))
	return lfi, v, err
}

// TransferData builds a 0x76 response: the echoed block sequence counter
// plus opaque transferResponseParameterRecord bytes, no sub-function.
func TransferData(sequence uint8, data []byte) (Response, error) {
	out := append([]byte{sequence}, data...)
	return New(common.TransferData, nil, out)
}

// TransferDataParts decodes the sequence counter and payload of a
// TransferData response.
func TransferDataParts(r Response) (uint8, []byte, error) {
	if len(r.Data) < 1 {
		return 0, nil, &common.InvalidDataLengthError{Expect: 1, Actual: len(r.Data)}
	}
	return r.Data[0], r.Data[1:], nil
}

// RequestTransferExit builds a 0x77 response; the body is opaque and may
// be empty.
func RequestTransferExit(data []byte) (Response, error) {
	return New(common.RequestTransferExit, nil, data)
}
