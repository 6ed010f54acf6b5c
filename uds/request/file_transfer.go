package request

import (
	"github.com/rob-gra/go-diagcan/bytecodec"
	"github.com/rob-gra/go-diagcan/uds/common"
)

// ModeOfOperation is the sub-function payload of RequestFileTransfer.
type ModeOfOperation uint8

const (
	AddFile     ModeOfOperation = 0x01
	DeleteFile  ModeOfOperation = 0x02
	ReplaceFile ModeOfOperation = 0x03
	ReadFile    ModeOfOperation = 0x04
	ReadDir     ModeOfOperation = 0x05
	ResumeFile  ModeOfOperation = 0x06
)

func mutatesFile(m ModeOfOperation) bool {
	return m == AddFile || m == ReplaceFile || m == ResumeFile
}

// FileTransferFixedFields carries the dfi and file-size fields that
// AddFile, ReplaceFile and ResumeFile append after the path; ReadFile
// appends only the dfi.
type FileTransferFixedFields struct {
	DFI               DataFormatIdentifier
	UncompressedSize  uint64
	CompressedSize    uint64
}

// RequestFileTransfer builds a 0x38 request. All shapes start with
// path_len (u16) and the UTF-8 path; file-mutating shapes (AddFile,
// ReplaceFile, ResumeFile) append dfi, a filesize_len byte and the two
// size fields at that width. ReadFile appends only the dfi, so fields is
// required for it as well; fields is ignored for DeleteFile and ReadDir.
func RequestFileTransfer(mode ModeOfOperation, path string, fields *FileTransferFixedFields, suppressPositive bool) (Request, error) {
	if mutatesFile(mode) && fields == nil {
		return Request{}, &common.InvalidParamError{What: "file-mutating RequestFileTransfer needs size fields"}
	}
	data, _ := bytecodec.PutUint(nil, uint64(len(path)), 2)
	data = append(data, []byte(path)...)

	if mode == ReadFile {
		if fields == nil {
			return Request{}, &common.InvalidParamError{What: "ReadFile needs a data format identifier"}
		}
		data = append(data, fields.DFI.Byte())
	} else if mutatesFile(mode) {
		width := widthOf(fields.UncompressedSize)
		if w := widthOf(fields.CompressedSize); w > width {
			width = w
		}
		data = append(data, fields.DFI.Byte(), width)
		data, _ = bytecodec.PutUint(data, fields.UncompressedSize, int(width))
		data, _ = bytecodec.PutUint(data, fields.CompressedSize, int(width))
	}

	sf := common.NewSubFunction(uint8(mode), suppressPositive)
	return New(common.RequestFileTransfer, &sf, data)
}

// RequestFileTransferParts decodes the path and, for file-mutating
// modes, the fixed size fields of a RequestFileTransfer request; for
// ReadFile the returned fields carry only the dfi.
func RequestFileTransferParts(r Request) (mode ModeOfOperation, path string, fields *FileTransferFixedFields, err error) {
	if r.Service != common.RequestFileTransfer || r.SubFunc == nil {
		return 0, "", nil, &common.InvalidParamError{What: "not a RequestFileTransfer request"}
	}
	mode = ModeOfOperation(r.SubFunc.Function)
	pathLenV, rest, err := bytecodec.Uint(r.Data, 2)
	if err != nil {
		return 0, "", nil, err
	}
	pathLen := int(pathLenV)
	if len(rest) < pathLen {
		return 0, "", nil, &common.InvalidDataLengthError{Expect: pathLen, Actual: len(rest)}
	}
	path = string(rest[:pathLen])
	rest = rest[pathLen:]

	switch {
	case mode == ReadFile:
		if len(rest) < 1 {
			return 0, "", nil, &common.InvalidDataLengthError{Expect: 1, Actual: 0}
		}
		fields = &FileTransferFixedFields{DFI: ParseDataFormatIdentifier(rest[0])}
	case mutatesFile(mode):
		if len(rest) < 2 {
			return 0, "", nil, &common.InvalidDataLengthError{Expect: 2, Actual: len(rest)}
		}
		dfi := ParseDataFormatIdentifier(rest[0])
		width := int(rest[1])
		rest = rest[2:]
		if len(rest) < 2*width {
			return 0, "", nil, &common.InvalidDataLengthError{Expect: 2 * width, Actual: len(rest)}
		}
		uncompressed, mid, err := bytecodec.Uint(rest, width)
		if err != nil {
			return 0, "", nil, err
		}
		compressed, _, err := bytecodec.Uint(mid, width)
		if err != nil {
			return 0, "", nil, err
		}
		fields = &FileTransferFixedFields{DFI: dfi, UncompressedSize: uncompressed, CompressedSize: compressed}
	}
	return mode, path, fields, nil
}
