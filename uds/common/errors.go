package common

import (
	"fmt"

	"github.com/rob-gra/go-diagcan/bytecodec"
)

// DidConfig maps a DID to its payload length in bytes. The host supplies
// it; ReadDID, WriteDID, IOCtrl and several DTC snapshot/extended-data
// records need it to know how many bytes follow a DID on the wire.
type DidConfig map[uint16]int

// DidNotSupportedError reports a DID absent from the DidConfig.
type DidNotSupportedError struct {
	DID uint16
}

func (e *DidNotSupportedError) Error() string {
	return fmt.Sprintf("uds: did 0x%04X not present in configuration", e.DID)
}

// InvalidParamError reports a malformed constructor argument, mirrored
// from the source's generic InvalidParam error.
type InvalidParamError struct {
	What string
}

func (e *InvalidParamError) Error() string { return "uds: invalid parameter: " + e.What }

// InvalidDataLengthError reports a payload whose length does not match
// the expected size for a fixed-shape record.
type InvalidDataLengthError struct {
	Expect, Actual int
}

func (e *InvalidDataLengthError) Error() string {
	return fmt.Sprintf("uds: invalid data length, expect %d got %d", e.Expect, e.Actual)
}

// DataLengthCheck enforces a fixed length (exact=true) or a minimum
// length (exact=false), mirroring the source's utils::data_length_check.
func DataLengthCheck(actual, expect int, exact bool) error {
	if err := bytecodec.CheckLength(actual, expect, exact); err != nil {
		return &InvalidDataLengthError{Expect: expect, Actual: actual}
	}
	return nil
}
