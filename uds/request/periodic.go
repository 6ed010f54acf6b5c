package request

import (
	"github.com/rob-gra/go-diagcan/bytecodec"
	"github.com/rob-gra/go-diagcan/uds/common"
)

// TransmissionMode is the sub-function payload of ReadDataByPeriodID
// (Table C.10).
type TransmissionMode uint8

const (
	SendAtSlowRate   TransmissionMode = 0x01
	SendAtMediumRate TransmissionMode = 0x02
	SendAtFastRate   TransmissionMode = 0x03
	StopSending      TransmissionMode = 0x04
)

// ReadDataByPeriodID builds a 0x2A request: transmission mode byte
// followed by one or more periodicDID bytes, no sub-function.
func ReadDataByPeriodID(mode TransmissionMode, periodicDIDs []byte) (Request, error) {
	if len(periodicDIDs) == 0 {
		return Request{}, &common.InvalidParamError{What: "ReadDataByPeriodID needs at least one periodic did"}
	}
	data := append([]byte{uint8(mode)}, periodicDIDs...)
	return New(common.ReadDataByPeriodID, nil, data)
}

// ReadScalingDID builds a 0x24 request: a single big-endian DID, no
// sub-function.
func ReadScalingDID(did uint16) (Request, error) {
	data, _ := bytecodec.PutUint(nil, uint64(did), 2)
	return New(common.ReadScalingDID, nil, data)
}
