package response

import (
	"github.com/rob-gra/go-diagcan/bytecodec"
	"github.com/rob-gra/go-diagcan/uds/common"
	"github.com/rob-gra/go-diagcan/uds/request"
)

// ReadDTCInfo builds a generic 0x59 response: sub-function echoed plus
// whatever record-specific payload that sub-function defines. ISO
// 14229-1 §6.5 specifies ~20 distinct record shapes (DTC-and-status
// lists, snapshot records, severity records, ...); rather than a typed
// struct per shape this exposes the common {statusAvailabilityMask,
// DTCFormatIdentifier, records...} and {count} skeletons used by most
// sub-functions, and leaves fully bespoke shapes to the caller as opaque
// selector bytes.
func ReadDTCInfo(kind request.DTCReportType, payload []byte) (Response, error) {
	sf := common.NewSubFunction(uint8(kind), false)
	return New(common.ReadDTCInfo, &sf, payload)
}

// ReadDTCInfoCount builds the {statusAvailabilityMask, DTCFormatIdentifier,
// DTCCount} shape used by ReportNumberOfDTCByStatusMask and its
// severity/readiness-group siblings.
func ReadDTCInfoCount(kind request.DTCReportType, statusAvailabilityMask uint8, dtcFormat uint8, count uint16) (Response, error) {
	data := []byte{statusAvailabilityMask, dtcFormat}
	data, _ = bytecodec.PutUint(data, uint64(count), 2)
	return ReadDTCInfo(kind, data)
}

// DTCStatusRecord is one {dtc, status} pair of a ReportDTCByStatusMask or
// similar DTC-list response.
type DTCStatusRecord struct {
	DTC    [3]byte
	Status uint8
}

// ReadDTCInfoByDTCList builds the {statusAvailabilityMask, [dtc,
// status]...} shape used by ReportDTCByStatusMask and its siblings.
func ReadDTCInfoByDTCList(kind request.DTCReportType, statusAvailabilityMask uint8, records []DTCStatusRecord) (Response, error) {
	data := []byte{statusAvailabilityMask}
	for _, rec := range records {
		data = append(data, rec.DTC[:]...)
		data = append(data, rec.Status)
	}
	return ReadDTCInfo(kind, data)
}

// ReadDTCInfoListParts decodes the {statusAvailabilityMask, [dtc,
// status]...} shape back out of a ReadDTCInfo response.
func ReadDTCInfoListParts(r Response) (uint8, []DTCStatusRecord, error) {
	if r.Service != common.ReadDTCInfo || r.SubFunc == nil {
		return 0, nil, &common.InvalidParamError{What: "not a ReadDTCInfo response"}
	}
	if len(r.Data) < 1 {
		return 0, nil, &common.InvalidDataLengthError{Expect: 1, Actual: 0}
	}
	mask := r.Data[0]
	rest := r.Data[1:]
	if len(rest)%4 != 0 {
		return 0, nil, &common.InvalidDataLengthError{Expect: 4, Actual: len(rest)}
	}
	records := make([]DTCStatusRecord, 0, len(rest)/4)
	for len(rest) > 0 {
		var rec DTCStatusRecord
		copy(rec.DTC[:], rest[:3])
		rec.Status = rest[3]
		records = append(records, rec)
		rest = rest[4:]
	}
	return mask, records, nil
}
