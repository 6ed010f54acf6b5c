package request

import "github.com/rob-gra/go-diagcan/uds/common"

// DTCReportType is the sub-function payload of ReadDTCInfo (Table 317).
type DTCReportType uint8

const (
	ReportNumberOfDTCByStatusMask                  DTCReportType = 0x01
	ReportDTCByStatusMask                          DTCReportType = 0x02
	ReportDTCSnapshotIdentification                DTCReportType = 0x03
	ReportDTCSnapshotRecordByDTCNumber             DTCReportType = 0x04
	ReportDTCStoredDataByRecordNumber              DTCReportType = 0x05
	ReportDTCExtDataRecordByDTCNumber              DTCReportType = 0x06
	ReportNumberOfDTCBySeverityMaskRecord          DTCReportType = 0x07
	ReportDTCBySeverityMaskRecord                  DTCReportType = 0x08
	ReportSeverityInformationOfDTC                 DTCReportType = 0x09
	ReportSupportedDTC                             DTCReportType = 0x0A
	ReportFirstTestFailedDTC                       DTCReportType = 0x0B
	ReportFirstConfirmedDTC                        DTCReportType = 0x0C
	ReportMostRecentTestFailedDTC                  DTCReportType = 0x0D
	ReportMostRecentConfirmedDTC                   DTCReportType = 0x0E
	ReportDTCFaultDetectionCounter                 DTCReportType = 0x14
	ReportDTCWithPermanentStatus                   DTCReportType = 0x15
	ReportDTCExtDataRecordByRecordNumber           DTCReportType = 0x16
	ReportUserDefMemoryDTCByStatusMask             DTCReportType = 0x17
	ReportUserDefMemoryDTCSnapshotRecordByDTCNumber DTCReportType = 0x18
	ReportUserDefMemoryDTCExtDataRecordByDTCNumber DTCReportType = 0x19
	ReportSupportedDTCExtDataRecord                DTCReportType = 0x1A
	ReportWWHOBDDTCByMaskRecord                    DTCReportType = 0x42
	ReportWWHOBDDTCWithPermanentStatus             DTCReportType = 0x55
	ReportDTCInformationByDTCReadinessGroupIdentifier DTCReportType = 0x56
)

// DTCStatusMask is the Table 318 bitmask used by most ReadDTCInfo
// sub-functions to filter DTCs by status.
type DTCStatusMask uint8

const (
	TestFailed                            DTCStatusMask = 0x01
	TestFailedThisOperationCycle          DTCStatusMask = 0x02
	PendingDTC                            DTCStatusMask = 0x04
	ConfirmedDTC                          DTCStatusMask = 0x08
	TestNotCompletedSinceLastClear        DTCStatusMask = 0x10
	TestFailedSinceLastClear              DTCStatusMask = 0x20
	TestNotCompletedThisOperationCycle    DTCStatusMask = 0x40
	WarningIndicatorRequested             DTCStatusMask = 0x80
)

// ReadDTCInfo builds a generic 0x19 request: sub-function plus whatever
// record-specific payload that sub-function defines (a status mask, a
// DTC number, a record number, ...). The per-sub-function shape matrix
// is documented at the response side (§6.5); the request side is just
// "sub-function + opaque selector bytes".
func ReadDTCInfo(kind DTCReportType, selector []byte) (Request, error) {
	sf := common.NewSubFunction(uint8(kind), false)
	return New(common.ReadDTCInfo, &sf, selector)
}

// ReadDTCInfoByStatusMask builds the very common {sub-function,
// DTCStatusMask} shape used by ReportNumberOfDTCByStatusMask,
// ReportDTCByStatusMask, ReportSupportedDTC's siblings, and others.
func ReadDTCInfoByStatusMask(kind DTCReportType, mask DTCStatusMask) (Request, error) {
	return ReadDTCInfo(kind, []byte{uint8(mask)})
}

// ReadDTCInfoByDTCNumber builds the {sub-function, dtc: u24, record
// number} shape used
// by ReportDTCSnapshotRecordByDTCNumber and
// ReportDTCExtDataRecordByDTCNumber.
func ReadDTCInfoByDTCNumber(kind DTCReportType, dtc [3]byte, recordNumber uint8) (Request, error) {
	return ReadDTCInfo(kind, append(dtc[:], recordNumber))
}
