package request

import "github.com/rob-gra/go-diagcan/uds/common"

// DiagnosticSessionType is the sub-function payload of SessionCtrl.
type DiagnosticSessionType uint8

const (
	DefaultSession          DiagnosticSessionType = 0x01
	ProgrammingSession      DiagnosticSessionType = 0x02
	ExtendedDiagnosticSession DiagnosticSessionType = 0x03
	SafetySystemDiagnosticSession DiagnosticSessionType = 0x04
)

// SessionCtrl builds a 0x10 request: sub-function only, empty body.
func SessionCtrl(session DiagnosticSessionType, suppressPositive bool) (Request, error) {
	sf := common.NewSubFunction(uint8(session), suppressPositive)
	return New(common.SessionCtrl, &sf, nil)
}

// ResetType is the sub-function payload of ECUReset.
type ResetType uint8

const (
	HardReset               ResetType = 0x01
	KeyOffOnReset            ResetType = 0x02
	SoftReset                ResetType = 0x03
	EnableRapidPowerShutDown ResetType = 0x04
	DisableRapidPowerShutDown ResetType = 0x05
)

// ECUReset builds a 0x11 request: sub-function only, empty body.
func ECUReset(reset ResetType, suppressPositive bool) (Request, error) {
	sf := common.NewSubFunction(uint8(reset), suppressPositive)
	return New(common.ECUReset, &sf, nil)
}

// TesterPresentType is the sub-function payload of TesterPresent; ISO
// 14229-1 defines only ZeroSubFunction (0x00).
type TesterPresentType uint8

const ZeroSubFunction TesterPresentType = 0x00

// TesterPresent builds a 0x3E request: sub-function only, empty body.
func TesterPresent(suppressPositive bool) (Request, error) {
	sf := common.NewSubFunction(uint8(ZeroSubFunction), suppressPositive)
	return New(common.TesterPresent, &sf, nil)
}

// DTCSettingType is the sub-function payload of CtrlDTCSetting.
type DTCSettingType uint8

const (
	DTCSettingOn  DTCSettingType = 0x01
	DTCSettingOff DTCSettingType = 0x02
)

// CtrlDTCSetting builds a 0x85 request: sub-function plus an opaque,
// typically empty, manufacturer-specific DTC record selector.
func CtrlDTCSetting(kind DTCSettingType, suppressPositive bool, data []byte) (Request, error) {
	sf := common.NewSubFunction(uint8(kind), suppressPositive)
	return New(common.CtrlDTCSetting, &sf, data)
}

// ClearDiagnosticInfo builds a 0x14 request: no sub-function. groupOfDTC
// is a 3-byte mask (0xFFFFFF clears all groups).
func ClearDiagnosticInfo(groupOfDTC [3]byte) (Request, error) {
	return New(common.ClearDiagnosticInfo, nil, groupOfDTC[:])
}
