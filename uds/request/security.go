package request

import "github.com/rob-gra/go-diagcan/uds/common"

// SecurityAccess builds a 0x27 request. level odd is a seed request,
// level even is a key submission, in which case data MUST be non-empty.
func SecurityAccess(level uint8, suppressPositive bool, data []byte) (Request, error) {
	if level%2 == 0 && len(data) == 0 {
		return Request{}, &common.InvalidParamError{What: "SecurityAccess key submission needs non-empty data"}
	}
	sf := common.NewSubFunction(level, suppressPositive)
	return New(common.SecurityAccess, &sf, data)
}

// IsSeedRequest reports whether the echoed security level is odd (seed
// request) rather than even (key submission).
func IsSeedRequest(level uint8) bool { return level%2 == 1 }

// CommunicationCtrlType is the sub-function payload of CommunicationCtrl.
type CommunicationCtrlType uint8

const (
	EnableRxAndTx                                             CommunicationCtrlType = 0x00
	EnableRxAndDisableTx                                      CommunicationCtrlType = 0x01
	DisableRxAndEnableTx                                      CommunicationCtrlType = 0x02
	DisableRxAndTx                                            CommunicationCtrlType = 0x03
	EnableRxAndDisableTxWithEnhancedAddressInformation         CommunicationCtrlType = 0x04
	EnableRxAndTxWithEnhancedAddressInformation                CommunicationCtrlType = 0x05
)

// CommunicationCtrl builds a 0x28 request: one byte commType plus, for
// the enhanced-address sub-functions only, a two-byte node id in
// 0x0001..=0xFFFF.
func CommunicationCtrl(ctrl CommunicationCtrlType, commType uint8, nodeID *uint16, suppressPositive bool) (Request, error) {
	needsNode := ctrl == EnableRxAndDisableTxWithEnhancedAddressInformation || ctrl == EnableRxAndTxWithEnhancedAddressInformation
	if needsNode && (nodeID == nil || *nodeID == 0) {
		return Request{}, &common.InvalidParamError{What: "nodeIdentificationNumber is required"}
	}
	data := []byte{commType}
	if needsNode {
		data = append(data, byte(*nodeID>>8), byte(*nodeID))
	}
	sf := common.NewSubFunction(uint8(ctrl), suppressPositive)
	return New(common.CommunicationCtrl, &sf, data)
}

// validateCommunicationCtrl re-checks the nodeID-presence rule
// CommunicationCtrl's constructor enforces, against parsed wire bytes.
func validateCommunicationCtrl(r Request) error {
	if r.SubFunc == nil {
		return &common.SubFunctionError{Service: common.CommunicationCtrl}
	}
	ctrl := CommunicationCtrlType(r.SubFunc.Function)
	needsNode := ctrl == EnableRxAndDisableTxWithEnhancedAddressInformation || ctrl == EnableRxAndTxWithEnhancedAddressInformation
	want := 1
	if needsNode {
		want = 3
	}
	return common.DataLengthCheck(len(r.Data), want, true)
}
