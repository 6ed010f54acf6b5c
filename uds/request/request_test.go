package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rob-gra/go-diagcan/uds/common"
)

func TestSessionCtrlRoundTrip(t *testing.T) {
	req, err := SessionCtrl(ExtendedDiagnosticSession, true)
	require.NoError(t, err)
	assert.Equal(t, common.SessionCtrl, req.Service)
	require.NotNil(t, req.SubFunc)
	assert.Equal(t, uint8(0x83), req.SubFunc.Byte())

	parsed, err := Parse(req.Bytes(), nil)
	require.NoError(t, err)
	assert.Equal(t, req, parsed)
}

func TestReadDIDRejectsEmpty(t *testing.T) {
	_, err := ReadDID(nil)
	assert.Error(t, err)
}

func TestReadDIDRoundTrip(t *testing.T) {
	req, err := ReadDID([]uint16{0xF190, 0xF18C})
	require.NoError(t, err)
	dids, err := ReadDIDs(req)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0xF190, 0xF18C}, dids)
}

func TestWriteDIDLengthValidated(t *testing.T) {
	cfg := common.DidConfig{0xF190: 4}
	_, err := WriteDID(0xF190, []byte{1, 2, 3}, cfg)
	assert.Error(t, err)

	req, err := WriteDID(0xF190, []byte{1, 2, 3, 4}, cfg)
	require.NoError(t, err)
	did, data, err := WriteDIDParts(req, cfg)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xF190), did)
	assert.Equal(t, []byte{1, 2, 3, 4}, data)
}

func TestReadMemByAddrRoundTrip(t *testing.T) {
	loc, err := common.NewMemoryLocation(common.AddressAndLengthFormatIdentifier{SizeLen: 1, AddrLen: 2}, 0x1000, 0x10)
	require.NoError(t, err)
	req, err := ReadMemByAddr(loc)
	require.NoError(t, err)
	got, err := ReadMemByAddrLocation(req)
	require.NoError(t, err)
	assert.Equal(t, loc, got)
}

func TestWriteMemByAddrValidatesLength(t *testing.T) {
	loc, err := common.NewMemoryLocation(common.AddressAndLengthFormatIdentifier{SizeLen: 1, AddrLen: 2}, 0x1000, 4)
	require.NoError(t, err)
	_, err = WriteMemByAddr(loc, []byte{1, 2, 3})
	assert.Error(t, err)

	req, err := WriteMemByAddr(loc, []byte{1, 2, 3, 4})
	require.NoError(t, err)
	gotLoc, data, err := WriteMemByAddrParts(req)
	require.NoError(t, err)
	assert.Equal(t, loc, gotLoc)
	assert.Equal(t, []byte{1, 2, 3, 4}, data)
}

func TestSecurityAccessRejectsEmptySeedlessKey(t *testing.T) {
	assert.True(t, IsSeedRequest(0x01))
	assert.False(t, IsSeedRequest(0x02))
	_, err := SecurityAccess(0x02, false, nil)
	assert.Error(t, err)
	_, err = SecurityAccess(0x01, false, nil)
	assert.NoError(t, err)
}

func TestCommunicationCtrlRequiresNodeID(t *testing.T) {
	_, err := CommunicationCtrl(EnableRxAndTxWithEnhancedAddressInformation, 0x01, nil, false)
	assert.Error(t, err)
	nodeID := uint16(0x1234)
	_, err = CommunicationCtrl(EnableRxAndTxWithEnhancedAddressInformation, 0x01, &nodeID, false)
	assert.NoError(t, err)
}

func TestDynamicDefineByIdentifierValidatesCategory(t *testing.T) {
	entries := []SourceDIDEntry{{SourceDID: 0xF190, Position: 1, MemSize: 2}}
	_, err := DynamicDefineByIdentifier(0x0001, entries, false)
	assert.Error(t, err)
}

func TestDynamicDefineByMemoryAddress(t *testing.T) {
	entries := []MemoryEntry{{Addr: 0x1000, Size: 4}}
	req, err := DynamicDefineByMemoryAddress(0xF200, entries, false)
	require.NoError(t, err)
	assert.Equal(t, common.DynamicallyDefineDID, req.Service)
}

func TestIOCtrlShortTermAdjustmentLength(t *testing.T) {
	cfg := common.DidConfig{0xF190: 2}
	_, err := IOCtrl(0xF190, ShortTermAdjustment, []byte{1}, nil, cfg)
	assert.Error(t, err)
	_, err = IOCtrl(0xF190, ShortTermAdjustment, []byte{1, 2}, nil, cfg)
	assert.NoError(t, err)
	_, err = IOCtrl(0xF190, ReturnControlToECU, []byte{1}, nil, cfg)
	assert.Error(t, err)
}

func TestRequestUploadDownloadRoundTrip(t *testing.T) {
	loc, err := common.NewMemoryLocation(common.AddressAndLengthFormatIdentifier{SizeLen: 2, AddrLen: 2}, 0x2000, 0x100)
	require.NoError(t, err)
	dfi := DataFormatIdentifier{Compression: 0, Encryption: 0}
	req, err := RequestDownload(dfi, loc)
	require.NoError(t, err)
	gotDFI, gotLoc, err := DownloadUploadParts(req)
	require.NoError(t, err)
	assert.Equal(t, dfi, gotDFI)
	assert.Equal(t, loc, gotLoc)
}

func TestTransferDataRoundTrip(t *testing.T) {
	req, err := TransferData(0x01, []byte{0xDE, 0xAD})
	require.NoError(t, err)
	seq, data, err := TransferDataParts(req)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), seq)
	assert.Equal(t, []byte{0xDE, 0xAD}, data)
}

func TestRequestFileTransferReadFile(t *testing.T) {
	fields := &FileTransferFixedFields{DFI: DataFormatIdentifier{Compression: 0, Encryption: 0}}
	req, err := RequestFileTransfer(ReadFile, "/data/log.bin", fields, false)
	require.NoError(t, err)
	assert.Equal(t, common.RequestFileTransfer, req.Service)
}

func TestRequestFileTransferAddFileNeedsFields(t *testing.T) {
	fields := &FileTransferFixedFields{UncompressedSize: 1024, CompressedSize: 512}
	_, err := RequestFileTransfer(AddFile, "/data/new.bin", nil, false)
	assert.Error(t, err)
	req, err := RequestFileTransfer(AddFile, "/data/new.bin", fields, false)
	require.NoError(t, err)
	assert.Equal(t, common.RequestFileTransfer, req.Service)
}

func TestSecuredDataTransForcesRequestBit(t *testing.T) {
	req, err := SecuredDataTrans(0, 0x01, 1, 0x22, []byte{1, 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, common.SecuredDataTrans, req.Service)
	apar, _, _, _, _, _, err := SecuredDataTransParts(req)
	require.NoError(t, err)
	assert.Equal(t, AparRequest, apar&AparRequest)
}

func TestLinkCtrlValidatesBodyShape(t *testing.T) {
	_, err := LinkCtrl(VerifyModeTransitionWithFixedParameter, []byte{1, 2}, false)
	assert.Error(t, err)
	_, err = LinkCtrl(VerifyModeTransitionWithFixedParameter, []byte{1}, false)
	assert.NoError(t, err)
	_, err = LinkCtrl(TransitionMode, nil, false)
	assert.NoError(t, err)
}

func TestReadDTCInfoByStatusMask(t *testing.T) {
	req, err := ReadDTCInfoByStatusMask(ReportDTCByStatusMask, ConfirmedDTC)
	require.NoError(t, err)
	assert.Equal(t, common.ReadDTCInfo, req.Service)
	assert.Equal(t, []byte{uint8(ConfirmedDTC)}, req.Data)
}

func TestReadDataByPeriodIDRejectsEmpty(t *testing.T) {
	_, err := ReadDataByPeriodID(SendAtFastRate, nil)
	assert.Error(t, err)
	req, err := ReadDataByPeriodID(SendAtFastRate, []byte{0x01})
	require.NoError(t, err)
	assert.Equal(t, common.ReadDataByPeriodID, req.Service)
}

func TestAuthenticationBodyShape(t *testing.T) {
	_, err := Authentication(DeAuthenticate, []byte{1}, false)
	assert.Error(t, err)
	_, err = Authentication(DeAuthenticate, nil, false)
	assert.NoError(t, err)
}

func TestAccessTimingParamBodyShape(t *testing.T) {
	_, err := AccessTimingParam(SetTimingParametersToGivenValues, nil, false)
	assert.Error(t, err)
	_, err = AccessTimingParam(ReadCurrentlyActiveTimingParameters, []byte{1}, false)
	assert.Error(t, err)
	_, err = AccessTimingParam(SetTimingParametersToGivenValues, []byte{1, 2}, false)
	assert.NoError(t, err)
}

func TestResponseOnEventStopRejectsRecord(t *testing.T) {
	_, err := ResponseOnEvent(StopResponseOnEvent, 0, []byte{1}, false)
	assert.Error(t, err)
	req, err := ResponseOnEvent(StopResponseOnEvent, 0, nil, false)
	require.NoError(t, err)
	assert.Equal(t, common.ResponseOnEvent, req.Service)
}

func TestClearDiagnosticInfo(t *testing.T) {
	req, err := ClearDiagnosticInfo([3]byte{0xFF, 0xFF, 0xFF})
	require.NoError(t, err)
	assert.Equal(t, common.ClearDiagnosticInfo, req.Service)
	assert.Nil(t, req.SubFunc)
}
