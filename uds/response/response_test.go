package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rob-gra/go-diagcan/uds/common"
	"github.com/rob-gra/go-diagcan/uds/request"
)

func TestNegativeResponseRoundTrip(t *testing.T) {
	resp := NewNegative(common.SessionCtrl, common.ConditionsNotCorrect)
	wire := resp.Bytes()
	assert.Equal(t, []byte{uint8(common.NRC), uint8(common.SessionCtrl), uint8(common.ConditionsNotCorrect)}, wire)

	parsed, err := Parse(wire, nil)
	require.NoError(t, err)
	assert.True(t, parsed.Negative)
	code, err := parsed.NRCCode()
	require.NoError(t, err)
	assert.Equal(t, common.ConditionsNotCorrect, code)
}

func TestSessionCtrlResponseRoundTrip(t *testing.T) {
	resp, err := SessionCtrl(request.ExtendedDiagnosticSession, 50, 500)
	require.NoError(t, err)
	wire := resp.Bytes()
	assert.Equal(t, uint8(common.SessionCtrl)|common.PositiveOffset, wire[0])

	parsed, err := Parse(wire, nil)
	require.NoError(t, err)
	p2, p2Star, err := SessionCtrlTiming(parsed)
	require.NoError(t, err)
	assert.Equal(t, uint16(50), p2)
	assert.Equal(t, uint16(500), p2Star)
}

func TestECUResetRequiresSecondOnlyForRapidPowerShutDown(t *testing.T) {
	_, err := ECUReset(request.EnableRapidPowerShutDown, nil)
	assert.Error(t, err)
	second := uint8(5)
	resp, err := ECUReset(request.EnableRapidPowerShutDown, &second)
	require.NoError(t, err)
	assert.Equal(t, []byte{5}, resp.Data)

	_, err = ECUReset(request.HardReset, &second)
	assert.Error(t, err)
}

func TestReadDIDResponseRoundTrip(t *testing.T) {
	cfg := common.DidConfig{0xF190: 2, 0xF18C: 1}
	records := []DIDRecord{{DID: 0xF190, Data: []byte{1, 2}}, {DID: 0xF18C, Data: []byte{3}}}
	resp, err := ReadDID(records, cfg)
	require.NoError(t, err)
	got, err := ReadDIDRecords(resp, cfg)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestWriteDIDEcho(t *testing.T) {
	resp, err := WriteDID(0xF190)
	require.NoError(t, err)
	did, err := WriteDIDEcho(resp)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xF190), did)
}

func TestSecurityAccessSeedRequired(t *testing.T) {
	_, err := SecurityAccess(0x01, nil)
	assert.Error(t, err)
	resp, err := SecurityAccess(0x01, []byte{1, 2, 3, 4})
	require.NoError(t, err)
	seed, err := SecurityAccessSeed(resp)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, seed)

	resp2, err := SecurityAccess(0x02, nil)
	require.NoError(t, err)
	seed2, err := SecurityAccessSeed(resp2)
	require.NoError(t, err)
	assert.Empty(t, seed2)
}

func TestRoutineCtrlRejectsStatusWithoutInfo(t *testing.T) {
	_, err := RoutineCtrl(request.StartRoutine, 0x1234, nil, []byte{1})
	assert.Error(t, err)
	info := uint8(0x01)
	resp, err := RoutineCtrl(request.StartRoutine, 0x1234, &info, []byte{1})
	require.NoError(t, err)
	assert.Equal(t, common.RoutineCtrl, resp.Service)
}

func TestRequestDownloadUploadRoundTrip(t *testing.T) {
	lfi := common.LengthFormatIdentifier{MaxBlockLenWidth: 2}
	resp, err := RequestDownload(lfi, 0x1000)
	require.NoError(t, err)
	gotLFI, gotLen, err := RequestDownloadUploadParts(resp)
	require.NoError(t, err)
	assert.Equal(t, lfi, gotLFI)
	assert.Equal(t, uint64(0x1000), gotLen)
}

func TestTransferDataResponseRoundTrip(t *testing.T) {
	resp, err := TransferData(0x03, []byte{0xAA})
	require.NoError(t, err)
	seq, data, err := TransferDataParts(resp)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x03), seq)
	assert.Equal(t, []byte{0xAA}, data)
}

func TestAccessTimingParamResponseBodyShape(t *testing.T) {
	_, err := AccessTimingParam(request.ReadExtendedTimingParameterSet, nil)
	assert.Error(t, err)
	_, err = AccessTimingParam(request.SetTimingParametersToDefaultValues, []byte{1})
	assert.Error(t, err)
	_, err = AccessTimingParam(request.ReadExtendedTimingParameterSet, []byte{1, 2})
	assert.NoError(t, err)
}

func TestResponseOnEventHasNoSubFunction(t *testing.T) {
	resp, err := ResponseOnEvent([]byte{0x01, 0x02})
	require.NoError(t, err)
	assert.Nil(t, resp.SubFunc)
	parsed, err := Parse(resp.Bytes(), nil)
	require.NoError(t, err)
	assert.Equal(t, resp, parsed)
}

func TestReadDTCInfoByDTCListRoundTrip(t *testing.T) {
	records := []DTCStatusRecord{{DTC: [3]byte{0x01, 0x02, 0x03}, Status: 0x08}}
	resp, err := ReadDTCInfoByDTCList(request.ReportDTCByStatusMask, 0xFF, records)
	require.NoError(t, err)
	mask, got, err := ReadDTCInfoListParts(resp)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xFF), mask)
	assert.Equal(t, records, got)
}
