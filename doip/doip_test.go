package doip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{Type: TCPReqAliveCheck, Body: []byte{0x01, 0x02}}
	wire := h.Bytes()
	assert.Equal(t, []byte{0x00, 0x07, 0x00, 0x00, 0x00, 0x02, 0x01, 0x02}, wire)

	parsed, err := ParseHeader(wire)
	require.NoError(t, err)
	assert.Equal(t, h, parsed)
}

func TestParseHeaderRejectsShortBody(t *testing.T) {
	wire := []byte{0x00, 0x07, 0x00, 0x00, 0x00, 0x05, 0x01}
	_, err := ParseHeader(wire)
	assert.Error(t, err)
}

func TestVehicleIDRoundTrip(t *testing.T) {
	h := VehicleID()
	assert.Equal(t, UDPReqVehicleID, h.Type)
	require.NoError(t, ParseVehicleID(h.Body))
}

func TestVehicleIDWithEIDRoundTrip(t *testing.T) {
	eid := Eid{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	h := VehicleIDWithEID(eid)
	got, err := ParseVehicleIDWithEID(h.Body)
	require.NoError(t, err)
	assert.Equal(t, eid, got)
}

func TestVehicleIDWithVINValidatesLength(t *testing.T) {
	_, err := VehicleIDWithVIN("short")
	assert.Error(t, err)

	h, err := VehicleIDWithVIN("12345678901234567")
	require.NoError(t, err)
	vin, err := ParseVehicleIDWithVIN(h.Body)
	require.NoError(t, err)
	assert.Equal(t, "12345678901234567", vin)
}

func TestVehicleIDWithVINLenientUTF8(t *testing.T) {
	bad := make([]byte, LengthOfVIN)
	for i := range bad {
		bad[i] = 0xFF
	}
	vin, err := ParseVehicleIDWithVIN(bad)
	require.NoError(t, err)
	assert.Equal(t, "-----------------", vin)
}

func TestRoutingActiveRoundTrip(t *testing.T) {
	req := RoutingActiveRequest{SrcAddr: 0x0E00, Active: RoutingActiveDefault}
	h := RoutingActive(req)
	got, err := ParseRoutingActive(h.Body)
	require.NoError(t, err)
	assert.Equal(t, req, got)

	userDef := uint32(0xAABBCCDD)
	req2 := RoutingActiveRequest{SrcAddr: 0x0E00, Active: RoutingActiveCentralSecurity, UserDef: &userDef}
	h2 := RoutingActive(req2)
	got2, err := ParseRoutingActive(h2.Body)
	require.NoError(t, err)
	require.NotNil(t, got2.UserDef)
	assert.Equal(t, userDef, *got2.UserDef)
}

func TestAliveCheckRoundTrip(t *testing.T) {
	h := AliveCheck()
	require.NoError(t, ParseAliveCheck(h.Body))

	resp := AliveCheckResponse(0x0E80)
	addr, err := ParseAliveCheckResponse(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, LogicAddress(0x0E80), addr)
}

func TestVehicleIDAnnouncementRoundTrip(t *testing.T) {
	r := VehicleIDResponse{
		VIN:        "12345678901234567",
		Address:    0x0E00,
		EID:        Eid{1, 2, 3, 4, 5, 6},
		GID:        Gid{7, 8, 9, 10, 11, 12},
		FurtherAct: NoFurtherActionRequired,
	}
	h, err := VehicleIDAnnouncement(r)
	require.NoError(t, err)
	got, err := ParseVehicleIDAnnouncement(h.Body)
	require.NoError(t, err)
	assert.Equal(t, r, got)

	sync := VINGIDSynchronized
	r.SyncStatus = &sync
	h2, err := VehicleIDAnnouncement(r)
	require.NoError(t, err)
	got2, err := ParseVehicleIDAnnouncement(h2.Body)
	require.NoError(t, err)
	require.NotNil(t, got2.SyncStatus)
	assert.Equal(t, sync, *got2.SyncStatus)
}

func TestEntityStatusAnnouncementRoundTrip(t *testing.T) {
	r := EntityStatusResponse{NodeType: NodeTypeGateway, MaxSockets: 8, OpenSockets: 2}
	h := EntityStatusAnnouncement(r)
	got, err := ParseEntityStatusAnnouncement(h.Body)
	require.NoError(t, err)
	assert.Equal(t, r, got)

	size := uint32(4096)
	r.MaxDataSize = &size
	h2 := EntityStatusAnnouncement(r)
	got2, err := ParseEntityStatusAnnouncement(h2.Body)
	require.NoError(t, err)
	require.NotNil(t, got2.MaxDataSize)
	assert.Equal(t, size, *got2.MaxDataSize)
}

func TestDiagnosticPowerModeRoundTrip(t *testing.T) {
	h := DiagnosticPowerModeResponse(PowerModeReady)
	mode, err := ParseDiagnosticPowerModeResponse(h.Body)
	require.NoError(t, err)
	assert.Equal(t, PowerModeReady, mode)
}

func TestRoutingActivationRoundTrip(t *testing.T) {
	r := RoutingActiveResponse{DstAddr: 0x0E00, SrcAddr: 0x0E80, ActiveCode: ActiveSuccess}
	h := RoutingActivation(r)
	got, err := ParseRoutingActivation(h.Body)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestDiagnosticAckRoundTrip(t *testing.T) {
	pos := DiagnosticPositive{SrcAddr: 0x0E80, DstAddr: 0x0E00, Code: DiagnosticPositiveConfirm, PreDiagData: []byte{0x22, 0xF1, 0x90}}
	h := DiagnosticPositiveAck(pos)
	got, err := ParseDiagnosticPositiveAck(h.Body)
	require.NoError(t, err)
	assert.Equal(t, pos, got)

	neg := DiagnosticNegative{SrcAddr: 0x0E80, DstAddr: 0x0E00, Code: DiagnosticNegativeUnknownTargetAddress, PreDiagData: []byte{0x22}}
	h2 := DiagnosticNegativeAck(neg)
	got2, err := ParseDiagnosticNegativeAck(h2.Body)
	require.NoError(t, err)
	assert.Equal(t, neg, got2)
}

func TestHeaderNegativeRoundTrip(t *testing.T) {
	h := HeaderNegativeResponse(UnknownPayloadType)
	code, err := ParseHeaderNegativeResponse(h.Body)
	require.NoError(t, err)
	assert.Equal(t, UnknownPayloadType, code)
}
