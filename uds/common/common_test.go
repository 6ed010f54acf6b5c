package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceRoundTrip(t *testing.T) {
	for b := range serviceNames {
		svc, err := ParseService(uint8(b))
		require.NoError(t, err)
		assert.Equal(t, b, svc)
	}
}

func TestParseServiceReserved(t *testing.T) {
	_, err := ParseService(0x99)
	var reserved *ReservedError
	assert.ErrorAs(t, err, &reserved)
	assert.EqualValues(t, 0x99, reserved.Value)
}

func TestSubFunctionRequirements(t *testing.T) {
	assert.True(t, RequiresSubFunction(SessionCtrl))
	assert.True(t, RequiresSubFunction(SecurityAccess))
	assert.False(t, RequiresSubFunction(ReadDID))
	assert.True(t, ForbidsSubFunction(ReadDID))
	assert.False(t, ForbidsSubFunction(SessionCtrl))
}

func TestDIDRoundTripTotalAndLossless(t *testing.T) {
	samples := []uint16{0x0000, 0x0100, 0xF186, 0xF190, 0xF200, 0xF2FF, 0xF300, 0xFA13, 0xFF00, 0xFFFF}
	for _, v := range samples {
		did := ParseDID(v)
		assert.Equal(t, v, did.Value)
	}
}

func TestDIDKnownCategories(t *testing.T) {
	assert.Equal(t, DIDVIN, ParseDID(0xF190).Category)
	assert.Equal(t, DIDActiveDiagnosticSession, ParseDID(0xF186).Category)
	assert.Equal(t, DIDPeriodic, ParseDID(0xF250).Category)
	assert.Equal(t, DIDDynamicallyDefined, ParseDID(0xF301).Category)
	assert.Equal(t, DIDVehicleManufacturerSpecific, ParseDID(0x0101).Category)
	assert.Equal(t, DIDReserved, ParseDID(0xFF01).Category)
}

func TestSubFunctionSuppressBit(t *testing.T) {
	sf := NewSubFunction(0x03, true)
	assert.Equal(t, uint8(0x83), sf.Byte())

	parsed := ParseSubFunction(0x83)
	assert.Equal(t, uint8(0x03), parsed.Function)
	assert.True(t, parsed.SuppressPositive)
}

func TestALFIPacking(t *testing.T) {
	alfi, err := NewALFI(4, 2)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), alfi.Byte())
	assert.Equal(t, alfi, ParseALFI(0x42))
}

func TestALFIInvalid(t *testing.T) {
	_, err := NewALFI(0, 2)
	assert.Error(t, err)
	_, err = NewALFI(9, 2)
	assert.Error(t, err)
}

func TestMemoryLocationEncodeDecode(t *testing.T) {
	alfi, err := NewALFI(2, 4)
	require.NoError(t, err)
	loc, err := NewMemoryLocation(alfi, 0x12345678, 0x0100)
	require.NoError(t, err)

	encoded := loc.Encode()
	assert.Equal(t, loc.Len(), len(encoded))

	decoded, n, err := DecodeMemoryLocation(encoded)
	require.NoError(t, err)
	assert.Equal(t, len(encoded), n)
	assert.Equal(t, loc, decoded)
}

func TestMemoryLocationRejectsZero(t *testing.T) {
	alfi, _ := NewALFI(1, 1)
	_, err := NewMemoryLocation(alfi, 0, 1)
	assert.Error(t, err)
}

func TestNRCString(t *testing.T) {
	assert.Equal(t, "RequestOutOfRange", RequestOutOfRange.String())
	assert.Contains(t, Code(0xF5).String(), "VehicleManufacturerSpecific")
	assert.Contains(t, Code(0x60).String(), "Reserved")
}

func TestDataLengthCheck(t *testing.T) {
	assert.NoError(t, DataLengthCheck(3, 3, true))
	assert.Error(t, DataLengthCheck(2, 3, true))
	assert.NoError(t, DataLengthCheck(4, 3, false))
	assert.Error(t, DataLengthCheck(2, 3, false))
}
