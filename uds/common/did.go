package common

import "fmt"

// DataIdentifier is a UDS DID (ISO 14229-1 Table C.1). Standardized DIDs
// decode to a Category plus the identifier; manufacturer and range-tagged
// DIDs decode to their Category alone, the Value field carrying the raw
// u16 in every case so the mapping stays total and round-trippable.
type DataIdentifier struct {
	Category DIDCategory
	Value    uint16
}

// DIDCategory classifies a DID into the named or ranged buckets of Table
// C.1. Named buckets (BootSoftwareIdentification .. UDSVersion) pin a
// single value; ranged buckets cover an interval of the u16 space.
type DIDCategory uint8

const (
	DIDVehicleManufacturerSpecific DIDCategory = iota
	DIDNetworkConfigForTractorTrailer
	DIDIdentOptionVehicleManufacturer
	DIDBootSoftwareIdentification
	DIDApplicationSoftwareIdentification
	DIDApplicationDataIdentification
	DIDBootSoftwareFingerprint
	DIDApplicationSoftwareFingerprint
	DIDApplicationDataFingerprint
	DIDActiveDiagnosticSession
	DIDVehicleManufacturerSparePartNumber
	DIDVehicleManufacturerECUSoftwareNumber
	DIDVehicleManufacturerECUSoftwareVersionNumber
	DIDSystemSupplierIdentifier
	DIDECUManufacturingDate
	DIDECUSerialNumber
	DIDSupportedFunctionalUnits
	DIDVehicleManufacturerKitAssemblyPartNumber
	DIDISOSAEReservedStandardized
	DIDVIN
	DIDVehicleManufacturerECUHardwareNumber
	DIDSystemSupplierECUHardwareNumber
	DIDSystemSupplierECUHardwareVersionNumber
	DIDSystemSupplierECUSoftwareNumber
	DIDSystemSupplierECUSoftwareVersionNumber
	DIDExhaustRegulationOrTypeApprovalNumber
	DIDSystemNameOrEngineType
	DIDRepairShopCodeOrTesterSerialNumber
	DIDProgrammingDate
	DIDCalibrationRepairShopCodeOrEquipmentSerialNumber
	DIDCalibrationDate
	DIDCalibrationEquipmentSoftwareNumber
	DIDECUInstallationDate
	DIDODXFile
	DIDEntity
	DIDIdentOptionSystemSupplier
	DIDPeriodic
	DIDDynamicallyDefined
	DIDOBD
	DIDOBDMonitor
	DIDOBDInfoType
	DIDTachograph
	DIDAirbagDeployment
	DIDNumberOfEDRDevices
	DIDEDRIdentification
	DIDEDRDeviceAddressInformation
	DIDEDREntries
	DIDSafetySystem
	DIDSystemSupplierSpecific
	DIDUDSVersion
	DIDReserved
)

var didCategoryNames = [...]string{
	"VehicleManufacturerSpecific",
	"NetworkConfigurationDataForTractorTrailerApplication",
	"IdentificationOptionVehicleManufacturerSpecific",
	"BootSoftwareIdentification",
	"ApplicationSoftwareIdentification",
	"ApplicationDataIdentification",
	"BootSoftwareFingerprint",
	"ApplicationSoftwareFingerprint",
	"ApplicationDataFingerprint",
	"ActiveDiagnosticSession",
	"VehicleManufacturerSparePartNumber",
	"VehicleManufacturerECUSoftwareNumber",
	"VehicleManufacturerECUSoftwareVersionNumber",
	"SystemSupplierIdentifier",
	"ECUManufacturingDate",
	"ECUSerialNumber",
	"SupportedFunctionalUnits",
	"VehicleManufacturerKitAssemblyPartNumber",
	"ISOSAEReservedStandardized",
	"VIN",
	"VehicleManufacturerECUHardwareNumber",
	"SystemSupplierECUHardwareNumber",
	"SystemSupplierECUHardwareVersionNumber",
	"SystemSupplierECUSoftwareNumber",
	"SystemSupplierECUSoftwareVersionNumber",
	"ExhaustRegulationOrTypeApprovalNumber",
	"SystemNameOrEngineType",
	"RepairShopCodeOrTesterSerialNumber",
	"ProgrammingDate",
	"CalibrationRepairShopCodeOrCalibrationEquipmentSerialNumber",
	"CalibrationDate",
	"CalibrationEquipmentSoftwareNumber",
	"ECUInstallationDate",
	"ODXFile",
	"Entity",
	"IdentificationOptionSystemSupplierSpecific",
	"Periodic",
	"DynamicallyDefined",
	"OBD",
	"OBDMonitor",
	"OBDInfoType",
	"Tachograph",
	"AirbagDeployment",
	"NumberOfEDRDevices",
	"EDRIdentification",
	"EDRDeviceAddressInformation",
	"EDREntries",
	"SafetySystem",
	"SystemSupplierSpecific",
	"UDSVersion",
	"Reserved",
}

func (c DIDCategory) String() string {
	if int(c) < len(didCategoryNames) {
		return didCategoryNames[c]
	}
	return "Unknown"
}

func (d DataIdentifier) String() string {
	return fmt.Sprintf("%s(0x%04X)", d.Category, d.Value)
}

// pinned single-value DIDs, keyed the same way the ranged ones are looked
// up so ParseDID stays one function instead of two code paths.
var pinnedDID = map[uint16]DIDCategory{
	0xF180: DIDBootSoftwareIdentification,
	0xF181: DIDApplicationSoftwareIdentification,
	0xF182: DIDApplicationDataIdentification,
	0xF183: DIDBootSoftwareFingerprint,
	0xF184: DIDApplicationSoftwareFingerprint,
	0xF185: DIDApplicationDataFingerprint,
	0xF186: DIDActiveDiagnosticSession,
	0xF187: DIDVehicleManufacturerSparePartNumber,
	0xF188: DIDVehicleManufacturerECUSoftwareNumber,
	0xF189: DIDVehicleManufacturerECUSoftwareVersionNumber,
	0xF18A: DIDSystemSupplierIdentifier,
	0xF18B: DIDECUManufacturingDate,
	0xF18C: DIDECUSerialNumber,
	0xF18D: DIDSupportedFunctionalUnits,
	0xF18E: DIDVehicleManufacturerKitAssemblyPartNumber,
	0xF18F: DIDISOSAEReservedStandardized,
	0xF190: DIDVIN,
	0xF191: DIDVehicleManufacturerECUHardwareNumber,
	0xF192: DIDSystemSupplierECUHardwareNumber,
	0xF193: DIDSystemSupplierECUHardwareVersionNumber,
	0xF194: DIDSystemSupplierECUSoftwareNumber,
	0xF195: DIDSystemSupplierECUSoftwareVersionNumber,
	0xF196: DIDExhaustRegulationOrTypeApprovalNumber,
	0xF197: DIDSystemNameOrEngineType,
	0xF198: DIDRepairShopCodeOrTesterSerialNumber,
	0xF199: DIDProgrammingDate,
	0xF19A: DIDCalibrationRepairShopCodeOrEquipmentSerialNumber,
	0xF19B: DIDCalibrationDate,
	0xF19C: DIDCalibrationEquipmentSoftwareNumber,
	0xF19D: DIDECUInstallationDate,
	0xF19E: DIDODXFile,
	0xF19F: DIDEntity,
	0xFA10: DIDNumberOfEDRDevices,
	0xFA11: DIDEDRIdentification,
	0xFA12: DIDEDRDeviceAddressInformation,
	0xFF00: DIDUDSVersion,
}

type didRange struct {
	lo, hi   uint16
	category DIDCategory
}

// ranged buckets, checked in order after the pinned map misses. The
// intervals are disjoint and together with pinnedDID and the reserved
// fallback partition the full uint16 space, per ISO 14229-1 Table C.1.
var didRanges = []didRange{
	{0x0100, 0xA5FF, DIDVehicleManufacturerSpecific},
	{0xA800, 0xACFF, DIDVehicleManufacturerSpecific},
	{0xB000, 0xB1FF, DIDVehicleManufacturerSpecific},
	{0xC000, 0xC2FF, DIDVehicleManufacturerSpecific},
	{0xCF00, 0xEFFF, DIDVehicleManufacturerSpecific},
	{0xF010, 0xF0FF, DIDVehicleManufacturerSpecific},
	{0xF000, 0xF00F, DIDNetworkConfigForTractorTrailer},
	{0xF100, 0xF17F, DIDIdentOptionVehicleManufacturer},
	{0xF1A0, 0xF1EF, DIDIdentOptionVehicleManufacturer},
	{0xF1F0, 0xF1FF, DIDIdentOptionSystemSupplier},
	{0xF200, 0xF2FF, DIDPeriodic},
	{0xF300, 0xF3FF, DIDDynamicallyDefined},
	{0xF400, 0xF5FF, DIDOBD},
	{0xF700, 0xF7FF, DIDOBD},
	{0xF600, 0xF6FF, DIDOBDMonitor},
	{0xF800, 0xF8FF, DIDOBDInfoType},
	{0xF900, 0xF9FF, DIDTachograph},
	{0xFA00, 0xFA0F, DIDAirbagDeployment},
	{0xFA13, 0xFA18, DIDEDREntries},
	{0xFA19, 0xFAFF, DIDSafetySystem},
	{0xFD00, 0xFEFF, DIDSystemSupplierSpecific},
}

// ParseDID classifies a raw DID value. The result is always valid; unknown
// values land in DIDReserved. This mapping is total and its inverse (the
// Value field) makes the round-trip lossless.
func ParseDID(value uint16) DataIdentifier {
	if cat, ok := pinnedDID[value]; ok {
		return DataIdentifier{Category: cat, Value: value}
	}
	for _, r := range didRanges {
		if value >= r.lo && value <= r.hi {
			return DataIdentifier{Category: r.category, Value: value}
		}
	}
	return DataIdentifier{Category: DIDReserved, Value: value}
}
