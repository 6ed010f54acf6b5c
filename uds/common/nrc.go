package common

import "fmt"

// Code is a negative-response code (ISO 14229-1 Table A.1).
type Code uint8

const (
	Positive Code = 0x00

	GeneralReject                          Code = 0x10
	ServiceNotSupported                    Code = 0x11
	SubFunctionNotSupported                Code = 0x12
	IncorrectMessageLengthOrInvalidFormat  Code = 0x13
	ResponseTooLong                        Code = 0x14
	BusyRepeatRequest                      Code = 0x21
	ConditionsNotCorrect                   Code = 0x22
	RequestSequenceError                   Code = 0x24
	NoResponseFromSubnetComponent          Code = 0x25
	FailurePreventsExecutionOfRequestedAction Code = 0x26
	RequestOutOfRange                      Code = 0x31
	SecurityAccessDenied                   Code = 0x33
	AuthenticationRequired                 Code = 0x34
	InvalidKey                             Code = 0x35
	ExceedNumberOfAttempts                 Code = 0x36
	RequiredTimeDelayNotExpired             Code = 0x37
	SecureDataTransmissionRequired          Code = 0x38
	SecureDataTransmissionNotAllowed        Code = 0x39
	SecureDataVerificationFailed            Code = 0x3A

	CertificateVerificationFailedInvalidTimePeriod    Code = 0x50
	CertificateVerificationFailedInvalidSignature     Code = 0x51
	CertificateVerificationFailedInvalidChainOfTrust  Code = 0x52
	CertificateVerificationFailedInvalidType          Code = 0x53
	CertificateVerificationFailedInvalidFormat        Code = 0x54
	CertificateVerificationFailedInvalidContent       Code = 0x55
	CertificateVerificationFailedInvalidScope         Code = 0x56
	CertificateVerificationFailedInvalidCertificate   Code = 0x57
	OwnershipVerificationFailed                       Code = 0x58
	ChallengeCalculationFailed                        Code = 0x59
	SettingAccessRightsFailed                         Code = 0x5A
	SessionKeyCreationDerivationFailed                Code = 0x5B
	ConfigurationDataUsageFailed                      Code = 0x5C
	DeAuthenticationFailed                            Code = 0x5D

	UploadDownloadNotAccepted Code = 0x70
	TransferDataSuspended     Code = 0x71
	GeneralProgrammingFailure Code = 0x72
	WrongBlockSequenceCounter Code = 0x73

	RequestCorrectlyReceivedResponsePending Code = 0x78

	SubFunctionNotSupportedInActiveSession Code = 0x7E
	ServiceNotSupportedInActiveSession     Code = 0x7F

	RpmTooHigh                        Code = 0x81
	RpmTooLow                         Code = 0x82
	EngineIsRunning                   Code = 0x83
	EngineIsNotRunning                Code = 0x84
	EngineRunTimeTooLow               Code = 0x85
	TemperatureTooHigh                Code = 0x86
	TemperatureTooLow                 Code = 0x87
	VehicleSpeedTooHigh               Code = 0x88
	VehicleSpeedTooLow                Code = 0x89
	ThrottlePedalTooHigh              Code = 0x8A
	ThrottlePedalTooLow               Code = 0x8B
	TransmissionRangeNotInNeutral     Code = 0x8C
	TransmissionRangeNotInGear        Code = 0x8D
	BrakeSwitchNotClosed              Code = 0x8F
	ShifterLeverNotInPark             Code = 0x90
	TorqueConverterClutchLocked       Code = 0x91
	VoltageTooHigh                    Code = 0x92
	VoltageTooLow                     Code = 0x93
	ResourceTemporarilyNotAvailable   Code = 0x94
)

var nrcNames = map[Code]string{
	Positive:                               "Positive",
	GeneralReject:                          "GeneralReject",
	ServiceNotSupported:                    "ServiceNotSupported",
	SubFunctionNotSupported:                "SubFunctionNotSupported",
	IncorrectMessageLengthOrInvalidFormat:  "IncorrectMessageLengthOrInvalidFormat",
	ResponseTooLong:                        "ResponseTooLong",
	BusyRepeatRequest:                      "BusyRepeatRequest",
	ConditionsNotCorrect:                   "ConditionsNotCorrect",
	RequestSequenceError:                   "RequestSequenceError",
	NoResponseFromSubnetComponent:          "NoResponseFromSubnetComponent",
	FailurePreventsExecutionOfRequestedAction: "FailurePreventsExecutionOfRequestedAction",
	RequestOutOfRange:                      "RequestOutOfRange",
	SecurityAccessDenied:                   "SecurityAccessDenied",
	AuthenticationRequired:                 "AuthenticationRequired",
	InvalidKey:                             "InvalidKey",
	ExceedNumberOfAttempts:                 "ExceedNumberOfAttempts",
	RequiredTimeDelayNotExpired:            "RequiredTimeDelayNotExpired",
	SecureDataTransmissionRequired:         "SecureDataTransmissionRequired",
	SecureDataTransmissionNotAllowed:       "SecureDataTransmissionNotAllowed",
	SecureDataVerificationFailed:           "SecureDataVerificationFailed",

	CertificateVerificationFailedInvalidTimePeriod:   "CertificateVerificationFailedInvalidTimePeriod",
	CertificateVerificationFailedInvalidSignature:    "CertificateVerificationFailedInvalidSignature",
	CertificateVerificationFailedInvalidChainOfTrust: "CertificateVerificationFailedInvalidChainOfTrust",
	CertificateVerificationFailedInvalidType:         "CertificateVerificationFailedInvalidType",
	CertificateVerificationFailedInvalidFormat:       "CertificateVerificationFailedInvalidFormat",
	CertificateVerificationFailedInvalidContent:      "CertificateVerificationFailedInvalidContent",
	CertificateVerificationFailedInvalidScope:        "CertificateVerificationFailedInvalidScope",
	CertificateVerificationFailedInvalidCertificate:  "CertificateVerificationFailedInvalidCertificate",
	OwnershipVerificationFailed:                      "OwnershipVerificationFailed",
	ChallengeCalculationFailed:                       "ChallengeCalculationFailed",
	SettingAccessRightsFailed:                        "SettingAccessRightsFailed",
	SessionKeyCreationDerivationFailed:               "SessionKeyCreationDerivationFailed",
	ConfigurationDataUsageFailed:                     "ConfigurationDataUsageFailed",
	DeAuthenticationFailed:                           "DeAuthenticationFailed",

	UploadDownloadNotAccepted: "UploadDownloadNotAccepted",
	TransferDataSuspended:     "TransferDataSuspended",
	GeneralProgrammingFailure: "GeneralProgrammingFailure",
	WrongBlockSequenceCounter: "WrongBlockSequenceCounter",

	RequestCorrectlyReceivedResponsePending: "RequestCorrectlyReceivedResponsePending",

	SubFunctionNotSupportedInActiveSession: "SubFunctionNotSupportedInActiveSession",
	ServiceNotSupportedInActiveSession:     "ServiceNotSupportedInActiveSession",

	RpmTooHigh:                      "RpmTooHigh",
	RpmTooLow:                       "RpmTooLow",
	EngineIsRunning:                 "EngineIsRunning",
	EngineIsNotRunning:              "EngineIsNotRunning",
	EngineRunTimeTooLow:             "EngineRunTimeTooLow",
	TemperatureTooHigh:              "TemperatureTooHigh",
	TemperatureTooLow:               "TemperatureTooLow",
	VehicleSpeedTooHigh:             "VehicleSpeedTooHigh",
	VehicleSpeedTooLow:              "VehicleSpeedTooLow",
	ThrottlePedalTooHigh:            "ThrottlePedalTooHigh",
	ThrottlePedalTooLow:             "ThrottlePedalTooLow",
	TransmissionRangeNotInNeutral:   "TransmissionRangeNotInNeutral",
	TransmissionRangeNotInGear:      "TransmissionRangeNotInGear",
	BrakeSwitchNotClosed:            "BrakeSwitchNotClosed",
	ShifterLeverNotInPark:           "ShifterLeverNotInPark",
	TorqueConverterClutchLocked:     "TorqueConverterClutchLocked",
	VoltageTooHigh:                  "VoltageTooHigh",
	VoltageTooLow:                   "VoltageTooLow",
	ResourceTemporarilyNotAvailable: "ResourceTemporarilyNotAvailable",
}

func (c Code) String() string {
	if name, ok := nrcNames[c]; ok {
		return name
	}
	if c >= 0xF0 && c <= 0xFE {
		return fmt.Sprintf("VehicleManufacturerSpecific(0x%02X)", uint8(c))
	}
	return fmt.Sprintf("Reserved(0x%02X)", uint8(c))
}

// IsManufacturerSpecific reports whether c falls in the 0xF0..=0xFE band.
func (c Code) IsManufacturerSpecific() bool { return c >= 0xF0 && c <= 0xFE }

// ParseCode classifies a raw NRC byte; every byte maps to some Code, with
// 0xF0..=0xFE tagged manufacturer-specific and the remainder reserved.
func ParseCode(b uint8) Code { return Code(b) }
