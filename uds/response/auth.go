package response

import (
	"github.com/rob-gra/go-diagcan/uds/common"
	"github.com/rob-gra/go-diagcan/uds/request"
)

// AuthReturnValue is the authenticationReturnParameter byte of Table B.5.
type AuthReturnValue uint8

const (
	AuthRequestAccepted                                      AuthReturnValue = 0x00
	AuthGeneralReject                                         AuthReturnValue = 0x01
	AuthConfigurationAPCE                                     AuthReturnValue = 0x02
	AuthConfigurationACRWithAsymmetricCryptography            AuthReturnValue = 0x03
	AuthConfigurationACRWithSymmetricCryptography             AuthReturnValue = 0x04
	AuthDeAuthenticationSuccessful                             AuthReturnValue = 0x10
	AuthCertificateVerifiedOwnershipVerificationNecessary      AuthReturnValue = 0x11
	AuthOwnershipVerifiedAuthenticationComplete                AuthReturnValue = 0x12
	AuthCertificateVerified                                    AuthReturnValue = 0x13
)

// Authentication builds a 0x69 response: sub-function echoed, return
// value byte, then task-specific payload (challenge, certificate, session
// key, ...) the caller has already shaped per Table 51.
func Authentication(task request.AuthenticationTask, returnValue AuthReturnValue, data []byte) (Response, error) {
	out := append([]byte{uint8(returnValue)}, data...)
	sf := common.NewSubFunction(uint8(task), false)
	return New(common.Authentication, &sf, out)
}

// AuthenticationParts decodes the return value and task payload of an
// Authentication response.
func AuthenticationParts(r Response) (AuthReturnValue, []byte, error) {
	if r.Service != common.Authentication || r.SubFunc == nil {
		return 0, nil, &common.InvalidParamError{What: "not an Authentication response"}
	}
	if len(r.Data) < 1 {
		return 0, nil, &common.InvalidDataLengthError{Expect: 1, Actual: 0}
	}
	return AuthReturnValue(r.Data[0]), r.Data[1:], nil
}
