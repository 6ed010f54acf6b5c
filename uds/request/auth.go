package request

import "github.com/rob-gra/go-diagcan/uds/common"

// AuthenticationTask is the sub-function payload of Authentication
// (std2020 only).
type AuthenticationTask uint8

const (
	DeAuthenticate                             AuthenticationTask = 0x00
	VerifyCertificateUnidirectional            AuthenticationTask = 0x01
	VerifyCertificateBidirectional             AuthenticationTask = 0x02
	ProofOfOwnership                           AuthenticationTask = 0x03
	TransmitCertificate                        AuthenticationTask = 0x04
	RequestChallengeForAuthentication          AuthenticationTask = 0x05
	VerifyProofOfOwnershipUnidirectional       AuthenticationTask = 0x06
	VerifyProofOfOwnershipBidirectional        AuthenticationTask = 0x07
	AuthenticationConfiguration                AuthenticationTask = 0x08
)

// Authentication builds a 0x29 request: sub-function plus the
// task-specific payload, which the caller has already shaped per Table
// 51 (certificate bytes, nullable challenge fields, algorithm OID, ...).
// DeAuthenticate and AuthenticationConfiguration carry an empty body.
func Authentication(task AuthenticationTask, data []byte, suppressPositive bool) (Request, error) {
	if (task == DeAuthenticate || task == AuthenticationConfiguration) && len(data) != 0 {
		return Request{}, &common.InvalidParamError{What: "this authentication task carries no body"}
	}
	sf := common.NewSubFunction(uint8(task), suppressPositive)
	return New(common.Authentication, &sf, data)
}

// validateAuthentication re-checks the empty-body rule Authentication's
// constructor enforces for DeAuthenticate/AuthenticationConfiguration.
func validateAuthentication(r Request) error {
	if r.SubFunc == nil {
		return &common.SubFunctionError{Service: common.Authentication}
	}
	task := AuthenticationTask(r.SubFunc.Function)
	if (task == DeAuthenticate || task == AuthenticationConfiguration) && len(r.Data) != 0 {
		return &common.InvalidParamError{What: "this authentication task carries no body"}
	}
	return nil
}
