package uds

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rob-gra/go-diagcan/uds/common"
)

func TestResponseTimeoutErrorMessage(t *testing.T) {
	err := &ResponseTimeoutError{Service: common.SessionCtrl}
	assert.Contains(t, err.Error(), "DiagnosticSessionControl")
}

func TestUnexpectedServiceErrorMessage(t *testing.T) {
	err := &UnexpectedServiceError{Want: common.ReadDID, Got: common.WriteDID}
	assert.Contains(t, err.Error(), "ReadDataByIdentifier")
	assert.Contains(t, err.Error(), "WriteDataByIdentifier")
}
