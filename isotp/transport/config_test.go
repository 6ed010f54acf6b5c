package transport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimingConfigDefaults(t *testing.T) {
	cfg := TimingConfig{}
	require.NoError(t, cfg.Valid())
	assert.Equal(t, 1000*time.Millisecond, cfg.TimeoutAs)
	assert.Equal(t, 1000*time.Millisecond, cfg.TimeoutBs)
	assert.Equal(t, 1000*time.Millisecond, cfg.TimeoutCr)
	assert.Equal(t, P2Max, cfg.P2Ms)
	assert.Equal(t, P2StarMax, cfg.P2StarUnitsOf10ms)
}

func TestTimingConfigOutOfRange(t *testing.T) {
	cfg := TimingConfig{TimeoutAs: 10 * time.Second}
	assert.Error(t, cfg.Valid())

	cfg2 := TimingConfig{P2Ms: P2Max + 1}
	assert.Error(t, cfg2.Valid())

	cfg3 := TimingConfig{P2StarUnitsOf10ms: P2StarMax + 1}
	assert.Error(t, cfg3.Valid())
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Valid())
}
