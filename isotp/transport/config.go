package transport

import (
	"errors"
	"time"
)

// Global ISO 15765-2 / ISO 14229-1 wire constants. These are part of the
// protocol, not configuration, and are never overridden at runtime.
const (
	// P2Max is the largest legal P2 server-response timing value, in ms.
	P2Max uint16 = 50
	// P2StarMax is the largest legal P2* value, in units of 10ms
	// (0xF424 * 10ms ≈ 49.99s).
	P2StarMax uint16 = 0xF424
)

// defines the ISO-TP transport timing configuration range.
const (
	// N_As bounds a single in-flight consecutive-frame transmit.
	TimeoutAsMin = 1 * time.Millisecond
	TimeoutAsMax = 5000 * time.Millisecond

	// N_Bs bounds the wait for the peer's flow-control frame after a
	// First frame is sent.
	TimeoutBsMin = 1 * time.Millisecond
	TimeoutBsMax = 5000 * time.Millisecond

	// N_Cr bounds the wait for the next Consecutive frame while
	// reassembling an inbound multi-frame payload.
	TimeoutCrMin = 1 * time.Millisecond
	TimeoutCrMax = 5000 * time.Millisecond
)

// TimingConfig is the ISO-TP session's timing configuration. The
// zero-value field means "apply the ISO default"; out-of-range explicit
// values are rejected by Valid.
type TimingConfig struct {
	// TimeoutAs bounds N_As, the per-frame send timeout while sending a
	// segmented payload. Default 1000ms.
	TimeoutAs time.Duration

	// TimeoutBs bounds N_Bs, the wait for the first flow-control frame.
	// Default 1000ms (TIMEOUT_CR_ISO15765_2 used as the N_Bs bound per
	// the source engine's write_waiting loop).
	TimeoutBs time.Duration

	// TimeoutCr bounds N_Cr, the wait for the next consecutive frame
	// while reassembling. Default 1000ms.
	TimeoutCr time.Duration

	// P2Ms is the UDS P2 server timing value advertised/enforced for
	// SessionCtrl. Default 50ms (P2Max).
	P2Ms uint16

	// P2StarUnitsOf10ms is the UDS P2* server timing value. Default
	// P2StarMax.
	P2StarUnitsOf10ms uint16
}

// Valid applies the default for each unspecified field and rejects
// explicit out-of-range values.
func (c *TimingConfig) Valid() error {
	if c == nil {
		return errors.New("isotp/transport: invalid pointer")
	}

	if c.TimeoutAs == 0 {
		c.TimeoutAs = 1000 * time.Millisecond
	} else if c.TimeoutAs < TimeoutAsMin || c.TimeoutAs > TimeoutAsMax {
		return errors.New("isotp/transport: TimeoutAs \"N_As\" not in [1ms, 5000ms]")
	}

	if c.TimeoutBs == 0 {
		c.TimeoutBs = 1000 * time.Millisecond
	} else if c.TimeoutBs < TimeoutBsMin || c.TimeoutBs > TimeoutBsMax {
		return errors.New("isotp/transport: TimeoutBs \"N_Bs\" not in [1ms, 5000ms]")
	}

	if c.TimeoutCr == 0 {
		c.TimeoutCr = 1000 * time.Millisecond
	} else if c.TimeoutCr < TimeoutCrMin || c.TimeoutCr > TimeoutCrMax {
		return errors.New("isotp/transport: TimeoutCr \"N_Cr\" not in [1ms, 5000ms]")
	}

	if c.P2Ms == 0 {
		c.P2Ms = P2Max
	} else if c.P2Ms > P2Max {
		return errors.New("isotp/transport: P2Ms exceeds P2_MAX")
	}

	if c.P2StarUnitsOf10ms == 0 {
		c.P2StarUnitsOf10ms = P2StarMax
	} else if c.P2StarUnitsOf10ms > P2StarMax {
		return errors.New("isotp/transport: P2StarUnitsOf10ms exceeds P2_STAR_MAX")
	}

	return nil
}

// DefaultConfig returns the ISO-default timing configuration.
func DefaultConfig() TimingConfig {
	return TimingConfig{
		TimeoutAs:         1000 * time.Millisecond,
		TimeoutBs:         1000 * time.Millisecond,
		TimeoutCr:         1000 * time.Millisecond,
		P2Ms:              P2Max,
		P2StarUnitsOf10ms: P2StarMax,
	}
}
