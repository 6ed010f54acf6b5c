// Package uds ties the request/response codecs together into a
// transport-bound diagnostic session: one call sends a Request over an
// ISO-TP engine, waits for the matching Response, and transparently
// retries on RequestCorrectlyReceivedResponsePending (ISO 14229-1
// §7.5.9), the way a real tester stays blocked on a slow ECU.
package uds

import (
	"context"
	"fmt"

	"github.com/rs/xid"

	"github.com/rob-gra/go-diagcan/clog"
	"github.com/rob-gra/go-diagcan/isotp/transport"
	"github.com/rob-gra/go-diagcan/uds/common"
	"github.com/rob-gra/go-diagcan/uds/request"
	"github.com/rob-gra/go-diagcan/uds/response"
)

// ResponseTimeoutError reports that no response arrived for a dispatched
// request within the deadline, after accounting for any
// ResponsePending extensions.
type ResponseTimeoutError struct {
	Service common.Service
}

func (e *ResponseTimeoutError) Error() string {
	return fmt.Sprintf("uds: timed out waiting for response to %s", e.Service)
}

// UnexpectedServiceError reports a response whose echoed service does not
// match the request that was sent.
type UnexpectedServiceError struct {
	Want, Got common.Service
}

func (e *UnexpectedServiceError) Error() string {
	return fmt.Sprintf("uds: expected response for %s, got %s", e.Want, e.Got)
}

// Metrics is the narrow capability Session calls into for request/response
// counters; *metrics.Sink implements it. Nil disables metrics, the same
// convention transport.Engine uses for MetricsSink.
type Metrics interface {
	RequestSent(service string)
	ResponseReceived(service string)
	NegativeReceived(nrc string)
}

// Session binds a request/response exchange loop to a single ISO-TP
// engine. MaxPending bounds how many consecutive
// RequestCorrectlyReceivedResponsePending replies are tolerated before
// giving up (0 disables the bound).
type Session struct {
	Engine     *transport.Engine
	DidConfig  common.DidConfig
	TimeoutMs  uint64
	MaxPending int
	Log        clog.Clog
	metrics    Metrics
}

// NewSession builds a Session with the engine's physical addressing and a
// stderr-silent logger by default; callers wire up clog.SetLogProvider
// themselves if they want tracing.
func NewSession(engine *transport.Engine, didConfig common.DidConfig, timeoutMs uint64) *Session {
	return &Session{Engine: engine, DidConfig: didConfig, TimeoutMs: timeoutMs}
}

// SetMetrics wires a Metrics sink into the session. Nil disables metrics.
func (s *Session) SetMetrics(m Metrics) {
	s.metrics = m
}

// Exchange sends req and blocks for its response, tagging the round trip
// with a unique trace id surfaced through Log. Negative responses other
// than ResponsePending are returned as a normal Response with
// Negative=true; callers inspect NRCCode() themselves.
func (s *Session) Exchange(ctx context.Context, req request.Request) (response.Response, error) {
	trace := xid.New()
	s.Log.Debug("uds[%s]: -> %s %x", trace, req.Service, req.Bytes())

	if err := s.Engine.Transmit(ctx, transport.Physical, req.Bytes()); err != nil {
		s.Log.Error("uds[%s]: transmit failed: %v", trace, err)
		return response.Response{}, err
	}
	if s.metrics != nil {
		s.metrics.RequestSent(req.Service.String())
	}

	pending := 0
	for {
		raw, err := s.Engine.WaitData(ctx, s.TimeoutMs)
		if err != nil {
			s.Log.Error("uds[%s]: %v", trace, err)
			return response.Response{}, &ResponseTimeoutError{Service: req.Service}
		}
		resp, err := response.Parse(raw, s.DidConfig)
		if err != nil {
			s.Log.Error("uds[%s]: malformed response: %v", trace, err)
			return response.Response{}, err
		}
		if resp.Service != req.Service {
			s.Log.Error("uds[%s]: service mismatch: got %s", trace, resp.Service)
			return response.Response{}, &UnexpectedServiceError{Want: req.Service, Got: resp.Service}
		}
		if resp.Negative {
			if code, _ := resp.NRCCode(); code == common.RequestCorrectlyReceivedResponsePending {
				pending++
				if s.MaxPending > 0 && pending > s.MaxPending {
					s.Log.Error("uds[%s]: exceeded %d pending retries", trace, s.MaxPending)
					return response.Response{}, &ResponseTimeoutError{Service: req.Service}
				}
				s.Log.Debug("uds[%s]: <- pending, retry %d", trace, pending)
				continue
			}
			if s.metrics != nil {
				code, _ := resp.NRCCode()
				s.metrics.NegativeReceived(code.String())
			}
			s.Log.Debug("uds[%s]: <- %s", trace, resp.Bytes())
			return resp, nil
		}
		if s.metrics != nil {
			s.metrics.ResponseReceived(resp.Service.String())
		}
		s.Log.Debug("uds[%s]: <- %s", trace, resp.Bytes())
		return resp, nil
	}
}
