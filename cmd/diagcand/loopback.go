package main

import (
	"context"
	"sync"
	"time"

	"github.com/rob-gra/go-diagcan/isotp"
	"github.com/rob-gra/go-diagcan/isotp/frame"
	"github.com/rob-gra/go-diagcan/uds/common"
	"github.com/rob-gra/go-diagcan/uds/request"
	"github.com/rob-gra/go-diagcan/uds/response"
)

// canFrame is the minimal isotp.CanFrame implementation this demo needs.
type canFrame struct {
	id      isotp.CanID
	data    []byte
	channel string
}

func (f *canFrame) ID() isotp.CanID     { return f.id }
func (f *canFrame) Data() []byte        { return f.data }
func (f *canFrame) Channel() string     { return f.channel }
func (f *canFrame) SetChannel(c string) { f.channel = c }

func newCanFrame(id isotp.CanID, data []byte) (isotp.CanFrame, error) {
	return &canFrame{id: id, data: append([]byte(nil), data...)}, nil
}

// loopbackECU is a CanDevice standing in for a real SocketCAN binding: it
// answers single-frame DiagnosticSessionControl and TesterPresent requests
// the way a minimal ECU would, so the rest of the stack can be exercised
// without hardware.
type loopbackECU struct {
	mu      sync.Mutex
	inbound []isotp.CanFrame
	rxID    isotp.CanID
}

func newLoopbackECU(rxID isotp.CanID) *loopbackECU {
	return &loopbackECU{rxID: rxID}
}

func (l *loopbackECU) Transmit(ctx context.Context, f isotp.CanFrame, timeoutMs uint64) error {
	decoded, err := frame.Decode(f.Data())
	if err != nil || decoded.Single == nil {
		return nil
	}

	resp, ok := l.reply(decoded.Single.Data)
	if !ok {
		return nil
	}
	wire := resp.Bytes()
	replyFrame, err := frame.NewSingle(wire)
	if err != nil {
		return nil
	}
	encoded, err := frame.Encode(replyFrame, nil)
	if err != nil {
		return nil
	}

	l.mu.Lock()
	l.inbound = append(l.inbound, &canFrame{id: l.rxID, data: encoded})
	l.mu.Unlock()
	return nil
}

func (l *loopbackECU) reply(data []byte) (response.Response, bool) {
	if len(data) == 0 {
		return response.Response{}, false
	}
	switch common.Service(data[0]) {
	case common.SessionCtrl:
		resp, err := response.SessionCtrl(request.ExtendedDiagnosticSession, 50, 2000)
		return resp, err == nil
	case common.TesterPresent:
		resp, err := response.TesterPresent()
		return resp, err == nil
	default:
		return response.Response{}, false
	}
}

func (l *loopbackECU) Receive(ctx context.Context, channel string, timeoutMs uint64) ([]isotp.CanFrame, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.inbound) == 0 {
		time.Sleep(time.Millisecond)
		return nil, nil
	}
	out := l.inbound
	l.inbound = nil
	return out, nil
}

func (l *loopbackECU) OpenedChannels() []string { return []string{"can0"} }
func (l *loopbackECU) IsClosed() bool           { return false }
func (l *loopbackECU) Shutdown() error          { return nil }
