// Package transport implements the ISO 15765-2 segmentation, reassembly,
// flow-control and timing state machine on top of the frame codec in
// isotp/frame. It is translated from a tokio async/await + Arc<Mutex<_>>
// design into goroutines, channels and plain mutexes: a receive loop
// goroutine feeds incoming CAN frames into the state machine while
// Transmit blocks the caller's goroutine through the segmentation loop.
package transport

import (
	"context"
	"sync"
	"time"

	"github.com/rob-gra/go-diagcan/isotp"
	"github.com/rob-gra/go-diagcan/isotp/frame"
)

// maxWriteTimeout bounds the whole write_waiting poll loop regardless of
// which individual state timeout applies, mirroring the source engine's
// outer 5s safety net.
const maxWriteTimeout = 5 * time.Second

// MetricsSink is the narrow capability the engine calls into for
// observability; see the metrics package for a Prometheus-backed
// implementation. Nil is a valid Engine field (no-op).
type MetricsSink interface {
	FrameSent(kind string)
	FrameReceived(kind string)
	TimeoutOccurred(kind string)
	StateChanged(state string)
}

// Engine is one ISO-TP session bound to a device channel and address.
type Engine struct {
	device  isotp.CanDevice
	newCan  isotp.NewCanFrameFunc
	channel string
	metrics MetricsSink

	addressMu sync.RWMutex
	address   Address

	stateMu sync.Mutex
	state   State

	flowCtrlMu sync.Mutex
	flowCtrl   *FlowControlContext

	consecutiveMu sync.Mutex
	buffer        consecutive

	listenerMu sync.RWMutex
	listener   EventListener
	mbox       *mailbox

	timing TimingConfig

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewEngine constructs an Engine bound to channel on device, with the
// given starting address and timing config (validated via Valid()).
func NewEngine(device isotp.CanDevice, newCan isotp.NewCanFrameFunc, channel string, address Address, timing TimingConfig) (*Engine, error) {
	if err := timing.Valid(); err != nil {
		return nil, err
	}
	mb := newMailbox()
	return &Engine{
		device:  device,
		newCan:  newCan,
		channel: channel,
		address: address,
		timing:  timing,
		listener: mb,
		mbox:    mb,
		stopCh:  make(chan struct{}),
	}, nil
}

// SetListener installs a richer listener next to the default single-slot
// mailbox. Every event still reaches the mailbox, which is what WaitData
// drains; the installed listener receives the same events as well.
func (e *Engine) SetListener(l EventListener) {
	e.listenerMu.Lock()
	defer e.listenerMu.Unlock()
	e.listener = l
}

// UpdateAddress replaces the session's address; readers take a snapshot
// at the start of Transmit and per received frame rather than holding
// the lock across suspension points.
func (e *Engine) UpdateAddress(addr Address) {
	e.addressMu.Lock()
	e.address = addr
	e.addressMu.Unlock()
}

// SetMetrics wires a MetricsSink into the engine. Nil disables metrics
// again. Must be called before Start to avoid a race with the receive
// loop reading e.metrics.
func (e *Engine) SetMetrics(m MetricsSink) {
	e.metrics = m
}

func (e *Engine) snapshotAddress() Address {
	e.addressMu.RLock()
	defer e.addressMu.RUnlock()
	return e.address
}

// State reports the current session state.
func (e *Engine) State() State {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	return e.state
}

func (e *Engine) stateAppend(flags State) {
	e.stateMu.Lock()
	if flags.Contains(StateError) {
		e.state |= StateError
	} else {
		e.state |= flags
	}
	after := e.state
	e.stateMu.Unlock()
	if e.metrics != nil {
		e.metrics.StateChanged(after.String())
	}
}

func (e *Engine) stateRemove(flags State) {
	e.stateMu.Lock()
	e.state &^= flags
	e.stateMu.Unlock()
}

func (e *Engine) stateContains(flags State) bool {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	return e.state.Contains(flags)
}

func (e *Engine) stateIdle() {
	e.stateMu.Lock()
	e.state = StateIdle
	e.stateMu.Unlock()
}

// Reset clears state, flow-control context and the reassembly buffer. It
// runs implicitly at the start of every Transmit.
func (e *Engine) Reset() {
	e.stateIdle()
	e.flowCtrlMu.Lock()
	e.flowCtrl = nil
	e.flowCtrlMu.Unlock()
	e.consecutiveMu.Lock()
	e.buffer.reset()
	e.consecutiveMu.Unlock()
}

func (e *Engine) notify(ev Event) {
	e.mbox.OnEvent(ev)
	e.listenerMu.RLock()
	l := e.listener
	e.listenerMu.RUnlock()
	if l != nil && l != EventListener(e.mbox) {
		l.OnEvent(ev)
	}
}

// Transmit segments data per frame.FromData and sends it to addr's
// resolved target, respecting peer flow control. It resets session state
// first, per the "no pipelining" ordering guarantee.
func (e *Engine) Transmit(ctx context.Context, addrType AddressType, data []byte) error {
	e.Reset()

	frames, err := frame.FromData(data)
	if err != nil {
		return err
	}
	target := e.snapshotAddress().Target(addrType)

	if len(frames) == 1 {
		e.stateAppend(StateSending)
		if err := e.sendFrame(ctx, target, frames[0]); err != nil {
			e.stateAppend(StateError)
			return err
		}
		e.stateIdle()
		return nil
	}

	index := 0
	for i, fr := range frames {
		if i == 0 {
			e.stateAppend(StateSending | StateWaitFlowCtrl)
		} else {
			if err := e.writeWaiting(ctx, &index); err != nil {
				e.stateAppend(StateError)
				return err
			}
			e.stateAppend(StateSending)
		}
		if err := e.sendFrame(ctx, target, fr); err != nil {
			e.stateAppend(StateError)
			return err
		}
	}
	e.stateIdle()
	return nil
}

func (e *Engine) sendFrame(ctx context.Context, target isotp.CanID, fr frame.Frame) error {
	encoded, err := frame.Encode(fr, nil)
	if err != nil {
		return err
	}
	canFrame, err := e.newCan(target, encoded)
	if err != nil {
		return ErrDeviceError
	}
	canFrame.SetChannel(e.channel)
	if err := e.device.Transmit(ctx, canFrame, uint64(e.timing.TimeoutAs.Milliseconds())); err != nil {
		return ErrDeviceError
	}
	if e.metrics != nil {
		e.metrics.FrameSent(fr.Type().String())
	}
	return nil
}

// writeWaiting paces the next consecutive-frame send: it sleeps st_min
// between frames, re-arms WaitFlowCtrl every block_size frames, and
// blocks until neither WaitFlowCtrl nor WaitBusy is set, or one of
// N_As/N_Bs/P2*/Error is observed.
func (e *Engine) writeWaiting(ctx context.Context, index *int) error {
	e.flowCtrlMu.Lock()
	fc := e.flowCtrl
	e.flowCtrlMu.Unlock()

	if fc != nil {
		if fc.BlockSize != 0 {
			if *index+1 == int(fc.BlockSize) {
				*index = 0
				e.stateAppend(StateWaitFlowCtrl)
			} else {
				*index++
			}
		}
		sleepMicros(ctx, fc.StMinMicros())
	}

	start := time.Now()
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		state := e.State()
		elapsed := time.Since(start)

		switch {
		case state.Contains(StateError):
			return ErrDeviceError
		case state.Contains(StateWaitFlowCtrl):
			if elapsed > e.timing.TimeoutBs {
				return e.timingOut("N_Bs", e.timing.TimeoutBs)
			}
		case state.Contains(StateWaitBusy):
			p2Star := time.Duration(e.timing.P2StarUnitsOf10ms) * 10 * time.Millisecond
			if elapsed > p2Star {
				return e.timingOut("P2*", p2Star)
			}
		case state.Contains(StateSending):
			if elapsed > e.timing.TimeoutAs {
				return e.timingOut("N_As", e.timing.TimeoutAs)
			}
			return nil
		default:
			return nil
		}

		if elapsed > maxWriteTimeout {
			return e.timingOut("write", maxWriteTimeout)
		}
	}
}

func (e *Engine) timingOut(kind string, d time.Duration) error {
	if e.metrics != nil {
		e.metrics.TimeoutOccurred(kind)
	}
	return &TimeoutError{Value: uint64(d.Milliseconds()), Unit: "ms"}
}

func sleepMicros(ctx context.Context, us uint32) {
	if us == 0 {
		return
	}
	t := time.NewTimer(time.Duration(us) * time.Microsecond)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// WaitData polls the default mailbox until DataReceived or ErrorOccurred
// arrives, resetting its own watchdog whenever Wait or FirstFrameReceived
// is observed, bounded by timeoutMs.
func (e *Engine) WaitData(ctx context.Context, timeoutMs uint64) ([]byte, error) {
	deadline := time.Now().Add(time.Duration(timeoutMs) * time.Millisecond)
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			e.mbox.clear()
			return nil, ctx.Err()
		case <-ticker.C:
		}

		if ev, ok := e.mbox.take(); ok {
			switch ev.Kind {
			case EventWait, EventFirstFrameReceived:
				deadline = time.Now().Add(time.Duration(timeoutMs) * time.Millisecond)
			case EventDataReceived:
				return ev.Data, nil
			case EventErrorOccurred:
				e.mbox.clear()
				return nil, ev.Err
			}
		}

		if time.Now().After(deadline) {
			e.mbox.clear()
			return nil, &TimeoutError{Value: timeoutMs, Unit: "ms"}
		}
	}
}

// Start launches the receive-loop goroutine that polls the device for
// inbound frames and drives the state machine. Stop cancels it.
func (e *Engine) Start(ctx context.Context) {
	e.wg.Add(1)
	go e.receiveLoop(ctx)
}

func (e *Engine) receiveLoop(ctx context.Context) {
	defer e.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-e.stopCh:
			return
		default:
		}

		frames, err := e.device.Receive(ctx, e.channel, uint64(e.timing.TimeoutCr.Milliseconds()))
		if err != nil {
			continue
		}
		for _, f := range frames {
			e.onCanFrame(ctx, f)
		}
	}
}

// Stop broadcasts a stop signal and waits up to 500ms for the receive
// loop to exit before returning.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.stopCh) })
	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
	}
}

// onCanFrame decodes an inbound CAN frame and dispatches it to the
// matching state-machine handler.
func (e *Engine) onCanFrame(ctx context.Context, f isotp.CanFrame) {
	fr, err := frame.Decode(f.Data())
	if err != nil {
		e.stateAppend(StateError)
		e.notify(Event{Kind: EventErrorOccurred, Err: err})
		return
	}
	if e.metrics != nil {
		e.metrics.FrameReceived(fr.Type().String())
	}

	switch {
	case fr.Single != nil:
		e.onSingleFrame(fr.Single.Data)
	case fr.First != nil:
		e.onFirstFrame(ctx, fr.First.Length, fr.First.Data)
	case fr.Consecutive != nil:
		e.onConsecutiveFrame(fr.Consecutive.Sequence, fr.Consecutive.Data)
	case fr.FlowControl != nil:
		e.onFlowControlFrame(*fr.FlowControl)
	}
}

func (e *Engine) onSingleFrame(data []byte) {
	e.notify(Event{Kind: EventDataReceived, Data: append([]byte(nil), data...)})
}

func (e *Engine) onFirstFrame(ctx context.Context, length uint32, data []byte) {
	e.consecutiveMu.Lock()
	e.buffer.start(length, data)
	e.consecutiveMu.Unlock()

	target := e.snapshotAddress().TxID
	fc := frame.DefaultFlowControlFrame()
	if err := e.sendFrame(ctx, target, fc); err != nil {
		e.stateAppend(StateError)
		e.notify(Event{Kind: EventErrorOccurred, Err: ErrDeviceError})
		return
	}
	e.stateAppend(StateSending)
	e.notify(Event{Kind: EventFirstFrameReceived})
}

func (e *Engine) onConsecutiveFrame(sequence uint8, data []byte) {
	e.consecutiveMu.Lock()
	completed, done, err := e.buffer.append(sequence, data)
	e.consecutiveMu.Unlock()
	if err != nil {
		e.stateAppend(StateError)
		e.notify(Event{Kind: EventErrorOccurred, Err: err})
		return
	}
	if done {
		e.notify(Event{Kind: EventDataReceived, Data: completed})
		return
	}
	e.notify(Event{Kind: EventWait})
}

func (e *Engine) onFlowControlFrame(fc frame.FlowControl) {
	ctx, err := flowControlContextFromFrame(fc)
	if err != nil {
		e.stateAppend(StateError)
		e.notify(Event{Kind: EventErrorOccurred, Err: err})
		return
	}

	switch ctx.State {
	case frame.FlowControlContinue:
		e.stateRemove(StateWaitBusy | StateWaitFlowCtrl)
	case frame.FlowControlWait:
		e.stateAppend(StateWaitBusy)
		e.notify(Event{Kind: EventWait})
		return
	case frame.FlowControlOverload:
		e.stateAppend(StateError)
		e.notify(Event{Kind: EventErrorOccurred, Err: ErrOverloadFlow})
		return
	}

	e.flowCtrlMu.Lock()
	e.flowCtrl = &ctx
	e.flowCtrlMu.Unlock()
}
