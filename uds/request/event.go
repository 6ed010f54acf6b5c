package request

import (
	"github.com/rob-gra/go-diagcan/bytecodec"
	"github.com/rob-gra/go-diagcan/uds/common"
)

// EventType is the sub-function payload of ResponseOnEvent (Table 129).
type EventType uint8

const (
	StopResponseOnEvent              EventType = 0x00
	OnDTCStatusChange                EventType = 0x01
	OnTimerInterrupt                 EventType = 0x02
	OnChangeOfDataIdentifier         EventType = 0x03
	ReportActivatedEvents            EventType = 0x04
	StartResponseOnEvent             EventType = 0x05
	ClearResponseOnEvent             EventType = 0x06
	OnComparisonOfValues             EventType = 0x07
)

// ResponseOnEvent builds a 0x86 request: event window time byte, then
// the event-specific record (a Service 0x22/0x2F
// style sub-request, a comparison localization word, ...), whose exact
// shape varies by EventType and is passed through opaquely.
func ResponseOnEvent(kind EventType, eventWindowTime uint8, eventRecord []byte, suppressPositive bool) (Request, error) {
	if kind == StopResponseOnEvent && len(eventRecord) != 0 {
		return Request{}, &common.InvalidParamError{What: "StopResponseOnEvent carries no event record"}
	}
	data, _ := bytecodec.PutUint(nil, uint64(eventWindowTime), 1)
	data = append(data, eventRecord...)
	sf := common.NewSubFunction(uint8(kind), suppressPositive)
	return New(common.ResponseOnEvent, &sf, data)
}

// validateResponseOnEvent re-checks that StopResponseOnEvent carries no
// event record, the rule ResponseOnEvent's constructor enforces.
func validateResponseOnEvent(r Request) error {
	if r.SubFunc == nil {
		return &common.SubFunctionError{Service: common.ResponseOnEvent}
	}
	if len(r.Data) < 1 {
		return &common.InvalidDataLengthError{Expect: 1, Actual: len(r.Data)}
	}
	if EventType(r.SubFunc.Function) == StopResponseOnEvent && len(r.Data) != 1 {
		return &common.InvalidParamError{What: "StopResponseOnEvent carries no event record"}
	}
	return nil
}
