package response

import "github.com/rob-gra/go-diagcan/uds/common"

// ResponseOnEvent builds a 0x C6 response. Unlike its request, the
// response carries no sub-function byte: the event type is implicit in
// the numberOfIdentifiedEvents/eventWindowTime/record body layout, so
// this bypasses the common RequiresSubFunction check New() applies to
// every other sub-functioned service.
func ResponseOnEvent(data []byte) (Response, error) {
	return Response{Service: common.ResponseOnEvent, Data: data}, nil
}

// ResponseOnEventData returns the raw body of a ResponseOnEvent response.
func ResponseOnEventData(r Response) ([]byte, error) {
	if r.Service != common.ResponseOnEvent {
		return nil, &common.InvalidParamError{What: "not a ResponseOnEvent response"}
	}
	return r.Data, nil
}
