package handler

import "net/http"

// SSEHandler runs for the lifetime of one SSE response.
type SSEHandler func(stream StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "SSE endpoint requires DataStar connection")
	}
	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}
	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE opens a stream for DataStar requests and hands it to fn. Plain
// requests get a 400.
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		if err := stream.SendComponent(views.FieldError(msg, true)); err != nil {
//			return err
//		}
//		stream.Wait(form.ErrorFlashDuration)
//		return stream.SendComponent(views.FieldError(msg, false))
//	})
func SSE(fn SSEHandler) Response {
	return sseResponse{handler: fn}
}
