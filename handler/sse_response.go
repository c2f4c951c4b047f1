package handler

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// SSEHandler writes a sequence of DataStar events.
type SSEHandler func(stream StreamContext) error

// StreamContext sends element and signal patches over an open SSE stream.
type StreamContext interface {
	Context
	SendComponent(component templ.Component, opts ...TemplOption) error
	SendSignals(signals map[string]any) error
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(component templ.Component, opts ...TemplOption) error {
	return c.sse.PatchElementTempl(component, opts...)
}

func (c *streamContext) SendSignals(signals map[string]any) error {
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}

type sseResponse struct {
	handler SSEHandler
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "datastar_required")
	}

	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}

	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE runs handler against a DataStar event stream. Plain requests get 400.
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		if err := stream.SendComponent(view.Errors(msgs), handler.WithTarget("#form-errors")); err != nil {
//			return err
//		}
//		return stream.SendSignals(map[string]any{"valid": len(msgs) == 0})
//	})
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
