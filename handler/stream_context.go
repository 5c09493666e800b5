package handler

import (
	"time"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext is a Context bound to an open SSE connection.
type StreamContext interface {
	Context

	SendComponent(c templ.Component, opts ...TemplOption) error
	SendSignals(signals map[string]any) error
	// Wait blocks for d or until the client goes away. It reports whether
	// the full duration elapsed.
	Wait(d time.Duration) bool
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (s *streamContext) SendComponent(c templ.Component, opts ...TemplOption) error {
	return s.sse.PatchElementTempl(c, opts...)
}

func (s *streamContext) SendSignals(signals map[string]any) error {
	return s.sse.MarshalAndPatchSignals(signals)
}

func (s *streamContext) Wait(d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-s.Done():
		return false
	}
}
