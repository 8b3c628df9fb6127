package domainrouter

import "sync/atomic"

// Provider yields the Router to use for the current request.
type Provider interface {
	Router() *Router
}

// Holder keeps the current Router and lets a reloader swap it without
// blocking readers.
type Holder struct {
	current atomic.Pointer[Router]
}

// NewHolder returns a Holder serving initial. A nil initial is replaced with
// an empty Router, so Router never returns nil.
func NewHolder(initial *Router) *Holder {
	if initial == nil {
		initial = New(Config{})
	}
	h := &Holder{}
	h.current.Store(initial)
	return h
}

// Router returns the Router currently in use.
func (h *Holder) Router() *Router {
	return h.current.Load()
}

// Set replaces the current Router. Nil is ignored.
func (h *Holder) Set(r *Router) {
	if r == nil {
		return
	}
	h.current.Store(r)
}
