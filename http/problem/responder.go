package problem

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/xy-planning-network/checkpoint"
	"github.com/xy-planning-network/checkpoint/logger"
)

// A RespondFn writes the terminal error response for a rejected request.
//
// Configuring one on a Responder replaces the default problem-details
// serialization entirely; the default status, content type and payload
// shape no longer apply.
type RespondFn func(w http.ResponseWriter, r *http.Request, failures []checkpoint.ChannelFailure)

// Responder writes the terminal response for requests failing validation.
//
// Most oftentimes, setting up a single instance of a Responder suffices for an application.
// Meaning, one needs only application-wide configuration of how rejected requests should look.
type Responder struct {
	logger logger.Logger

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool

	// Override for the default serialization; consulted on every call
	respond RespondFn
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := &Responder{
		pool: &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	return d
}

// SetRespondFn replaces the default serialization with fn for every later call to Invalid.
// Passing nil restores the default.
//
// Set it while the application boots, before the first request is handled;
// Responder does not lock the slot during request handling.
func (doer *Responder) SetRespondFn(fn RespondFn) { doer.respond = fn }

// Invalid terminates a rejected request.
//
// With no RespondFn configured, Invalid writes status 422,
// the problem-details content type, and the [Payload] built from failures.
// With a RespondFn configured, Invalid delegates to it entirely.
//
// Invalid is terminal: nothing more should be written to w after it returns.
func (doer *Responder) Invalid(w http.ResponseWriter, r *http.Request, failures ...checkpoint.ChannelFailure) {
	if doer.respond != nil {
		doer.respond(w, r, failures)
		return
	}

	payload := NewPayload(failures)

	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	if err := json.NewEncoder(b).Encode(payload); err != nil {
		doer.logger.Error("cannot encode problem payload", &logger.LogContext{Error: err, Request: r})
		http.Error(w, http.StatusText(http.StatusUnprocessableEntity), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(http.StatusUnprocessableEntity)
	if _, err := b.WriteTo(w); err != nil {
		doer.logger.Error("cannot write problem payload", &logger.LogContext{Error: err, Request: r})
	}
}

// InvalidChannel terminates a rejected request over a single channel's Issues.
//
// It wraps the pair into a one-element failure list and hands it to Invalid;
// there is no independent logic. Downstream handlers performing ad hoc
// validation outside the dispatch flow should prefer it.
func (doer *Responder) InvalidChannel(w http.ResponseWriter, r *http.Request, c checkpoint.Channel, issues checkpoint.Issues) {
	doer.Invalid(w, r, checkpoint.ChannelFailure{Channel: c, Issues: issues})
}
