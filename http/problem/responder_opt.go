package problem

import (
	"github.com/xy-planning-network/checkpoint/logger"
)

// A ResponderOptFn mutates the provided *Responder in some way.
// A ResponderOptFn is used when constructing a new Responder.
type ResponderOptFn func(*Responder)

// WithLogger sets the provided implementation of Logger in order to log all statements through it.
//
// If no Logger is provided through this option, a default logger will be configured.
func WithLogger(log logger.Logger) func(*Responder) {
	return func(d *Responder) {
		d.logger = log
	}
}

// WithRespondFn sets fn as the serialization for every rejected request,
// fully replacing the default problem-details output.
//
// Equivalent to calling [*Responder.SetRespondFn] after construction.
func WithRespondFn(fn RespondFn) func(*Responder) {
	return func(d *Responder) {
		d.respond = fn
	}
}
