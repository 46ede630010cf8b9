package dispatch

import (
	"errors"

	"github.com/xy-planning-network/checkpoint"
)

// A Mode selects what happens to a channel's data when its Schema succeeds.
type Mode int

const (
	// Validate checks each declared channel and never touches its data.
	Validate Mode = iota

	// Parse replaces each declared channel's data with its Schema's output,
	// once every declared channel has succeeded.
	Parse
)

// ChannelData is a request's input split into the three fixed channels.
//
// The middleware entry points fill it with map[string]string params,
// [net/url.Values] query params and the JSON-decoded body,
// but Dispatch itself places no requirement on the concrete types.
type ChannelData struct {
	Params any
	Query  any
	Body   any
}

// forChannel returns the data held for c.
func (cd ChannelData) forChannel(c checkpoint.Channel) any {
	switch c {
	case checkpoint.ChannelParams:
		return cd.Params
	case checkpoint.ChannelQuery:
		return cd.Query
	default:
		return cd.Body
	}
}

// setChannel replaces the data held for c.
func (cd *ChannelData) setChannel(c checkpoint.Channel, v any) {
	switch c {
	case checkpoint.ChannelParams:
		cd.Params = v
	case checkpoint.ChannelQuery:
		cd.Query = v
	default:
		cd.Body = v
	}
}

// A Result reports a full pass over every declared channel.
type Result struct {
	// Failures holds every failing channel in processing order:
	// params first, then query, then body.
	Failures []checkpoint.ChannelFailure

	// Data is the channel data to hand the next stage.
	// It only differs from the dispatched data when a Parse dispatch succeeded wholesale.
	Data ChannelData
}

// Valid asserts whether every declared channel accepted its data.
func (res Result) Valid() bool { return len(res.Failures) == 0 }

// Dispatch runs each Schema declared in set against its channel in data.
//
// Every declared channel is checked; Dispatch never stops at the first failure,
// so a caller sees all failing channels in one Result.
// An empty set degenerates to an accepting Result.
//
// In Parse mode, each successful channel's output is staged
// and the staged values commit in one pass only when zero failures exist.
// A failing channel therefore never leaves another channel half-replaced.
func Dispatch(set checkpoint.SchemaSet, data ChannelData, mode Mode) Result {
	res := Result{Data: data}

	staged := data
	for _, c := range checkpoint.Channels() {
		schema := set.ForChannel(c)
		if schema == nil {
			continue
		}

		parsed, err := schema.Parse(data.forChannel(c))
		if err != nil {
			res.Failures = append(res.Failures, checkpoint.ChannelFailure{
				Channel: c,
				Issues:  asIssues(err),
			})
			continue
		}

		if mode == Parse {
			staged.setChannel(c, parsed)
		}
	}

	if mode == Parse && res.Valid() {
		res.Data = staged
	}

	return res
}

// asIssues reads the structured Issues out of a Schema's error.
//
// A Schema returning some other error is treated as a single issue
// with the channel's root value; the error is data here, never control flow.
func asIssues(err error) checkpoint.Issues {
	var issues checkpoint.Issues
	if errors.As(err, &issues) && len(issues) > 0 {
		return issues
	}

	return checkpoint.Issues{{Detail: err.Error()}}
}
