package checkpoint

// A Channel is one of the three fixed locations input arrives in on an HTTP request:
// path parameters, query parameters, or the request body.
//
// Channel is a closed set; values other than ChannelParams, ChannelQuery and
// ChannelBody fail Valid.
type Channel string

const (
	ChannelParams Channel = "params"
	ChannelQuery  Channel = "query"
	ChannelBody   Channel = "body"
)

func (c Channel) String() string { return string(c) }

func (c Channel) Valid() error {
	switch c {
	case ChannelParams, ChannelQuery, ChannelBody:
		return nil
	default:
		return ErrNotValid
	}
}

// Channels returns every Channel in processing order: params, then query, then body.
//
// Both validation and failure aggregation walk Channels in this order,
// so the ordering of failures in a response is deterministic.
func Channels() [3]Channel {
	return [3]Channel{ChannelParams, ChannelQuery, ChannelBody}
}
