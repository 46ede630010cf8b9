package checkpoint

// A Schema validates - and optionally transforms - one channel's raw data.
//
// Parse must be deterministic and side-effect free.
// On success, Parse returns the value the channel's data should become
// when dispatched in parse mode; validate mode discards it.
// On failure, the returned error should be or wrap Issues.
// Any other error is read as a single Issue with the channel's root value.
//
// Schema is deliberately a one-method interface so any validation engine
// can stand behind it; [net/url.Values], map[string]string and JSON-decoded
// values are the raw shapes handed to it by the middleware entry points.
type Schema interface {
	Parse(raw any) (any, error)
}

// SchemaFunc adapts a function into a Schema.
type SchemaFunc func(raw any) (any, error)

func (f SchemaFunc) Parse(raw any) (any, error) { return f(raw) }

// A SchemaSet declares which channels of a request to validate.
// A nil entry skips that channel entirely, leaving its data untouched.
type SchemaSet struct {
	Params Schema
	Query  Schema
	Body   Schema
}

// ForChannel returns the Schema declared for c, or nil if none is.
func (s SchemaSet) ForChannel(c Channel) Schema {
	switch c {
	case ChannelParams:
		return s.Params
	case ChannelQuery:
		return s.Query
	case ChannelBody:
		return s.Body
	default:
		return nil
	}
}

// Empty asserts whether no channel declares a Schema.
// Dispatching an empty SchemaSet always accepts the request.
func (s SchemaSet) Empty() bool {
	return s.Params == nil && s.Query == nil && s.Body == nil
}
