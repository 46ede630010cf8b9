package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/xy-planning-network/checkpoint"
	"github.com/xy-planning-network/checkpoint/http/dispatch"
	"github.com/xy-planning-network/checkpoint/http/problem"
)

type parsedCtxKey struct{}

// An Opt configures how a validation Adapter reads channels off a request.
type Opt func(*guardCfg)

type guardCfg struct {
	params ParamsFunc
}

// WithParamsFunc sets how the params channel is read off a request.
//
// The default is [MuxParams]; pass [ChiParams] when routing with chi,
// or any custom ParamsFunc for other routers.
func WithParamsFunc(fn ParamsFunc) Opt {
	return func(c *guardCfg) {
		c.params = fn
	}
}

// Validate checks every channel declared in set against its schema
// and never touches the request's data.
//
// Channels are checked in fixed order - params, query, body - and every
// failing channel is reported; a rejected request receives exactly one
// response through responder. On success the request is forwarded unchanged.
func Validate(responder *problem.Responder, set checkpoint.SchemaSet, opts ...Opt) Adapter {
	return guard(responder, set, dispatch.Validate, opts)
}

// ValidateParams checks the params channel alone; see Validate.
func ValidateParams(responder *problem.Responder, schema checkpoint.Schema, opts ...Opt) Adapter {
	return Validate(responder, checkpoint.SchemaSet{Params: schema}, opts...)
}

// ValidateQuery checks the query channel alone; see Validate.
func ValidateQuery(responder *problem.Responder, schema checkpoint.Schema, opts ...Opt) Adapter {
	return Validate(responder, checkpoint.SchemaSet{Query: schema}, opts...)
}

// ValidateBody checks the body channel alone; see Validate.
func ValidateBody(responder *problem.Responder, schema checkpoint.Schema, opts ...Opt) Adapter {
	return Validate(responder, checkpoint.SchemaSet{Body: schema}, opts...)
}

// Parse checks every channel declared in set like Validate does and,
// when the whole request validates, commits each schema's output
// into the request context for handlers to read with [Parsed].
//
// Channels without a declared schema keep their original data.
// On any failure no channel's output is committed.
func Parse(responder *problem.Responder, set checkpoint.SchemaSet, opts ...Opt) Adapter {
	return guard(responder, set, dispatch.Parse, opts)
}

// ParseParams parses the params channel alone; see Parse.
func ParseParams(responder *problem.Responder, schema checkpoint.Schema, opts ...Opt) Adapter {
	return Parse(responder, checkpoint.SchemaSet{Params: schema}, opts...)
}

// ParseQuery parses the query channel alone; see Parse.
func ParseQuery(responder *problem.Responder, schema checkpoint.Schema, opts ...Opt) Adapter {
	return Parse(responder, checkpoint.SchemaSet{Query: schema}, opts...)
}

// ParseBody parses the body channel alone; see Parse.
func ParseBody(responder *problem.Responder, schema checkpoint.Schema, opts ...Opt) Adapter {
	return Parse(responder, checkpoint.SchemaSet{Body: schema}, opts...)
}

// Parsed retrieves the channel data a Parse Adapter committed for the request.
//
// The second return is false when no Parse Adapter ran for the request,
// or when its schema set was empty.
func Parsed(ctx context.Context) (dispatch.ChannelData, bool) {
	data, ok := ctx.Value(parsedCtxKey{}).(dispatch.ChannelData)
	return data, ok
}

// guard builds the Adapter shared by every entry point.
func guard(responder *problem.Responder, set checkpoint.SchemaSet, mode dispatch.Mode, opts []Opt) Adapter {
	cfg := &guardCfg{params: MuxParams}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data := dispatch.ChannelData{
				Params: cfg.params(r),
				Query:  r.URL.Query(),
			}

			// The body is only read when a schema declares an interest in it.
			// The raw bytes are restored afterward so downstream code can reread r.Body.
			var bodyIssues checkpoint.Issues
			bodySet := set
			if set.Body != nil {
				raw, err := readBody(r)
				if err != nil {
					bodyIssues = checkpoint.Issues{{Detail: err.Error()}}
					bodySet.Body = nil
				} else {
					data.Body = raw
				}
			}

			result := dispatch.Dispatch(bodySet, data, mode)

			failures := result.Failures
			if bodyIssues != nil {
				// Body is last in channel order, so appending keeps failures ordered.
				failures = append(failures, checkpoint.ChannelFailure{
					Channel: checkpoint.ChannelBody,
					Issues:  bodyIssues,
				})
			}

			if len(failures) > 0 {
				responder.Invalid(w, r, failures...)
				return
			}

			if mode == dispatch.Parse && !set.Empty() {
				r = r.WithContext(context.WithValue(r.Context(), parsedCtxKey{}, result.Data))
			}

			handler.ServeHTTP(w, r)
		})
	}
}

// readBody decodes the request body as JSON for the body channel,
// leaving r.Body rereadable.
//
// An absent or empty body decodes to an empty object,
// letting a schema report which required fields are missing.
func readBody(r *http.Request) (any, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return map[string]any{}, nil
	}

	buf, err := io.ReadAll(r.Body)
	r.Body.Close()
	if err != nil {
		return nil, err
	}
	r.Body = io.NopCloser(bytes.NewReader(buf))

	if len(bytes.TrimSpace(buf)) == 0 {
		return map[string]any{}, nil
	}

	var raw any
	if err := json.Unmarshal(buf, &raw); err != nil {
		return nil, err
	}

	return raw, nil
}
