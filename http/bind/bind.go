package bind

import (
	"net/url"

	"github.com/xy-planning-network/checkpoint"
)

// Struct builds a [checkpoint.Schema] decoding a channel's raw data into T
// and validating the result against T's "validate" struct tags.
//
// One Struct schema serves any channel:
// [net/url.Values] (query) and map[string]string (params) decode through
// struct tags named "schema"; JSON-decoded body data decodes through "json" tags.
// Validation failures come back as [checkpoint.Issues]
// with the tag-derived field names as path segments.
//
// On success, Parse returns the populated T, which a parse-mode dispatch
// commits as the channel's data.
func Struct[T any]() checkpoint.Schema {
	return structSchema[T]{}
}

type structSchema[T any] struct{}

func (structSchema[T]) Parse(raw any) (any, error) {
	var out T

	switch data := raw.(type) {
	case nil:
		// Nothing to decode; validation decides whether the zero value passes.
	case url.Values:
		if err := decodeValues(&out, data); err != nil {
			return nil, err
		}
	case map[string]string:
		vals := make(url.Values, len(data))
		for k, v := range data {
			vals.Set(k, v)
		}

		if err := decodeValues(&out, vals); err != nil {
			return nil, err
		}
	default:
		if err := decodeJSON(&out, data); err != nil {
			return nil, err
		}
	}

	if err := validate(&out); err != nil {
		return nil, err
	}

	return out, nil
}
