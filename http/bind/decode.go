package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/checkpoint"
)

var valuesDecoder = newValuesDecoder()

func newValuesDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return dec
}

// decodeValues fills structPtr from url.Values, translating decoder errors
// into Issues where they describe the request's data
// and into wrapped sentinel errors where they describe a misconfigured struct.
func decodeValues(structPtr any, vals map[string][]string) error {
	err := valuesDecoder.Decode(structPtr, vals)
	if err == nil {
		return nil
	}

	var pkgErrs schema.MultiError
	// NOTE(dlk): outside the errors handled below,
	// the schema package appears to always use MultiError to wrap errors up.
	if !errors.As(err, &pkgErrs) {
		return fmt.Errorf("%w: %s", checkpoint.ErrUnexpected, err)
	}

	var issues checkpoint.Issues
	for _, pkgErr := range pkgErrs {
		switch err := pkgErr.(type) {
		case schema.ConversionError:
			issues = append(issues, checkpoint.Issue{
				Detail: "Must be " + jsonTypeName(err.Type),
				Path:   []string{err.Key},
			})

		case schema.EmptyFieldError:
			return fmt.Errorf(`%w: use a "required" validate tag, not schema`, checkpoint.ErrBadConfig)

		default:
			// NOTE(dlk): a field without a registered schema.Converter only errors
			// once a request actually sets a value for it.
			if strings.Contains(err.Error(), "schema: converter not found for") {
				return fmt.Errorf("%w: cannot convert values into unsupported type", checkpoint.ErrBadConfig)
			}

			return fmt.Errorf("%w: %s", checkpoint.ErrUnexpected, err)
		}
	}

	if len(issues) > 0 {
		return issues
	}

	return nil
}

// decodeJSON fills structPtr from an already JSON-decoded value
// by round-tripping it through encoding/json,
// translating type mismatches into Issues.
func decodeJSON(structPtr, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: cannot remarshal body data: %s", checkpoint.ErrUnexpected, err)
	}

	err = json.Unmarshal(b, structPtr)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		issue := checkpoint.Issue{
			Detail: fmt.Sprintf("Expected %s, received %s", jsonTypeName(typeErr.Type), typeErr.Value),
		}
		if typeErr.Field != "" {
			issue.Path = strings.Split(typeErr.Field, ".")
		}

		return checkpoint.Issues{issue}
	}

	return fmt.Errorf("%w: cannot decode body data: %s", checkpoint.ErrUnexpected, err)
}

// jsonTypeName names t the way a JSON document would.
func jsonTypeName(t reflect.Type) string {
	if t == nil {
		return "null"
	}

	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Pointer:
		return jsonTypeName(t.Elem())
	default:
		return t.String()
	}
}
