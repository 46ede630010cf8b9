package problem

import (
	"net/http"

	"github.com/xy-planning-network/checkpoint"
)

const (
	// TypeURI is the fixed "type" member of every default Payload,
	// referencing the definition of 422 Unprocessable Entity.
	TypeURI = "https://datatracker.ietf.org/doc/html/rfc4918#section-11.2"

	// Title is the fixed "title" member of every default Payload.
	Title = "Your request is not valid."

	// Detail is the fixed "detail" member of every default Payload.
	Detail = "Input is invalid, see 'errors' for more information."

	// ContentType is the media type every default Payload is written under.
	ContentType = "application/problem+json; charset=utf-8"
)

// A FieldError is one entry in a Payload's errors list.
type FieldError struct {
	Detail  string `json:"detail"`
	Pointer string `json:"pointer"`
}

// A Payload is the problem-details document written for every rejected request.
// It always carries these five members and no others.
type Payload struct {
	Type   string       `json:"type"`
	Title  string       `json:"title"`
	Detail string       `json:"detail"`
	Status int          `json:"status"`
	Errors []FieldError `json:"errors"`
}

// NewPayload flattens failures into a Payload.
//
// Failures are transcribed in the order given, each channel's Issues in their
// own order, so a Payload built from a dispatch Result lists params issues
// first, then query, then body.
func NewPayload(failures []checkpoint.ChannelFailure) Payload {
	p := Payload{
		Type:   TypeURI,
		Title:  Title,
		Detail: Detail,
		Status: http.StatusUnprocessableEntity,
		Errors: []FieldError{},
	}

	for _, failure := range failures {
		for _, issue := range failure.Issues {
			p.Errors = append(p.Errors, FieldError{
				Detail:  issue.Detail,
				Pointer: Pointer(failure.Channel, issue),
			})
		}
	}

	return p
}

// Pointer builds the "#<channel>/<field>" reference locating an Issue.
//
// Only the first segment of the Issue's path is represented.
// An Issue on the channel's root value points at the channel itself, e.g. "#body".
func Pointer(c checkpoint.Channel, i checkpoint.Issue) string {
	if field := i.Field(); field != "" {
		return "#" + c.String() + "/" + field
	}

	return "#" + c.String()
}
