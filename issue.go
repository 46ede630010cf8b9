package checkpoint

import (
	"fmt"
	"strings"
)

// An Issue is a single field-level problem a Schema found with a channel's data.
//
// Path locates the offending field as an ordered list of segments;
// an empty Path means the channel's root value itself is the problem.
type Issue struct {
	Detail string   `json:"detail"`
	Path   []string `json:"path,omitempty"`
}

// Field returns the first segment of the Issue's Path,
// or the empty string when the Issue concerns the root value.
func (i Issue) Field() string {
	if len(i.Path) == 0 {
		return ""
	}

	return i.Path[0]
}

// Issues is the full set of Issue a Schema found with a channel's data.
//
// A Schema reporting failure should return Issues (or an error wrapping it)
// so each Issue can be transcribed into the error payload.
type Issues []Issue

func (i Issues) Error() string {
	var msgs []string
	for _, issue := range i {
		msg := fmt.Sprintf("field=%q detail=%q", strings.Join(issue.Path, "."), issue.Detail)
		msgs = append(msgs, msg)
	}

	return strings.Join(msgs, "\n")
}

func (Issues) Unwrap() error { return ErrNotValid }

// A ChannelFailure pairs a Channel with the Issues its Schema found.
// A single rejected request may carry one ChannelFailure per failing channel.
type ChannelFailure struct {
	Channel Channel
	Issues  Issues
}
