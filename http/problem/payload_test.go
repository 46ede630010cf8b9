package problem_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/checkpoint"
	"github.com/xy-planning-network/checkpoint/http/problem"
)

func TestNewPayload(t *testing.T) {
	// Arrange
	failures := []checkpoint.ChannelFailure{
		{
			Channel: checkpoint.ChannelQuery,
			Issues: checkpoint.Issues{
				{Detail: "Required", Path: []string{"lang"}},
				{Detail: "Required", Path: []string{"version"}},
			},
		},
		{
			Channel: checkpoint.ChannelBody,
			Issues: checkpoint.Issues{
				{Detail: "Required", Path: []string{"newName"}},
				{Detail: "Required", Path: []string{"newAge"}},
			},
		},
	}

	// Act
	actual := problem.NewPayload(failures)

	// Assert
	require.Equal(t, problem.TypeURI, actual.Type)
	require.Equal(t, problem.Title, actual.Title)
	require.Equal(t, problem.Detail, actual.Detail)
	require.Equal(t, http.StatusUnprocessableEntity, actual.Status)

	expected := []problem.FieldError{
		{Detail: "Required", Pointer: "#query/lang"},
		{Detail: "Required", Pointer: "#query/version"},
		{Detail: "Required", Pointer: "#body/newName"},
		{Detail: "Required", Pointer: "#body/newAge"},
	}
	require.Equal(t, expected, actual.Errors)
}

func TestNewPayloadNoFailures(t *testing.T) {
	// Act
	actual := problem.NewPayload(nil)

	// Assert: errors marshals as [], never null.
	require.NotNil(t, actual.Errors)

	b, err := json.Marshal(actual)
	require.Nil(t, err)
	require.Contains(t, string(b), `"errors":[]`)
}

func TestPointer(t *testing.T) {
	tcs := []struct {
		name     string
		channel  checkpoint.Channel
		issue    checkpoint.Issue
		expected string
	}{
		{"first-segment", checkpoint.ChannelBody, checkpoint.Issue{Path: []string{"name"}}, "#body/name"},
		{"nested-ignored", checkpoint.ChannelBody, checkpoint.Issue{Path: []string{"c", "nested"}}, "#body/c"},
		{"query", checkpoint.ChannelQuery, checkpoint.Issue{Path: []string{"lang"}}, "#query/lang"},
		{"params", checkpoint.ChannelParams, checkpoint.Issue{Path: []string{"id"}}, "#params/id"},
		{"root-value", checkpoint.ChannelBody, checkpoint.Issue{}, "#body"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, problem.Pointer(tc.channel, tc.issue))
		})
	}
}
