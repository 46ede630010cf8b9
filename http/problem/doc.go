/*

The problem package writes the standardized error response for requests failing validation.

Every rejected request receives exactly one response: status 422,
content type "application/problem+json; charset=utf-8",
and a problem-details document ([Payload]) flattening each failing channel's
issues into {detail, pointer} entries.

A [Responder] holds the application-wide configuration for that response,
including the optional [RespondFn] override replacing the default serialization.

*/
package problem
