/*
Package dispatch runs a request's channels through their declared schemas.

Dispatch walks the three fixed channels in order - params, query, body -
invoking the [checkpoint.Schema] declared for each and aggregating every
failure into one [Result]. Channels without a declared schema are skipped
and treated as always valid.

The two modes differ only in what happens to channel data:
Validate never touches it; Parse replaces each declared channel's data
with its schema's output, and only when the whole request validated.
*/
package dispatch
