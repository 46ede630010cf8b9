/*

Package logger provides logging functionality to checkpoint by defining the required behavior in [Logger]
and providing an implementation of it with [CheckpointLogger].

The Logger interface outputs messages at certain levels of importance.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.

Log messages emitted by [CheckpointLogger] are composed of a few parts:
	- timestamp
	- log level
	- call site
	- message
	- log context

Here's an example:
	2024/04/28 15:55:21 [ERROR] problem/responder.go:88 'cannot encode problem payload' log_context: "{"error":"..."}"

The log context is a JSON-encoded [*LogContext],
allowing for additional data inessential to the message proper.

When the SENTRY_DSN environment variable is set,
[New] wraps the CheckpointLogger in a [SentryLogger],
which ships warning and above to Sentry.
*/
package logger
