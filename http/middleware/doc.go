/*
The middleware package defines what a middleware is in checkpoint and the validation entry points.

The available middlewares are:
- Validate, ValidateParams, ValidateQuery, ValidateBody
- Parse, ParseParams, ParseQuery, ParseBody

Each wraps a handler so requests failing their declared schemas terminate
with one problem-details response before the handler runs.
Validate never touches request data; Parse commits each schema's output
into the request context, retrievable with Parsed.

A typical setup:

	responder := problem.NewResponder()
	h := middleware.Chain(
		handler,
		middleware.Parse(responder, checkpoint.SchemaSet{
			Query: bind.Struct[SearchParams](),
			Body:  bind.Struct[UpdateUser](),
		}),
	)
*/
package middleware
