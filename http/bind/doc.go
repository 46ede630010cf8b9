/*
Package bind provides ready-made schema capabilities backed by struct tags.

A [Struct] schema decodes a channel's raw data into an application struct
and validates it with github.com/go-playground/validator rules.
That struct ought to leverage the appropriate struct tags for performing two tasks.
First, matching keys in the channel's data to fields on the struct:
"json" tags for the body channel, "schema" tags for query and path params.
Second, "validate" tags for checking the data meets requirements.

For example:

	type RenameUser struct {
		NewName string `json:"newName" validate:"required,min=6"`
	}

	set := checkpoint.SchemaSet{Body: bind.Struct[RenameUser]()}

The parade of errors that may propagate from decoding and validating are
translated to [checkpoint.Issues] so every failure surfaces in the
standardized error payload, whichever engine produced it.
*/
package bind
