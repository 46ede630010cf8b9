package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/mux"
)

// A ParamsFunc extracts the path parameters a router matched for a request.
//
// The params channel holds whatever the configured ParamsFunc returns;
// with no route match it should return an empty map, not nil.
type ParamsFunc func(r *http.Request) map[string]string

// MuxParams reads path parameters set by a github.com/gorilla/mux router.
//
// MuxParams is the default ParamsFunc.
func MuxParams(r *http.Request) map[string]string {
	params := mux.Vars(r)
	if params == nil {
		params = map[string]string{}
	}

	return params
}

// ChiParams reads path parameters set by a github.com/go-chi/chi router.
func ChiParams(r *http.Request) map[string]string {
	params := map[string]string{}

	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return params
	}

	for i, key := range rctx.URLParams.Keys {
		params[key] = rctx.URLParams.Values[i]
	}

	return params
}
