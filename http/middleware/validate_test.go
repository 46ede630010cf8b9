package middleware_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/checkpoint"
	"github.com/xy-planning-network/checkpoint/http/bind"
	"github.com/xy-planning-network/checkpoint/http/dispatch"
	"github.com/xy-planning-network/checkpoint/http/middleware"
	"github.com/xy-planning-network/checkpoint/http/problem"
)

type renameUser struct {
	NewName string `json:"newName" validate:"required,min=6"`
}

type renameAgedUser struct {
	NewName string `json:"newName" validate:"required"`
	NewAge  uint   `json:"newAge" validate:"required"`
}

type searchParams struct {
	Lang    string `schema:"lang" validate:"required"`
	Version string `schema:"version" validate:"required"`
}

func serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()

	router := mux.NewRouter()
	router.Handle("/users/{id}", h)
	router.ServeHTTP(w, r)

	return w
}

func decodePayload(t *testing.T, w *httptest.ResponseRecorder) problem.Payload {
	t.Helper()

	var payload problem.Payload
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &payload))

	return payload
}

func TestValidateForwardsOnSuccess(t *testing.T) {
	// Arrange
	responder := problem.NewResponder()
	var sawBody string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.Nil(t, err)
		sawBody = string(b)
		w.WriteHeader(http.StatusNoContent)
	})

	h := middleware.ValidateBody(responder, bind.Struct[renameUser]())(handler)
	body := `{"newName":"trails"}`
	r := httptest.NewRequest(http.MethodPost, "/users/1", strings.NewReader(body))

	// Act
	w := serve(h, r)

	// Assert: the handler ran, set the status, and could reread the body.
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, body, sawBody)
}

func TestValidateBodyRequired(t *testing.T) {
	// Arrange
	responder := problem.NewResponder()
	h := middleware.ValidateBody(responder, bind.Struct[renameUser]())(NoopHandler())
	r := httptest.NewRequest(http.MethodPost, "/users/1", strings.NewReader(`{}`))

	// Act
	w := serve(h, r)

	// Assert
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Equal(t, problem.ContentType, w.Header().Get("Content-Type"))

	payload := decodePayload(t, w)
	require.Equal(t, []problem.FieldError{{Detail: "Required", Pointer: "#body/newName"}}, payload.Errors)
}

func TestValidateAggregatesChannels(t *testing.T) {
	// Arrange: empty query and empty body, both declaring required fields.
	responder := problem.NewResponder()
	set := checkpoint.SchemaSet{
		Query: bind.Struct[searchParams](),
		Body:  bind.Struct[renameAgedUser](),
	}
	h := middleware.Validate(responder, set)(NoopHandler())
	r := httptest.NewRequest(http.MethodPost, "/users/1", strings.NewReader(`{}`))

	// Act
	w := serve(h, r)

	// Assert: every failing field across both channels, query strictly first.
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	payload := decodePayload(t, w)
	expected := []problem.FieldError{
		{Detail: "Required", Pointer: "#query/lang"},
		{Detail: "Required", Pointer: "#query/version"},
		{Detail: "Required", Pointer: "#body/newName"},
		{Detail: "Required", Pointer: "#body/newAge"},
	}
	require.Equal(t, expected, payload.Errors)
}

func TestValidateMalformedBody(t *testing.T) {
	// Arrange
	responder := problem.NewResponder()
	h := middleware.ValidateBody(responder, bind.Struct[renameUser]())(NoopHandler())
	r := httptest.NewRequest(http.MethodPost, "/users/1", strings.NewReader(`{"newName":`))

	// Act
	w := serve(h, r)

	// Assert: malformed JSON surfaces as a body-channel failure on the root value.
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	payload := decodePayload(t, w)
	require.Len(t, payload.Errors, 1)
	require.Equal(t, "#body", payload.Errors[0].Pointer)
}

func TestValidateEmptyBody(t *testing.T) {
	// Arrange: no body at all still reports the required field, not a decode error.
	responder := problem.NewResponder()
	h := middleware.ValidateBody(responder, bind.Struct[renameUser]())(NoopHandler())
	r := httptest.NewRequest(http.MethodPost, "/users/1", nil)

	// Act
	w := serve(h, r)

	// Assert
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	payload := decodePayload(t, w)
	require.Equal(t, []problem.FieldError{{Detail: "Required", Pointer: "#body/newName"}}, payload.Errors)
}

func TestParseCommitsToContext(t *testing.T) {
	// Arrange
	responder := problem.NewResponder()
	set := checkpoint.SchemaSet{
		Query: bind.Struct[searchParams](),
		Body:  bind.Struct[renameUser](),
	}

	var data dispatch.ChannelData
	var ok bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, ok = middleware.Parsed(r.Context())
	})

	h := middleware.Parse(responder, set)(handler)
	r := httptest.NewRequest(http.MethodPost, "/users/1?lang=en&version=2", strings.NewReader(`{"newName":"trails"}`))

	// Act
	w := serve(h, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, ok)
	require.Equal(t, searchParams{Lang: "en", Version: "2"}, data.Query)
	require.Equal(t, renameUser{NewName: "trails"}, data.Body)
	// The undeclared params channel keeps its raw data.
	require.Equal(t, map[string]string{"id": "1"}, data.Params)
}

func TestParseRejectionCommitsNothing(t *testing.T) {
	// Arrange: query succeeds, body fails; the handler never runs
	// and no parsed data is observable anywhere.
	responder := problem.NewResponder()
	set := checkpoint.SchemaSet{
		Query: bind.Struct[searchParams](),
		Body:  bind.Struct[renameUser](),
	}

	var ran bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { ran = true })

	h := middleware.Parse(responder, set)(handler)
	r := httptest.NewRequest(http.MethodPost, "/users/1?lang=en&version=2", strings.NewReader(`{}`))

	// Act
	w := serve(h, r)

	// Assert
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.False(t, ran)

	payload := decodePayload(t, w)
	require.Equal(t, []problem.FieldError{{Detail: "Required", Pointer: "#body/newName"}}, payload.Errors)
}

func TestValidateParamsWithMux(t *testing.T) {
	// Arrange
	type userParams struct {
		ID uint `schema:"id" validate:"required"`
	}
	responder := problem.NewResponder()
	h := middleware.ValidateParams(responder, bind.Struct[userParams]())(NoopHandler())
	r := httptest.NewRequest(http.MethodGet, "/users/abc", nil)

	// Act
	w := serve(h, r)

	// Assert
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	payload := decodePayload(t, w)
	require.Equal(t, []problem.FieldError{{Detail: "Must be number", Pointer: "#params/id"}}, payload.Errors)
}

func TestValidateParamsWithChi(t *testing.T) {
	// Arrange
	type userParams struct {
		ID uint `schema:"id" validate:"required"`
	}
	responder := problem.NewResponder()
	h := middleware.ValidateParams(
		responder,
		bind.Struct[userParams](),
		middleware.WithParamsFunc(middleware.ChiParams),
	)(NoopHandler())

	router := chi.NewRouter()
	router.Method(http.MethodGet, "/users/{id}", h)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/users/7", nil)

	// Act
	router.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
}

func TestValidateOverrideResponder(t *testing.T) {
	// Arrange
	responder := problem.NewResponder(problem.WithRespondFn(
		func(w http.ResponseWriter, r *http.Request, failures []checkpoint.ChannelFailure) {
			w.WriteHeader(http.StatusTeapot)
		},
	))
	h := middleware.ValidateBody(responder, bind.Struct[renameUser]())(NoopHandler())
	r := httptest.NewRequest(http.MethodPost, "/users/1", strings.NewReader(`{}`))

	// Act
	w := serve(h, r)

	// Assert: the override's output, never the default payload.
	require.Equal(t, http.StatusTeapot, w.Code)
	require.Empty(t, w.Body.String())
}

func TestChain(t *testing.T) {
	// Arrange
	var order []string
	mw := func(name string) middleware.Adapter {
		return func(handler http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				handler.ServeHTTP(w, r)
			})
		}
	}

	h := middleware.Chain(NoopHandler(), mw("first"), mw("second"))
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	// Act
	h.ServeHTTP(httptest.NewRecorder(), r)

	// Assert
	require.Equal(t, []string{"first", "second"}, order)
}

func TestValidateQueryIdempotent(t *testing.T) {
	// Arrange: validate mode leaves the request's query untouched.
	responder := problem.NewResponder()
	var sawQuery url.Values
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawQuery = r.URL.Query()
	})

	h := middleware.ValidateQuery(responder, bind.Struct[searchParams]())(handler)
	r := httptest.NewRequest(http.MethodGet, "/users/1?lang=en&version=2", nil)

	// Act
	w := serve(h, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, url.Values{"lang": []string{"en"}, "version": []string{"2"}}, sawQuery)

	_, ok := middleware.Parsed(r.Context())
	require.False(t, ok)
}
