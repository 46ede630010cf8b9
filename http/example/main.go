// An example app wiring checkpoint validation into a gorilla/mux router.
//
// Try it:
//
//	go run . &
//	curl -X POST 'localhost:8080/users/1?lang=en' -d '{}'
package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/xy-planning-network/checkpoint"
	"github.com/xy-planning-network/checkpoint/http/bind"
	"github.com/xy-planning-network/checkpoint/http/middleware"
	"github.com/xy-planning-network/checkpoint/http/problem"
	"github.com/xy-planning-network/checkpoint/logger"
)

type userParams struct {
	ID uint `schema:"id" validate:"required"`
}

type searchParams struct {
	Lang    string `schema:"lang" validate:"required"`
	Version string `schema:"version"`
}

type renameUser struct {
	NewName string `json:"newName" validate:"required,min=6"`
}

func main() {
	godotenv.Load()

	env := checkpoint.EnvVarOrEnv("ENVIRONMENT", checkpoint.Development)
	log := logger.New(logger.WithEnv(env.String()))
	responder := problem.NewResponder(problem.WithLogger(log))

	set := checkpoint.SchemaSet{
		Params: bind.Struct[userParams](),
		Query:  bind.Struct[searchParams](),
		Body:   bind.Struct[renameUser](),
	}

	r := mux.NewRouter()
	r.Handle("/users/{id}", middleware.Chain(
		http.HandlerFunc(renameHandler),
		middleware.Parse(responder, set),
	)).Methods(http.MethodPost)

	addr := checkpoint.EnvVarOrString("ADDR", ":8080")
	log.Info("listening on "+addr, nil)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("server stopped", &logger.LogContext{Error: err})
	}
}

func renameHandler(w http.ResponseWriter, r *http.Request) {
	data, _ := middleware.Parsed(r.Context())
	user := data.Params.(userParams)
	rename := data.Body.(renameUser)

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	json.NewEncoder(w).Encode(map[string]any{
		"id":      user.ID,
		"newName": rename.NewName,
	})
}
