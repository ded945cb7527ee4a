// Package httpapi exposes the HTTP surface of the service: registration,
// authentication, job submission, listing, and result retrieval.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avolkovs/benfordapp/internal/logging"
	"github.com/avolkovs/benfordapp/internal/server/services"
)

// Deps carries everything the handlers need.
type Deps struct {
	Users     *services.UserService
	Jobs      *services.JobService
	JWTSecret []byte
	Logger    logging.Logger
}

// NewRouter builds the full route tree. Job endpoints sit behind bearer
// authentication; registration, login, and the liveness probe do not.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/livez", handleLivez())
	r.Post("/register", handleRegister(deps))
	r.Post("/auth", handleLogin(deps))

	r.Group(func(r chi.Router) {
		r.Use(BearerAuth(deps.JWTSecret, deps.Logger))
		r.Post("/jobs", handleSubmit(deps))
		r.Get("/jobs", handleList(deps))
		r.Get("/jobs/{jobid}", handleRetrieve(deps))
	})

	return r
}
