package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ngboy11/school/internal/roster/service"
	"github.com/ngboy11/school/internal/roster/store"
	"github.com/ngboy11/school/pkg/httpx"
	"github.com/ngboy11/school/pkg/slogx"

	_ "github.com/ngboy11/school/api/school" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	cookie       *httpx.SessionCookie
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AuthService    *service.AuthService
	SessionService *service.SessionService
	StudentService *service.StudentService
}

func NewRouter(
	cookie *httpx.SessionCookie,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		cookie:       cookie,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerStudents()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			School Roster Service API
//	@version		0.1.0
//	@description	Session-cookie authenticated student roster management with
//	@description	role-based access control (admin, teacher, student).
//
//	@host			localhost:3000
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	r.Mux.Handle("POST /api/register", &RegisterHandler{
		Auth:     r.AuthService,
		Sessions: r.SessionService,
		Cookie:   r.cookie,
	})
	r.Mux.Handle("POST /api/login", &LoginHandler{
		Auth:     r.AuthService,
		Sessions: r.SessionService,
		Cookie:   r.cookie,
	})
	r.Mux.Handle("POST /api/logout", &LogoutHandler{
		Sessions: r.SessionService,
		Cookie:   r.cookie,
	})
	r.Mux.Handle("GET /api/me", &MeHandler{
		Sessions: r.SessionService,
		Cookie:   r.cookie,
	})
}

func (r *Router) registerStudents() {
	resolver := sessionResolver{sessions: r.SessionService}
	authn := httpx.SessionMiddleware(r.cookie, resolver)

	// Role matrix: create/update admin|teacher, delete admin only, read any
	// authenticated role.
	r.Mux.Handle("POST /api/students", httpx.Chain(
		&StudentCreateHandler{Students: r.StudentService},
		authn,
		httpx.RequireRole("admin", "teacher"),
	))
	r.Mux.Handle("GET /api/students", httpx.Chain(
		&StudentListHandler{Students: r.StudentService},
		authn,
	))
	r.Mux.Handle("PUT /api/students/{id}", httpx.Chain(
		&StudentUpdateHandler{Students: r.StudentService},
		authn,
		httpx.RequireRole("admin", "teacher"),
	))
	r.Mux.Handle("DELETE /api/students/{id}", httpx.Chain(
		&StudentDeleteHandler{Students: r.StudentService},
		authn,
		httpx.RequireRole("admin"),
	))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}

// sessionResolver adapts the session service to the middleware's resolver
// interface, mapping the stored snapshot to a request identity.
type sessionResolver struct {
	sessions *service.SessionService
}

func (a sessionResolver) Resolve(ctx context.Context, token string) (httpx.Identity, error) {
	session, err := a.sessions.Resolve(ctx, token)
	if err != nil {
		return httpx.Identity{}, err
	}
	return httpx.Identity{
		UserID: session.UserID,
		Name:   session.Name,
		Email:  session.Email,
		Role:   session.Role.String(),
	}, nil
}
