package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health             *HealthHandler
	Auth               *AuthHandler
	Drafts             *DraftHandler
	Courses            *CourseHandler
	Registrations      *RegistrationHandler
	UserDrafts         *RegistrationHandler
	AdminRegistrations *RegistrationAdminHandler
	Users              *UserHandler
	Audit              *AuditHandler
}

// Guards are the per-route middleware: session checks and rate limits.
type Guards struct {
	Employee   func(http.Handler) http.Handler
	Admin      func(http.Handler) http.Handler
	OTPLimit   func(http.Handler) http.Handler
	LoginLimit func(http.Handler) http.Handler
}

// NewRouter builds the HTTP surface. global wraps every route, outermost
// first.
func NewRouter(h Handlers, g Guards, global ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(global...)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(ar chi.Router) {
			ar.With(g.OTPLimit).Post("/request-otp", h.Auth.RequestOTP)
			ar.With(g.LoginLimit).Post("/verify-otp", h.Auth.VerifyOTP)
			ar.Post("/logout", h.Auth.Logout)
			ar.With(g.Employee).Get("/session", h.Auth.Session)
		})

		api.Get("/drafts", h.Drafts.ListOpen)
		api.Get("/courses", h.Courses.List)

		api.Group(func(er chi.Router) {
			er.Use(g.Employee)
			er.Get("/registrations", h.Registrations.Get)
			er.Post("/registrations", h.Registrations.Save)
			er.Get("/user_drafts", h.UserDrafts.Get)
			er.Post("/user_drafts", h.UserDrafts.Save)
		})

		api.Route("/admin", func(adm chi.Router) {
			adm.With(g.LoginLimit).Post("/login", h.Auth.AdminLogin)
			adm.Delete("/login", h.Auth.AdminLogout)

			adm.Group(func(ar chi.Router) {
				ar.Use(g.Admin)

				ar.Get("/check-auth", h.Auth.CheckAuth)

				ar.Get("/drafts", h.Drafts.List)
				ar.Post("/drafts", h.Drafts.Create)
				ar.Put("/drafts", h.Drafts.Update)
				ar.Delete("/drafts", h.Drafts.Delete)

				ar.Post("/courses", h.Courses.Upload)
				ar.Delete("/courses", h.Courses.Clear)

				ar.Get("/users", h.Users.List)
				ar.Post("/users", h.Users.Upsert)
				ar.Put("/users", h.Users.Update)
				ar.Delete("/users", h.Users.Delete)

				ar.Get("/registrations", h.AdminRegistrations.List)
				ar.Delete("/registrations", h.AdminRegistrations.Delete)
				ar.Post("/registrations/download", h.AdminRegistrations.Download)

				ar.Get("/audit", h.Audit.List)
			})
		})
	})

	return r
}
