package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-finance-api/internal/application/auth"
	"github.com/go-finance-api/internal/application/otp"
	"github.com/go-finance-api/internal/application/profile"
	"github.com/go-finance-api/internal/config"
	"github.com/go-finance-api/internal/transport/http/handler"
	appmiddleware "github.com/go-finance-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo      UserRepository
	AccountRepo   AccountRepository
	OTPStore      KVStore
	TokenProvider TokenProvider
	Mailer        Mailer
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(appmiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	otpManager := otp.NewManager(deps.OTPStore, cfg.OTPTTL)
	authSvc := auth.NewService(otpManager, deps.TokenProvider, deps.UserRepo, deps.Mailer)
	profileSvc := profile.NewService(deps.UserRepo, deps.AccountRepo)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	profileH := handler.NewProfileHandler(profileSvc)

	// 5 requests/second, burst of 10 — applied to the public auth endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)

		r.Route("/auth", func(r chi.Router) {
			r.Use(sensitiveRL.Limit)
			r.Post("/otp", authH.SendOTP)
			r.Post("/signup", authH.Signup)
			r.Post("/login", authH.Login)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Use(appmiddleware.Auth(authSvc))
			r.Get("/", profileH.GetProfile)
			r.Get("/accounts", profileH.ListAccounts)
			r.Post("/accounts", profileH.CreateAccount)
			r.Get("/accounts/{account_id}", profileH.GetAccount)
			r.Get("/accounts/{account_id}/movements", profileH.ListMovements)
			r.Post("/accounts/{account_id}/movements", profileH.CreateMovement)
		})
	})

	return r
}
