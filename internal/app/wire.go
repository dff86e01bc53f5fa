package app

import (
	"log/slog"
	"net/http"

	"github.com/clansite/api/internal/auth"
	"github.com/clansite/api/internal/handler"
	"github.com/clansite/api/internal/repository"
	"github.com/clansite/api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RouterDeps holds all dependencies needed by NewRouter.
type RouterDeps struct {
	Pool   *pgxpool.Pool
	Tokens *auth.TokenManager
	Logger *slog.Logger
}

// NewRouter assembles the chi.Router with all routes and middleware.
func NewRouter(deps RouterDeps) chi.Router {
	pool := deps.Pool
	logger := deps.Logger

	// Repositories
	adminRepo := repository.NewPgAdminRepository()
	newsRepo := repository.NewPgNewsRepository()
	vipRepo := repository.NewPgVipTierRepository()
	clanRepo := repository.NewPgClanInfoRepository()
	listingRepo := repository.NewPgListingRepository()

	// Services
	authSvc := service.NewAuthService(pool, adminRepo, deps.Tokens)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	contentHandler := handler.NewContentHandler(pool, newsRepo, vipRepo, clanRepo)
	listingHandler := handler.NewListingHandler(pool, listingRepo)

	r := chi.NewRouter()

	// Global middleware (order matters)
	r.Use(handler.Recovery(logger))
	r.Use(handler.RequestID)
	r.Use(handler.RequestLogger(logger))
	r.Use(handler.JSONContentType)

	// Health (no CORS needed)
	r.Get("/health", handler.HealthHandler(pool))

	// Each endpoint mounts its own CORS with the methods it actually
	// serves; OPTIONS preflights short-circuit in the middleware.
	r.Route("/auth", func(r chi.Router) {
		r.Use(handler.CORS("POST, OPTIONS"))
		r.Handle("/", http.HandlerFunc(authHandler.Dispatch))
	})

	r.Route("/content", func(r chi.Router) {
		r.Use(handler.CORS("GET, POST, PUT, DELETE, OPTIONS"))
		r.Handle("/", http.HandlerFunc(contentHandler.Dispatch))
	})

	r.Route("/listings", func(r chi.Router) {
		r.Use(handler.CORS("GET, POST, PUT, DELETE, OPTIONS"))
		r.Handle("/", http.HandlerFunc(listingHandler.Dispatch))
	})

	return r
}
