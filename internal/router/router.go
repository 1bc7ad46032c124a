package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"podkeeper/internal/config"
	"podkeeper/internal/handler"
	"podkeeper/internal/middleware"
)

func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	recordHandler *handler.RecordHandler,
	uploadHandler *handler.UploadHandler,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", authHandler.Register)
			auth.Post("/login", authHandler.Login)
			auth.With(authMiddleware.RequireAuth).Get("/me", authHandler.Me)
		})

		api.Route("/pod", func(pod chi.Router) {
			pod.Use(authMiddleware.RequireAuth)
			pod.Post("/", recordHandler.Create)
			pod.Get("/", recordHandler.List)
			pod.Post("/upload", uploadHandler.Upload)
			pod.Get("/{id}", recordHandler.Get)
			pod.Get("/{id}/pdf", recordHandler.PDF)
			pod.Post("/{id}/send-email", recordHandler.SendEmail)
		})
	})

	return r
}
