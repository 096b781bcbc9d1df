package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	core_port "github.com/VersaceXcodes/real-estate-for-countries-with-nature-and-views-sub001/internal/core/port"
)

// Handlers groups all route handlers wired by the composition root.
type Handlers struct {
	Auth          *AuthHandler
	Property      *PropertyHandler
	Inquiry       *InquiryHandler
	Favorite      *FavoriteHandler
	Notification  *NotificationHandler
	Dashboard     *DashboardHandler
	TokenService  core_port.TokenServicePort
	AllowedOrigin string
}

// Server is the REST API server.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string, handlers Handlers, baseLogger core_port.LoggerPort) *Server {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{handlers.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	requireAuth := AuthMiddleware(handlers.TokenService)
	optionalAuth := OptionalAuthMiddleware(handlers.TokenService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", handlers.Auth.Register)
			r.Post("/login", handlers.Auth.Login)
			r.With(requireAuth).Get("/me", handlers.Auth.GetCurrentUser)
		})

		r.Route("/properties", func(r chi.Router) {
			r.Get("/", handlers.Property.SearchProperties)
			r.With(optionalAuth).Get("/{propertyID}", handlers.Property.GetPropertyDetails)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", handlers.Property.CreateProperty)
				r.Put("/{propertyID}", handlers.Property.UpdateProperty)
				r.Delete("/{propertyID}", handlers.Property.DeleteProperty)
			})
		})

		r.Route("/inquiries", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", handlers.Inquiry.CreateInquiry)
			r.Get("/sent", handlers.Inquiry.GetSentInquiries)
			r.Get("/received", handlers.Inquiry.GetReceivedInquiries)
			r.Put("/{inquiryID}/status", handlers.Inquiry.UpdateInquiryStatus)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", handlers.Favorite.GetFavorites)
			r.Get("/ids", handlers.Favorite.GetFavoriteIDs)
			r.Post("/", handlers.Favorite.AddFavorite)
			r.Delete("/{propertyID}", handlers.Favorite.RemoveFavorite)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", handlers.Notification.GetNotifications)
			r.Put("/read-all", handlers.Notification.MarkAllNotificationsRead)
			r.Put("/{notificationID}/read", handlers.Notification.MarkNotificationRead)
		})

		r.With(requireAuth).Get("/dashboard/stats", handlers.Dashboard.GetDashboardStats)
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// Start runs the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
