package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/limbo/flicks/internal/service"
	"github.com/limbo/flicks/pkg/metrics"
)

const (
	requestTimeout    = 10 * time.Second
	statisticsTimeout = 15 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type Server struct {
	mx                *chi.Mux
	userService       service.UserServiceI
	profilesService   service.ProfilesServiceI
	historyService    service.HistoryServiceI
	statisticsService service.StatisticsServiceI
	catalogService    service.CatalogServiceI
	jwtService        JWTServiceI
	opts              Options
}

type ServicesList struct {
	UserService       service.UserServiceI
	ProfilesService   service.ProfilesServiceI
	HistoryService    service.HistoryServiceI
	StatisticsService service.StatisticsServiceI
	CatalogService    service.CatalogServiceI
	JwtService        JWTServiceI
}

type Options struct {
	CORSOrigins []string
	// Requests per minute per client IP, 0 disables limiting
	RateLimit    int
	CookieSecure bool
}

func New(servicesOptions *ServicesList, opts Options) *Server {
	s := &Server{
		mx:                chi.NewMux(),
		userService:       servicesOptions.UserService,
		profilesService:   servicesOptions.ProfilesService,
		historyService:    servicesOptions.HistoryService,
		statisticsService: servicesOptions.StatisticsService,
		catalogService:    servicesOptions.CatalogService,
		jwtService:        servicesOptions.JwtService,
		opts:              opts,
	}
	if len(s.opts.CORSOrigins) == 0 {
		s.opts.CORSOrigins = []string{"*"}
	}
	s.MountEndpoints()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

func (s *Server) MountEndpoints() {
	s.mx.Use(
		s.RequestIDMiddleware,
		s.SettingUpLoggerMiddleware,
		metrics.Middleware,
		cors.Handler(cors.Options{
			AllowedOrigins:   s.opts.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)
	if s.opts.RateLimit > 0 {
		s.mx.Use(httprate.LimitByIP(s.opts.RateLimit, time.Minute))
	}

	s.mx.Get("/api/health", s.Health)
	s.mx.Handle("/metrics", promhttp.Handler())

	s.mx.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Post("/auth/logout", s.Logout)
			r.Get("/auth/me", s.Me)

			r.Get("/users/{userId}/profiles", s.ListProfiles)
			r.Post("/users/{userId}/profiles", s.CreateProfile)
			r.Get("/users/{userId}/statistics", s.Statistics)

			r.Route("/profiles/{profileId}", func(r chi.Router) {
				r.Put("/", s.UpdateProfile)
				r.Delete("/", s.DeleteProfile)
				r.Get("/likes", s.GetLikes)
				r.Post("/like", s.Like)
				r.Post("/unlike", s.Unlike)
				r.Delete("/unlike", s.Unlike)
				r.Post("/viewing-history", s.SaveProgress)
				r.Get("/viewing-history", s.GetHistory)
				r.Get("/viewing-history/continue", s.ContinueWatching)
				r.Get("/viewing-history/{contentId}", s.GetProgress)
				r.Delete("/viewing-history/{contentId}", s.DeleteProgress)
			})

			r.Route("/content", func(r chi.Router) {
				r.Get("/", s.AllContent)
				r.Get("/likes", s.GlobalLikes)
				r.Get("/popular", s.PopularContent)
				r.Get("/newest", s.NewestContent)
				r.Get("/genres", s.Genres)
				r.Get("/filter", s.FilterContent)
				r.Get("/{contentId}", s.GetContent)
				r.Get("/{contentId}/similar", s.SimilarContent)
			})

			r.Route("/admin/content", func(r chi.Router) {
				r.Use(s.AdminOnlyMiddleware)
				r.Post("/", s.CreateContent)
				r.Put("/{contentId}", s.UpdateContent)
				r.Delete("/{contentId}", s.DeleteContent)
			})
		})
	})
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server started", slog.String("address", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("http server shutdown error: " + err.Error())
	}
	return nil
}
