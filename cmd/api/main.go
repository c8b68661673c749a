package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/spf13/pflag"

	"github.com/limbo/flicks/internal/api"
	"github.com/limbo/flicks/internal/repository"
	"github.com/limbo/flicks/internal/service"
	"github.com/limbo/flicks/pkg/cleanup"
	"github.com/limbo/flicks/pkg/config"
	jwtservice "github.com/limbo/flicks/pkg/jwt_service"
	"github.com/limbo/flicks/pkg/logging"
)

func init() {
	service.InitValidator()
}

func main() {
	configPath := pflag.StringP("config", "c", "", "path to YAML config file")
	address := pflag.String("addr", "", "listen address, overrides server.address")
	migrate := pflag.Bool("migrate", false, "apply database migrations before start")
	migrationsDir := pflag.String("migrations", "./migrations", "directory with goose migrations")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("config error: " + err.Error())
	}
	if *address != "" {
		cfg.Server.Address = *address
	}
	logger := logging.Setup(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	if *migrate {
		if err = runMigrations(cfg.DB(), *migrationsDir); err != nil {
			logger.Error("migrations failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrations applied")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := repository.NewPool(ctx, cfg.DB())
	if err != nil {
		logger.Error("database connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	usersRepo := repository.NewUsersRepoWithConn(pool)
	profilesRepo := repository.NewProfilesRepoWithConn(pool)
	contentRepo := repository.NewContentRepoWithConn(pool)
	historyRepo := repository.NewHistoryRepoWithConn(pool)

	serv := api.New(&api.ServicesList{
		UserService:       service.NewUserService(usersRepo),
		ProfilesService:   service.NewProfilesService(profilesRepo),
		HistoryService:    service.NewHistoryService(profilesRepo, contentRepo, historyRepo),
		StatisticsService: service.NewStatisticsService(profilesRepo, contentRepo, historyRepo),
		CatalogService:    service.NewCatalogService(contentRepo, profilesRepo, historyRepo, cfg.Catalog.ItemsPerPage),
		JwtService:        jwtservice.New(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL),
	}, api.Options{
		CORSOrigins:  cfg.CORSOrigins(),
		RateLimit:    cfg.Server.RateLimit,
		CookieSecure: cfg.Auth.CookieSecure,
	})
	if err = serv.Run(ctx, cfg.Server.Address); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
	}
	cleanup.CleanUp()
	logger.Info("server stopped")
}

func runMigrations(cfg repository.DBConfig, dir string) error {
	conn, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		return fmt.Errorf("opening database error: %w", err)
	}
	defer conn.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(conn, dir)
}
