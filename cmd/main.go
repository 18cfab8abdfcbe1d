package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/formcraft/session/internal/api/http/router"
	httpserver "github.com/formcraft/session/internal/api/http/server"
	"github.com/formcraft/session/internal/cache"
	"github.com/formcraft/session/internal/config"
	"github.com/formcraft/session/internal/credential"
	"github.com/formcraft/session/internal/logger"
	"github.com/formcraft/session/internal/model"
	"github.com/formcraft/session/internal/repository/postgres"
	"github.com/formcraft/session/internal/server"
	"github.com/formcraft/session/internal/service"
	"github.com/formcraft/session/internal/session"
	"github.com/formcraft/session/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const (
	userCacheSize = 1024
	userCacheTTL  = 5 * time.Minute
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	_ = godotenv.Load() // missing .env is fine

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.Production())

	if err := cfg.Validate(); err != nil {
		logger.Fatal("refusing to start with unsafe configuration", "error", err)
	}
	if cfg.Session.ForceHTTPS && !cfg.HTTP.EnableHTTPS {
		logger.Warn("secure cookies forced while serving plain HTTP; TLS must terminate upstream")
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	tokenManager := token.NewJWT(cfg.Session.Secret)
	hasher := credential.NewHasher(credential.HashCost)

	authService := service.NewAuth(userRepo, hasher, tokenManager, logger)
	userService := service.NewUser(userRepo, cache.New[string, model.User](userCacheSize, userCacheTTL), logger)
	sessions := session.NewManager(cfg.Production(), cfg.Session.ForceHTTPS, cfg.Session.CookieDomain)

	httpSrv := registerHTTPServer(authService, userService, sessions, cfg, logger, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpSrv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpSrv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerHTTPServer(
	authService *service.Auth,
	userService *service.User,
	sessions *session.Manager,
	cfg *config.Config,
	logger *logger.Logger,
	addr string,
) *httpserver.HTTPServer {
	r := router.New(authService, userService, sessions, cfg, logger)
	app := r.Register()

	return httpserver.NewHTTPServer(app, addr)
}
