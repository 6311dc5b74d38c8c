package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"user-form/config"
	"user-form/internal/application/services"
	"user-form/internal/infrastructure/metrics"
	"user-form/internal/infrastructure/userapi"
	"user-form/internal/interface/api/rest"
	"user-form/internal/interface/api/rest/middleware"
	"user-form/internal/interface/web"
)

// Options come from the command line and win over the environment.
type Options struct {
	EnvFile  string
	Endpoint string
	Port     string
}

type App struct {
	logger   *zap.Logger
	cfg      config.Config
	httpSrv  *http.Server
	router   *gin.Engine
	mCounter *prometheus.CounterVec
	userAPI  *userapi.Client
}

func NewApp(opts Options) (*App, error) {
	// config
	var envErr error
	if opts.EnvFile != "" {
		envErr = godotenv.Load(opts.EnvFile)
	}
	cfg := config.Load()
	if opts.Endpoint != "" {
		cfg.UserAPI.URL = opts.Endpoint
	}
	if opts.Port != "" {
		cfg.App.Port = opts.Port
	}

	// logger
	logger, err := newLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	if envErr != nil {
		// the environment may be provided by the process instead
		logger.Warn("env file not loaded", zap.String("file", opts.EnvFile), zap.Error(envErr))
	}

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))
	web.LoadTemplates(r)

	// httpServer
	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// user api
	userAPI, err := userapi.New(cfg, logger, mCounter)
	if err != nil {
		return nil, fmt.Errorf("user api config error: %w", err)
	}
	logger.Info("user api configured", zap.String("endpoint", userAPI.Endpoint()))

	return &App{
		logger:   logger,
		cfg:      cfg,
		httpSrv:  httpSrv,
		router:   r,
		mCounter: mCounter,
		userAPI:  userAPI,
	}, nil
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "dev" || env == gin.DebugMode {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func (a *App) Close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// shuts the http server down gracefully.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.cfg.Addr()))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
		return err
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// services
	sessions := services.NewFormSessions(a.cfg.Session, a.userAPI, a.logger, a.mCounter)

	// controllers
	web.NewFormController(a.router, sessions, a.logger, a.cfg.UI)
	rest.NewValidateController(a.router, a.logger)

	// ops
	a.router.GET(rest.RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) Logger() *zap.Logger { return a.logger }
