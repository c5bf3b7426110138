package main

import (
	"catering/cmd/internal/auth"
	"catering/cmd/internal/config"
	"catering/cmd/internal/domain/database"
	"catering/cmd/internal/domain/database/repository"
	"catering/cmd/internal/metrics"
	"catering/cmd/internal/routes"
	"catering/cmd/internal/service"
	"catering/cmd/internal/utils"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration: ", err)
	}
	log.SetLevel(logLevel(cfg.LogLevel))

	// Init database, creating tables on first run
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal("failed to initialize database: ", err)
	}
	log.Infof("connected to %s database", cfg.Database.Driver)

	metrics.Register()
	validate := utils.NewValidator()

	// Getting repositories
	bookingRepo := repository.NewBookingRepository(db)
	staffRepo := repository.NewStaffRepository(db)

	// Getting services
	bookingService := service.NewBookingService(bookingRepo, validate, cfg.ExposeStoreErrors)
	staffService := service.NewStaffService(staffRepo, cfg.ExposeStoreErrors)
	adminService := service.NewAdminService(newAuthenticator(cfg.Auth))

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(logLevel(cfg.LogLevel))

	e.Use(metrics.Middleware())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	if cfg.StaticDir != "" {
		e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
			Root:    cfg.StaticDir,
			Index:   "index.html",
			HTML5:   true,
			Skipper: isAPIRequest,
		}))
	}

	routes.Register(e, &routes.Handlers{
		Bookings: routes.NewBookingDefault(bookingService),
		Staff:    routes.NewStaffDefault(staffService),
		Admin:    routes.NewAdminDefault(adminService),
	})

	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.IdleTimeout = 60 * time.Second

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("server is shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}
	if err := database.Close(db); err != nil {
		log.Errorf("failed to close database: %v", err)
	}
}

func newAuthenticator(cfg config.AuthConfig) auth.Authenticator {
	creds := auth.Credentials{Username: cfg.Username, Password: cfg.Password}
	if cfg.Mode == config.AuthJWT {
		return auth.NewJWTAuthenticator(creds, cfg.JWTSecret, cfg.JWTTTL)
	}
	log.Warn("admin login uses the static placeholder token; do not rely on it for access control")
	return auth.NewStaticAuthenticator(creds, cfg.Token)
}

func isAPIRequest(c echo.Context) bool {
	path := c.Request().URL.Path
	return strings.HasPrefix(path, "/api/") || path == "/metrics"
}

func logLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
