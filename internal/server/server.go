package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/nazmulhossain17/niyenin-api/internal/config"
	"github.com/nazmulhossain17/niyenin-api/internal/logger"
	"github.com/nazmulhossain17/niyenin-api/internal/middleware"
)

// Handlersはルート登録に必要なハンドラ一式。
type Handlers struct {
	Health        RouteRegistrar
	Auth          AuthRegistrar
	User          UserRegistrar
	Vendor        GuardedRegistrar
	Brand         GuardedRegistrar
	Category      GuardedRegistrar
	Product       GuardedRegistrar
	Specification GuardedRegistrar
	Warranty      GuardedRegistrar
	QA            UserRegistrar
}

type RouteRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

type AuthRegistrar interface {
	RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc)
}

type GuardedRegistrar interface {
	RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc)
}

type UserRegistrar interface {
	RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc)
}

// Newはechoインスタンスを組み立てる。ミドルウェアの順番は
// Recover → RequestID → ログ → メトリクス → CORS。
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Metrics())

	if cfg.FEURL != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     []string{cfg.FEURL},
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowCredentials: true,
		}))
	}

	auth := middleware.AuthJWT(cfg)
	adminOnly := middleware.AdminOnly()

	h.Health.RegisterRoutes(e)
	h.Auth.RegisterRoutes(e, auth)
	h.User.RegisterRoutes(e, auth, adminOnly)
	h.Vendor.RegisterRoutes(e, auth)
	h.Brand.RegisterRoutes(e, auth)
	h.Category.RegisterRoutes(e, auth)
	h.Product.RegisterRoutes(e, auth)
	h.Specification.RegisterRoutes(e, auth)
	h.Warranty.RegisterRoutes(e, auth)
	h.QA.RegisterRoutes(e, auth, adminOnly)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

// StartはSIGINT/SIGTERMでgraceful shutdownするまでブロックする。
func Start(e *echo.Echo, port string) error {
	log := logger.Get()

	go func() {
		addr := ":" + port
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal("server start failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
