package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/nazmulhossain17/niyenin-api/internal/logger"
)

const CtxLoggerKey = "logger"

// RequestIDはX-Request-Idを採番（または引き継ぎ）してヘッダへ返す。
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.New().String()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, rid)

			// request_id付きロガーをcontextへ
			c.Set(CtxLoggerKey, logger.Get().With(zap.String("request_id", rid)))

			return next(c)
		}
	}
}

// RequestLoggerはアクセスログを1リクエスト1行で出す。
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			logger.FromContext(c).Info("request",
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", res.Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("remote_ip", c.RealIP()),
			)

			return nil
		}
	}
}
