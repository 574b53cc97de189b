package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nazmulhossain17/niyenin-api/internal/metrics"
)

// MetricsはHTTPリクエストのカウンタとレイテンシを記録する。
// pathラベルはルートパターン（/products/:id）を使い、カーディナリティを抑える。
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			if metrics.HTTPRequestsTotal != nil {
				metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
			}
			if metrics.HTTPRequestDuration != nil {
				metrics.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
			}

			return nil
		}
	}
}
