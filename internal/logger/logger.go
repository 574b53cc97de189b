package logger

import (
	"sync"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// Getはプロセス共通のzapロガーを返す。
func Get() *zap.Logger {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout"}
		l, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		instance = l
	})
	return instance
}

// FromContextはrequest_id付きのロガーを返す（ミドルウェアがセットする）。
// 無ければ共通ロガーにフォールバック。
func FromContext(c echo.Context) *zap.Logger {
	if l, ok := c.Get("logger").(*zap.Logger); ok {
		return l
	}
	return Get()
}
