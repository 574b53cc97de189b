package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nazmulhossain17/niyenin-api/internal/middleware"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase/authz"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// principalは検証済みトークンから操作主体を復元する。
// 取れない場合は(zero, エラーレスポンス済み)を返す。
func principal(c echo.Context) (authz.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return authz.Principal{}, c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	return p, nil
}
