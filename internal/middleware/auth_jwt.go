package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/nazmulhossain17/niyenin-api/internal/config"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase/authz"
)

const (
	CtxUserIDKey   = "user_id"   // string (uuid)
	CtxUserRoleKey = "user_role" // string
)

// AuthJWTはアクセストークンを検証してprincipalをcontextへ入れる。
// Authorization: Bearer を優先し、無ければ認証cookieを見る。
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawToken := extractToken(c, cfg.CookieTokenName)
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || token == nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			userID, ok := claims["sub"].(string)
			if !ok || userID == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			// トークンのroleは参考値。所有判定の本体はDBを引き直す。
			role, ok := claims["role"].(string)
			if !ok || role == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			c.Set(CtxUserIDKey, userID)
			c.Set(CtxUserRoleKey, role)

			return next(c)
		}
	}
}

// Bearerヘッダ → cookie の順でトークンを探す
func extractToken(c echo.Context, cookieName string) string {
	header := c.Request().Header.Get("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie == nil {
		return ""
	}
	return cookie.Value
}

// PrincipalFromは検証済みcontextからPrincipalを復元する。
// AuthJWTを通っていないルートで呼ぶとfalse。
func PrincipalFrom(c echo.Context) (authz.Principal, bool) {
	userID, ok := c.Get(CtxUserIDKey).(string)
	if !ok || userID == "" {
		return authz.Principal{}, false
	}

	rawRole, ok := c.Get(CtxUserRoleKey).(string)
	if !ok {
		return authz.Principal{}, false
	}
	role, ok := authz.ParseRole(rawRole)
	if !ok {
		return authz.Principal{}, false
	}

	return authz.Principal{UserID: userID, Role: role}, true
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
