package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nazmulhossain17/niyenin-api/internal/config"
	"github.com/nazmulhossain17/niyenin-api/internal/metrics"
	"github.com/nazmulhossain17/niyenin-api/internal/middleware"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase/authz"
)

// /auth 配下のAPI
type AuthHandler struct {
	uc       *usecase.AuthUsecase
	resolver *authz.Resolver
	cfg      config.Config
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase, resolver *authz.Resolver, cfg config.Config) *AuthHandler {
	return &AuthHandler{uc: uc, resolver: resolver, cfg: cfg}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.POST("/auth/register", h.register)
	e.POST("/auth/login", h.login)
	e.POST("/auth/logout", h.logout)
	e.GET("/whoami", h.whoami, auth)
}

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

func (h *AuthHandler) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	user, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("user", "register")
	return c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if metrics.AuthAttemptsCounter != nil {
		metrics.AuthAttemptsCounter.Inc()
	}

	out, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if metrics.AuthErrorsCounter != nil {
			metrics.AuthErrorsCounter.Inc()
		}
		return writeError(c, err)
	}

	// Bearer運用が基本だが、ブラウザ向けにHttpOnly cookieも置く
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.CookieTokenName,
		Value:    out.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cfg.GoEnv == "prod",
		SameSite: http.SameSiteLaxMode,
		Expires:  out.ExpiresAt,
	})

	if metrics.AuthSuccessCounter != nil {
		metrics.AuthSuccessCounter.Inc()
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.CookieTokenName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *AuthHandler) whoami(c echo.Context) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.Whoami(c.Request().Context(), h.resolver, p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
