package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nazmulhossain17/niyenin-api/internal/usecase"
)

// /users 配下のAPI
type UserHandler struct {
	uc *usecase.UserUsecase
}

// DI
func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	e.GET("/users/me", h.getProfile, auth)
	e.PUT("/users/me", h.updateProfile, auth)
	e.PUT("/users/me/password", h.changePassword, auth)
	e.DELETE("/users/:id", h.deactivate, auth, adminOnly)
}

func (h *UserHandler) getProfile(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	ProfilePic string `json:"profile_pic"`
}

func (h *UserHandler) updateProfile(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err = h.uc.UpdateProfile(c.Request().Context(), p, usecase.UpdateProfileInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Address:    req.Address,
		ProfilePic: req.ProfilePic,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "profile updated"})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *UserHandler) changePassword(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err = h.uc.ChangePassword(c.Request().Context(), p, usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "password changed"})
}

func (h *UserHandler) deactivate(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeactivateUser(c.Request().Context(), p, c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deactivated"})
}
