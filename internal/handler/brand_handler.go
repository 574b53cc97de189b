package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nazmulhossain17/niyenin-api/internal/metrics"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase"
)

// /brands 配下のAPI。読み取りは公開、書き込みはadmin専用。
type BrandHandler struct {
	uc *usecase.BrandUsecase
}

// DI
func NewBrandHandler(uc *usecase.BrandUsecase) *BrandHandler {
	return &BrandHandler{uc: uc}
}

func (h *BrandHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/brands", h.list)
	e.GET("/brands/:id", h.get)

	e.POST("/brands", h.create, auth)
	e.PUT("/brands/:id", h.update, auth)
	e.DELETE("/brands/:id", h.delete, auth)
}

type brandRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (h *BrandHandler) create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req brandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	b, err := h.uc.CreateBrand(c.Request().Context(), p, usecase.BrandInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("brand", "create")
	return c.JSON(http.StatusCreated, b)
}

func (h *BrandHandler) list(c echo.Context) error {
	brands, err := h.uc.ListBrands(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, brands)
}

func (h *BrandHandler) get(c echo.Context) error {
	b, err := h.uc.GetBrand(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BrandHandler) update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req brandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err = h.uc.UpdateBrand(c.Request().Context(), p, c.Param("id"), usecase.BrandInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("brand", "update")
	return c.JSON(http.StatusOK, map[string]string{"message": "brand updated"})
}

func (h *BrandHandler) delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteBrand(c.Request().Context(), p, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("brand", "delete")
	return c.JSON(http.StatusOK, map[string]string{"message": "brand deleted"})
}
