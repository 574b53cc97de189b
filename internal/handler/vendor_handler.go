package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nazmulhossain17/niyenin-api/internal/metrics"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase"
)

// /vendors 配下のAPI
type VendorHandler struct {
	uc *usecase.VendorUsecase
}

// DI
func NewVendorHandler(uc *usecase.VendorUsecase) *VendorHandler {
	return &VendorHandler{uc: uc}
}

func (h *VendorHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/vendors", h.list)
	e.GET("/vendors/:id", h.get)

	e.POST("/vendors", h.create, auth)
	e.PUT("/vendors/:id", h.update, auth)
	e.DELETE("/vendors/:id", h.delete, auth)
}

type vendorRequest struct {
	ShopName    string `json:"shop_name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

func (h *VendorHandler) create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req vendorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	v, err := h.uc.CreateVendor(c.Request().Context(), p, usecase.CreateVendorInput{
		ShopName:    req.ShopName,
		Description: req.Description,
	})
	if err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("vendor", "create")
	return c.JSON(http.StatusCreated, v)
}

func (h *VendorHandler) list(c echo.Context) error {
	vendors, err := h.uc.ListVendors(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, vendors)
}

func (h *VendorHandler) get(c echo.Context) error {
	v, err := h.uc.GetVendor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *VendorHandler) update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req vendorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	err = h.uc.UpdateVendor(c.Request().Context(), p, c.Param("id"), usecase.UpdateVendorInput{
		ShopName:    req.ShopName,
		Description: req.Description,
		IsActive:    isActive,
	})
	if err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("vendor", "update")
	return c.JSON(http.StatusOK, map[string]string{"message": "vendor updated"})
}

func (h *VendorHandler) delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteVendor(c.Request().Context(), p, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("vendor", "delete")
	return c.JSON(http.StatusOK, map[string]string{"message": "vendor deleted"})
}
