package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nazmulhossain17/niyenin-api/internal/metrics"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase"
)

// /warranties 配下のAPI
type WarrantyHandler struct {
	uc *usecase.WarrantyUsecase
}

// DI
func NewWarrantyHandler(uc *usecase.WarrantyUsecase) *WarrantyHandler {
	return &WarrantyHandler{uc: uc}
}

func (h *WarrantyHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/products/:id/warranty", h.getByProduct)

	e.POST("/warranties", h.create, auth)
	e.PUT("/warranties/:id", h.update, auth)
	e.DELETE("/warranties/:id", h.delete, auth)
}

type warrantyRequest struct {
	ProductID      string `json:"product_id"`
	WarrantyPeriod string `json:"warranty_period"`
	WarrantyType   string `json:"warranty_type"`
	Details        string `json:"details"`
}

func (h *WarrantyHandler) create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req warrantyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	w, err := h.uc.CreateWarranty(c.Request().Context(), p, usecase.CreateWarrantyInput{
		ProductID:      req.ProductID,
		WarrantyPeriod: req.WarrantyPeriod,
		WarrantyType:   req.WarrantyType,
		Details:        req.Details,
	})
	if err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("warranty", "create")
	return c.JSON(http.StatusCreated, w)
}

func (h *WarrantyHandler) getByProduct(c echo.Context) error {
	w, err := h.uc.GetByProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, w)
}

func (h *WarrantyHandler) update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req warrantyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err = h.uc.UpdateWarranty(c.Request().Context(), p, c.Param("id"), usecase.UpdateWarrantyInput{
		WarrantyPeriod: req.WarrantyPeriod,
		WarrantyType:   req.WarrantyType,
		Details:        req.Details,
	})
	if err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("warranty", "update")
	return c.JSON(http.StatusOK, map[string]string{"message": "warranty updated"})
}

func (h *WarrantyHandler) delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteWarranty(c.Request().Context(), p, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("warranty", "delete")
	return c.JSON(http.StatusOK, map[string]string{"message": "warranty deleted"})
}
