package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nazmulhossain17/niyenin-api/internal/metrics"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase"
)

// /specifications 配下のAPI
type SpecificationHandler struct {
	uc *usecase.SpecificationUsecase
}

// DI
func NewSpecificationHandler(uc *usecase.SpecificationUsecase) *SpecificationHandler {
	return &SpecificationHandler{uc: uc}
}

func (h *SpecificationHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/products/:id/specifications", h.listByProduct)

	e.POST("/specifications", h.create, auth)
	e.POST("/specifications/bulk", h.bulkCreate, auth)
	e.PUT("/specifications/:id", h.update, auth)
	e.DELETE("/specifications/:id", h.delete, auth)
}

type specificationRequest struct {
	ProductID string `json:"product_id"`
	Key       string `json:"key"`
	Value     string `json:"value"`
}

func (h *SpecificationHandler) create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req specificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	s, err := h.uc.CreateSpecification(c.Request().Context(), p, usecase.CreateSpecificationInput{
		ProductID: req.ProductID,
		Key:       req.Key,
		Value:     req.Value,
	})
	if err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("specification", "create")
	return c.JSON(http.StatusCreated, s)
}

type bulkSpecificationRequest struct {
	ProductID      string                       `json:"product_id"`
	Specifications []usecase.SpecificationInput `json:"specifications"`
}

func (h *SpecificationHandler) bulkCreate(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req bulkSpecificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	specs, err := h.uc.BulkCreateSpecifications(c.Request().Context(), p, usecase.BulkCreateSpecificationsInput{
		ProductID:      req.ProductID,
		Specifications: req.Specifications,
	})
	if err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("specification", "bulk_create")
	return c.JSON(http.StatusCreated, specs)
}

func (h *SpecificationHandler) listByProduct(c echo.Context) error {
	specs, err := h.uc.ListByProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, specs)
}

func (h *SpecificationHandler) update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req specificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err = h.uc.UpdateSpecification(c.Request().Context(), p, c.Param("id"), usecase.UpdateSpecificationInput{
		Key:   req.Key,
		Value: req.Value,
	})
	if err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("specification", "update")
	return c.JSON(http.StatusOK, map[string]string{"message": "specification updated"})
}

func (h *SpecificationHandler) delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSpecification(c.Request().Context(), p, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("specification", "delete")
	return c.JSON(http.StatusOK, map[string]string{"message": "specification deleted"})
}
