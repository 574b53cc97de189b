package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nazmulhossain17/niyenin-api/internal/metrics"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase"
)

// /categories 配下のAPI。読み取りは公開、書き込みはadmin専用。
type CategoryHandler struct {
	uc *usecase.CategoryUsecase
}

// DI
func NewCategoryHandler(uc *usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/categories", h.list)
	e.GET("/categories/tree", h.tree)
	e.GET("/categories/:id", h.get)

	e.POST("/categories", h.create, auth)
	e.PUT("/categories/:id", h.update, auth)
	e.DELETE("/categories/:id", h.delete, auth)
}

type categoryRequest struct {
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	ParentID *string `json:"parent_id"`
}

func (h *CategoryHandler) create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	cat, err := h.uc.CreateCategory(c.Request().Context(), p, usecase.CategoryInput{
		Name:     req.Name,
		Slug:     req.Slug,
		ParentID: req.ParentID,
	})
	if err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("category", "create")
	return c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHandler) list(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

// treeはカテゴリをネスト構造で返す。
func (h *CategoryHandler) tree(c echo.Context) error {
	nodes, err := h.uc.GetTree(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, nodes)
}

func (h *CategoryHandler) get(c echo.Context) error {
	cat, err := h.uc.GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err = h.uc.UpdateCategory(c.Request().Context(), p, c.Param("id"), usecase.CategoryInput{
		Name:     req.Name,
		Slug:     req.Slug,
		ParentID: req.ParentID,
	})
	if err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("category", "update")
	return c.JSON(http.StatusOK, map[string]string{"message": "category updated"})
}

func (h *CategoryHandler) delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), p, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("category", "delete")
	return c.JSON(http.StatusOK, map[string]string{"message": "category deleted"})
}
