package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/nazmulhossain17/niyenin-api/internal/metrics"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase"
)

// /products 配下のAPI
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/products", h.list)
	e.GET("/products/:id", h.detail)
	e.GET("/products/slug/:slug", h.detailBySlug)

	e.POST("/products", h.create, auth)
	e.PUT("/products/:id", h.update, auth)
	e.DELETE("/products/:id", h.delete, auth)
}

type productRequest struct {
	VendorID         string                       `json:"vendor_id"`
	BrandID          *string                      `json:"brand_id"`
	CategoryID       string                       `json:"category_id"`
	Name             string                       `json:"name"`
	Slug             string                       `json:"slug"`
	ShortDescription string                       `json:"short_description"`
	Description      string                       `json:"description"`
	OriginalPrice    decimal.Decimal              `json:"original_price"`
	Discount         decimal.Decimal              `json:"discount"`
	Images           []string                     `json:"images"`
	Tags             []string                     `json:"tags"`
	IsActive         *bool                        `json:"is_active"`
	Specifications   []usecase.SpecificationInput `json:"specifications"`
	Warranty         *usecase.WarrantyInput       `json:"warranty"`
}

func (h *ProductHandler) create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), p, usecase.CreateProductInput{
		VendorID:         req.VendorID,
		BrandID:          req.BrandID,
		CategoryID:       req.CategoryID,
		Name:             req.Name,
		Slug:             req.Slug,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		OriginalPrice:    req.OriginalPrice,
		Discount:         req.Discount,
		Images:           req.Images,
		Tags:             req.Tags,
		IsActive:         isActive,
		Specifications:   req.Specifications,
		Warranty:         req.Warranty,
	})
	if err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("product", "create")
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) list(c echo.Context) error {
	// page（default 1）
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	// limit（default 20）
	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	var minPrice *decimal.Decimal
	if v := c.QueryParam("min_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid min_price"})
		}
		minPrice = &d
	}

	var maxPrice *decimal.Decimal
	if v := c.QueryParam("max_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid max_price"})
		}
		maxPrice = &d
	}

	out, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Page:       page,
		Limit:      limit,
		Q:          c.QueryParam("q"),
		VendorID:   c.QueryParam("vendor_id"),
		CategoryID: c.QueryParam("category_id"),
		BrandID:    c.QueryParam("brand_id"),
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		Sort:       c.QueryParam("sort"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	out, err := h.uc.GetProductDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detailBySlug(c echo.Context) error {
	out, err := h.uc.GetProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	err = h.uc.UpdateProduct(c.Request().Context(), p, c.Param("id"), usecase.UpdateProductInput{
		BrandID:          req.BrandID,
		CategoryID:       req.CategoryID,
		Name:             req.Name,
		Slug:             req.Slug,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		OriginalPrice:    req.OriginalPrice,
		Discount:         req.Discount,
		Images:           req.Images,
		Tags:             req.Tags,
		IsActive:         isActive,
	})
	if err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("product", "update")
	return c.JSON(http.StatusOK, map[string]string{"message": "product updated"})
}

func (h *ProductHandler) delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), p, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("product", "delete")
	return c.JSON(http.StatusOK, map[string]string{"message": "product deleted"})
}
