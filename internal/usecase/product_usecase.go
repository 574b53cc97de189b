package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
	repo "github.com/nazmulhossain17/niyenin-api/internal/repository"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase/authz"
	"github.com/nazmulhossain17/niyenin-api/internal/validator"
)

var discountMax = decimal.NewFromInt(100)

type ProductUsecase struct {
	tx         repo.TransactionManager
	products   repo.ProductRepository
	specs      repo.SpecificationRepository
	warranties repo.WarrantyRepository
	categories repo.CategoryRepository
	brands     repo.BrandRepository
	resolver   *authz.Resolver
	idGen      IDGenerator
}

// DI
func NewProductUsecase(
	tx repo.TransactionManager,
	products repo.ProductRepository,
	specs repo.SpecificationRepository,
	warranties repo.WarrantyRepository,
	categories repo.CategoryRepository,
	brands repo.BrandRepository,
	resolver *authz.Resolver,
	idGen IDGenerator,
) *ProductUsecase {
	return &ProductUsecase{
		tx:         tx,
		products:   products,
		specs:      specs,
		warranties: warranties,
		categories: categories,
		brands:     brands,
		resolver:   resolver,
		idGen:      idGen,
	}
}

type SpecificationInput struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type WarrantyInput struct {
	WarrantyPeriod string `json:"warranty_period"`
	WarrantyType   string `json:"warranty_type"`
	Details        string `json:"details"`
}

type CreateProductInput struct {
	VendorID         string
	BrandID          *string
	CategoryID       string
	Name             string
	Slug             string
	ShortDescription string
	Description      string
	OriginalPrice    decimal.Decimal
	Discount         decimal.Decimal
	Images           []string
	Tags             []string
	IsActive         bool

	// 同時に作る子レコード
	Specifications []SpecificationInput
	Warranty       *WarrantyInput
}

func validatePriceAndDiscount(price decimal.Decimal, discount decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return NewHTTPError(http.StatusBadRequest, "original_price must be greater than 0")
	}
	if discount.IsNegative() || discount.GreaterThan(discountMax) {
		return NewHTTPError(http.StatusBadRequest, "discount must be between 0 and 100")
	}
	return nil
}

// CreateProductは商品本体・仕様・保証を1トランザクションで作る。
// どれかが失敗したら全部ロールバックする。
func (u *ProductUsecase) CreateProduct(ctx context.Context, p authz.Principal, in CreateProductInput) (model.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Name == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.VendorID == "" || in.CategoryID == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "vendor_id and category_id required")
	}
	if in.Slug == "" {
		in.Slug = validator.Slugify(in.Name)
	}
	if !validator.IsValidSlug(in.Slug) {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}
	if err := validatePriceAndDiscount(in.OriginalPrice, in.Discount); err != nil {
		return model.Product{}, err
	}

	// 指定ベンダーとして出品できるか（admin以外は自分の店だけ）
	if err := u.resolver.CanMutateVendorOwned(ctx, p, in.VendorID); err != nil {
		return model.Product{}, authzError(err)
	}

	// カテゴリ・ブランドの存在確認
	if _, err := u.categories.FindByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "category not found")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if in.BrandID != nil {
		if _, err := u.brands.FindByID(ctx, *in.BrandID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return model.Product{}, NewHTTPError(http.StatusBadRequest, "brand not found")
			}
			return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	if err := assertSlugAvailable(ctx, u.products.CountBySlug, in.Slug, ""); err != nil {
		return model.Product{}, err
	}

	product := model.Product{
		ProductID:        u.idGen.NewID(),
		VendorID:         in.VendorID,
		BrandID:          in.BrandID,
		CategoryID:       in.CategoryID,
		Name:             in.Name,
		Slug:             in.Slug,
		ShortDescription: in.ShortDescription,
		Description:      in.Description,
		OriginalPrice:    in.OriginalPrice,
		Discount:         in.Discount,
		Images:           in.Images,
		Tags:             in.Tags,
		IsActive:         in.IsActive,
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Products().Create(ctx, &product); err != nil {
			return err
		}

		if len(in.Specifications) > 0 {
			specs := make([]model.ProductSpecification, 0, len(in.Specifications))
			for _, s := range in.Specifications {
				if strings.TrimSpace(s.Key) == "" || strings.TrimSpace(s.Value) == "" {
					return NewHTTPError(http.StatusBadRequest, "specification key and value required")
				}
				specs = append(specs, model.ProductSpecification{
					ProductSpecificationID: u.idGen.NewID(),
					ProductID:              product.ProductID,
					Key:                    strings.TrimSpace(s.Key),
					Value:                  strings.TrimSpace(s.Value),
				})
			}
			if err := r.Specifications().CreateBatch(ctx, specs); err != nil {
				return err
			}
		}

		if in.Warranty != nil {
			if strings.TrimSpace(in.Warranty.WarrantyPeriod) == "" {
				return NewHTTPError(http.StatusBadRequest, "warranty_period required")
			}
			w := model.ProductWarranty{
				ProductWarrantyID: u.idGen.NewID(),
				ProductID:         product.ProductID,
				WarrantyPeriod:    strings.TrimSpace(in.Warranty.WarrantyPeriod),
				WarrantyType:      in.Warranty.WarrantyType,
				Details:           in.Warranty.Details,
			}
			if err := r.Warranties().Create(ctx, &w); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if he, ok := AsHTTPError(err); ok {
			return model.Product{}, he
		}
		return model.Product{}, repoError(err)
	}

	return product, nil
}

// 一覧の入力DTO
type ListProductsInput struct {
	Page       int
	Limit      int
	Q          string
	VendorID   string
	CategoryID string
	BrandID    string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Sort       string
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if len(in.Q) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}
	if in.MinPrice != nil && in.MinPrice.IsNegative() {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be >= 0")
	}
	if in.MaxPrice != nil && in.MaxPrice.IsNegative() {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "max_price must be >= 0")
	}
	if in.MinPrice != nil && in.MaxPrice != nil && in.MinPrice.GreaterThan(*in.MaxPrice) {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be <= max_price")
	}
	switch in.Sort {
	case "", "new", "price_asc", "price_desc":
	default:
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	items, total, err := u.products.List(ctx, repo.ProductListQuery{
		Page:       in.Page,
		Limit:      in.Limit,
		Q:          strings.TrimSpace(in.Q),
		VendorID:   in.VendorID,
		CategoryID: in.CategoryID,
		BrandID:    in.BrandID,
		MinPrice:   in.MinPrice,
		MaxPrice:   in.MaxPrice,
		ActiveOnly: true,
		Sort:       in.Sort,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

// 商品詳細は仕様と保証を含めて返す。
type ProductDetailOutput struct {
	model.Product
	Specifications []model.ProductSpecification `json:"specifications"`
	Warranty       *model.ProductWarranty       `json:"warranty"`
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID string) (ProductDetailOutput, error) {
	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return u.attachDetails(ctx, p)
}

func (u *ProductUsecase) GetProductBySlug(ctx context.Context, slug string) (ProductDetailOutput, error) {
	p, err := u.products.FindBySlug(ctx, slug)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return u.attachDetails(ctx, p)
}

func (u *ProductUsecase) attachDetails(ctx context.Context, p model.Product) (ProductDetailOutput, error) {
	specs, err := u.specs.ListByProductID(ctx, p.ProductID)
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := ProductDetailOutput{Product: p, Specifications: specs}

	w, err := u.warranties.FindByProductID(ctx, p.ProductID)
	if err == nil {
		out.Warranty = &w
	} else if !errors.Is(err, repo.ErrNotFound) {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return out, nil
}

type UpdateProductInput struct {
	BrandID          *string
	CategoryID       string
	Name             string
	Slug             string
	ShortDescription string
	Description      string
	OriginalPrice    decimal.Decimal
	Discount         decimal.Decimal
	Images           []string
	Tags             []string
	IsActive         bool
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, p authz.Principal, productID string, in UpdateProductInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Name == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.CategoryID == "" {
		return NewHTTPError(http.StatusBadRequest, "category_id required")
	}
	if in.Slug == "" {
		in.Slug = validator.Slugify(in.Name)
	}
	if !validator.IsValidSlug(in.Slug) {
		return NewHTTPError(http.StatusBadRequest, "invalid slug")
	}
	if err := validatePriceAndDiscount(in.OriginalPrice, in.Discount); err != nil {
		return err
	}

	// 所有チェック（product → vendor → user）
	if err := u.resolver.CanMutate(ctx, p, authz.Resource{Kind: authz.ResourceProduct, ID: productID}); err != nil {
		return authzError(err)
	}

	if _, err := u.categories.FindByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusBadRequest, "category not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if in.BrandID != nil {
		if _, err := u.brands.FindByID(ctx, *in.BrandID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusBadRequest, "brand not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	if err := assertSlugAvailable(ctx, u.products.CountBySlug, in.Slug, productID); err != nil {
		return err
	}

	err := u.products.Update(ctx, &model.Product{
		ProductID:        productID,
		BrandID:          in.BrandID,
		CategoryID:       in.CategoryID,
		Name:             in.Name,
		Slug:             in.Slug,
		ShortDescription: in.ShortDescription,
		Description:      in.Description,
		OriginalPrice:    in.OriginalPrice,
		Discount:         in.Discount,
		Images:           in.Images,
		Tags:             in.Tags,
		IsActive:         in.IsActive,
	})
	if err != nil {
		return repoError(err)
	}
	return nil
}

// DeleteProductは論理削除（is_active=false）。
func (u *ProductUsecase) DeleteProduct(ctx context.Context, p authz.Principal, productID string) error {
	if err := u.resolver.CanMutate(ctx, p, authz.Resource{Kind: authz.ResourceProduct, ID: productID}); err != nil {
		return authzError(err)
	}

	err := u.products.SoftDelete(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
