package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
	repo "github.com/nazmulhossain17/niyenin-api/internal/repository"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase/authz"
)

type WarrantyUsecase struct {
	warranties repo.WarrantyRepository
	products   repo.ProductRepository
	resolver   *authz.Resolver
	idGen      IDGenerator
}

// DI
func NewWarrantyUsecase(
	warranties repo.WarrantyRepository,
	products repo.ProductRepository,
	resolver *authz.Resolver,
	idGen IDGenerator,
) *WarrantyUsecase {
	return &WarrantyUsecase{warranties: warranties, products: products, resolver: resolver, idGen: idGen}
}

type CreateWarrantyInput struct {
	ProductID      string
	WarrantyPeriod string
	WarrantyType   string
	Details        string
}

// 1商品につき保証は1件まで。
func (u *WarrantyUsecase) CreateWarranty(ctx context.Context, p authz.Principal, in CreateWarrantyInput) (model.ProductWarranty, error) {
	in.WarrantyPeriod = strings.TrimSpace(in.WarrantyPeriod)
	if in.ProductID == "" || in.WarrantyPeriod == "" {
		return model.ProductWarranty{}, NewHTTPError(http.StatusBadRequest, "product_id and warranty_period required")
	}

	if err := u.resolver.CanMutate(ctx, p, authz.Resource{Kind: authz.ResourceProduct, ID: in.ProductID}); err != nil {
		return model.ProductWarranty{}, authzError(err)
	}

	// 既存チェック（最終的にはproduct_idのunique制約が守る）
	_, err := u.warranties.FindByProductID(ctx, in.ProductID)
	if err == nil {
		return model.ProductWarranty{}, NewHTTPError(http.StatusConflict, "warranty already exists")
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return model.ProductWarranty{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	w := model.ProductWarranty{
		ProductWarrantyID: u.idGen.NewID(),
		ProductID:         in.ProductID,
		WarrantyPeriod:    in.WarrantyPeriod,
		WarrantyType:      in.WarrantyType,
		Details:           in.Details,
	}
	if err := u.warranties.Create(ctx, &w); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return model.ProductWarranty{}, NewHTTPError(http.StatusConflict, "warranty already exists")
		}
		return model.ProductWarranty{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return w, nil
}

func (u *WarrantyUsecase) GetByProduct(ctx context.Context, productID string) (model.ProductWarranty, error) {
	w, err := u.warranties.FindByProductID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.ProductWarranty{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.ProductWarranty{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return w, nil
}

type UpdateWarrantyInput struct {
	WarrantyPeriod string
	WarrantyType   string
	Details        string
}

func (u *WarrantyUsecase) UpdateWarranty(ctx context.Context, p authz.Principal, warrantyID string, in UpdateWarrantyInput) error {
	in.WarrantyPeriod = strings.TrimSpace(in.WarrantyPeriod)
	if in.WarrantyPeriod == "" {
		return NewHTTPError(http.StatusBadRequest, "warranty_period required")
	}

	// 所有チェーン（warranty → product → vendor）を辿る
	if err := u.resolver.CanMutate(ctx, p, authz.Resource{Kind: authz.ResourceWarranty, ID: warrantyID}); err != nil {
		return authzError(err)
	}

	err := u.warranties.Update(ctx, &model.ProductWarranty{
		ProductWarrantyID: warrantyID,
		WarrantyPeriod:    in.WarrantyPeriod,
		WarrantyType:      in.WarrantyType,
		Details:           in.Details,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *WarrantyUsecase) DeleteWarranty(ctx context.Context, p authz.Principal, warrantyID string) error {
	if err := u.resolver.CanMutate(ctx, p, authz.Resource{Kind: authz.ResourceWarranty, ID: warrantyID}); err != nil {
		return authzError(err)
	}

	err := u.warranties.Delete(ctx, warrantyID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
