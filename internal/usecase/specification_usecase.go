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

type SpecificationUsecase struct {
	specs    repo.SpecificationRepository
	products repo.ProductRepository
	resolver *authz.Resolver
	idGen    IDGenerator
}

// DI
func NewSpecificationUsecase(
	specs repo.SpecificationRepository,
	products repo.ProductRepository,
	resolver *authz.Resolver,
	idGen IDGenerator,
) *SpecificationUsecase {
	return &SpecificationUsecase{specs: specs, products: products, resolver: resolver, idGen: idGen}
}

type CreateSpecificationInput struct {
	ProductID string
	Key       string
	Value     string
}

// 作成時はまだ仕様レコードが無いので、親のproductで所有チェックする。
func (u *SpecificationUsecase) CreateSpecification(ctx context.Context, p authz.Principal, in CreateSpecificationInput) (model.ProductSpecification, error) {
	in.Key = strings.TrimSpace(in.Key)
	in.Value = strings.TrimSpace(in.Value)
	if in.ProductID == "" || in.Key == "" || in.Value == "" {
		return model.ProductSpecification{}, NewHTTPError(http.StatusBadRequest, "product_id, key and value required")
	}

	if err := u.resolver.CanMutate(ctx, p, authz.Resource{Kind: authz.ResourceProduct, ID: in.ProductID}); err != nil {
		return model.ProductSpecification{}, authzError(err)
	}

	s := model.ProductSpecification{
		ProductSpecificationID: u.idGen.NewID(),
		ProductID:              in.ProductID,
		Key:                    in.Key,
		Value:                  in.Value,
	}
	if err := u.specs.Create(ctx, &s); err != nil {
		return model.ProductSpecification{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

type BulkCreateSpecificationsInput struct {
	ProductID      string
	Specifications []SpecificationInput
}

func (u *SpecificationUsecase) BulkCreateSpecifications(ctx context.Context, p authz.Principal, in BulkCreateSpecificationsInput) ([]model.ProductSpecification, error) {
	if in.ProductID == "" || len(in.Specifications) == 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "product_id and specifications required")
	}

	if err := u.resolver.CanMutate(ctx, p, authz.Resource{Kind: authz.ResourceProduct, ID: in.ProductID}); err != nil {
		return nil, authzError(err)
	}

	specs := make([]model.ProductSpecification, 0, len(in.Specifications))
	for _, s := range in.Specifications {
		key := strings.TrimSpace(s.Key)
		value := strings.TrimSpace(s.Value)
		if key == "" || value == "" {
			return nil, NewHTTPError(http.StatusBadRequest, "specification key and value required")
		}
		specs = append(specs, model.ProductSpecification{
			ProductSpecificationID: u.idGen.NewID(),
			ProductID:              in.ProductID,
			Key:                    key,
			Value:                  value,
		})
	}

	if err := u.specs.CreateBatch(ctx, specs); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return specs, nil
}

func (u *SpecificationUsecase) ListByProduct(ctx context.Context, productID string) ([]model.ProductSpecification, error) {
	if _, err := u.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "not found")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	specs, err := u.specs.ListByProductID(ctx, productID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return specs, nil
}

type UpdateSpecificationInput struct {
	Key   string
	Value string
}

func (u *SpecificationUsecase) UpdateSpecification(ctx context.Context, p authz.Principal, specID string, in UpdateSpecificationInput) error {
	in.Key = strings.TrimSpace(in.Key)
	in.Value = strings.TrimSpace(in.Value)
	if in.Key == "" || in.Value == "" {
		return NewHTTPError(http.StatusBadRequest, "key and value required")
	}

	// 所有チェーン（specification → product → vendor）を辿る
	if err := u.resolver.CanMutate(ctx, p, authz.Resource{Kind: authz.ResourceSpecification, ID: specID}); err != nil {
		return authzError(err)
	}

	err := u.specs.Update(ctx, &model.ProductSpecification{
		ProductSpecificationID: specID,
		Key:                    in.Key,
		Value:                  in.Value,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *SpecificationUsecase) DeleteSpecification(ctx context.Context, p authz.Principal, specID string) error {
	if err := u.resolver.CanMutate(ctx, p, authz.Resource{Kind: authz.ResourceSpecification, ID: specID}); err != nil {
		return authzError(err)
	}

	err := u.specs.Delete(ctx, specID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
