package repository

import (
	"context"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
)

type SpecificationRepository interface {
	ListByProductID(ctx context.Context, productID string) ([]model.ProductSpecification, error)
	FindByID(ctx context.Context, specID string) (model.ProductSpecification, error)

	Create(ctx context.Context, s *model.ProductSpecification) error
	CreateBatch(ctx context.Context, specs []model.ProductSpecification) error
	Update(ctx context.Context, s *model.ProductSpecification) error
	Delete(ctx context.Context, specID string) error
}

type WarrantyRepository interface {
	FindByID(ctx context.Context, warrantyID string) (model.ProductWarranty, error)
	FindByProductID(ctx context.Context, productID string) (model.ProductWarranty, error)

	Create(ctx context.Context, w *model.ProductWarranty) error
	Update(ctx context.Context, w *model.ProductWarranty) error
	Delete(ctx context.Context, warrantyID string) error
}
