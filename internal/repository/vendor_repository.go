package repository

import (
	"context"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
)

type VendorRepository interface {
	List(ctx context.Context) ([]model.Vendor, error)
	FindByID(ctx context.Context, vendorID string) (model.Vendor, error)
	FindByUserID(ctx context.Context, userID string) (model.Vendor, error)

	Create(ctx context.Context, v *model.Vendor) error
	Update(ctx context.Context, v *model.Vendor) error
	SoftDelete(ctx context.Context, vendorID string) error
}
