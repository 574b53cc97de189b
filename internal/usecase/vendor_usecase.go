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

type VendorUsecase struct {
	vendors  repo.VendorRepository
	resolver *authz.Resolver
	idGen    IDGenerator
}

// DI
func NewVendorUsecase(vendors repo.VendorRepository, resolver *authz.Resolver, idGen IDGenerator) *VendorUsecase {
	return &VendorUsecase{vendors: vendors, resolver: resolver, idGen: idGen}
}

type CreateVendorInput struct {
	ShopName    string
	Description string
}

// CreateVendorは操作主体自身の店舗を作る。1ユーザー1店舗。
func (u *VendorUsecase) CreateVendor(ctx context.Context, p authz.Principal, in CreateVendorInput) (model.Vendor, error) {
	in.ShopName = strings.TrimSpace(in.ShopName)
	if in.ShopName == "" {
		return model.Vendor{}, NewHTTPError(http.StatusBadRequest, "shop_name required")
	}

	// 既に店舗を持っていたら409
	_, err := u.vendors.FindByUserID(ctx, p.UserID)
	if err == nil {
		return model.Vendor{}, NewHTTPError(http.StatusConflict, "vendor profile already exists")
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return model.Vendor{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	v := model.Vendor{
		VendorID:    u.idGen.NewID(),
		UserID:      p.UserID,
		ShopName:    in.ShopName,
		Description: in.Description,
		IsActive:    true,
	}
	if err := u.vendors.Create(ctx, &v); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return model.Vendor{}, NewHTTPError(http.StatusConflict, "vendor profile already exists")
		}
		return model.Vendor{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return v, nil
}

func (u *VendorUsecase) ListVendors(ctx context.Context) ([]model.Vendor, error) {
	vendors, err := u.vendors.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return vendors, nil
}

func (u *VendorUsecase) GetVendor(ctx context.Context, vendorID string) (model.Vendor, error) {
	v, err := u.vendors.FindByID(ctx, vendorID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Vendor{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Vendor{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return v, nil
}

type UpdateVendorInput struct {
	ShopName    string
	Description string
	IsActive    bool
}

func (u *VendorUsecase) UpdateVendor(ctx context.Context, p authz.Principal, vendorID string, in UpdateVendorInput) error {
	in.ShopName = strings.TrimSpace(in.ShopName)
	if in.ShopName == "" {
		return NewHTTPError(http.StatusBadRequest, "shop_name required")
	}

	if err := u.resolver.CanMutate(ctx, p, authz.Resource{Kind: authz.ResourceVendor, ID: vendorID}); err != nil {
		return authzError(err)
	}

	err := u.vendors.Update(ctx, &model.Vendor{
		VendorID:    vendorID,
		ShopName:    in.ShopName,
		Description: in.Description,
		IsActive:    in.IsActive,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *VendorUsecase) DeleteVendor(ctx context.Context, p authz.Principal, vendorID string) error {
	if err := u.resolver.CanMutate(ctx, p, authz.Resource{Kind: authz.ResourceVendor, ID: vendorID}); err != nil {
		return authzError(err)
	}

	err := u.vendors.SoftDelete(ctx, vendorID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
