package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
	repo "github.com/nazmulhossain17/niyenin-api/internal/repository"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase/authz"
)

func newVendorUC(vendors *VendorRepoMock) *usecase.VendorUsecase {
	resolver := authz.NewResolver(new(UserRepoMock), vendors, new(ProductRepoMock), new(SpecRepoMock), new(WarrantyRepoMock), new(AnswerRepoMock))
	return usecase.NewVendorUsecase(vendors, resolver, &seqIDGen{})
}

func TestVendorUsecase_Create_Success(t *testing.T) {
	vendors := new(VendorRepoMock)
	uc := newVendorUC(vendors)

	vendors.On("FindByUserID", mock.Anything, "u1").Return(model.Vendor{}, repo.ErrNotFound)
	vendors.On("Create", mock.Anything, mock.Anything).Return(nil)

	v, err := uc.CreateVendor(context.Background(), vendorP, usecase.CreateVendorInput{ShopName: "Tanaka Store"})
	assert.NoError(t, err)
	assert.Equal(t, "u1", v.UserID)
	assert.True(t, v.IsActive)
}

// 1ユーザー1店舗。
func TestVendorUsecase_Create_SecondShopConflict(t *testing.T) {
	vendors := new(VendorRepoMock)
	uc := newVendorUC(vendors)

	vendors.On("FindByUserID", mock.Anything, "u1").Return(model.Vendor{VendorID: "v1", UserID: "u1"}, nil)

	_, err := uc.CreateVendor(context.Background(), vendorP, usecase.CreateVendorInput{ShopName: "Second Store"})
	assertHTTPStatus(t, err, http.StatusConflict)
}

func TestVendorUsecase_Update_OwnerOnly(t *testing.T) {
	vendors := new(VendorRepoMock)
	uc := newVendorUC(vendors)

	vendors.On("FindByID", mock.Anything, "v1").Return(model.Vendor{VendorID: "v1", UserID: "someone-else", IsActive: true}, nil)

	err := uc.UpdateVendor(context.Background(), vendorP, "v1", usecase.UpdateVendorInput{ShopName: "Renamed", IsActive: true})
	assertHTTPStatus(t, err, http.StatusForbidden)
}

func TestVendorUsecase_Update_AdminCanEditAny(t *testing.T) {
	vendors := new(VendorRepoMock)
	uc := newVendorUC(vendors)

	vendors.On("Update", mock.Anything, mock.Anything).Return(nil)

	err := uc.UpdateVendor(context.Background(), adminP, "v1", usecase.UpdateVendorInput{ShopName: "Renamed", IsActive: true})
	assert.NoError(t, err)
}

func TestVendorUsecase_Delete_SoftDeletes(t *testing.T) {
	vendors := new(VendorRepoMock)
	uc := newVendorUC(vendors)

	vendors.On("FindByID", mock.Anything, "v1").Return(model.Vendor{VendorID: "v1", UserID: "u1", IsActive: true}, nil)
	vendors.On("SoftDelete", mock.Anything, "v1").Return(nil)

	err := uc.DeleteVendor(context.Background(), vendorP, "v1")
	assert.NoError(t, err)
	vendors.AssertCalled(t, "SoftDelete", mock.Anything, "v1")
}
