package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
	repo "github.com/nazmulhossain17/niyenin-api/internal/repository"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase/authz"
	"github.com/nazmulhossain17/niyenin-api/internal/validator"
)

type BrandUsecase struct {
	brands repo.BrandRepository
	idGen  IDGenerator
}

// DI
func NewBrandUsecase(brands repo.BrandRepository, idGen IDGenerator) *BrandUsecase {
	return &BrandUsecase{brands: brands, idGen: idGen}
}

// slugの事前チェック。2つの同時作成はすり抜けるが、
// その場合はDBのunique制約がConflictとして返す。
func assertSlugAvailable(ctx context.Context, count func(context.Context, string, string) (int64, error), slug string, excludeID string) error {
	n, err := count(ctx, slug, excludeID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if n > 0 {
		return NewHTTPError(http.StatusConflict, "slug already exists")
	}
	return nil
}

type BrandInput struct {
	Name string
	Slug string
}

func (in *BrandInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Name == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Slug == "" {
		in.Slug = validator.Slugify(in.Name)
	}
	if !validator.IsValidSlug(in.Slug) {
		return NewHTTPError(http.StatusBadRequest, "invalid slug")
	}
	return nil
}

// ブランドの変更はadmin専用。
func (u *BrandUsecase) CreateBrand(ctx context.Context, p authz.Principal, in BrandInput) (model.Brand, error) {
	if !p.IsAdmin() {
		return model.Brand{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}
	if err := in.validate(); err != nil {
		return model.Brand{}, err
	}
	if err := assertSlugAvailable(ctx, u.brands.CountBySlug, in.Slug, ""); err != nil {
		return model.Brand{}, err
	}

	b := model.Brand{
		BrandID: u.idGen.NewID(),
		Name:    in.Name,
		Slug:    in.Slug,
	}
	if err := u.brands.Create(ctx, &b); err != nil {
		return model.Brand{}, repoError(err)
	}
	return b, nil
}

func (u *BrandUsecase) ListBrands(ctx context.Context) ([]model.Brand, error) {
	brands, err := u.brands.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return brands, nil
}

func (u *BrandUsecase) GetBrand(ctx context.Context, brandID string) (model.Brand, error) {
	b, err := u.brands.FindByID(ctx, brandID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Brand{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Brand{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return b, nil
}

func (u *BrandUsecase) UpdateBrand(ctx context.Context, p authz.Principal, brandID string, in BrandInput) error {
	if !p.IsAdmin() {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}
	if err := in.validate(); err != nil {
		return err
	}
	// 更新時は自分自身のslugを除外してチェック
	if err := assertSlugAvailable(ctx, u.brands.CountBySlug, in.Slug, brandID); err != nil {
		return err
	}

	err := u.brands.Update(ctx, &model.Brand{
		BrandID: brandID,
		Name:    in.Name,
		Slug:    in.Slug,
	})
	if err != nil {
		return repoError(err)
	}
	return nil
}

func (u *BrandUsecase) DeleteBrand(ctx context.Context, p authz.Principal, brandID string) error {
	if !p.IsAdmin() {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}

	err := u.brands.Delete(ctx, brandID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
