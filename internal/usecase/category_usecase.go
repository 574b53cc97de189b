package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
	repo "github.com/nazmulhossain17/niyenin-api/internal/repository"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase/authz"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase/categorytree"
	"github.com/nazmulhossain17/niyenin-api/internal/validator"
)

// 親ポインタを辿る上限。これを超えたらデータ破損とみなして打ち切る。
const maxAncestorDepth = 32

var (
	ErrSelfParent        = NewHTTPError(http.StatusBadRequest, "category cannot be its own parent")
	ErrCircularReference = NewHTTPError(http.StatusBadRequest, "circular category reference")
	ErrHasChildren       = NewHTTPError(http.StatusBadRequest, "category has children")
)

type CategoryUsecase struct {
	categories repo.CategoryRepository
	idGen      IDGenerator
}

// DI
func NewCategoryUsecase(categories repo.CategoryRepository, idGen IDGenerator) *CategoryUsecase {
	return &CategoryUsecase{categories: categories, idGen: idGen}
}

type CategoryInput struct {
	Name     string
	Slug     string
	ParentID *string
}

func (in *CategoryInput) validate() error {
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
	if in.ParentID != nil && *in.ParentID == "" {
		in.ParentID = nil
	}
	return nil
}

// カテゴリの変更はadmin専用。
func (u *CategoryUsecase) CreateCategory(ctx context.Context, p authz.Principal, in CategoryInput) (model.Category, error) {
	if !p.IsAdmin() {
		return model.Category{}, NewHTTPError(http.StatusForbidden, "forbidden")
	}
	if err := in.validate(); err != nil {
		return model.Category{}, err
	}
	if err := assertSlugAvailable(ctx, u.categories.CountBySlug, in.Slug, ""); err != nil {
		return model.Category{}, err
	}

	// 親の存在確認
	if in.ParentID != nil {
		if _, err := u.categories.FindByID(ctx, *in.ParentID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return model.Category{}, NewHTTPError(http.StatusNotFound, "parent category not found")
			}
			return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	c := model.Category{
		CategoryID: u.idGen.NewID(),
		Name:       in.Name,
		Slug:       in.Slug,
		ParentID:   in.ParentID,
	}
	if err := u.categories.Create(ctx, &c); err != nil {
		return model.Category{}, repoError(err)
	}
	return c, nil
}

func (u *CategoryUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categories.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return categories, nil
}

func (u *CategoryUsecase) GetCategory(ctx context.Context, categoryID string) (model.Category, error) {
	c, err := u.categories.FindByID(ctx, categoryID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

// GetTreeは全カテゴリをフォレストにして返す。読み取り側は循環があっても落ちない。
func (u *CategoryUsecase) GetTree(ctx context.Context) ([]*categorytree.Node, error) {
	categories, err := u.categories.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return categorytree.BuildTree(categories), nil
}

func (u *CategoryUsecase) UpdateCategory(ctx context.Context, p authz.Principal, categoryID string, in CategoryInput) error {
	if !p.IsAdmin() {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}
	if err := in.validate(); err != nil {
		return err
	}

	if _, err := u.categories.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := assertSlugAvailable(ctx, u.categories.CountBySlug, in.Slug, categoryID); err != nil {
		return err
	}

	if in.ParentID != nil {
		if err := u.ensureNoCycle(ctx, categoryID, *in.ParentID); err != nil {
			return err
		}
	}

	err := u.categories.Update(ctx, &model.Category{
		CategoryID: categoryID,
		Name:       in.Name,
		Slug:       in.Slug,
		ParentID:   in.ParentID,
	})
	if err != nil {
		return repoError(err)
	}
	return nil
}

// ensureNoCycleは親の付け替えがツリーを壊さないことを確認する。
// 自分自身を親にするのは即拒否。新しい親の先祖チェーンを辿り、
// 自分に到達したら循環。上限深度を超えたら安全側に倒して拒否する。
func (u *CategoryUsecase) ensureNoCycle(ctx context.Context, categoryID string, newParentID string) error {
	if newParentID == categoryID {
		return ErrSelfParent
	}

	currentID := newParentID
	for depth := 0; depth < maxAncestorDepth; depth++ {
		parent, err := u.categories.FindByID(ctx, currentID)
		if errors.Is(err, repo.ErrNotFound) {
			if depth == 0 {
				// 指定された親そのものが存在しない
				return NewHTTPError(http.StatusNotFound, "parent category not found")
			}
			// 途中で切れているチェーンは循環にならない
			return nil
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if parent.ParentID == nil {
			return nil
		}
		if *parent.ParentID == categoryID {
			return ErrCircularReference
		}
		currentID = *parent.ParentID
	}

	// 深さ上限に達した＝データ破損の疑い。通さない。
	return ErrCircularReference
}

// DeleteCategoryは子を持つカテゴリを拒否する。
func (u *CategoryUsecase) DeleteCategory(ctx context.Context, p authz.Principal, categoryID string) error {
	if !p.IsAdmin() {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}

	if _, err := u.categories.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	n, err := u.categories.CountChildren(ctx, categoryID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if n > 0 {
		return ErrHasChildren
	}

	err = u.categories.Delete(ctx, categoryID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
