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

type CatRepoMock struct{ mock.Mock }

func (m *CatRepoMock) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]model.Category)
	return cs, args.Error(1)
}
func (m *CatRepoMock) FindByID(ctx context.Context, categoryID string) (model.Category, error) {
	args := m.Called(ctx, categoryID)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}
func (m *CatRepoMock) CountBySlug(ctx context.Context, slug string, excludeID string) (int64, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *CatRepoMock) CountChildren(ctx context.Context, categoryID string) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *CatRepoMock) Create(ctx context.Context, c *model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *CatRepoMock) Update(ctx context.Context, c *model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *CatRepoMock) Delete(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

var adminP = authz.Principal{UserID: "admin1", Role: authz.RoleAdmin}
var customerP = authz.Principal{UserID: "cust1", Role: authz.RoleCustomer}

func TestCategoryUsecase_Create_Success(t *testing.T) {
	m := new(CatRepoMock)
	uc := usecase.NewCategoryUsecase(m, &seqIDGen{})

	m.On("CountBySlug", mock.Anything, "electronics", "").Return(int64(0), nil)
	m.On("Create", mock.Anything, mock.Anything).Return(nil)

	c, err := uc.CreateCategory(context.Background(), adminP, usecase.CategoryInput{Name: "Electronics"})
	assert.NoError(t, err)
	assert.Equal(t, "id-1", c.CategoryID)
	// slugは名前から導出される
	assert.Equal(t, "electronics", c.Slug)
	assert.Nil(t, c.ParentID)
}

func TestCategoryUsecase_Create_NonAdminForbidden(t *testing.T) {
	uc := usecase.NewCategoryUsecase(new(CatRepoMock), &seqIDGen{})

	_, err := uc.CreateCategory(context.Background(), customerP, usecase.CategoryInput{Name: "Electronics"})
	assertHTTPStatus(t, err, http.StatusForbidden)
}

func TestCategoryUsecase_Create_SlugConflict(t *testing.T) {
	m := new(CatRepoMock)
	uc := usecase.NewCategoryUsecase(m, &seqIDGen{})

	m.On("CountBySlug", mock.Anything, "electronics", "").Return(int64(1), nil)

	_, err := uc.CreateCategory(context.Background(), adminP, usecase.CategoryInput{Name: "Electronics"})
	assertHTTPStatus(t, err, http.StatusConflict)
}

func TestCategoryUsecase_Create_ParentMissing(t *testing.T) {
	m := new(CatRepoMock)
	uc := usecase.NewCategoryUsecase(m, &seqIDGen{})

	m.On("CountBySlug", mock.Anything, "laptops", "").Return(int64(0), nil)
	m.On("FindByID", mock.Anything, "gone").Return(model.Category{}, repo.ErrNotFound)

	_, err := uc.CreateCategory(context.Background(), adminP, usecase.CategoryInput{
		Name:     "Laptops",
		ParentID: strPtr("gone"),
	})
	assertHTTPStatus(t, err, http.StatusNotFound)
}

// 事前チェックをすり抜けた同時作成はDBのunique制約でConflictになる。
func TestCategoryUsecase_Create_DBConflictWinsRace(t *testing.T) {
	m := new(CatRepoMock)
	uc := usecase.NewCategoryUsecase(m, &seqIDGen{})

	m.On("CountBySlug", mock.Anything, "electronics", "").Return(int64(0), nil)
	m.On("Create", mock.Anything, mock.Anything).Return(repo.ErrConflict)

	_, err := uc.CreateCategory(context.Background(), adminP, usecase.CategoryInput{Name: "Electronics"})
	assertHTTPStatus(t, err, http.StatusConflict)
}

func TestCategoryUsecase_Update_SelfParent(t *testing.T) {
	m := new(CatRepoMock)
	uc := usecase.NewCategoryUsecase(m, &seqIDGen{})

	m.On("FindByID", mock.Anything, "c1").Return(model.Category{CategoryID: "c1"}, nil)
	m.On("CountBySlug", mock.Anything, "electronics", "c1").Return(int64(0), nil)

	err := uc.UpdateCategory(context.Background(), adminP, "c1", usecase.CategoryInput{
		Name:     "Electronics",
		ParentID: strPtr("c1"),
	})
	assert.ErrorIs(t, err, usecase.ErrSelfParent)
}

// c1 → c2 → c1 の付け替えを拒否する。
func TestCategoryUsecase_Update_CircularReference(t *testing.T) {
	m := new(CatRepoMock)
	uc := usecase.NewCategoryUsecase(m, &seqIDGen{})

	m.On("FindByID", mock.Anything, "c1").Return(model.Category{CategoryID: "c1"}, nil)
	m.On("CountBySlug", mock.Anything, "electronics", "c1").Return(int64(0), nil)
	// c2の親はc1
	m.On("FindByID", mock.Anything, "c2").Return(model.Category{CategoryID: "c2", ParentID: strPtr("c1")}, nil)

	err := uc.UpdateCategory(context.Background(), adminP, "c1", usecase.CategoryInput{
		Name:     "Electronics",
		ParentID: strPtr("c2"),
	})
	assert.ErrorIs(t, err, usecase.ErrCircularReference)
}

// 深い孫への付け替えも先祖チェーンを辿って検出する。
func TestCategoryUsecase_Update_DeepCircularReference(t *testing.T) {
	m := new(CatRepoMock)
	uc := usecase.NewCategoryUsecase(m, &seqIDGen{})

	m.On("FindByID", mock.Anything, "c1").Return(model.Category{CategoryID: "c1"}, nil)
	m.On("CountBySlug", mock.Anything, "electronics", "c1").Return(int64(0), nil)
	// c3 → c2 → c1
	m.On("FindByID", mock.Anything, "c3").Return(model.Category{CategoryID: "c3", ParentID: strPtr("c2")}, nil)
	m.On("FindByID", mock.Anything, "c2").Return(model.Category{CategoryID: "c2", ParentID: strPtr("c1")}, nil)

	err := uc.UpdateCategory(context.Background(), adminP, "c1", usecase.CategoryInput{
		Name:     "Electronics",
		ParentID: strPtr("c3"),
	})
	assert.ErrorIs(t, err, usecase.ErrCircularReference)
}

func TestCategoryUsecase_Update_ValidReparent(t *testing.T) {
	m := new(CatRepoMock)
	uc := usecase.NewCategoryUsecase(m, &seqIDGen{})

	m.On("FindByID", mock.Anything, "c1").Return(model.Category{CategoryID: "c1"}, nil)
	m.On("CountBySlug", mock.Anything, "laptops", "c1").Return(int64(0), nil)
	// c2はルート
	m.On("FindByID", mock.Anything, "c2").Return(model.Category{CategoryID: "c2"}, nil)
	m.On("Update", mock.Anything, mock.Anything).Return(nil)

	err := uc.UpdateCategory(context.Background(), adminP, "c1", usecase.CategoryInput{
		Name:     "Laptops",
		ParentID: strPtr("c2"),
	})
	assert.NoError(t, err)
}

func TestCategoryUsecase_Update_NewParentMissing(t *testing.T) {
	m := new(CatRepoMock)
	uc := usecase.NewCategoryUsecase(m, &seqIDGen{})

	m.On("FindByID", mock.Anything, "c1").Return(model.Category{CategoryID: "c1"}, nil)
	m.On("CountBySlug", mock.Anything, "laptops", "c1").Return(int64(0), nil)
	m.On("FindByID", mock.Anything, "gone").Return(model.Category{}, repo.ErrNotFound)

	err := uc.UpdateCategory(context.Background(), adminP, "c1", usecase.CategoryInput{
		Name:     "Laptops",
		ParentID: strPtr("gone"),
	})
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestCategoryUsecase_Delete_HasChildren(t *testing.T) {
	m := new(CatRepoMock)
	uc := usecase.NewCategoryUsecase(m, &seqIDGen{})

	m.On("FindByID", mock.Anything, "c1").Return(model.Category{CategoryID: "c1"}, nil)
	m.On("CountChildren", mock.Anything, "c1").Return(int64(2), nil)

	err := uc.DeleteCategory(context.Background(), adminP, "c1")
	assert.ErrorIs(t, err, usecase.ErrHasChildren)
}

func TestCategoryUsecase_Delete_Leaf(t *testing.T) {
	m := new(CatRepoMock)
	uc := usecase.NewCategoryUsecase(m, &seqIDGen{})

	m.On("FindByID", mock.Anything, "c1").Return(model.Category{CategoryID: "c1"}, nil)
	m.On("CountChildren", mock.Anything, "c1").Return(int64(0), nil)
	m.On("Delete", mock.Anything, "c1").Return(nil)

	err := uc.DeleteCategory(context.Background(), adminP, "c1")
	assert.NoError(t, err)
}

func TestCategoryUsecase_GetTree(t *testing.T) {
	m := new(CatRepoMock)
	uc := usecase.NewCategoryUsecase(m, &seqIDGen{})

	m.On("List", mock.Anything).Return([]model.Category{
		{CategoryID: "c1", Name: "Electronics", Slug: "electronics"},
		{CategoryID: "c2", Name: "Laptops", Slug: "laptops", ParentID: strPtr("c1")},
	}, nil)

	nodes, err := uc.GetTree(context.Background())
	assert.NoError(t, err)
	assert.Len(t, nodes, 1)
	assert.Equal(t, "c1", nodes[0].CategoryID)
	assert.Len(t, nodes[0].Children, 1)
}
