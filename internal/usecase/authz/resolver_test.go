package authz_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
	repo "github.com/nazmulhossain17/niyenin-api/internal/repository"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase/authz"
)

// =====================
// Mocks
// =====================

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) FindByID(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}
func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	panic("not used in Resolver tests")
}
func (m *UserRepoMock) CountByEmail(ctx context.Context, email string) (int64, error) {
	panic("not used in Resolver tests")
}
func (m *UserRepoMock) CountByPhone(ctx context.Context, phone string) (int64, error) {
	panic("not used in Resolver tests")
}
func (m *UserRepoMock) Create(ctx context.Context, u *model.User) error {
	panic("not used in Resolver tests")
}
func (m *UserRepoMock) Update(ctx context.Context, u *model.User) error {
	panic("not used in Resolver tests")
}
func (m *UserRepoMock) UpdatePassword(ctx context.Context, userID string, hashed string) error {
	panic("not used in Resolver tests")
}
func (m *UserRepoMock) Deactivate(ctx context.Context, userID string) error {
	panic("not used in Resolver tests")
}

type VendorRepoMock struct{ mock.Mock }

func (m *VendorRepoMock) List(ctx context.Context) ([]model.Vendor, error) {
	panic("not used in Resolver tests")
}
func (m *VendorRepoMock) FindByID(ctx context.Context, vendorID string) (model.Vendor, error) {
	args := m.Called(ctx, vendorID)
	v, _ := args.Get(0).(model.Vendor)
	return v, args.Error(1)
}
func (m *VendorRepoMock) FindByUserID(ctx context.Context, userID string) (model.Vendor, error) {
	panic("not used in Resolver tests")
}
func (m *VendorRepoMock) Create(ctx context.Context, v *model.Vendor) error {
	panic("not used in Resolver tests")
}
func (m *VendorRepoMock) Update(ctx context.Context, v *model.Vendor) error {
	panic("not used in Resolver tests")
}
func (m *VendorRepoMock) SoftDelete(ctx context.Context, vendorID string) error {
	panic("not used in Resolver tests")
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	panic("not used in Resolver tests")
}
func (m *ProductRepoMock) FindByID(ctx context.Context, productID string) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}
func (m *ProductRepoMock) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	panic("not used in Resolver tests")
}
func (m *ProductRepoMock) CountBySlug(ctx context.Context, slug string, excludeID string) (int64, error) {
	panic("not used in Resolver tests")
}
func (m *ProductRepoMock) Create(ctx context.Context, p *model.Product) error {
	panic("not used in Resolver tests")
}
func (m *ProductRepoMock) Update(ctx context.Context, p *model.Product) error {
	panic("not used in Resolver tests")
}
func (m *ProductRepoMock) SoftDelete(ctx context.Context, productID string) error {
	panic("not used in Resolver tests")
}

type SpecRepoMock struct{ mock.Mock }

func (m *SpecRepoMock) ListByProductID(ctx context.Context, productID string) ([]model.ProductSpecification, error) {
	panic("not used in Resolver tests")
}
func (m *SpecRepoMock) FindByID(ctx context.Context, specID string) (model.ProductSpecification, error) {
	args := m.Called(ctx, specID)
	s, _ := args.Get(0).(model.ProductSpecification)
	return s, args.Error(1)
}
func (m *SpecRepoMock) Create(ctx context.Context, s *model.ProductSpecification) error {
	panic("not used in Resolver tests")
}
func (m *SpecRepoMock) CreateBatch(ctx context.Context, specs []model.ProductSpecification) error {
	panic("not used in Resolver tests")
}
func (m *SpecRepoMock) Update(ctx context.Context, s *model.ProductSpecification) error {
	panic("not used in Resolver tests")
}
func (m *SpecRepoMock) Delete(ctx context.Context, specID string) error {
	panic("not used in Resolver tests")
}

type WarrantyRepoMock struct{ mock.Mock }

func (m *WarrantyRepoMock) FindByID(ctx context.Context, warrantyID string) (model.ProductWarranty, error) {
	args := m.Called(ctx, warrantyID)
	w, _ := args.Get(0).(model.ProductWarranty)
	return w, args.Error(1)
}
func (m *WarrantyRepoMock) FindByProductID(ctx context.Context, productID string) (model.ProductWarranty, error) {
	panic("not used in Resolver tests")
}
func (m *WarrantyRepoMock) Create(ctx context.Context, w *model.ProductWarranty) error {
	panic("not used in Resolver tests")
}
func (m *WarrantyRepoMock) Update(ctx context.Context, w *model.ProductWarranty) error {
	panic("not used in Resolver tests")
}
func (m *WarrantyRepoMock) Delete(ctx context.Context, warrantyID string) error {
	panic("not used in Resolver tests")
}

type AnswerRepoMock struct{ mock.Mock }

func (m *AnswerRepoMock) ListByQuestionID(ctx context.Context, questionID string) ([]model.ProductAnswer, error) {
	panic("not used in Resolver tests")
}
func (m *AnswerRepoMock) FindByID(ctx context.Context, answerID string) (model.ProductAnswer, error) {
	args := m.Called(ctx, answerID)
	a, _ := args.Get(0).(model.ProductAnswer)
	return a, args.Error(1)
}
func (m *AnswerRepoMock) CountByQuestionID(ctx context.Context, questionID string) (int64, error) {
	panic("not used in Resolver tests")
}
func (m *AnswerRepoMock) Create(ctx context.Context, a *model.ProductAnswer) error {
	panic("not used in Resolver tests")
}
func (m *AnswerRepoMock) Update(ctx context.Context, a *model.ProductAnswer) error {
	panic("not used in Resolver tests")
}
func (m *AnswerRepoMock) Delete(ctx context.Context, answerID string) error {
	panic("not used in Resolver tests")
}
func (m *AnswerRepoMock) DeleteByQuestionID(ctx context.Context, questionID string) error {
	panic("not used in Resolver tests")
}

type mocks struct {
	users      *UserRepoMock
	vendors    *VendorRepoMock
	products   *ProductRepoMock
	specs      *SpecRepoMock
	warranties *WarrantyRepoMock
	answers    *AnswerRepoMock
}

func newResolver() (*authz.Resolver, mocks) {
	m := mocks{
		users:      new(UserRepoMock),
		vendors:    new(VendorRepoMock),
		products:   new(ProductRepoMock),
		specs:      new(SpecRepoMock),
		warranties: new(WarrantyRepoMock),
		answers:    new(AnswerRepoMock),
	}
	r := authz.NewResolver(m.users, m.vendors, m.products, m.specs, m.warranties, m.answers)
	return r, m
}

// =====================
// Role
// =====================

func TestRole_Levels(t *testing.T) {
	assert.Equal(t, 0, authz.RoleAdmin.Level())
	assert.Equal(t, 1, authz.RoleVendor.Level())
	assert.Equal(t, 2, authz.RoleCustomer.Level())

	// 未知のロールはcustomerより弱い
	assert.Greater(t, authz.Role("superuser").Level(), authz.LevelCustomer)
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, authz.RoleAdmin.AtLeast(authz.RoleVendor))
	assert.True(t, authz.RoleAdmin.AtLeast(authz.RoleCustomer))
	assert.True(t, authz.RoleVendor.AtLeast(authz.RoleVendor))
	assert.False(t, authz.RoleCustomer.AtLeast(authz.RoleVendor))
	assert.False(t, authz.RoleVendor.AtLeast(authz.RoleAdmin))
}

func TestParseRole(t *testing.T) {
	role, ok := authz.ParseRole("vendor")
	assert.True(t, ok)
	assert.Equal(t, authz.RoleVendor, role)

	_, ok = authz.ParseRole("root")
	assert.False(t, ok)
}

// =====================
// ResolveRole
// =====================

func TestResolver_ResolveRole_Success(t *testing.T) {
	r, m := newResolver()

	m.users.On("FindByID", mock.Anything, "u1").Return(&model.User{
		UserID: "u1",
		Role:   &model.Role{Name: "vendor", Level: 1},
	}, nil)

	info, err := r.ResolveRole(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, authz.RoleVendor, info.Name)
	assert.Equal(t, 1, info.Level)
}

func TestResolver_ResolveRole_UserMissing(t *testing.T) {
	r, m := newResolver()

	m.users.On("FindByID", mock.Anything, "gone").Return(nil, repo.ErrNotFound)

	_, err := r.ResolveRole(context.Background(), "gone")
	assert.ErrorIs(t, err, authz.ErrNotFound)
}

func TestResolver_ResolveRole_UnknownRoleName(t *testing.T) {
	r, m := newResolver()

	m.users.On("FindByID", mock.Anything, "u1").Return(&model.User{
		UserID: "u1",
		Role:   &model.Role{Name: "superuser", Level: 0},
	}, nil)

	_, err := r.ResolveRole(context.Background(), "u1")
	assert.ErrorIs(t, err, authz.ErrNotFound)
}

// =====================
// CanMutate
// =====================

func TestResolver_CanMutate_AdminBypassesLookups(t *testing.T) {
	r, _ := newResolver()

	p := authz.Principal{UserID: "admin1", Role: authz.RoleAdmin}
	err := r.CanMutate(context.Background(), p, authz.Resource{Kind: authz.ResourceProduct, ID: "p1"})
	assert.NoError(t, err)
}

func TestResolver_CanMutate_VendorOwnsProduct(t *testing.T) {
	r, m := newResolver()

	m.products.On("FindByID", mock.Anything, "p1").Return(model.Product{ProductID: "p1", VendorID: "v1"}, nil)
	m.vendors.On("FindByID", mock.Anything, "v1").Return(model.Vendor{VendorID: "v1", UserID: "u1", IsActive: true}, nil)

	p := authz.Principal{UserID: "u1", Role: authz.RoleVendor}
	err := r.CanMutate(context.Background(), p, authz.Resource{Kind: authz.ResourceProduct, ID: "p1"})
	assert.NoError(t, err)
}

func TestResolver_CanMutate_OtherVendorsProduct(t *testing.T) {
	r, m := newResolver()

	m.products.On("FindByID", mock.Anything, "p1").Return(model.Product{ProductID: "p1", VendorID: "v1"}, nil)
	m.vendors.On("FindByID", mock.Anything, "v1").Return(model.Vendor{VendorID: "v1", UserID: "someone-else", IsActive: true}, nil)

	p := authz.Principal{UserID: "u1", Role: authz.RoleVendor}
	err := r.CanMutate(context.Background(), p, authz.Resource{Kind: authz.ResourceProduct, ID: "p1"})
	assert.ErrorIs(t, err, authz.ErrForbidden)
}

func TestResolver_CanMutate_InactiveVendor(t *testing.T) {
	r, m := newResolver()

	m.vendors.On("FindByID", mock.Anything, "v1").Return(model.Vendor{VendorID: "v1", UserID: "u1", IsActive: false}, nil)

	p := authz.Principal{UserID: "u1", Role: authz.RoleVendor}
	err := r.CanMutate(context.Background(), p, authz.Resource{Kind: authz.ResourceVendor, ID: "v1"})
	assert.ErrorIs(t, err, authz.ErrForbidden)
}

// チェーンの途中が消えていたらForbiddenではなくNotFound。
func TestResolver_CanMutate_MissingProductIsNotFound(t *testing.T) {
	r, m := newResolver()

	m.products.On("FindByID", mock.Anything, "gone").Return(model.Product{}, repo.ErrNotFound)

	p := authz.Principal{UserID: "u1", Role: authz.RoleVendor}
	err := r.CanMutate(context.Background(), p, authz.Resource{Kind: authz.ResourceProduct, ID: "gone"})
	assert.ErrorIs(t, err, authz.ErrNotFound)
}

// specification → product → vendor の2段チェーン。
func TestResolver_CanMutate_SpecificationChain(t *testing.T) {
	r, m := newResolver()

	m.specs.On("FindByID", mock.Anything, "s1").Return(model.ProductSpecification{ProductSpecificationID: "s1", ProductID: "p1"}, nil)
	m.products.On("FindByID", mock.Anything, "p1").Return(model.Product{ProductID: "p1", VendorID: "v1"}, nil)
	m.vendors.On("FindByID", mock.Anything, "v1").Return(model.Vendor{VendorID: "v1", UserID: "u1", IsActive: true}, nil)

	p := authz.Principal{UserID: "u1", Role: authz.RoleVendor}
	err := r.CanMutate(context.Background(), p, authz.Resource{Kind: authz.ResourceSpecification, ID: "s1"})
	assert.NoError(t, err)
}

// specificationは存在するが親のproductが消えている場合もNotFound。
func TestResolver_CanMutate_SpecificationWithMissingProduct(t *testing.T) {
	r, m := newResolver()

	m.specs.On("FindByID", mock.Anything, "s1").Return(model.ProductSpecification{ProductSpecificationID: "s1", ProductID: "p-gone"}, nil)
	m.products.On("FindByID", mock.Anything, "p-gone").Return(model.Product{}, repo.ErrNotFound)

	p := authz.Principal{UserID: "u1", Role: authz.RoleVendor}
	err := r.CanMutate(context.Background(), p, authz.Resource{Kind: authz.ResourceSpecification, ID: "s1"})
	assert.ErrorIs(t, err, authz.ErrNotFound)
}

func TestResolver_CanMutate_WarrantyChain(t *testing.T) {
	r, m := newResolver()

	m.warranties.On("FindByID", mock.Anything, "w1").Return(model.ProductWarranty{ProductWarrantyID: "w1", ProductID: "p1"}, nil)
	m.products.On("FindByID", mock.Anything, "p1").Return(model.Product{ProductID: "p1", VendorID: "v1"}, nil)
	m.vendors.On("FindByID", mock.Anything, "v1").Return(model.Vendor{VendorID: "v1", UserID: "u1", IsActive: true}, nil)

	p := authz.Principal{UserID: "u1", Role: authz.RoleVendor}
	err := r.CanMutate(context.Background(), p, authz.Resource{Kind: authz.ResourceWarranty, ID: "w1"})
	assert.NoError(t, err)
}

// answerはvendor_idを直接持つのでproductを経由しない。
func TestResolver_CanMutate_AnswerDirectVendor(t *testing.T) {
	r, m := newResolver()

	m.answers.On("FindByID", mock.Anything, "a1").Return(model.ProductAnswer{ProductAnswerID: "a1", VendorID: "v1"}, nil)
	m.vendors.On("FindByID", mock.Anything, "v1").Return(model.Vendor{VendorID: "v1", UserID: "u1", IsActive: true}, nil)

	p := authz.Principal{UserID: "u1", Role: authz.RoleVendor}
	err := r.CanMutate(context.Background(), p, authz.Resource{Kind: authz.ResourceAnswer, ID: "a1"})
	assert.NoError(t, err)
}

func TestResolver_CanMutateVendorOwned(t *testing.T) {
	r, m := newResolver()

	m.vendors.On("FindByID", mock.Anything, "v1").Return(model.Vendor{VendorID: "v1", UserID: "u1", IsActive: true}, nil)

	p := authz.Principal{UserID: "u1", Role: authz.RoleVendor}
	assert.NoError(t, r.CanMutateVendorOwned(context.Background(), p, "v1"))
}
