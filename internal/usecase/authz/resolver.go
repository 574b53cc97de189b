package authz

import (
	"context"
	"errors"

	"github.com/nazmulhossain17/niyenin-api/internal/repository"
)

var (
	// 認証済みだが権限がない
	ErrForbidden = errors.New("forbidden")

	// 所有チェーンの途中のレコードが存在しない。
	// 親が消えている場合は権限を評価できないのでForbiddenではなくこちら。
	ErrNotFound = errors.New("not found")
)

// ResourceKindは所有チェーンの解決方法を決めるタグ。
type ResourceKind string

const (
	ResourceVendor        ResourceKind = "vendor"
	ResourceProduct       ResourceKind = "product"
	ResourceSpecification ResourceKind = "specification"
	ResourceWarranty      ResourceKind = "warranty"
	ResourceAnswer        ResourceKind = "answer"
)

// Resourceは変更対象のリソース。
type Resource struct {
	Kind ResourceKind
	ID   string
}

// RoleInfoは解決済みのロール。
type RoleInfo struct {
	Name  Role `json:"name"`
	Level int  `json:"level"`
}

// Resolverはprincipalのロール解決と、ベンダー所有リソースの
// 変更可否の判定をまとめたもの。
type Resolver struct {
	users      repository.UserRepository
	vendors    repository.VendorRepository
	products   repository.ProductRepository
	specs      repository.SpecificationRepository
	warranties repository.WarrantyRepository
	answers    repository.AnswerRepository
}

// DI
func NewResolver(
	users repository.UserRepository,
	vendors repository.VendorRepository,
	products repository.ProductRepository,
	specs repository.SpecificationRepository,
	warranties repository.WarrantyRepository,
	answers repository.AnswerRepository,
) *Resolver {
	return &Resolver{
		users:      users,
		vendors:    vendors,
		products:   products,
		specs:      specs,
		warranties: warranties,
		answers:    answers,
	}
}

// ResolveRoleはユーザーIDからロールを引く。読み取りのみ。
// ユーザーもしくはロールが無ければErrNotFound（呼び出し側は401相当として扱う）。
func (r *Resolver) ResolveRole(ctx context.Context, userID string) (RoleInfo, error) {
	u, err := r.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return RoleInfo{}, ErrNotFound
	}
	if err != nil {
		return RoleInfo{}, err
	}
	if u.Role == nil {
		return RoleInfo{}, ErrNotFound
	}

	name, ok := ParseRole(u.Role.Name)
	if !ok {
		return RoleInfo{}, ErrNotFound
	}
	return RoleInfo{Name: name, Level: u.Role.Level}, nil
}

// CanMutateはprincipalがリソースを変更してよいか判定する。
// adminは無条件で許可。それ以外は所有チェーンをVendorまで辿り、
// vendor.user_idとprincipalが一致し、かつベンダーが有効なら許可。
// 戻り値: nil=許可 / ErrForbidden / ErrNotFound。
func (r *Resolver) CanMutate(ctx context.Context, p Principal, res Resource) error {
	if p.IsAdmin() {
		return nil
	}

	vendorID, err := r.resolveOwningVendor(ctx, res)
	if err != nil {
		return err
	}

	v, err := r.vendors.FindByID(ctx, vendorID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if !v.IsActive || v.UserID != p.UserID {
		return ErrForbidden
	}
	return nil
}

// resolveOwningVendorは参照チェーンをVendorIDまで辿る。
// specification/warranty → product → vendor、answer → vendor、
// product → vendor、vendorはそのまま。
func (r *Resolver) resolveOwningVendor(ctx context.Context, res Resource) (string, error) {
	switch res.Kind {
	case ResourceVendor:
		return res.ID, nil

	case ResourceProduct:
		p, err := r.products.FindByID(ctx, res.ID)
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		if err != nil {
			return "", err
		}
		return p.VendorID, nil

	case ResourceSpecification:
		s, err := r.specs.FindByID(ctx, res.ID)
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		if err != nil {
			return "", err
		}
		return r.resolveOwningVendor(ctx, Resource{Kind: ResourceProduct, ID: s.ProductID})

	case ResourceWarranty:
		w, err := r.warranties.FindByID(ctx, res.ID)
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		if err != nil {
			return "", err
		}
		return r.resolveOwningVendor(ctx, Resource{Kind: ResourceProduct, ID: w.ProductID})

	case ResourceAnswer:
		a, err := r.answers.FindByID(ctx, res.ID)
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		if err != nil {
			return "", err
		}
		return a.VendorID, nil

	default:
		return "", ErrNotFound
	}
}

// CanMutateVendorOwnedは既にVendorIDまで解決済みのリソース用のショートカット。
// 商品作成のように、まだレコードが無い段階で使う。
func (r *Resolver) CanMutateVendorOwned(ctx context.Context, p Principal, vendorID string) error {
	return r.CanMutate(ctx, p, Resource{Kind: ResourceVendor, ID: vendorID})
}
