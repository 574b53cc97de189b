package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
	repo "github.com/nazmulhossain17/niyenin-api/internal/repository"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase/authz"
	"github.com/nazmulhossain17/niyenin-api/internal/validator"
)

type AuthUsecase struct {
	users    repo.UserRepository
	roles    repo.RoleRepository
	hasher   PasswordHasher
	verifier PasswordVerifier
	issuer   TokenIssuer
	idGen    IDGenerator
	clock    Clock
}

// DI
func NewAuthUsecase(
	users repo.UserRepository,
	roles repo.RoleRepository,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	idGen IDGenerator,
	clock Clock,
) *AuthUsecase {
	return &AuthUsecase{
		users:    users,
		roles:    roles,
		hasher:   hasher,
		verifier: verifier,
		issuer:   issuer,
		idGen:    idGen,
		clock:    clock,
	}
}

// 会員登録の入力
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Address   string
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	if in.FirstName == "" || in.LastName == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if !validator.IsEmailLike(in.Email) {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if len(in.Password) < 8 {
		return nil, NewHTTPError(http.StatusBadRequest, "password too short")
	}
	if strings.TrimSpace(in.Address) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "address required")
	}

	// email/phoneの重複チェック（最終的にはDBのunique制約が守る）
	n, err := u.users.CountByEmail(ctx, in.Email)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if n > 0 {
		return nil, NewHTTPError(http.StatusConflict, "email already exists")
	}
	if in.Phone != "" {
		n, err := u.users.CountByPhone(ctx, in.Phone)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if n > 0 {
			return nil, NewHTTPError(http.StatusConflict, "phone already exists")
		}
	}

	// デフォルトはcustomerロール
	customerRole, err := u.roles.FindByName(ctx, string(authz.RoleCustomer))
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusInternalServerError, "default role missing")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "hash error")
	}

	var phone *string
	if in.Phone != "" {
		phone = &in.Phone
	}

	user := &model.User{
		UserID:    u.idGen.NewID(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  hashed,
		Phone:     phone,
		Address:   in.Address,
		RoleID:    customerRole.RoleID,
		IsActive:  true,
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, NewHTTPError(http.StatusConflict, "email already exists")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 返すときはハッシュを落とす
	safe := *user
	safe.Password = ""
	safe.Role = &customerRole
	return &safe, nil
}

// ログインの入力
type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	User      model.User `json:"user"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	in.Email = strings.TrimSpace(in.Email)
	if !validator.IsEmailLike(in.Email) || in.Password == "" {
		return LoginOutput{}, NewHTTPError(http.StatusBadRequest, "invalid input")
	}

	user, err := u.users.FindByEmail(ctx, in.Email)
	if errors.Is(err, repo.ErrNotFound) {
		// ユーザー不存在とパスワード不一致は区別しない
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !u.verifier.Verify(in.Password, user.Password) {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if !user.IsActive {
		return LoginOutput{}, NewHTTPError(http.StatusForbidden, "account is deactivated")
	}

	roleName := authz.RoleCustomer
	if user.Role != nil {
		if parsed, ok := authz.ParseRole(user.Role.Name); ok {
			roleName = parsed
		}
	}

	token, expiresAt, err := u.issuer.Issue(user.UserID, user.Email, roleName, u.clock.Now())
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "token error")
	}

	safe := *user
	safe.Password = ""
	return LoginOutput{User: safe, Token: token, ExpiresAt: expiresAt}, nil
}

// Whoamiは検証済みトークンのprincipalをDBのロールと突き合わせて返す。
// トークンとDBが食い違っていたら（ユーザー削除等）401相当として扱う。
type WhoamiOutput struct {
	User model.User     `json:"user"`
	Role authz.RoleInfo `json:"role"`
}

func (u *AuthUsecase) Whoami(ctx context.Context, resolver *authz.Resolver, p authz.Principal) (WhoamiOutput, error) {
	role, err := resolver.ResolveRole(ctx, p.UserID)
	if errors.Is(err, authz.ErrNotFound) {
		return WhoamiOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return WhoamiOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	user, err := u.users.FindByID(ctx, p.UserID)
	if err != nil {
		return WhoamiOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	safe := *user
	safe.Password = ""
	return WhoamiOutput{User: safe, Role: role}, nil
}
