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

type UserUsecase struct {
	users    repo.UserRepository
	hasher   PasswordHasher
	verifier PasswordVerifier
}

// DI
func NewUserUsecase(users repo.UserRepository, hasher PasswordHasher, verifier PasswordVerifier) *UserUsecase {
	return &UserUsecase{users: users, hasher: hasher, verifier: verifier}
}

func (u *UserUsecase) GetProfile(ctx context.Context, p authz.Principal) (*model.User, error) {
	user, err := u.users.FindByID(ctx, p.UserID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	safe := *user
	safe.Password = ""
	return &safe, nil
}

type UpdateProfileInput struct {
	FirstName  string
	LastName   string
	Phone      string
	Address    string
	ProfilePic string
}

func (u *UserUsecase) UpdateProfile(ctx context.Context, p authz.Principal, in UpdateProfileInput) error {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	if in.FirstName == "" || in.LastName == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Address) == "" {
		return NewHTTPError(http.StatusBadRequest, "address required")
	}

	var phone *string
	if in.Phone != "" {
		phone = &in.Phone
	}

	err := u.users.Update(ctx, &model.User{
		UserID:     p.UserID,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Phone:      phone,
		Address:    strings.TrimSpace(in.Address),
		ProfilePic: in.ProfilePic,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if errors.Is(err, repo.ErrConflict) {
		return NewHTTPError(http.StatusConflict, "phone already exists")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

func (u *UserUsecase) ChangePassword(ctx context.Context, p authz.Principal, in ChangePasswordInput) error {
	if len(in.NewPassword) < 8 {
		return NewHTTPError(http.StatusBadRequest, "password too short")
	}

	user, err := u.users.FindByID(ctx, p.UserID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !u.verifier.Verify(in.CurrentPassword, user.Password) {
		return NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	hashed, err := u.hasher.Hash(in.NewPassword)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "hash error")
	}
	if err := u.users.UpdatePassword(ctx, p.UserID, hashed); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// DeactivateUserはadmin専用。物理削除はしない。
func (u *UserUsecase) DeactivateUser(ctx context.Context, p authz.Principal, targetUserID string) error {
	if !p.IsAdmin() {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}
	if targetUserID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	err := u.users.Deactivate(ctx, targetUserID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
