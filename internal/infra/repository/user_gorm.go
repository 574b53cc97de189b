package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
	repo "github.com/nazmulhossain17/niyenin-api/internal/repository"
)

type UserGormRepository struct {
	db *gorm.DB
}

// DI
func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// IDでユーザーを取得（Role込み）
func (r *UserGormRepository) FindByID(ctx context.Context, userID string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Preload("Role").
		Where("user_id = ?", userID).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// emailでユーザーを取得（Role込み、ログインで使う）
func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Preload("Role").
		Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", email).Count(&n).Error
	return n, err
}

func (r *UserGormRepository) CountByPhone(ctx context.Context, phone string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("phone = ?", phone).Count(&n).Error
	return n, err
}

func (r *UserGormRepository) Create(ctx context.Context, u *model.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if isUniqueViolation(err) {
		return repo.ErrConflict
	}
	return err
}

func (r *UserGormRepository) Update(ctx context.Context, u *model.User) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", u.UserID).
		Updates(map[string]interface{}{
			"first_name":  u.FirstName,
			"last_name":   u.LastName,
			"phone":       u.Phone,
			"address":     u.Address,
			"profile_pic": u.ProfilePic,
		})
	if isUniqueViolation(res.Error) {
		return repo.ErrConflict
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *UserGormRepository) UpdatePassword(ctx context.Context, userID string, hashed string) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userID).
		Update("password", hashed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 退会は論理削除（is_active=false）
func (r *UserGormRepository) Deactivate(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userID).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type RoleGormRepository struct {
	db *gorm.DB
}

// DI
func NewRoleGormRepository(db *gorm.DB) *RoleGormRepository {
	return &RoleGormRepository{db: db}
}

func (r *RoleGormRepository) FindByID(ctx context.Context, roleID string) (model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).Where("role_id = ?", roleID).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Role{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Role{}, err
	}
	return role, nil
}

func (r *RoleGormRepository) FindByName(ctx context.Context, name string) (model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Role{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Role{}, err
	}
	return role, nil
}
