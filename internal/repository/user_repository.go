package repository

import (
	"context"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
)

// ユーザーの永続化（保存・取得）だけを約束。
type UserRepository interface {
	// Roleを含めて返す
	FindByID(ctx context.Context, userID string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	CountByEmail(ctx context.Context, email string) (int64, error)
	CountByPhone(ctx context.Context, phone string) (int64, error)

	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	UpdatePassword(ctx context.Context, userID string, hashed string) error

	// 物理削除はしない（is_active=false）
	Deactivate(ctx context.Context, userID string) error
}

// rolesテーブルの読み取り。
type RoleRepository interface {
	FindByID(ctx context.Context, roleID string) (model.Role, error)
	FindByName(ctx context.Context, name string) (model.Role, error)
}
