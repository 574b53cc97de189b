package repository

import (
	"context"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
)

type BrandRepository interface {
	List(ctx context.Context) ([]model.Brand, error)
	FindByID(ctx context.Context, brandID string) (model.Brand, error)

	// slug重複の事前チェック用。excludeIDは更新時に自分自身を除外する。
	CountBySlug(ctx context.Context, slug string, excludeID string) (int64, error)

	Create(ctx context.Context, b *model.Brand) error
	Update(ctx context.Context, b *model.Brand) error
	Delete(ctx context.Context, brandID string) error
}
