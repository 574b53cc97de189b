package repository

import (
	"context"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
)

type CategoryRepository interface {
	// ツリー構築の入力になるため、name昇順で返す
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, categoryID string) (model.Category, error)

	CountBySlug(ctx context.Context, slug string, excludeID string) (int64, error)

	// parent_idが一致する行数。削除ガードに使う。
	CountChildren(ctx context.Context, categoryID string) (int64, error)

	Create(ctx context.Context, c *model.Category) error
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, categoryID string) error
}
