package repository

import (
	"context"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
)

type QuestionRepository interface {
	ListByProductID(ctx context.Context, productID string) ([]model.ProductQuestion, error)
	FindByID(ctx context.Context, questionID string) (model.ProductQuestion, error)

	Create(ctx context.Context, q *model.ProductQuestion) error
	Delete(ctx context.Context, questionID string) error
}

type AnswerRepository interface {
	ListByQuestionID(ctx context.Context, questionID string) ([]model.ProductAnswer, error)
	FindByID(ctx context.Context, answerID string) (model.ProductAnswer, error)

	CountByQuestionID(ctx context.Context, questionID string) (int64, error)

	Create(ctx context.Context, a *model.ProductAnswer) error
	Update(ctx context.Context, a *model.ProductAnswer) error
	Delete(ctx context.Context, answerID string) error
	DeleteByQuestionID(ctx context.Context, questionID string) error
}
