package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
	repo "github.com/nazmulhossain17/niyenin-api/internal/repository"
)

type QuestionGormRepository struct {
	db *gorm.DB
}

// DI
func NewQuestionGormRepository(db *gorm.DB) *QuestionGormRepository {
	return &QuestionGormRepository{db: db}
}

func (r *QuestionGormRepository) ListByProductID(ctx context.Context, productID string) ([]model.ProductQuestion, error) {
	var questions []model.ProductQuestion
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at desc").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionGormRepository) FindByID(ctx context.Context, questionID string) (model.ProductQuestion, error) {
	var q model.ProductQuestion
	err := r.db.WithContext(ctx).Where("product_question_id = ?", questionID).First(&q).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductQuestion{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductQuestion{}, err
	}
	return q, nil
}

func (r *QuestionGormRepository) Create(ctx context.Context, q *model.ProductQuestion) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *QuestionGormRepository) Delete(ctx context.Context, questionID string) error {
	res := r.db.WithContext(ctx).
		Where("product_question_id = ?", questionID).
		Delete(&model.ProductQuestion{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type AnswerGormRepository struct {
	db *gorm.DB
}

// DI
func NewAnswerGormRepository(db *gorm.DB) *AnswerGormRepository {
	return &AnswerGormRepository{db: db}
}

func (r *AnswerGormRepository) ListByQuestionID(ctx context.Context, questionID string) ([]model.ProductAnswer, error) {
	var answers []model.ProductAnswer
	err := r.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("created_at desc").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *AnswerGormRepository) FindByID(ctx context.Context, answerID string) (model.ProductAnswer, error) {
	var a model.ProductAnswer
	err := r.db.WithContext(ctx).Where("product_answer_id = ?", answerID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ProductAnswer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ProductAnswer{}, err
	}
	return a, nil
}

func (r *AnswerGormRepository) CountByQuestionID(ctx context.Context, questionID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ProductAnswer{}).
		Where("question_id = ?", questionID).Count(&n).Error
	return n, err
}

func (r *AnswerGormRepository) Create(ctx context.Context, a *model.ProductAnswer) error {
	// question_idのunique制約で「1質問1回答」を最終的に保証する
	err := r.db.WithContext(ctx).Create(a).Error
	if isUniqueViolation(err) {
		return repo.ErrConflict
	}
	return err
}

func (r *AnswerGormRepository) Update(ctx context.Context, a *model.ProductAnswer) error {
	res := r.db.WithContext(ctx).Model(&model.ProductAnswer{}).
		Where("product_answer_id = ?", a.ProductAnswerID).
		Update("answer", a.Answer)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *AnswerGormRepository) Delete(ctx context.Context, answerID string) error {
	res := r.db.WithContext(ctx).
		Where("product_answer_id = ?", answerID).
		Delete(&model.ProductAnswer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *AnswerGormRepository) DeleteByQuestionID(ctx context.Context, questionID string) error {
	// 回答が無い質問もあるのでRowsAffected=0はエラーにしない
	return r.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Delete(&model.ProductAnswer{}).Error
}
