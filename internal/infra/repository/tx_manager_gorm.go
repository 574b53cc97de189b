package repository

import (
	"context"

	"gorm.io/gorm"

	repo "github.com/nazmulhossain17/niyenin-api/internal/repository"
)

type txReposGorm struct {
	products       repo.ProductRepository
	specifications repo.SpecificationRepository
	warranties     repo.WarrantyRepository
	questions      repo.QuestionRepository
	answers        repo.AnswerRepository
}

func (r *txReposGorm) Products() repo.ProductRepository             { return r.products }
func (r *txReposGorm) Specifications() repo.SpecificationRepository { return r.specifications }
func (r *txReposGorm) Warranties() repo.WarrantyRepository          { return r.warranties }
func (r *txReposGorm) Questions() repo.QuestionRepository           { return r.questions }
func (r *txReposGorm) Answers() repo.AnswerRepository               { return r.answers }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

// fnがエラーを返したら全体をロールバックする。
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			products:       NewProductGormRepository(tx),
			specifications: NewSpecificationGormRepository(tx),
			warranties:     NewWarrantyGormRepository(tx),
			questions:      NewQuestionGormRepository(tx),
			answers:        NewAnswerGormRepository(tx),
		}
		return fn(r)
	})
}
