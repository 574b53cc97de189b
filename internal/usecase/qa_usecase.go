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

type QAUsecase struct {
	questions repo.QuestionRepository
	answers   repo.AnswerRepository
	products  repo.ProductRepository
	resolver  *authz.Resolver
	txm       repo.TransactionManager
	idGen     IDGenerator
}

// DI
func NewQAUsecase(
	questions repo.QuestionRepository,
	answers repo.AnswerRepository,
	products repo.ProductRepository,
	resolver *authz.Resolver,
	txm repo.TransactionManager,
	idGen IDGenerator,
) *QAUsecase {
	return &QAUsecase{
		questions: questions,
		answers:   answers,
		products:  products,
		resolver:  resolver,
		txm:       txm,
		idGen:     idGen,
	}
}

type CreateQuestionInput struct {
	ProductID string
	Question  string
}

// 質問の投稿はログイン済みなら誰でもできる。
func (u *QAUsecase) CreateQuestion(ctx context.Context, p authz.Principal, in CreateQuestionInput) (model.ProductQuestion, error) {
	in.Question = strings.TrimSpace(in.Question)
	if in.ProductID == "" || in.Question == "" {
		return model.ProductQuestion{}, NewHTTPError(http.StatusBadRequest, "product_id and question required")
	}

	if _, err := u.products.FindByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.ProductQuestion{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return model.ProductQuestion{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	q := model.ProductQuestion{
		ProductQuestionID: u.idGen.NewID(),
		ProductID:         in.ProductID,
		UserID:            p.UserID,
		Question:          in.Question,
	}
	if err := u.questions.Create(ctx, &q); err != nil {
		return model.ProductQuestion{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return q, nil
}

// QAEntryは質問とそれに紐づく回答のペア。
type QAEntry struct {
	Question model.ProductQuestion `json:"question"`
	Answers  []model.ProductAnswer `json:"answers"`
}

// GetQAByProductは商品のQ&A一覧を回答つきで返す。公開API。
func (u *QAUsecase) GetQAByProduct(ctx context.Context, productID string) ([]QAEntry, error) {
	if _, err := u.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	questions, err := u.questions.ListByProductID(ctx, productID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	entries := make([]QAEntry, 0, len(questions))
	for _, q := range questions {
		answers, err := u.answers.ListByQuestionID(ctx, q.ProductQuestionID)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if answers == nil {
			answers = []model.ProductAnswer{}
		}
		entries = append(entries, QAEntry{Question: q, Answers: answers})
	}
	return entries, nil
}

type CreateAnswerInput struct {
	QuestionID string
	Answer     string
}

// 回答できるのは商品を出品しているベンダー（またはadmin）。
// 回答は質問ごとに1件まで。
func (u *QAUsecase) CreateAnswer(ctx context.Context, p authz.Principal, in CreateAnswerInput) (model.ProductAnswer, error) {
	in.Answer = strings.TrimSpace(in.Answer)
	if in.QuestionID == "" || in.Answer == "" {
		return model.ProductAnswer{}, NewHTTPError(http.StatusBadRequest, "question_id and answer required")
	}

	q, err := u.questions.FindByID(ctx, in.QuestionID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.ProductAnswer{}, NewHTTPError(http.StatusNotFound, "question not found")
	}
	if err != nil {
		return model.ProductAnswer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 回答のVendorIDは商品の出品ベンダーになる
	product, err := u.products.FindByID(ctx, q.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.ProductAnswer{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.ProductAnswer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.resolver.CanMutateVendorOwned(ctx, p, product.VendorID); err != nil {
		return model.ProductAnswer{}, authzError(err)
	}

	// 既存チェック（最終的にはquestion_idのunique制約が守る）
	n, err := u.answers.CountByQuestionID(ctx, in.QuestionID)
	if err != nil {
		return model.ProductAnswer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if n > 0 {
		return model.ProductAnswer{}, NewHTTPError(http.StatusConflict, "answer already exists")
	}

	a := model.ProductAnswer{
		ProductAnswerID: u.idGen.NewID(),
		QuestionID:      in.QuestionID,
		VendorID:        product.VendorID,
		Answer:          in.Answer,
	}
	if err := u.answers.Create(ctx, &a); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return model.ProductAnswer{}, NewHTTPError(http.StatusConflict, "answer already exists")
		}
		return model.ProductAnswer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return a, nil
}

func (u *QAUsecase) UpdateAnswer(ctx context.Context, p authz.Principal, answerID string, answer string) error {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return NewHTTPError(http.StatusBadRequest, "answer required")
	}

	if err := u.resolver.CanMutate(ctx, p, authz.Resource{Kind: authz.ResourceAnswer, ID: answerID}); err != nil {
		return authzError(err)
	}

	err := u.answers.Update(ctx, &model.ProductAnswer{
		ProductAnswerID: answerID,
		Answer:          answer,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *QAUsecase) DeleteAnswer(ctx context.Context, p authz.Principal, answerID string) error {
	if err := u.resolver.CanMutate(ctx, p, authz.Resource{Kind: authz.ResourceAnswer, ID: answerID}); err != nil {
		return authzError(err)
	}

	err := u.answers.Delete(ctx, answerID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// DeleteQuestionはadmin専用。回答ごと1トランザクションで消す。
func (u *QAUsecase) DeleteQuestion(ctx context.Context, p authz.Principal, questionID string) error {
	if !p.IsAdmin() {
		return NewHTTPError(http.StatusForbidden, "forbidden")
	}

	if _, err := u.questions.FindByID(ctx, questionID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	err := u.txm.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Answers().DeleteByQuestionID(ctx, questionID); err != nil {
			return err
		}
		return r.Questions().Delete(ctx, questionID)
	})
	if err != nil {
		if he, ok := AsHTTPError(err); ok {
			return he
		}
		return repoError(err)
	}
	return nil
}
