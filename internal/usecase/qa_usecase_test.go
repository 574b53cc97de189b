package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
	repo "github.com/nazmulhossain17/niyenin-api/internal/repository"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase/authz"
)

// =====================
// Mocks
// =====================

type QuestionRepoMock struct{ mock.Mock }

func (m *QuestionRepoMock) ListByProductID(ctx context.Context, productID string) ([]model.ProductQuestion, error) {
	args := m.Called(ctx, productID)
	qs, _ := args.Get(0).([]model.ProductQuestion)
	return qs, args.Error(1)
}
func (m *QuestionRepoMock) FindByID(ctx context.Context, questionID string) (model.ProductQuestion, error) {
	args := m.Called(ctx, questionID)
	q, _ := args.Get(0).(model.ProductQuestion)
	return q, args.Error(1)
}
func (m *QuestionRepoMock) Create(ctx context.Context, q *model.ProductQuestion) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}
func (m *QuestionRepoMock) Delete(ctx context.Context, questionID string) error {
	args := m.Called(ctx, questionID)
	return args.Error(0)
}

type AnswerRepoMock struct{ mock.Mock }

func (m *AnswerRepoMock) ListByQuestionID(ctx context.Context, questionID string) ([]model.ProductAnswer, error) {
	args := m.Called(ctx, questionID)
	as, _ := args.Get(0).([]model.ProductAnswer)
	return as, args.Error(1)
}
func (m *AnswerRepoMock) FindByID(ctx context.Context, answerID string) (model.ProductAnswer, error) {
	args := m.Called(ctx, answerID)
	a, _ := args.Get(0).(model.ProductAnswer)
	return a, args.Error(1)
}
func (m *AnswerRepoMock) CountByQuestionID(ctx context.Context, questionID string) (int64, error) {
	args := m.Called(ctx, questionID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *AnswerRepoMock) Create(ctx context.Context, a *model.ProductAnswer) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *AnswerRepoMock) Update(ctx context.Context, a *model.ProductAnswer) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *AnswerRepoMock) Delete(ctx context.Context, answerID string) error {
	args := m.Called(ctx, answerID)
	return args.Error(0)
}
func (m *AnswerRepoMock) DeleteByQuestionID(ctx context.Context, questionID string) error {
	args := m.Called(ctx, questionID)
	return args.Error(0)
}

type qaFixture struct {
	questions *QuestionRepoMock
	answers   *AnswerRepoMock
	products  *ProductRepoMock
	vendors   *VendorRepoMock
	tx        *TxManagerMock
	uc        *usecase.QAUsecase
}

func newQAFixture() qaFixture {
	f := qaFixture{
		questions: new(QuestionRepoMock),
		answers:   new(AnswerRepoMock),
		products:  new(ProductRepoMock),
		vendors:   new(VendorRepoMock),
	}
	f.tx = &TxManagerMock{
		questions: f.questions,
		answers:   f.answers,
		products:  f.products,
	}
	resolver := authz.NewResolver(new(UserRepoMock), f.vendors, f.products, new(SpecRepoMock), new(WarrantyRepoMock), f.answers)
	f.uc = usecase.NewQAUsecase(f.questions, f.answers, f.products, resolver, f.tx, &seqIDGen{})
	return f
}

// =====================
// Question
// =====================

func TestQAUsecase_CreateQuestion_Success(t *testing.T) {
	f := newQAFixture()

	f.products.On("FindByID", mock.Anything, "p1").Return(model.Product{ProductID: "p1", IsActive: true}, nil)
	f.questions.On("Create", mock.Anything, mock.Anything).Return(nil)

	q, err := f.uc.CreateQuestion(context.Background(), customerP, usecase.CreateQuestionInput{
		ProductID: "p1",
		Question:  "Does it ship internationally?",
	})
	assert.NoError(t, err)
	assert.Equal(t, "cust1", q.UserID)
	assert.Equal(t, "p1", q.ProductID)
}

func TestQAUsecase_CreateQuestion_ProductMissing(t *testing.T) {
	f := newQAFixture()

	f.products.On("FindByID", mock.Anything, "gone").Return(model.Product{}, repo.ErrNotFound)

	_, err := f.uc.CreateQuestion(context.Background(), customerP, usecase.CreateQuestionInput{
		ProductID: "gone",
		Question:  "Does it ship internationally?",
	})
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestQAUsecase_GetQAByProduct_NestsAnswers(t *testing.T) {
	f := newQAFixture()

	f.products.On("FindByID", mock.Anything, "p1").Return(model.Product{ProductID: "p1"}, nil)
	f.questions.On("ListByProductID", mock.Anything, "p1").Return([]model.ProductQuestion{
		{ProductQuestionID: "q1", ProductID: "p1", Question: "Color options?"},
		{ProductQuestionID: "q2", ProductID: "p1", Question: "Weight?"},
	}, nil)
	f.answers.On("ListByQuestionID", mock.Anything, "q1").Return([]model.ProductAnswer{
		{ProductAnswerID: "a1", QuestionID: "q1", Answer: "Black and silver"},
	}, nil)
	f.answers.On("ListByQuestionID", mock.Anything, "q2").Return(nil, nil)

	entries, err := f.uc.GetQAByProduct(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Len(t, entries[0].Answers, 1)
	// 回答なしでもnilにしない
	assert.NotNil(t, entries[1].Answers)
	assert.Len(t, entries[1].Answers, 0)
}

// =====================
// Answer
// =====================

func TestQAUsecase_CreateAnswer_Success(t *testing.T) {
	f := newQAFixture()

	f.questions.On("FindByID", mock.Anything, "q1").Return(model.ProductQuestion{ProductQuestionID: "q1", ProductID: "p1"}, nil)
	f.products.On("FindByID", mock.Anything, "p1").Return(model.Product{ProductID: "p1", VendorID: "v1"}, nil)
	f.vendors.On("FindByID", mock.Anything, "v1").Return(model.Vendor{VendorID: "v1", UserID: "u1", IsActive: true}, nil)
	f.answers.On("CountByQuestionID", mock.Anything, "q1").Return(int64(0), nil)
	f.answers.On("Create", mock.Anything, mock.Anything).Return(nil)

	a, err := f.uc.CreateAnswer(context.Background(), vendorP, usecase.CreateAnswerInput{
		QuestionID: "q1",
		Answer:     "Yes, worldwide.",
	})
	assert.NoError(t, err)
	// 回答のvendor_idは商品の出品ベンダー
	assert.Equal(t, "v1", a.VendorID)
}

func TestQAUsecase_CreateAnswer_QuestionMissing(t *testing.T) {
	f := newQAFixture()

	f.questions.On("FindByID", mock.Anything, "gone").Return(model.ProductQuestion{}, repo.ErrNotFound)

	_, err := f.uc.CreateAnswer(context.Background(), vendorP, usecase.CreateAnswerInput{
		QuestionID: "gone",
		Answer:     "Yes.",
	})
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestQAUsecase_CreateAnswer_OtherVendorForbidden(t *testing.T) {
	f := newQAFixture()

	f.questions.On("FindByID", mock.Anything, "q1").Return(model.ProductQuestion{ProductQuestionID: "q1", ProductID: "p1"}, nil)
	f.products.On("FindByID", mock.Anything, "p1").Return(model.Product{ProductID: "p1", VendorID: "v1"}, nil)
	f.vendors.On("FindByID", mock.Anything, "v1").Return(model.Vendor{VendorID: "v1", UserID: "someone-else", IsActive: true}, nil)

	_, err := f.uc.CreateAnswer(context.Background(), vendorP, usecase.CreateAnswerInput{
		QuestionID: "q1",
		Answer:     "Yes.",
	})
	assertHTTPStatus(t, err, http.StatusForbidden)
}

// 1質問1回答。
func TestQAUsecase_CreateAnswer_DuplicateConflict(t *testing.T) {
	f := newQAFixture()

	f.questions.On("FindByID", mock.Anything, "q1").Return(model.ProductQuestion{ProductQuestionID: "q1", ProductID: "p1"}, nil)
	f.products.On("FindByID", mock.Anything, "p1").Return(model.Product{ProductID: "p1", VendorID: "v1"}, nil)
	f.vendors.On("FindByID", mock.Anything, "v1").Return(model.Vendor{VendorID: "v1", UserID: "u1", IsActive: true}, nil)
	f.answers.On("CountByQuestionID", mock.Anything, "q1").Return(int64(1), nil)

	_, err := f.uc.CreateAnswer(context.Background(), vendorP, usecase.CreateAnswerInput{
		QuestionID: "q1",
		Answer:     "Yes.",
	})
	assertHTTPStatus(t, err, http.StatusConflict)
}

// =====================
// DeleteQuestion
// =====================

func TestQAUsecase_DeleteQuestion_AdminCascades(t *testing.T) {
	f := newQAFixture()

	f.questions.On("FindByID", mock.Anything, "q1").Return(model.ProductQuestion{ProductQuestionID: "q1"}, nil)
	f.answers.On("DeleteByQuestionID", mock.Anything, "q1").Return(nil)
	f.questions.On("Delete", mock.Anything, "q1").Return(nil)

	err := f.uc.DeleteQuestion(context.Background(), adminP, "q1")
	assert.NoError(t, err)

	// 回答→質問の順で同一トランザクション内で消える
	f.answers.AssertCalled(t, "DeleteByQuestionID", mock.Anything, "q1")
	f.questions.AssertCalled(t, "Delete", mock.Anything, "q1")
}

func TestQAUsecase_DeleteQuestion_NonAdminForbidden(t *testing.T) {
	f := newQAFixture()

	err := f.uc.DeleteQuestion(context.Background(), vendorP, "q1")
	assertHTTPStatus(t, err, http.StatusForbidden)
}
