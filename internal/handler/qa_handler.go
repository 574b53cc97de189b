package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nazmulhossain17/niyenin-api/internal/metrics"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase"
)

// 商品Q&AのAPI
type QAHandler struct {
	uc *usecase.QAUsecase
}

// DI
func NewQAHandler(uc *usecase.QAUsecase) *QAHandler {
	return &QAHandler{uc: uc}
}

func (h *QAHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	e.GET("/products/:id/qa", h.listByProduct)

	e.POST("/questions", h.createQuestion, auth)
	e.DELETE("/questions/:id", h.deleteQuestion, auth, adminOnly)

	e.POST("/answers", h.createAnswer, auth)
	e.PUT("/answers/:id", h.updateAnswer, auth)
	e.DELETE("/answers/:id", h.deleteAnswer, auth)
}

type questionRequest struct {
	ProductID string `json:"product_id"`
	Question  string `json:"question"`
}

func (h *QAHandler) createQuestion(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req questionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	q, err := h.uc.CreateQuestion(c.Request().Context(), p, usecase.CreateQuestionInput{
		ProductID: req.ProductID,
		Question:  req.Question,
	})
	if err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("question", "create")
	return c.JSON(http.StatusCreated, q)
}

func (h *QAHandler) listByProduct(c echo.Context) error {
	entries, err := h.uc.GetQAByProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

type answerRequest struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

func (h *QAHandler) createAnswer(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req answerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	a, err := h.uc.CreateAnswer(c.Request().Context(), p, usecase.CreateAnswerInput{
		QuestionID: req.QuestionID,
		Answer:     req.Answer,
	})
	if err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("answer", "create")
	return c.JSON(http.StatusCreated, a)
}

func (h *QAHandler) updateAnswer(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req answerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.UpdateAnswer(c.Request().Context(), p, c.Param("id"), req.Answer); err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("answer", "update")
	return c.JSON(http.StatusOK, map[string]string{"message": "answer updated"})
}

func (h *QAHandler) deleteAnswer(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAnswer(c.Request().Context(), p, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("answer", "delete")
	return c.JSON(http.StatusOK, map[string]string{"message": "answer deleted"})
}

func (h *QAHandler) deleteQuestion(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteQuestion(c.Request().Context(), p, c.Param("id")); err != nil {
		return writeError(c, err)
	}

	metrics.RecordOperation("question", "delete")
	return c.JSON(http.StatusOK, map[string]string{"message": "question deleted"})
}
