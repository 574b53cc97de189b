package usecase

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nazmulhossain17/niyenin-api/internal/repository"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase/authz"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 所有チェックの結果をHTTPエラーへ変換する。
// 親が消えている場合は404、権限なしは403。
func authzError(err error) error {
	switch {
	case errors.Is(err, authz.ErrForbidden):
		return NewHTTPError(http.StatusForbidden, "forbidden")
	case errors.Is(err, authz.ErrNotFound):
		return NewHTTPError(http.StatusNotFound, "not found")
	default:
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
}

// repositoryのエラーをHTTPエラーへ変換する。
func repoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrConflict):
		return NewHTTPError(http.StatusConflict, "conflict")
	default:
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
}
