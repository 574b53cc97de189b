package usecase_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nazmulhossain17/niyenin-api/internal/usecase"
)

// 連番IDを返すテスト用generator
type seqIDGen struct{ n int }

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

func strPtr(s string) *string { return &s }

// HTTPErrorのstatusを検証する
func assertHTTPStatus(t *testing.T, err error, status int) {
	t.Helper()
	assert.Error(t, err)
	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "expected HTTPError, got %v", err) {
		assert.Equal(t, status, he.Status)
	}
}
