package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation
const pgUniqueViolation = "23505"

// isUniqueViolationはunique制約違反かどうかを判定する。
// アプリ側のslug事前チェックはUX向上のための早期リターンでしかなく、
// 同時作成の競合は最終的にDBの制約で弾く。その結果をConflictへ変換する。
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}
