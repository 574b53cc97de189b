package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// unique制約違反（slug重複など）
	ErrConflict = errors.New("conflict")
)
