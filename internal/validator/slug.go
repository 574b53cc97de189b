package validator

import (
	"regexp"
	"strings"
)

// URLセーフなslug（小文字英数とハイフンのみ、先頭末尾ハイフン不可）
var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func IsValidSlug(s string) bool {
	if s == "" || len(s) > 150 {
		return false
	}
	return slugRe.MatchString(s)
}

var (
	nonWordRe   = regexp.MustCompile(`[^\w\s-]`)
	separatorRe = regexp.MustCompile(`[\s_-]+`)
)

// Slugifyは表示名からslugを生成する。
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = nonWordRe.ReplaceAllString(s, "")
	s = separatorRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// 簡易メール形式をチェック
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsEmailLike(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}
