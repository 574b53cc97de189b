package authz

// ロールは閉じた列挙。levelの大小だけで比較する（文字列比較を散らさない）。
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleVendor   Role = "vendor"
	RoleCustomer Role = "customer"
)

// levelは小さいほど権限が強い
const (
	LevelAdmin    = 0
	LevelVendor   = 1
	LevelCustomer = 2
)

// Levelはロールの数値レベルを返す。未知のロールは最弱扱い。
func (r Role) Level() int {
	switch r {
	case RoleAdmin:
		return LevelAdmin
	case RoleVendor:
		return LevelVendor
	case RoleCustomer:
		return LevelCustomer
	default:
		return LevelCustomer + 1
	}
}

// AtLeastはrがother以上の権限を持つかどうか。
func (r Role) AtLeast(other Role) bool {
	return r.Level() <= other.Level()
}

// ParseRoleは文字列をロールに変換する。列挙外はfalse。
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleVendor, RoleCustomer:
		return Role(s), true
	default:
		return "", false
	}
}

// Principalは認証済みの操作主体。検証済みトークンから作る。
// グローバルには置かず、必ず引数で渡す。
type Principal struct {
	UserID string
	Role   Role
}

func (p Principal) IsAdmin() bool {
	return p.Role.Level() == LevelAdmin
}
