// Package categorytreeはフラットなカテゴリ行を親子ツリーに組み立てる。
// 読み取り側は常に寛容（エラーを返さない）。循環の防止は書き込み側の責務。
package categorytree

import "github.com/nazmulhossain17/niyenin-api/internal/domain/model"

// Nodeはツリー化したカテゴリ。Childrenは必ず非nil。
type Node struct {
	CategoryID string  `json:"category_id"`
	Name       string  `json:"name"`
	Slug       string  `json:"slug"`
	ParentID   *string `json:"parent_id"`
	Children   []*Node `json:"children"`
}

// BuildTreeはフラットなカテゴリ一覧をフォレストにする。
// 1パス目でidの索引を作り、2パス目で親のChildrenへ入力順のまま連結する
// （入力はname昇順で渡ってくる想定）。parent_idがNULL、または
// 参照先が存在しない行はルート扱いにする。
func BuildTree(categories []model.Category) []*Node {
	index := make(map[string]*Node, len(categories))
	nodes := make([]*Node, 0, len(categories))

	for i := range categories {
		c := categories[i]
		n := &Node{
			CategoryID: c.CategoryID,
			Name:       c.Name,
			Slug:       c.Slug,
			ParentID:   c.ParentID,
			Children:   []*Node{},
		}
		index[c.CategoryID] = n
		nodes = append(nodes, n)
	}

	roots := []*Node{}
	for _, n := range nodes {
		if n.ParentID == nil {
			roots = append(roots, n)
			continue
		}
		parent, ok := index[*n.ParentID]
		if !ok || parent == n {
			// 参照先のないparent_idはルートに落とす
			roots = append(roots, n)
			continue
		}
		parent.Children = append(parent.Children, n)
	}

	return roots
}
