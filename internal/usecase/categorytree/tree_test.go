package categorytree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nazmulhossain17/niyenin-api/internal/domain/model"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase/categorytree"
)

func strPtr(s string) *string { return &s }

func TestBuildTree_Empty(t *testing.T) {
	roots := categorytree.BuildTree(nil)
	assert.NotNil(t, roots)
	assert.Len(t, roots, 0)
}

func TestBuildTree_FlatList(t *testing.T) {
	roots := categorytree.BuildTree([]model.Category{
		{CategoryID: "a", Name: "Audio"},
		{CategoryID: "b", Name: "Books"},
	})

	assert.Len(t, roots, 2)
	assert.Equal(t, "a", roots[0].CategoryID)
	assert.Equal(t, "b", roots[1].CategoryID)
	// Childrenは常に非nil
	assert.NotNil(t, roots[0].Children)
	assert.NotNil(t, roots[1].Children)
}

func TestBuildTree_Nested(t *testing.T) {
	roots := categorytree.BuildTree([]model.Category{
		{CategoryID: "electronics", Name: "Electronics"},
		{CategoryID: "laptops", Name: "Laptops", ParentID: strPtr("electronics")},
		{CategoryID: "phones", Name: "Phones", ParentID: strPtr("electronics")},
		{CategoryID: "gaming-laptops", Name: "Gaming Laptops", ParentID: strPtr("laptops")},
	})

	assert.Len(t, roots, 1)
	root := roots[0]
	assert.Equal(t, "electronics", root.CategoryID)
	assert.Len(t, root.Children, 2)

	// 入力順（name昇順）が保たれる
	assert.Equal(t, "laptops", root.Children[0].CategoryID)
	assert.Equal(t, "phones", root.Children[1].CategoryID)

	assert.Len(t, root.Children[0].Children, 1)
	assert.Equal(t, "gaming-laptops", root.Children[0].Children[0].CategoryID)
}

// 参照先のないparent_idを持つ行はエラーにせずルート扱い。
func TestBuildTree_DanglingParentBecomesRoot(t *testing.T) {
	roots := categorytree.BuildTree([]model.Category{
		{CategoryID: "a", Name: "Audio"},
		{CategoryID: "orphan", Name: "Orphan", ParentID: strPtr("deleted-parent")},
	})

	assert.Len(t, roots, 2)
	assert.Equal(t, "a", roots[0].CategoryID)
	assert.Equal(t, "orphan", roots[1].CategoryID)
	// parent_idはそのまま残す
	assert.Equal(t, "deleted-parent", *roots[1].ParentID)
}

// 親が後ろに並んでいても（順序に依存せず）組み立てられる。
func TestBuildTree_ChildBeforeParent(t *testing.T) {
	roots := categorytree.BuildTree([]model.Category{
		{CategoryID: "child", Name: "Child", ParentID: strPtr("parent")},
		{CategoryID: "parent", Name: "Parent"},
	})

	assert.Len(t, roots, 1)
	assert.Equal(t, "parent", roots[0].CategoryID)
	assert.Len(t, roots[0].Children, 1)
	assert.Equal(t, "child", roots[0].Children[0].CategoryID)
}
