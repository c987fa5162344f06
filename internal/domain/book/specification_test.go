package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildSpecification_Empty 无任何条件时规约为空(匹配一切)
func TestBuildSpecification_Empty(t *testing.T) {
	spec := BuildSpecification(SearchCriteria{})

	assert.True(t, spec.IsEmpty())
	assert.Empty(t, spec.Predicates())
}

// TestBuildSpecification_SingleField 单字段条件
func TestBuildSpecification_SingleField(t *testing.T) {
	tests := []struct {
		name     string
		criteria SearchCriteria
		wantExpr string
		wantArgs []interface{}
	}{
		{
			name:     "书名子串匹配(不区分大小写)",
			criteria: SearchCriteria{Title: "Go语言"},
			wantExpr: "LOWER(title) LIKE ?",
			wantArgs: []interface{}{"%go语言%"},
		},
		{
			name:     "作者子串匹配(不区分大小写)",
			criteria: SearchCriteria{Author: "Kennedy"},
			wantExpr: "LOWER(author) LIKE ?",
			wantArgs: []interface{}{"%kennedy%"},
		},
		{
			name:     "ISBN子串匹配(区分大小写)",
			criteria: SearchCriteria{ISBN: "978-7"},
			wantExpr: "isbn LIKE ?",
			wantArgs: []interface{}{"%978-7%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := BuildSpecification(tt.criteria)
			require.Len(t, spec.Predicates(), 1)
			assert.Equal(t, tt.wantExpr, spec.Predicates()[0].Expr)
			assert.Equal(t, tt.wantArgs, spec.Predicates()[0].Args)
		})
	}
}

// TestBuildSpecification_PriceRange 价格区间边界
func TestBuildSpecification_PriceRange(t *testing.T) {
	t.Run("空列表匹配一切", func(t *testing.T) {
		spec := BuildSpecification(SearchCriteria{PriceRange: []string{}})
		assert.True(t, spec.IsEmpty())
	})

	t.Run("单个值为下界", func(t *testing.T) {
		// priceRange=[10] → price >= 10元(1000分)
		spec := BuildSpecification(SearchCriteria{PriceRange: []string{"10"}})
		require.Len(t, spec.Predicates(), 1)
		p := spec.Predicates()[0]
		assert.Equal(t, "price >= ?", p.Expr)
		assert.Equal(t, []interface{}{int64(1000)}, p.Args)
	})

	t.Run("两个值为闭区间", func(t *testing.T) {
		// priceRange=[10,20] → 1000分 <= price <= 2000分(含边界)
		spec := BuildSpecification(SearchCriteria{PriceRange: []string{"10", "20"}})
		require.Len(t, spec.Predicates(), 1)
		p := spec.Predicates()[0]
		assert.Equal(t, "price >= ? AND price <= ?", p.Expr)
		assert.Equal(t, []interface{}{int64(1000), int64(2000)}, p.Args)
	})

	t.Run("小数价格精确转换为分", func(t *testing.T) {
		spec := BuildSpecification(SearchCriteria{PriceRange: []string{"19.99"}})
		require.Len(t, spec.Predicates(), 1)
		assert.Equal(t, []interface{}{int64(1999)}, spec.Predicates()[0].Args)
	})

	t.Run("非数字元素按缺失处理", func(t *testing.T) {
		spec := BuildSpecification(SearchCriteria{PriceRange: []string{"abc", "20"}})
		require.Len(t, spec.Predicates(), 1)
		p := spec.Predicates()[0]
		assert.Equal(t, "price >= ?", p.Expr)
		assert.Equal(t, []interface{}{int64(2000)}, p.Args)
	})

	t.Run("全部非数字等价于未提供", func(t *testing.T) {
		spec := BuildSpecification(SearchCriteria{PriceRange: []string{"abc", "xyz"}})
		assert.True(t, spec.IsEmpty())
	})
}

// TestBuildSpecification_FixedOrder 多条件按固定顺序AND组合
// 顺序固定为title, author, isbn, price,保证查询形状可预测
func TestBuildSpecification_FixedOrder(t *testing.T) {
	spec := BuildSpecification(SearchCriteria{
		Title:      "实战",
		Author:     "张三",
		ISBN:       "9787",
		PriceRange: []string{"10", "50"},
	})

	preds := spec.Predicates()
	require.Len(t, preds, 4)
	assert.Equal(t, "LOWER(title) LIKE ?", preds[0].Expr)
	assert.Equal(t, "LOWER(author) LIKE ?", preds[1].Expr)
	assert.Equal(t, "isbn LIKE ?", preds[2].Expr)
	assert.Equal(t, "price >= ? AND price <= ?", preds[3].Expr)
}

// TestBuildSpecification_Subsets 任意条件子集只组合提供的谓词
func TestBuildSpecification_Subsets(t *testing.T) {
	t.Run("缺失的条件直接跳过", func(t *testing.T) {
		spec := BuildSpecification(SearchCriteria{
			Author:     "李四",
			PriceRange: []string{"5"},
		})

		preds := spec.Predicates()
		require.Len(t, preds, 2)
		// 仍保持字段顺序:author在price前
		assert.Equal(t, "LOWER(author) LIKE ?", preds[0].Expr)
		assert.Equal(t, "price >= ?", preds[1].Expr)
	})

	t.Run("空白字符串视为缺失", func(t *testing.T) {
		spec := BuildSpecification(SearchCriteria{Title: "   "})
		assert.True(t, spec.IsEmpty())
	})
}
