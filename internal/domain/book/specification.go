package book

import (
	"strings"

	"github.com/shopspring/decimal"
)

// 搜索规约引擎
// 设计说明:
// 1. 每个搜索字段对应一个"谓词提供者",把原始参数值转换为一个
//    查询谓词片段(SQL表达式+参数)
// 2. 字段用枚举而非字符串做分发,未知字段在编译期就不存在,
//    不会有运行时"未注册的key"这种失败
// 3. 缺失或格式非法的单个参数一律降级为"不过滤",绝不让整个
//    搜索请求失败(参数格式校验在上游HTTP层完成)

// SearchField 搜索字段枚举
type SearchField int

const (
	FieldTitle SearchField = iota
	FieldAuthor
	FieldISBN
	FieldPrice
)

// searchFieldOrder 谓词的固定组合顺序
// 固定顺序保证同样的条件集合总是生成同样形状的查询,
// 便于数据库复用执行计划
var searchFieldOrder = [...]SearchField{FieldTitle, FieldAuthor, FieldISBN, FieldPrice}

// SearchCriteria 原始搜索条件
// 所有字段都是可选的,零值表示"不按此字段过滤"
type SearchCriteria struct {
	Title      string   // 书名,不区分大小写的子串匹配
	Author     string   // 作者,不区分大小写的子串匹配
	ISBN       string   // ISBN,区分大小写的子串匹配(数字和连字符)
	PriceRange []string // 价格边界,0/1/2个十进制数(元):[min]或[min,max]
}

// Predicate 单个查询谓词片段
// Expr为空表示no-op("匹配一切"),组合时直接跳过
type Predicate struct {
	Expr string
	Args []interface{}
}

// IsNoop 是否为"匹配一切"的空谓词
func (p Predicate) IsNoop() bool {
	return p.Expr == ""
}

// Specification 组合后的查询规约
// 内部是按固定字段顺序AND连接的谓词列表,由仓储层逐个
// 应用到查询上
type Specification struct {
	predicates []Predicate
}

// Predicates 返回待AND组合的谓词列表(已剔除no-op)
func (s Specification) Predicates() []Predicate {
	return s.predicates
}

// IsEmpty 没有任何有效条件时为true(查询退化为全量列表)
func (s Specification) IsEmpty() bool {
	return len(s.predicates) == 0
}

// BuildSpecification 把搜索条件组合成一个查询规约
// 从"永真"出发,按固定顺序(title, author, isbn, price)AND进
// 每个非空条件的谓词
func BuildSpecification(c SearchCriteria) Specification {
	var predicates []Predicate
	for _, field := range searchFieldOrder {
		p := buildPredicate(field, c)
		if !p.IsNoop() {
			predicates = append(predicates, p)
		}
	}
	return Specification{predicates: predicates}
}

// buildPredicate 按字段分发到对应的谓词提供者
// switch覆盖全部枚举值,新增字段时编译器会提醒补齐这里
func buildPredicate(field SearchField, c SearchCriteria) Predicate {
	switch field {
	case FieldTitle:
		return containsIgnoreCase("title", c.Title)
	case FieldAuthor:
		return containsIgnoreCase("author", c.Author)
	case FieldISBN:
		return contains("isbn", c.ISBN)
	case FieldPrice:
		return priceBetween(c.PriceRange)
	}
	return Predicate{}
}

// containsIgnoreCase 不区分大小写的子串匹配
func containsIgnoreCase(column, value string) Predicate {
	value = strings.TrimSpace(value)
	if value == "" {
		return Predicate{}
	}
	return Predicate{
		Expr: "LOWER(" + column + ") LIKE ?",
		Args: []interface{}{"%" + strings.ToLower(value) + "%"},
	}
}

// contains 区分大小写的子串匹配(ISBN只含数字和连字符)
func contains(column, value string) Predicate {
	value = strings.TrimSpace(value)
	if value == "" {
		return Predicate{}
	}
	return Predicate{
		Expr: column + " LIKE ?",
		Args: []interface{}{"%" + value + "%"},
	}
}

// priceBetween 价格区间谓词
// 业务规则:
// - 空列表 → 不过滤
// - 单个值 → price >= min
// - 两个值 → min <= price <= max(闭区间)
// - 非数字元素按缺失处理,不报错
// 价格以元为单位的十进制字符串传入,转换为分(int64)参与比较,
// 用decimal避免浮点精度问题(如"19.99"*100)
func priceBetween(bounds []string) Predicate {
	fen := make([]int64, 0, 2)
	for _, raw := range bounds {
		d, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			continue // 非数字,视为未提供
		}
		fen = append(fen, d.Shift(2).IntPart())
		if len(fen) == 2 {
			break
		}
	}

	switch len(fen) {
	case 0:
		return Predicate{}
	case 1:
		return Predicate{
			Expr: "price >= ?",
			Args: []interface{}{fen[0]},
		}
	default:
		return Predicate{
			Expr: "price >= ? AND price <= ?",
			Args: []interface{}{fen[0], fen[1]},
		}
	}
}
