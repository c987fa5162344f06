package category

import (
	"sort"
	"sync"

	apperrors "github.com/xiebiao/bookmall/pkg/errors"
	"github.com/xiebiao/bookmall/pkg/metrics"
)

// Cache 进程内的分类缓存
// 设计说明:
// 1. 这是全量分类的写穿镜像,不是带TTL的性能缓存:每个分类
//    写操作在返回前同步更新缓存,缓存和库表对已提交事务
//    永不分叉
// 2. 显式注入而非全局变量,读写都经过RWMutex,分类删除和
//    图书校验并发执行时不会出现数据竞争
// 3. 图书创建/更新校验分类ID、按分类浏览的前置检查都走这里,
//    避免逐个ID回表查询
type Cache struct {
	mu      sync.RWMutex
	entries map[uint]*Category
}

// NewCache 创建空缓存,启动时用Fill预热
func NewCache() *Cache {
	return &Cache{
		entries: make(map[uint]*Category),
	}
}

// Fill 全量填充缓存(启动预热)
// 会清掉已有条目,之后的增量维护靠Put/Remove
func (c *Cache) Fill(categories []*Category) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[uint]*Category, len(categories))
	for _, cat := range categories {
		c.entries[cat.ID] = cat
	}
	metrics.CategoryCacheEntries.Set(float64(len(c.entries)))
}

// Put 写入或覆盖一个分类(创建/更新后调用)
func (c *Cache) Put(category *Category) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[category.ID] = category
	metrics.CategoryCacheEntries.Set(float64(len(c.entries)))
}

// Remove 移除一个分类(删除后调用)
// 这是唯一的单条淘汰路径,缓存没有TTL
func (c *Cache) Remove(id uint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, id)
	metrics.CategoryCacheEntries.Set(float64(len(c.entries)))
}

// Get 按ID读取分类,不存在返回ErrCategoryNotFound
func (c *Cache) Get(id uint) (*Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cat, ok := c.entries[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return cat, nil
}

// ValidateIDs 校验一组分类ID是否全部存在
// 失败时把所有缺失的ID列在错误消息里,方便调用方一次看全
func (c *Cache) ValidateIDs(ids []uint) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var missing []uint
	for _, id := range ids {
		if _, ok := c.entries[id]; !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		return apperrors.Newf(apperrors.ErrCodeCategoryNotFound, "找不到对应的分类: %v", missing)
	}
	return nil
}

// List 返回所有缓存中的分类,按ID升序
func (c *Cache) List() []*Category {
	c.mu.RLock()
	defer c.mu.RUnlock()

	list := make([]*Category, 0, len(c.entries))
	for _, cat := range c.entries {
		list = append(list, cat)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// Len 当前缓存条目数
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
