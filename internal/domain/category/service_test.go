package category

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookmall/pkg/errors"
)

// fakeRepository 内存版分类仓储,模拟软删除语义
type fakeRepository struct {
	nextID  uint
	rows    map[uint]*Category
	deleted map[uint]bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		nextID:  1,
		rows:    make(map[uint]*Category),
		deleted: make(map[uint]bool),
	}
}

func (r *fakeRepository) Create(ctx context.Context, c *Category) error {
	c.ID = r.nextID
	r.nextID++
	r.rows[c.ID] = c
	return nil
}

func (r *fakeRepository) FindByID(ctx context.Context, id uint) (*Category, error) {
	c, ok := r.rows[id]
	if !ok || r.deleted[id] {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

func (r *fakeRepository) FindByName(ctx context.Context, name string) (*Category, error) {
	for id, c := range r.rows {
		if !r.deleted[id] && strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, ErrCategoryNotFound
}

func (r *fakeRepository) Update(ctx context.Context, c *Category) error {
	if _, ok := r.rows[c.ID]; !ok || r.deleted[c.ID] {
		return ErrCategoryNotFound
	}
	r.rows[c.ID] = c
	return nil
}

func (r *fakeRepository) Delete(ctx context.Context, id uint) error {
	if _, ok := r.rows[id]; !ok || r.deleted[id] {
		return ErrCategoryNotFound
	}
	r.deleted[id] = true
	return nil
}

func (r *fakeRepository) ListAll(ctx context.Context) ([]*Category, error) {
	var list []*Category
	for id, c := range r.rows {
		if !r.deleted[id] {
			list = append(list, c)
		}
	}
	return list, nil
}

func newTestService() (Service, *fakeRepository, *Cache) {
	repo := newFakeRepository()
	cache := NewCache()
	return NewService(repo, cache), repo, cache
}

// TestService_CreateCategory_WriteThrough 创建后新ID立即可校验
func TestService_CreateCategory_WriteThrough(t *testing.T) {
	svc, _, cache := newTestService()
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, "计算机", "计算机类图书")
	require.NoError(t, err)
	require.NotZero(t, cat.ID)

	// 返回时缓存必须已包含新分类
	assert.NoError(t, cache.ValidateIDs([]uint{cat.ID}))
	assert.NoError(t, svc.ValidateIDs([]uint{cat.ID}))
}

// TestService_CreateCategory_DuplicateName 名称唯一(不区分大小写)
func TestService_CreateCategory_DuplicateName(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, "Science", "")
	require.NoError(t, err)

	_, err = svc.CreateCategory(ctx, "science", "")
	assert.Equal(t, ErrNameDuplicate, err)

	_, err = svc.CreateCategory(ctx, "  ", "")
	assert.Equal(t, ErrInvalidName, err)
}

// TestService_DeleteCategory_CacheConsistency 删除后缓存和校验同时失效
func TestService_DeleteCategory_CacheConsistency(t *testing.T) {
	svc, repo, cache := newTestService()
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, "历史", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, cat.ID))

	// 缓存、校验、仓储三方一致
	_, err = cache.Get(cat.ID)
	assert.Equal(t, ErrCategoryNotFound, err)
	err = svc.ValidateIDs([]uint{cat.ID})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeCategoryNotFound))
	_, err = repo.FindByID(ctx, cat.ID)
	assert.Equal(t, ErrCategoryNotFound, err)
}

// TestService_UpdateCategory 改名后缓存立即可见,重名被拒绝
func TestService_UpdateCategory(t *testing.T) {
	svc, _, cache := newTestService()
	ctx := context.Background()

	a, err := svc.CreateCategory(ctx, "文学", "")
	require.NoError(t, err)
	b, err := svc.CreateCategory(ctx, "历史", "")
	require.NoError(t, err)

	t.Run("改名写穿缓存", func(t *testing.T) {
		_, err := svc.UpdateCategory(ctx, a.ID, "外国文学", "译作")
		require.NoError(t, err)

		got, err := cache.Get(a.ID)
		require.NoError(t, err)
		assert.Equal(t, "外国文学", got.Name)
		assert.Equal(t, "译作", got.Description)
	})

	t.Run("改成他人名称被拒绝", func(t *testing.T) {
		_, err := svc.UpdateCategory(ctx, b.ID, "外国文学", "")
		assert.Equal(t, ErrNameDuplicate, err)
	})

	t.Run("不存在的分类", func(t *testing.T) {
		_, err := svc.UpdateCategory(ctx, 9999, "x", "")
		assert.Equal(t, ErrCategoryNotFound, err)
	})
}

// TestService_WarmCache 预热后全部分类可见
func TestService_WarmCache(t *testing.T) {
	repo := newFakeRepository()
	ctx := context.Background()
	for _, name := range []string{"文学", "历史", "科技"} {
		require.NoError(t, repo.Create(ctx, NewCategory(name, "")))
	}
	// 其中一个已软删除,预热不应包含它
	require.NoError(t, repo.Delete(ctx, 2))

	cache := NewCache()
	svc := NewService(repo, cache)
	require.NoError(t, svc.WarmCache(ctx))

	assert.Equal(t, 2, cache.Len())
	assert.NoError(t, svc.ValidateIDs([]uint{1, 3}))
	err := svc.ValidateIDs([]uint{2})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeCategoryNotFound))
}
