package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmall/internal/domain/book"
)

// fakeCartRepository 内存版购物车仓储
type fakeCartRepository struct {
	nextCartID uint
	nextItemID uint
	carts      map[uint]*Cart // key: userID
}

func newFakeCartRepository() *fakeCartRepository {
	return &fakeCartRepository{nextCartID: 1, nextItemID: 1, carts: make(map[uint]*Cart)}
}

func (r *fakeCartRepository) Create(ctx context.Context, c *Cart) error {
	c.ID = r.nextCartID
	r.nextCartID++
	r.carts[c.UserID] = c
	return nil
}

func (r *fakeCartRepository) FindByUserID(ctx context.Context, userID uint) (*Cart, error) {
	c, ok := r.carts[userID]
	if !ok {
		return nil, ErrCartNotFound
	}
	// 返回副本,模拟每次查询都从数据库重新加载
	clone := *c
	clone.Items = append([]CartItem(nil), c.Items...)
	return &clone, nil
}

func (r *fakeCartRepository) AddItem(ctx context.Context, item *CartItem) error {
	item.ID = r.nextItemID
	r.nextItemID++
	for _, c := range r.carts {
		if c.ID == item.CartID {
			c.Items = append(c.Items, *item)
			return nil
		}
	}
	return ErrCartNotFound
}

func (r *fakeCartRepository) UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error {
	for _, c := range r.carts {
		for i := range c.Items {
			if c.Items[i].ID == itemID {
				c.Items[i].Quantity = quantity
				return nil
			}
		}
	}
	return ErrCartItemNotFound
}

func (r *fakeCartRepository) RemoveItem(ctx context.Context, itemID uint) error {
	for _, c := range r.carts {
		for i := range c.Items {
			if c.Items[i].ID == itemID {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
				return nil
			}
		}
	}
	return ErrCartItemNotFound
}

func (r *fakeCartRepository) RemoveItemsByBookID(ctx context.Context, bookID uint) error {
	for _, c := range r.carts {
		kept := c.Items[:0]
		for _, item := range c.Items {
			if item.BookID != bookID {
				kept = append(kept, item)
			}
		}
		c.Items = kept
	}
	return nil
}

func (r *fakeCartRepository) ClearItems(ctx context.Context, cartID uint) error {
	for _, c := range r.carts {
		if c.ID == cartID {
			c.Items = []CartItem{}
			return nil
		}
	}
	return ErrCartNotFound
}

// fakeBookRepository 只实现购物车服务用到的FindByID
type fakeBookRepository struct {
	books map[uint]*book.Book
}

func newFakeBookRepository(books ...*book.Book) *fakeBookRepository {
	m := make(map[uint]*book.Book)
	for _, b := range books {
		m[b.ID] = b
	}
	return &fakeBookRepository{books: m}
}

func (r *fakeBookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (r *fakeBookRepository) Create(ctx context.Context, b *book.Book) error { return nil }
func (r *fakeBookRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	return false, nil
}
func (r *fakeBookRepository) Update(ctx context.Context, b *book.Book) error { return nil }
func (r *fakeBookRepository) Delete(ctx context.Context, id uint) error      { return nil }
func (r *fakeBookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	return nil, 0, nil
}
func (r *fakeBookRepository) Search(ctx context.Context, spec book.Specification, page, pageSize int) ([]*book.Book, int64, error) {
	return nil, 0, nil
}
func (r *fakeBookRepository) ListByCategory(ctx context.Context, categoryID uint, page, pageSize int) ([]*book.Book, int64, error) {
	return nil, 0, nil
}

func newTestService() (Service, *fakeCartRepository) {
	repo := newFakeCartRepository()
	books := newFakeBookRepository(
		&book.Book{ID: 1, Title: "Go语言实战", Price: 8900},
		&book.Book{ID: 2, Title: "数据库系统概念", Price: 12900},
	)
	return NewService(repo, books), repo
}

// TestService_GetCart_LazyCreate 第一次访问惰性创建,之后幂等
func TestService_GetCart_LazyCreate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	c1, err := svc.GetCart(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, uint(42), c1.UserID)
	assert.True(t, c1.IsEmpty())

	c2, err := svc.GetCart(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, c1.ID, c2.ID, "重复调用不应创建新购物车")
}

// TestService_AddItem_MergeOnAdd 重复加购合并数量,不产生重复行
func TestService_AddItem_MergeOnAdd(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	c, err := svc.AddItem(ctx, 7, 1, 3)
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)

	// 同一本书再加2,应合并为数量5的一条记录
	c, err = svc.AddItem(ctx, 7, 1, 2)
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)

	// 不同图书各自一条
	c, err = svc.AddItem(ctx, 7, 2, 1)
	require.NoError(t, err)
	assert.Len(t, c.Items, 2)
}

// TestService_AddItem_BookNotFound 图书不存在(或已被删除)时加购失败
func TestService_AddItem_BookNotFound(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 7, 999, 1)
	assert.Equal(t, book.ErrBookNotFound, err)

	_, err = svc.AddItem(ctx, 7, 1, 0)
	assert.Equal(t, ErrInvalidQuantity, err)
}

// TestService_UpdateItem_OwnershipScope 条目归属校验
// 用户A不能通过猜测条目ID修改用户B的购物车
func TestService_UpdateItem_OwnershipScope(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cartB, err := svc.AddItem(ctx, 8, 1, 3)
	require.NoError(t, err)
	itemB := cartB.Items[0]

	// 用户7尝试改用户8的条目
	_, err = svc.UpdateItem(ctx, 7, itemB.ID, 99)
	assert.Equal(t, ErrCartItemNotFound, err)

	// 用户8的条目数量未被改动
	cartB, err = svc.GetCart(ctx, 8)
	require.NoError(t, err)
	require.Len(t, cartB.Items, 1)
	assert.Equal(t, 3, cartB.Items[0].Quantity)
}

// TestService_UpdateItem 数量覆盖而非合并
func TestService_UpdateItem(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	c, err := svc.AddItem(ctx, 9, 1, 3)
	require.NoError(t, err)

	c, err = svc.UpdateItem(ctx, 9, c.Items[0].ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Items[0].Quantity)

	_, err = svc.UpdateItem(ctx, 9, c.Items[0].ID, -1)
	assert.Equal(t, ErrInvalidQuantity, err)
}

// TestService_RemoveItem 删除条目,他人条目和不存在条目同样报"不存在"
func TestService_RemoveItem(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	c, err := svc.AddItem(ctx, 10, 1, 1)
	require.NoError(t, err)
	itemID := c.Items[0].ID

	// 他人视角删除
	err = svc.RemoveItem(ctx, 11, itemID)
	assert.Equal(t, ErrCartItemNotFound, err)

	// 本人删除成功
	require.NoError(t, svc.RemoveItem(ctx, 10, itemID))

	c, err = svc.GetCart(ctx, 10)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())

	// 再删一次:不存在
	err = svc.RemoveItem(ctx, 10, itemID)
	assert.Equal(t, ErrCartItemNotFound, err)
}
