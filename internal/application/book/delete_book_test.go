package book

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/cart"
)

// deleteStore 图书+购物车条目的共享内存状态
type deleteStore struct {
	books   map[uint]*book.Book
	deleted map[uint]bool // 软删除标记
	items   []cart.CartItem

	failDelete bool // 注入软删除失败
}

type deleteSnapshot struct {
	deleted map[uint]bool
	items   []cart.CartItem
}

func (s *deleteStore) snapshot() deleteSnapshot {
	deleted := make(map[uint]bool, len(s.deleted))
	for k, v := range s.deleted {
		deleted[k] = v
	}
	return deleteSnapshot{
		deleted: deleted,
		items:   append([]cart.CartItem(nil), s.items...),
	}
}

func (s *deleteStore) restore(snap deleteSnapshot) {
	s.deleted = snap.deleted
	s.items = snap.items
}

type deleteTxManager struct{ store *deleteStore }

func (m *deleteTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	snap := m.store.snapshot()
	if err := fn(ctx); err != nil {
		m.store.restore(snap)
		return err
	}
	return nil
}

type deleteBookRepo struct{ store *deleteStore }

func (r *deleteBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := r.store.books[id]
	if !ok || r.store.deleted[id] {
		// 已软删除的图书对读路径不可见
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (r *deleteBookRepo) Delete(ctx context.Context, id uint) error {
	if r.store.failDelete {
		return errors.New("delete failed")
	}
	r.store.deleted[id] = true
	return nil
}

func (r *deleteBookRepo) Create(ctx context.Context, b *book.Book) error { return nil }
func (r *deleteBookRepo) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	return false, nil
}
func (r *deleteBookRepo) Update(ctx context.Context, b *book.Book) error { return nil }
func (r *deleteBookRepo) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	return nil, 0, nil
}
func (r *deleteBookRepo) Search(ctx context.Context, spec book.Specification, page, pageSize int) ([]*book.Book, int64, error) {
	return nil, 0, nil
}
func (r *deleteBookRepo) ListByCategory(ctx context.Context, categoryID uint, page, pageSize int) ([]*book.Book, int64, error) {
	return nil, 0, nil
}

type deleteCartRepo struct{ store *deleteStore }

func (r *deleteCartRepo) RemoveItemsByBookID(ctx context.Context, bookID uint) error {
	kept := r.store.items[:0]
	for _, item := range r.store.items {
		if item.BookID != bookID {
			kept = append(kept, item)
		}
	}
	r.store.items = kept
	return nil
}

func (r *deleteCartRepo) Create(ctx context.Context, c *cart.Cart) error { return nil }
func (r *deleteCartRepo) FindByUserID(ctx context.Context, userID uint) (*cart.Cart, error) {
	return nil, cart.ErrCartNotFound
}
func (r *deleteCartRepo) AddItem(ctx context.Context, item *cart.CartItem) error { return nil }
func (r *deleteCartRepo) UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error {
	return nil
}
func (r *deleteCartRepo) RemoveItem(ctx context.Context, itemID uint) error  { return nil }
func (r *deleteCartRepo) ClearItems(ctx context.Context, cartID uint) error { return nil }

func newDeleteStore() *deleteStore {
	return &deleteStore{
		books: map[uint]*book.Book{
			1: {ID: 1, Title: "Go语言实战", Price: 8900},
			2: {ID: 2, Title: "数据库系统概念", Price: 12900},
		},
		deleted: map[uint]bool{},
		items: []cart.CartItem{
			{ID: 1, CartID: 1, BookID: 1, Quantity: 2}, // 用户A的购物车
			{ID: 2, CartID: 1, BookID: 2, Quantity: 1},
			{ID: 3, CartID: 2, BookID: 1, Quantity: 5}, // 用户B的购物车
		},
	}
}

// TestDeleteBook_Cascade 下架图书同时清掉所有购物车里的引用条目
func TestDeleteBook_Cascade(t *testing.T) {
	store := newDeleteStore()
	uc := NewDeleteBookUseCase(
		&deleteBookRepo{store: store},
		&deleteCartRepo{store: store},
		&deleteTxManager{store: store},
	)

	require.NoError(t, uc.Execute(context.Background(), 1))

	assert.True(t, store.deleted[1])

	// 两个购物车里引用图书1的条目都被清掉,图书2的条目保留
	require.Len(t, store.items, 1)
	assert.Equal(t, uint(2), store.items[0].BookID)
}

// TestDeleteBook_NotFound 不存在的图书和已删除的图书都报"不存在"
func TestDeleteBook_NotFound(t *testing.T) {
	store := newDeleteStore()
	uc := NewDeleteBookUseCase(
		&deleteBookRepo{store: store},
		&deleteCartRepo{store: store},
		&deleteTxManager{store: store},
	)

	err := uc.Execute(context.Background(), 999)
	assert.Equal(t, book.ErrBookNotFound, err)

	// 重复删除同样报"不存在"(幂等拦截)
	require.NoError(t, uc.Execute(context.Background(), 1))
	err = uc.Execute(context.Background(), 1)
	assert.Equal(t, book.ErrBookNotFound, err)
}

// TestDeleteBook_Atomicity 软删除失败时级联清理被回滚
func TestDeleteBook_Atomicity(t *testing.T) {
	store := newDeleteStore()
	store.failDelete = true
	uc := NewDeleteBookUseCase(
		&deleteBookRepo{store: store},
		&deleteCartRepo{store: store},
		&deleteTxManager{store: store},
	)

	err := uc.Execute(context.Background(), 1)
	require.Error(t, err)

	assert.False(t, store.deleted[1])
	assert.Len(t, store.items, 3, "级联清理应随事务一起回滚")
}
