package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/cart"
	"github.com/xiebiao/bookmall/internal/domain/order"
)

// fakeStore 内存存储,三个仓储共享同一份状态
// 配合fakeTxManager的快照/回滚,可以在不连数据库的情况下
// 验证下单流程的原子性
type fakeStore struct {
	books       map[uint]*book.Book
	cart        *cart.Cart
	orders      []*order.Order
	nextOrderID uint

	failOrderCreate bool // 注入订单插入失败
	failClearItems  bool // 注入清空购物车失败
}

type storeSnapshot struct {
	cartItems []cart.CartItem
	orders    []*order.Order
}

func (s *fakeStore) snapshot() storeSnapshot {
	return storeSnapshot{
		cartItems: append([]cart.CartItem(nil), s.cart.Items...),
		orders:    append([]*order.Order(nil), s.orders...),
	}
}

func (s *fakeStore) restore(snap storeSnapshot) {
	s.cart.Items = snap.cartItems
	s.orders = snap.orders
}

// fakeTxManager 模拟事务:执行前打快照,失败时恢复
type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	snap := m.store.snapshot()
	if err := fn(ctx); err != nil {
		m.store.restore(snap)
		return err
	}
	return nil
}

// --- 仓储实现(只实现用例用到的方法) ---

type fakeOrderRepo struct{ store *fakeStore }

func (r *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	if r.store.failOrderCreate {
		return errors.New("insert failed")
	}
	r.store.nextOrderID++
	o.ID = r.store.nextOrderID
	r.store.orders = append(r.store.orders, o)
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	for _, o := range r.store.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, order.ErrOrderNotFound
}

func (r *fakeOrderRepo) FindByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	for _, o := range r.store.orders {
		if o.OrderNo == orderNo {
			return o, nil
		}
	}
	return nil, order.ErrOrderNotFound
}

func (r *fakeOrderRepo) Update(ctx context.Context, o *order.Order) error { return nil }

func (r *fakeOrderRepo) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*order.Order, int64, error) {
	var result []*order.Order
	for _, o := range r.store.orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, int64(len(result)), nil
}

type fakeCartRepo struct{ store *fakeStore }

func (r *fakeCartRepo) Create(ctx context.Context, c *cart.Cart) error { return nil }

func (r *fakeCartRepo) FindByUserID(ctx context.Context, userID uint) (*cart.Cart, error) {
	if r.store.cart == nil || r.store.cart.UserID != userID {
		return nil, cart.ErrCartNotFound
	}
	clone := *r.store.cart
	clone.Items = append([]cart.CartItem(nil), r.store.cart.Items...)
	return &clone, nil
}

func (r *fakeCartRepo) AddItem(ctx context.Context, item *cart.CartItem) error { return nil }
func (r *fakeCartRepo) UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error {
	return nil
}
func (r *fakeCartRepo) RemoveItem(ctx context.Context, itemID uint) error         { return nil }
func (r *fakeCartRepo) RemoveItemsByBookID(ctx context.Context, bookID uint) error { return nil }

func (r *fakeCartRepo) ClearItems(ctx context.Context, cartID uint) error {
	if r.store.failClearItems {
		return errors.New("clear failed")
	}
	r.store.cart.Items = []cart.CartItem{}
	return nil
}

type fakeBookRepo struct{ store *fakeStore }

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := r.store.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (r *fakeBookRepo) Create(ctx context.Context, b *book.Book) error { return nil }
func (r *fakeBookRepo) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	return false, nil
}
func (r *fakeBookRepo) Update(ctx context.Context, b *book.Book) error { return nil }
func (r *fakeBookRepo) Delete(ctx context.Context, id uint) error      { return nil }
func (r *fakeBookRepo) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	return nil, 0, nil
}
func (r *fakeBookRepo) Search(ctx context.Context, spec book.Specification, page, pageSize int) ([]*book.Book, int64, error) {
	return nil, 0, nil
}
func (r *fakeBookRepo) ListByCategory(ctx context.Context, categoryID uint, page, pageSize int) ([]*book.Book, int64, error) {
	return nil, 0, nil
}

// recordingPublisher 记录发布的事件
type recordingPublisher struct {
	events []OrderCreatedEvent
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	if p.err != nil {
		return p.err
	}
	if event, ok := message.(OrderCreatedEvent); ok {
		p.events = append(p.events, event)
	}
	return nil
}

func newTestStore() *fakeStore {
	return &fakeStore{
		books: map[uint]*book.Book{
			1: {ID: 1, Title: "Go语言实战", Price: 8900},
			2: {ID: 2, Title: "数据库系统概念", Price: 12900},
		},
		cart: &cart.Cart{
			ID:     1,
			UserID: 42,
			Items: []cart.CartItem{
				{ID: 1, CartID: 1, BookID: 1, Quantity: 2},
				{ID: 2, CartID: 1, BookID: 2, Quantity: 1},
			},
		},
	}
}

func newTestUseCase(store *fakeStore, publisher EventPublisher) *CreateOrderUseCase {
	return NewCreateOrderUseCase(
		&fakeOrderRepo{store: store},
		&fakeCartRepo{store: store},
		&fakeBookRepo{store: store},
		&fakeTxManager{store: store},
		publisher,
	)
}

// TestCreateOrder 正常下单:快照价计总额,清空购物车,发布事件
func TestCreateOrder(t *testing.T) {
	store := newTestStore()
	publisher := &recordingPublisher{}
	uc := newTestUseCase(store, publisher)

	resp, err := uc.Execute(context.Background(), CreateOrderRequest{
		UserID:          42,
		ShippingAddress: "北京市海淀区中关村大街1号",
	})
	require.NoError(t, err)

	// 总额 = 2*8900 + 1*12900
	assert.Equal(t, int64(30700), resp.Total)
	assert.Equal(t, "307.00", resp.TotalYuan)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Len(t, resp.Items, 2)
	assert.NotEmpty(t, resp.OrderNo)

	// 购物车已清空
	assert.Empty(t, store.cart.Items)

	// 事件已发布
	require.Len(t, publisher.events, 1)
	assert.Equal(t, resp.OrderNo, publisher.events[0].OrderNo)
	assert.Equal(t, int64(30700), publisher.events[0].Total)
}

// TestCreateOrder_EmptyCart 空购物车不能下单
func TestCreateOrder_EmptyCart(t *testing.T) {
	store := newTestStore()
	store.cart.Items = nil
	uc := newTestUseCase(store, nil)

	_, err := uc.Execute(context.Background(), CreateOrderRequest{UserID: 42})
	assert.Equal(t, order.ErrEmptyCart, err)
	assert.Empty(t, store.orders)

	// 从未访问过购物车的用户同样视为空车
	store2 := newTestStore()
	store2.cart.UserID = 99
	uc2 := newTestUseCase(store2, nil)
	_, err = uc2.Execute(context.Background(), CreateOrderRequest{UserID: 42})
	assert.Equal(t, order.ErrEmptyCart, err)
}

// TestCreateOrder_PriceSnapshot 下单后改价不影响订单金额
func TestCreateOrder_PriceSnapshot(t *testing.T) {
	store := newTestStore()
	uc := newTestUseCase(store, nil)

	resp, err := uc.Execute(context.Background(), CreateOrderRequest{UserID: 42, ShippingAddress: "地址"})
	require.NoError(t, err)
	require.Equal(t, int64(30700), resp.Total)

	// 商家改价
	store.books[1].Price = 100

	// 已创建订单的金额和明细价保持下单时刻的快照
	saved := store.orders[0]
	assert.Equal(t, int64(30700), saved.Total)
	assert.Equal(t, int64(8900), saved.Items[0].Price)
	assert.Equal(t, saved.Total, saved.CalculateTotal())
}

// TestCreateOrder_Atomicity 任一步骤失败,订单和购物车都回到原状
func TestCreateOrder_Atomicity(t *testing.T) {
	// 清空购物车失败→订单插入被回滚
	store := newTestStore()
	store.failClearItems = true
	uc := newTestUseCase(store, nil)

	_, err := uc.Execute(context.Background(), CreateOrderRequest{UserID: 42, ShippingAddress: "地址"})
	require.Error(t, err)
	assert.Empty(t, store.orders, "事务回滚后不应留下订单")
	assert.Len(t, store.cart.Items, 2, "购物车应保持原状")

	// 订单插入失败→购物车不会被清空
	store = newTestStore()
	store.failOrderCreate = true
	uc = newTestUseCase(store, nil)

	_, err = uc.Execute(context.Background(), CreateOrderRequest{UserID: 42, ShippingAddress: "地址"})
	require.Error(t, err)
	assert.Empty(t, store.orders)
	assert.Len(t, store.cart.Items, 2)
}

// TestCreateOrder_PublishFailure 事件发布失败不影响下单结果
func TestCreateOrder_PublishFailure(t *testing.T) {
	store := newTestStore()
	publisher := &recordingPublisher{err: errors.New("broker down")}
	uc := newTestUseCase(store, publisher)

	resp, err := uc.Execute(context.Background(), CreateOrderRequest{UserID: 42, ShippingAddress: "地址"})
	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Len(t, store.orders, 1)
	assert.Empty(t, store.cart.Items)
}

// TestCreateOrder_BookRemoved 条目引用的图书已下架时下单失败
func TestCreateOrder_BookRemoved(t *testing.T) {
	store := newTestStore()
	delete(store.books, 2)
	uc := newTestUseCase(store, nil)

	_, err := uc.Execute(context.Background(), CreateOrderRequest{UserID: 42, ShippingAddress: "地址"})
	assert.Equal(t, book.ErrBookNotFound, err)
	assert.Empty(t, store.orders)
	assert.Len(t, store.cart.Items, 2, "失败后购物车保持原状")
}
