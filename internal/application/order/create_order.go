package order

import (
	"context"
	"log"

	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/cart"
	"github.com/xiebiao/bookmall/internal/domain/order"
	"github.com/xiebiao/bookmall/pkg/metrics"
)

// TxManager 事务管理器(消费方定义接口,由mysql.TxManager实现)
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher 事件发布接口(由pkg/mq.Publisher实现)
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// CreateOrderUseCase 下单用例
// 设计说明:
// 1. 从购物车整车下单:读出全部条目→逐条取图书当前价格做快照→
//    生成订单→清空购物车
// 2. 订单插入和购物车清空在同一事务中执行,要么都发生要么都不发生
// 3. 价格快照在事务内读取,订单金额从此固定,后续改价不影响
// 4. 事务提交后发布order.created事件,发布失败只记日志不回滚
type CreateOrderUseCase struct {
	orderRepo order.Repository
	cartRepo  cart.Repository
	bookRepo  book.Repository
	txManager TxManager
	publisher EventPublisher // 可为nil(未配置MQ时)
}

// NewCreateOrderUseCase 创建下单用例
func NewCreateOrderUseCase(
	orderRepo order.Repository,
	cartRepo cart.Repository,
	bookRepo book.Repository,
	txManager TxManager,
	publisher EventPublisher,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
		publisher: publisher,
	}
}

// CreateOrderRequest 下单请求DTO
type CreateOrderRequest struct {
	UserID          uint   // 买家用户ID(从JWT中提取)
	ShippingAddress string // 收货地址
}

// OrderCreatedEvent order.created事件载荷
type OrderCreatedEvent struct {
	OrderNo   string `json:"order_no"`
	UserID    uint   `json:"user_id"`
	Total     int64  `json:"total"`
	ItemCount int    `json:"item_count"`
	OrderedAt string `json:"ordered_at"`
}

// Execute 执行下单用例
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req CreateOrderRequest) (*OrderDetail, error) {
	var result *order.Order

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 步骤1:读取购物车,空车不能下单
		c, err := uc.cartRepo.FindByUserID(txCtx, req.UserID)
		if err != nil {
			if err == cart.ErrCartNotFound {
				return order.ErrEmptyCart
			}
			return err
		}
		if c.IsEmpty() {
			return order.ErrEmptyCart
		}

		// 步骤2:逐条目读取图书当前价格,生成价格快照
		// 使用数据库中的当前价格而非前端传递的价格,防止改价攻击
		items := make([]order.OrderItem, 0, len(c.Items))
		for _, item := range c.Items {
			b, err := uc.bookRepo.FindByID(txCtx, item.BookID)
			if err != nil {
				// 图书在加购后被下架:级联清理和本事务并发,
				// 让用户重新确认购物车
				return err
			}
			items = append(items, order.OrderItem{
				BookID:   item.BookID,
				Quantity: item.Quantity,
				Price:    b.Price, // 下单时刻的价格快照
			})
		}

		// 步骤3:创建订单(总额按快照价计算)
		newOrder, err := order.NewOrder(order.GenerateOrderNo(), req.UserID, req.ShippingAddress, items)
		if err != nil {
			return err
		}
		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}

		// 步骤4:清空购物车(同一事务,失败则整体回滚,订单不会产生)
		if err := uc.cartRepo.ClearItems(txCtx, c.ID); err != nil {
			return err
		}

		result = newOrder
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	metrics.OrderAmountFen.Observe(float64(result.Total))

	// 事务已提交,事件发布尽力而为
	if uc.publisher != nil {
		event := OrderCreatedEvent{
			OrderNo:   result.OrderNo,
			UserID:    result.UserID,
			Total:     result.Total,
			ItemCount: len(result.Items),
			OrderedAt: result.OrderedAt.Format("2006-01-02 15:04:05"),
		}
		if err := uc.publisher.Publish(ctx, "order.created", event); err != nil {
			log.Printf("发布order.created事件失败 orderNo=%s: %v", result.OrderNo, err)
		}
	}

	return toOrderDetail(result), nil
}
