package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appbook "github.com/xiebiao/bookmall/internal/application/book"
	appcart "github.com/xiebiao/bookmall/internal/application/cart"
	appcategory "github.com/xiebiao/bookmall/internal/application/category"
	apporder "github.com/xiebiao/bookmall/internal/application/order"
	appuser "github.com/xiebiao/bookmall/internal/application/user"
	"github.com/xiebiao/bookmall/internal/domain/book"
	"github.com/xiebiao/bookmall/internal/domain/cart"
	"github.com/xiebiao/bookmall/internal/domain/category"
	"github.com/xiebiao/bookmall/internal/domain/user"
	"github.com/xiebiao/bookmall/internal/infrastructure/config"
	"github.com/xiebiao/bookmall/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookmall/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookmall/internal/interface/http/handler"
	"github.com/xiebiao/bookmall/internal/interface/http/middleware"
	"github.com/xiebiao/bookmall/pkg/jwt"
	"github.com/xiebiao/bookmall/pkg/metrics"
	"github.com/xiebiao/bookmall/pkg/mq"
	"github.com/xiebiao/bookmall/pkg/response"
)

// main 主程序入口
// 说明：手动依赖注入，组装链 Repository ← Service ← UseCase ← Handler
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 3. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 4. 初始化MQ（可选，cfg.mq.enabled=false时订单事件退化为不发布）
	var publisher apporder.EventPublisher
	var mqPublisher *mq.Publisher
	if cfg.MQ.Enabled {
		mqPublisher, err = mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
		if err != nil {
			log.Fatalf("初始化MQ失败: %v", err)
		}
		defer mqPublisher.Close()
		publisher = mqPublisher
		fmt.Printf("  - MQ: %s (exchange=%s)\n", cfg.MQ.URL, cfg.MQ.Exchange)
	}

	// 5. 依赖注入（手动组装）

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	cartRepo := mysql.NewCartRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)
	bookService := book.NewService(bookRepo)
	categoryCache := category.NewCache()
	categoryService := category.NewService(categoryRepo, categoryCache)
	cartService := cart.NewService(cartRepo, bookRepo)

	// 启动时预热分类缓存，后续读全部走内存
	warmCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := categoryService.WarmCache(warmCtx); err != nil {
		cancel()
		log.Fatalf("预热分类缓存失败: %v", err)
	}
	cancel()

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore)

	publishBookUseCase := appbook.NewPublishBookUseCase(bookService, categoryService)
	getBookUseCase := appbook.NewGetBookUseCase(bookService, categoryService)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookService, categoryService)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookRepo, cartRepo, txManager)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService, bookRepo, categoryService)
	searchBooksUseCase := appbook.NewSearchBooksUseCase(bookService)

	createCategoryUseCase := appcategory.NewCreateCategoryUseCase(categoryService)
	updateCategoryUseCase := appcategory.NewUpdateCategoryUseCase(categoryService)
	deleteCategoryUseCase := appcategory.NewDeleteCategoryUseCase(categoryService)
	listCategoriesUseCase := appcategory.NewListCategoriesUseCase(categoryService)

	getCartUseCase := appcart.NewGetCartUseCase(cartService, bookRepo)
	addCartItemUseCase := appcart.NewAddCartItemUseCase(cartService, bookRepo)
	updateCartItemUseCase := appcart.NewUpdateCartItemUseCase(cartService, bookRepo)
	removeCartItemUseCase := appcart.NewRemoveCartItemUseCase(cartService)

	createOrderUseCase := apporder.NewCreateOrderUseCase(orderRepo, cartRepo, bookRepo, txManager, publisher)
	getOrderUseCase := apporder.NewGetOrderUseCase(orderRepo)
	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo)
	changeOrderStatusUseCase := apporder.NewChangeOrderStatusUseCase(orderRepo)

	// 接口层
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase, jwtManager)
	bookHandler := handler.NewBookHandler(
		publishBookUseCase, getBookUseCase, updateBookUseCase,
		deleteBookUseCase, listBooksUseCase, searchBooksUseCase,
	)
	categoryHandler := handler.NewCategoryHandler(
		createCategoryUseCase, updateCategoryUseCase,
		deleteCategoryUseCase, listCategoriesUseCase,
	)
	cartHandler := handler.NewCartHandler(
		getCartUseCase, addCartItemUseCase,
		updateCartItemUseCase, removeCartItemUseCase,
	)
	orderHandler := handler.NewOrderHandler(
		createOrderUseCase, getOrderUseCase,
		listOrdersUseCase, changeOrderStatusUseCase,
	)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 6. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	metrics.Register()
	r.Use(metrics.GinMiddleware())

	// 7. 注册路由
	registerRoutes(r, &handlers{
		user:     userHandler,
		book:     bookHandler,
		category: categoryHandler,
		cart:     cartHandler,
		order:    orderHandler,
	}, authMiddleware)

	// 8. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   监控指标: http://localhost%s/metrics\n", addr)
	fmt.Printf("   API文档: http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// handlers 路由注册用的处理器集合
type handlers struct {
	user     *handler.UserHandler
	book     *handler.BookHandler
	category *handler.CategoryHandler
	cart     *handler.CartHandler
	order    *handler.OrderHandler
}

// registerRoutes 注册路由
func registerRoutes(r *gin.Engine, h *handlers, authMiddleware *middleware.AuthMiddleware) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 用户模块
		users := v1.Group("/users")
		{
			users.POST("/register", h.user.Register)
			users.POST("/login", h.user.Login)
			users.POST("/refresh", h.user.RefreshToken)
			users.POST("/logout", authMiddleware.RequireAuth(), h.user.Logout)
		}

		// 图书模块（浏览公开，管理需要登录）
		books := v1.Group("/books")
		{
			books.GET("", h.book.ListBooks)
			books.GET("/search", h.book.SearchBooks)
			books.GET("/:id", h.book.GetBook)

			books.POST("", authMiddleware.RequireAuth(), h.book.PublishBook)
			books.PUT("/:id", authMiddleware.RequireAuth(), h.book.UpdateBook)
			books.DELETE("/:id", authMiddleware.RequireAuth(), h.book.DeleteBook)
		}

		// 分类模块（查询公开，管理需要登录）
		categories := v1.Group("/categories")
		{
			categories.GET("", h.category.ListCategories)

			categories.POST("", authMiddleware.RequireAuth(), h.category.CreateCategory)
			categories.PUT("/:id", authMiddleware.RequireAuth(), h.category.UpdateCategory)
			categories.DELETE("/:id", authMiddleware.RequireAuth(), h.category.DeleteCategory)
		}

		// 购物车模块（全部需要登录）
		cartGroup := v1.Group("/cart")
		cartGroup.Use(authMiddleware.RequireAuth())
		{
			cartGroup.GET("", h.cart.GetCart)
			cartGroup.POST("/items", h.cart.AddItem)
			cartGroup.PUT("/items/:id", h.cart.UpdateItem)
			cartGroup.DELETE("/items/:id", h.cart.RemoveItem)
		}

		// 订单模块（全部需要登录）
		orders := v1.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			orders.POST("", h.order.CreateOrder)
			orders.GET("", h.order.ListOrders)
			orders.GET("/:id", h.order.GetOrder)
			orders.PUT("/:id/status", h.order.ChangeStatus)
		}
	}
}
