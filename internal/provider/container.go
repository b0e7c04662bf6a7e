package provider

import (
	"github.com/kirana-store/kirana/internal/cache"
	"github.com/kirana-store/kirana/internal/config"
	"github.com/kirana-store/kirana/internal/logger"
	"github.com/kirana-store/kirana/internal/models"
	"github.com/kirana-store/kirana/internal/payment/mockpay"
	"github.com/kirana-store/kirana/internal/queue"
	"github.com/kirana-store/kirana/internal/repository"
	"github.com/kirana-store/kirana/internal/service"
)

// Container wires repositories and services once and hands them to the
// HTTP handlers and the worker.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	Gateway     *mockpay.Gateway

	// Repositories
	AdminRepo   repository.AdminRepository
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository
	OrderRepo   repository.OrderRepository

	// Services
	AuthService     *service.AuthService
	CaptchaService  *service.CaptchaService
	ProductService  *service.ProductService
	CartService     *service.CartService
	DeliveryService *service.DeliveryService
	OrderService    *service.OrderService
	ShareService    *service.ShareService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	qc, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
	} else {
		queueClient = qc
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		Gateway:     mockpay.New(),
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.DeliveryService = service.NewDeliveryService(c.Config)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartService, c.DeliveryService, c.Gateway, c.QueueClient, c.Config.Order.PaymentExpireMinutes)
	c.ShareService = service.NewShareService(c.CartService, c.Config.Store, c.Config.Order.ShowPricesInShare)
}
