package provider

import (
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/cache"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/config"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/logger"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/models"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/queue"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/repository"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo     repository.AdminRepository
	UserRepo      repository.UserRepository
	AddressRepo   repository.AddressRepository
	CategoryRepo  repository.CategoryRepository
	ProductRepo   repository.ProductRepository
	CartRepo      repository.CartRepository
	CouponRepo    repository.CouponRepository
	OrderRepo     repository.OrderRepository
	AffiliateRepo repository.AffiliateRepository

	// Services
	AuthService        *service.AuthService
	UserAuthService    *service.UserAuthService
	AddressService     *service.AddressService
	CategoryService    *service.CategoryService
	ProductService     *service.ProductService
	CartService        *service.CartService
	CouponService      *service.CouponService
	CouponAdminService *service.CouponAdminService
	PricingService     *service.PricingService
	OrderService       *service.OrderService
	AffiliateService   *service.AffiliateService
	EmailSender        service.EmailSender
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.AddressRepo = repository.NewAddressRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.CouponRepo = repository.NewCouponRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.AffiliateRepo = repository.NewAffiliateRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.AddressService = service.NewAddressService(c.AddressRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.CouponService = service.NewCouponService(c.CouponRepo)
	c.CouponAdminService = service.NewCouponAdminService(c.CouponRepo)

	pricingService, err := service.NewPricingService(c.Config.Shop)
	if err != nil {
		logger.Errorw("provider_init_pricing_failed", "error", err)
		panic(err)
	}
	c.PricingService = pricingService

	affiliateService, err := service.NewAffiliateService(c.AffiliateRepo, c.UserRepo, c.Config.Affiliate)
	if err != nil {
		logger.Errorw("provider_init_affiliate_failed", "error", err)
		panic(err)
	}
	c.AffiliateService = affiliateService

	c.OrderService = service.NewOrderService(
		c.OrderRepo,
		c.CartRepo,
		c.ProductRepo,
		c.CouponRepo,
		c.AddressRepo,
		c.PricingService,
		c.CouponService,
		c.AffiliateService,
		c.Config.Shop.Currency,
	)

	if c.Config.Email.Enabled {
		c.EmailSender = service.NewEmailService(c.Config.Email)
	} else {
		c.EmailSender = service.LoggingEmailSender{}
	}
}
