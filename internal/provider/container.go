package provider

import (
	"github.com/stylemart/internal/cache"
	"github.com/stylemart/internal/config"
	"github.com/stylemart/internal/logger"
	"github.com/stylemart/internal/models"
	"github.com/stylemart/internal/queue"
	"github.com/stylemart/internal/repository"
	"github.com/stylemart/internal/service"
)

// Container wires repositories and services together.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo     repository.UserRepository
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository
	SaleRepo     repository.SaleRepository
	ReportRepo   repository.ReportRepository

	// Services
	AuthService     *service.AuthService
	UserService     *service.UserService
	ProductService  *service.ProductService
	CategoryService *service.CategoryService
	CartService     *service.CartService
	OrderService    *service.OrderService
	SaleService     *service.SaleService
	ReportService   *service.ReportService
	UploadService   *service.UploadService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

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

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.SaleRepo = repository.NewSaleRepository(db)
	c.ReportRepo = repository.NewReportRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.UserService = service.NewUserService(c.UserRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.SaleService = service.NewSaleService(c.OrderRepo, c.ProductRepo, c.SaleRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.CartRepo, c.QueueClient, c.SaleService)
	c.ReportService = service.NewReportService(c.ReportRepo)
	c.UploadService = service.NewUploadService(c.Config)
}
