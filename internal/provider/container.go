package provider

import (
	"github.com/bkpsdm/portal-api/internal/authz"
	"github.com/bkpsdm/portal-api/internal/config"
	"github.com/bkpsdm/portal-api/internal/logger"
	"github.com/bkpsdm/portal-api/internal/models"
	"github.com/bkpsdm/portal-api/internal/repository"
	"github.com/bkpsdm/portal-api/internal/service"
)

// Container dependency injection container
type Container struct {
	Config *config.Config

	// Repositories
	NewsRepo          repository.NewsRepository
	AnnouncementRepo  repository.AnnouncementRepository
	DownloadRepo      repository.DownloadRepository
	EventRepo         repository.EventRepository
	StaticContentRepo repository.StaticContentRepository
	WebsiteConfigRepo repository.WebsiteConfigRepository
	UserRepo          repository.UserRepository

	// Services
	AuthzService         *authz.Service
	AuthService          *service.AuthService
	CaptchaService       *service.CaptchaService
	NewsService          *service.NewsService
	AnnouncementService  *service.AnnouncementService
	DownloadService      *service.DownloadService
	EventService         *service.EventService
	StaticContentService *service.StaticContentService
	WebsiteConfigService *service.WebsiteConfigService
	UserService          *service.UserService
}

// NewContainer initializes the container
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.NewsRepo = repository.NewNewsRepository(db)
	c.AnnouncementRepo = repository.NewAnnouncementRepository(db)
	c.DownloadRepo = repository.NewDownloadRepository(db)
	c.EventRepo = repository.NewEventRepository(db)
	c.StaticContentRepo = repository.NewStaticContentRepository(db)
	c.WebsiteConfigRepo = repository.NewWebsiteConfigRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.NewsService = service.NewNewsService(c.NewsRepo)
	c.AnnouncementService = service.NewAnnouncementService(c.AnnouncementRepo)
	c.DownloadService = service.NewDownloadService(c.DownloadRepo)
	c.EventService = service.NewEventService(c.EventRepo)
	c.StaticContentService = service.NewStaticContentService(c.StaticContentRepo)
	c.WebsiteConfigService = service.NewWebsiteConfigService(c.WebsiteConfigRepo)
	c.UserService = service.NewUserService(c.UserRepo)
}
