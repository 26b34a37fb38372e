package router

import (
	"github.com/bkpsdm/portal-api/internal/config"
	adminhandlers "github.com/bkpsdm/portal-api/internal/http/handlers/admin"
	publichandlers "github.com/bkpsdm/portal-api/internal/http/handlers/public"
	"github.com/bkpsdm/portal-api/internal/logger"
	"github.com/bkpsdm/portal-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter initializes the route table
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// uploaded assets (featured images, attachments, documents)
	r.Static("/uploads", "./uploads")

	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/healthz", publicHandler.Healthz)

		public := apiV1.Group("/public")
		{
			public.GET("/news", publicHandler.GetNews)
			public.GET("/news/popular", publicHandler.GetPopularNews)
			public.GET("/news/latest", publicHandler.GetLatestNews)
			public.GET("/news/:id", publicHandler.GetNewsByID)
			public.GET("/announcements", publicHandler.GetAnnouncements)
			public.GET("/announcements/:id", publicHandler.GetAnnouncementByID)
			public.GET("/downloads", publicHandler.GetDownloads)
			public.GET("/downloads/:id", publicHandler.GetDownloadByID)
			public.GET("/events", publicHandler.GetEvents)
			public.GET("/events/upcoming", publicHandler.GetUpcomingEvents)
			public.GET("/events/:id", publicHandler.GetEventByID)
			public.GET("/static-content", publicHandler.GetStaticContent)
			public.GET("/static-content/:key", publicHandler.GetStaticContentByKey)
			public.GET("/config", publicHandler.GetWebsiteConfig)
			public.GET("/config/:key", publicHandler.GetWebsiteConfigByKey)
			public.GET("/captcha/image", publicHandler.GetImageCaptcha)
		}

		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", publicHandler.Login)
		}

		me := apiV1.Group("")
		me.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		{
			me.GET("/me", publicHandler.Me)
		}

		admin := apiV1.Group("/admin")
		admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		admin.Use(RBACMiddleware(c.AuthzService))
		{
			admin.POST("/news", adminHandler.CreateNews)
			admin.PUT("/news/:id", adminHandler.UpdateNews)
			admin.DELETE("/news/:id", adminHandler.DeleteNews)

			admin.GET("/announcements", adminHandler.GetAllAnnouncements)
			admin.POST("/announcements", adminHandler.CreateAnnouncement)
			admin.PUT("/announcements/:id", adminHandler.UpdateAnnouncement)
			admin.DELETE("/announcements/:id", adminHandler.DeleteAnnouncement)

			admin.POST("/downloads", adminHandler.CreateDownload)
			admin.PUT("/downloads/:id", adminHandler.UpdateDownload)
			admin.DELETE("/downloads/:id", adminHandler.DeleteDownload)

			admin.POST("/events", adminHandler.CreateEvent)
			admin.PUT("/events/:id", adminHandler.UpdateEvent)
			admin.DELETE("/events/:id", adminHandler.DeleteEvent)

			admin.PUT("/static-content", adminHandler.UpdateStaticContent)
			admin.PUT("/config", adminHandler.UpdateWebsiteConfig)

			admin.GET("/users", adminHandler.GetUsers)
			admin.GET("/users/by-username/:username", adminHandler.GetUserByUsername)
			admin.GET("/users/:id", adminHandler.GetUserByID)
			admin.POST("/users", adminHandler.CreateUser)
			admin.PUT("/users/:id", adminHandler.UpdateUser)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
		}
	}

	return r
}
