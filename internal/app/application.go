package app

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cms-admin/internal/config"
	"cms-admin/internal/content"
	"cms-admin/internal/handlers"
	"cms-admin/internal/help"
	"cms-admin/internal/middleware"
	"cms-admin/internal/naming"
	"cms-admin/internal/service"
	"cms-admin/internal/ui/popup"
	"cms-admin/pkg/cache"
	"cms-admin/pkg/logger"
	"cms-admin/pkg/slug"
	"cms-admin/pkg/utils"
	"cms-admin/pkg/validator"
	"cms-admin/web"
)

type Options struct {
	// Templates overrides the embedded admin templates.
	Templates fs.FS
}

type Application struct {
	cfg     *config.Config
	options Options

	ctx    context.Context
	cancel context.CancelFunc

	cache       *cache.Cache
	rateLimiter *middleware.RateLimitManager
	popup       popup.Config
	generator   *slug.Generator
	help        *help.Library

	services serviceContainer
	handlers handlerContainer

	router *gin.Engine
	server *http.Server
}

type serviceContainer struct {
	Slug     *service.SlugService
	Contents *service.ContentsService
}

type handlerContainer struct {
	Slug      *handlers.SlugHandler
	Selection *handlers.SelectionHandler
	Pages     *handlers.AdminPageHandler
	Help      *handlers.HelpHandler
}

func New(cfg *config.Config, opts Options) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	if opts.Templates == nil {
		opts.Templates = web.Templates()
	}

	logger.Configure(cfg.Environment, cfg.LogLevel)
	validator.Init()

	ctx, cancel := context.WithCancel(context.Background())
	app := &Application{
		cfg:     cfg,
		options: opts,
		ctx:     ctx,
		cancel:  cancel,
	}

	if err := app.initUI(); err != nil {
		cancel()
		return nil, err
	}

	app.initCache()
	app.initServices()
	app.initHandlers()

	if err := app.initRouter(); err != nil {
		cancel()
		return nil, err
	}

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
		"slug_mode":   a.generator.Mode().String(),
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.rateLimiter != nil {
		if err := a.rateLimiter.Shutdown(); err != nil {
			logger.Error(err, "Failed to stop rate limiter", nil)
		}
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	a.cancel()
	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initUI() error {
	mode, err := slug.ParseMode(a.cfg.SlugNonASCII)
	if err != nil {
		return fmt.Errorf("invalid SLUG_NON_ASCII: %w", err)
	}
	a.generator = slug.NewGenerator(mode)

	a.popup = popup.Config{
		Width:     a.cfg.HelpPopupWidth,
		MaxHeight: a.cfg.HelpPopupMaxHeight,
	}.WithDefaults()
	if err := a.popup.Validate(); err != nil {
		return fmt.Errorf("invalid help popup configuration: %w", err)
	}

	return nil
}

func (a *Application) initCache() {
	cacheService, err := cache.NewCache(a.cfg.RedisURL, a.cfg.EnableCache)
	if err != nil {
		logger.Error(err, "Cache unavailable, continuing without it", map[string]interface{}{
			"redis_url": a.cfg.RedisURL,
		})
		cacheService, _ = cache.NewCache("", false)
	}
	a.cache = cacheService
	a.help = help.NewLibrary(a.cache)
}

func (a *Application) initServices() {
	rules := naming.DefaultRules().WithReserved(a.cfg.ReservedNames...)
	folder := content.NewFolder(a.cfg.RootFolderName, rules)
	groups := content.NewGroups(a.cfg.UserGroups, a.cfg.SystemRoles)

	a.services = serviceContainer{
		Slug:     service.NewSlugService(a.generator, rules),
		Contents: service.NewContentsService(folder, groups),
	}
}

func (a *Application) initHandlers() {
	a.handlers = handlerContainer{
		Slug:      handlers.NewSlugHandler(a.services.Slug),
		Selection: handlers.NewSelectionHandler(a.popup),
		Pages:     handlers.NewAdminPageHandler(a.services.Contents, a.services.Slug),
		Help:      handlers.NewHelpHandler(a.help),
	}
}

func (a *Application) initRouter() error {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	a.rateLimiter = middleware.NewRateLimitManager(a.ctx)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(logger.GinLogger())
	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}
	router.Use(middleware.RateLimitMiddleware(a.cfg, a.rateLimiter))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.CSRFHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.SecurityHeadersMiddleware())

	funcs := utils.GetTemplateFuncs(utils.UIOptions{Popup: a.popup, Generator: a.generator})
	templates, err := utils.LoadTemplates(a.options.Templates, funcs)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	router.SetHTMLTemplate(templates)
	logger.Info("Templates loaded successfully", map[string]interface{}{
		"templates": templates.DefinedTemplates(),
	})

	router.StaticFS("/static", http.FS(web.Static()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"cache":  a.cache.Enabled(),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := router.Group("/api/v1/admin")
	api.Use(middleware.AuthMiddleware(a.cfg.JWTSecret), middleware.AdminMiddleware())
	{
		api.POST("/slug", a.handlers.Slug.Generate)
		api.POST("/names/validate", a.handlers.Slug.ValidateName)
		api.POST("/selection", a.handlers.Selection.Selection)
		api.POST("/radios", a.handlers.Selection.Radios)
		api.GET("/popup", a.handlers.Selection.Popup)
		api.GET("/help", a.handlers.Help.List)
		api.DELETE("/help/cache", a.handlers.Help.Reset)
	}

	admin := router.Group("/admin")
	admin.Use(
		middleware.NoIndexMiddleware(),
		middleware.AuthMiddleware(a.cfg.JWTSecret),
		middleware.AdminMiddleware(),
		middleware.CSRFMiddleware(a.cfg.IsProduction()),
	)
	{
		admin.GET("", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/admin/contents")
		})
		admin.GET("/add", a.handlers.Pages.AddForm)
		admin.POST("/add", a.handlers.Pages.Add)
		admin.GET("/contents", a.handlers.Pages.Contents)
		admin.POST("/contents", a.handlers.Pages.ContentsAction)
		admin.GET("/local_roles", a.handlers.Pages.LocalRoles)
		admin.POST("/local_roles", a.handlers.Pages.SaveLocalRoles)
		admin.GET("/help/:topic", a.handlers.Help.Topic)
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Status":  http.StatusText(http.StatusNotFound),
			"Message": "The page you requested does not exist.",
		})
	})

	a.router = router
	return nil
}
