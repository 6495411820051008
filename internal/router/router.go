package router

import (
	"rentapi/internal/handlers"
	"rentapi/internal/middleware"
	"rentapi/internal/services"
	"rentapi/internal/store"
	"rentapi/pkg/config"
	"rentapi/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Version 服务版本
const Version = "1.0.0"

// Options 路由依赖
type Options struct {
	Store    store.Store
	Config   *config.Config
	Registry *prometheus.Registry // 为空时不暴露指标
}

// SetupRouter 设置路由
func SetupRouter(opts Options) *gin.Engine {
	router := gin.New()
	// "/properties/" 视为空ID，由处理器返回 404，不做重定向
	router.RedirectTrailingSlash = false

	// 中间件
	router.Use(middleware.RequestLogger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.SetupCORS(opts.Config.CORS))
	if opts.Registry != nil && opts.Config.Metrics.Enabled {
		router.Use(middleware.NewMetrics(opts.Registry).Handler())
		router.GET(opts.Config.Metrics.Path, gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Not found")
	})

	// 注册路由
	registerRoutes(router, opts)
	return router
}

// 注册所有路由
func registerRoutes(router *gin.Engine, opts Options) {
	// 健康检查接口
	systemHandler := handlers.NewSystemHandler(Version)
	router.GET("/health", systemHandler.Health)

	// 房产路由
	propertyHandler := handlers.NewPropertyHandler(services.NewPropertyService(opts.Store))
	properties := router.Group("/properties")
	{
		properties.GET("", propertyHandler.GetAll)
		properties.POST("", propertyHandler.Create)
		properties.GET("/:id", propertyHandler.GetByID)
		properties.PUT("/:id", propertyHandler.Update)
		properties.DELETE("/:id", propertyHandler.Delete)

		// 空ID
		properties.GET("/", propertyHandler.GetByID)
		properties.PUT("/", propertyHandler.Update)
		properties.DELETE("/", propertyHandler.Delete)
	}

	// 租客路由
	tenantHandler := handlers.NewTenantHandler(services.NewTenantService(opts.Store))
	tenants := router.Group("/tenants")
	{
		tenants.GET("", tenantHandler.GetAll)
		tenants.POST("", tenantHandler.Create)
		tenants.GET("/:id", tenantHandler.GetByID)
		tenants.PUT("/:id", tenantHandler.Update)
		tenants.DELETE("/:id", tenantHandler.Delete)

		// 空ID
		tenants.GET("/", tenantHandler.GetByID)
		tenants.PUT("/", tenantHandler.Update)
		tenants.DELETE("/", tenantHandler.Delete)
	}
}
