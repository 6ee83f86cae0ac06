package handler

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"visit-map-api/internal/logging"
	"visit-map-api/internal/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Pages        *PageHandler
	Admin        *AdminHandler
	Customers    *CustomerHandler
	Visits       *VisitHandler
	Markers      *MarkerHandler
	UserSettings *UserSettingsHandler
}

// RouterOptions configures the engine around the handlers.
type RouterOptions struct {
	AllowedOrigins []string
	Templates      *template.Template
	Health         func(ctx context.Context) error
}

// NewRouter builds the gin engine with every route of the service.
func NewRouter(h Handlers, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(), metrics.Middleware())

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
			ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	if opts.Templates != nil {
		r.SetHTMLTemplate(opts.Templates)
	}

	r.GET("/health", func(c *gin.Context) {
		if opts.Health != nil {
			if err := opts.Health(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", h.Pages.LoginPage)
	r.GET("/LoginPage", h.Pages.LoginPage)
	r.POST("/login", h.Pages.Login)
	r.GET("/logout", h.Pages.Logout)
	r.GET("/MobileMapPage", h.Pages.MobileMapPage)

	r.GET("/AdminLogin", h.Pages.AdminLoginPage)
	r.GET("/AdminSettings", h.Pages.AdminSettings)
	r.POST("/AdminSettings", h.Pages.UpdateAdminSettings)

	admin := r.Group("/admin")
	{
		admin.POST("/login", h.Pages.AdminLogin)
		admin.GET("/logout", h.Pages.AdminLogout)

		editors := admin.Group("", h.Pages.RequireAdmin)
		editors.GET("/marker-colors", h.Admin.MarkerColors)
		editors.POST("/marker-colors", h.Admin.ReplaceMarkerColors)
		editors.GET("/users", h.Admin.Users)
		editors.POST("/users", h.Admin.ReplaceUsers)
	}

	api := r.Group("/api")
	{
		api.GET("/markers", h.Markers.Today)
		api.GET("/markers/nearby", RequireCookie(UserCookie), h.Markers.Nearby)

		customers := api.Group("/customers")
		{
			customers.GET("", h.Customers.List)
			customers.POST("", h.Customers.Create)
			customers.GET("/:id", h.Customers.Get)
			customers.PUT("/:id", h.Customers.Update)
			customers.DELETE("/:id", h.Customers.Delete)
			customers.GET("/:id/detail", h.Customers.Detail)
		}

		visits := api.Group("/visits")
		{
			visits.GET("", h.Visits.List)
			visits.POST("", h.Visits.Create)
			visits.GET("/:id", h.Visits.Get)
			visits.PUT("/:id", h.Visits.Update)
			visits.DELETE("/:id", h.Visits.Delete)
		}

		api.GET("/search/fields", h.Markers.SearchFields)
		api.POST("/search/customers", h.Markers.SearchCustomers)

		user := api.Group("/user", RequireCookie(UserCookie))
		user.GET("/settings", h.UserSettings.Get)
		user.PUT("/settings", h.UserSettings.Update)
	}

	return r
}
