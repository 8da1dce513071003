package routes

import (
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sangkips/solarpower/internal/config"
	"github.com/sangkips/solarpower/internal/presentation/http/handler"
	"github.com/sangkips/solarpower/internal/presentation/http/middleware"
	"github.com/sangkips/solarpower/web"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Public    *handler.PublicHandler
	Auth      *handler.AuthHandler
	Service   *handler.ServiceHandler
	CaseStudy *handler.CaseStudyHandler
	Request   *handler.RequestHandler
	Project   *handler.ProjectHandler
	Metric    *handler.MetricHandler
	Dashboard *handler.DashboardHandler
	Log       *handler.LogHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg           *config.Config
	Authenticator middleware.StaffAuthenticator
	FlashStore    sessions.Store
	Templates     *template.Template
	MediaRoot     string
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(deps.Templates)

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.Metrics())
	router.Use(middleware.Flash(deps.FlashStore))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if static, err := fs.Sub(web.Static, "static"); err == nil {
		router.StaticFS("/static", http.FS(static))
	}
	router.Static("/media", deps.MediaRoot)

	rateLimiter := middleware.NewIPRateLimiter(leadRateLimit(&deps.Cfg.RateLimit))
	registerPublicRoutes(router, h, rateLimiter.Middleware())

	analyticsCORS := middleware.CORSMiddleware(&deps.Cfg.CORS)

	adm := router.Group("/adm")
	{
		adm.GET("/login/", h.Auth.LoginPage)
		adm.POST("/login/", h.Auth.Login)
		// preflight requests carry no session cookie
		adm.OPTIONS("/analytics/data/", analyticsCORS)

		staff := adm.Group("")
		staff.Use(middleware.RequireStaff(deps.Authenticator))
		registerStaffRoutes(staff, h, analyticsCORS)
	}

	router.NoRoute(handler.NotFound)

	return router
}

func leadRateLimit(cfg *config.RateLimitConfig) middleware.RateLimiterConfig {
	rl := middleware.DefaultRateLimiterConfig()
	if cfg.Requests > 0 && cfg.Duration > 0 {
		rl.RequestsPerSecond = float64(cfg.Requests) / float64(cfg.Duration)
		rl.BurstSize = cfg.Requests
	}
	return rl
}

func registerPublicRoutes(r *gin.Engine, h *Handlers, limit gin.HandlerFunc) {
	r.GET("/", h.Public.Home)
	r.POST("/", limit, h.Public.SubmitHome)
	r.GET("/booking-success/", h.Public.BookingSuccess)
	r.GET("/services/", h.Public.Services)
	r.GET("/case-studies/:id/", h.Public.CaseStudyDetail)
	r.GET("/contact/", h.Public.Contact)
	r.POST("/contact/", limit, h.Public.SubmitContact)
	r.GET("/about/", handler.StaticPage("about.html", "About Us"))
	r.GET("/privacy-policy/", handler.StaticPage("privacy_policy.html", "Privacy Policy"))
	r.GET("/terms-conditions/", handler.StaticPage("terms_conditions.html", "Terms & Conditions"))
	r.GET("/disclaimer/", handler.StaticPage("disclaimer.html", "Disclaimer"))
}

func registerStaffRoutes(r *gin.RouterGroup, h *Handlers, analyticsCORS gin.HandlerFunc) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/adm/dashboard/")
	})
	r.POST("/logout/", h.Auth.Logout)
	r.GET("/dashboard/", h.Dashboard.Dashboard)

	analytics := r.Group("/analytics")
	{
		analytics.GET("/", h.Dashboard.Analytics)
		analytics.GET("/data/", analyticsCORS, h.Dashboard.AnalyticsData)
	}

	services := r.Group("/services")
	{
		services.GET("/", h.Service.List)
		services.GET("/edit/:slug/", h.Service.Edit)
		services.POST("/edit/:slug/", h.Service.Update)
	}

	caseStudies := r.Group("/case-studies")
	{
		caseStudies.GET("/", h.CaseStudy.List)
		caseStudies.GET("/add/", h.CaseStudy.New)
		caseStudies.POST("/add/", h.CaseStudy.Create)
		caseStudies.GET("/edit/:id/", h.CaseStudy.Edit)
		caseStudies.POST("/edit/:id/", h.CaseStudy.Update)
		caseStudies.GET("/delete/:id/", h.CaseStudy.ConfirmDelete)
		caseStudies.POST("/delete/:id/", h.CaseStudy.Delete)
	}

	requests := r.Group("/service-requests")
	{
		requests.GET("/", h.Request.List)
		requests.GET("/export/", h.Request.Export)
		requests.POST("/:id/complete/", h.Request.MarkCompleted)
	}

	projects := r.Group("/projects")
	{
		projects.GET("/", h.Project.List)
		projects.GET("/add/", h.Project.New)
		projects.POST("/add/", h.Project.Create)
		projects.GET("/edit/:id/", h.Project.Edit)
		projects.POST("/edit/:id/", h.Project.Update)
	}

	metrics := r.Group("/metrics")
	{
		metrics.GET("/", h.Metric.List)
		metrics.GET("/add/", h.Metric.New)
		metrics.POST("/add/", h.Metric.Create)
	}

	r.GET("/logs/", h.Log.List)
}
