package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"deal-marketplace/internal/handler/api"
	"deal-marketplace/internal/handler/middleware"
	"deal-marketplace/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Deals         *api.DealHandler
	Orders        *api.OrderHandler
	Favorites     *api.FavoriteHandler
	Notifications *api.NotificationHandler
	Restaurants   *api.RestaurantHandler
	Payments      *api.PaymentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/deals", Handler: h.Deals.Browse},
			{Method: http.MethodGet, Path: "/deals/:id", Handler: h.Deals.GetPublished},
			{Method: http.MethodGet, Path: "/restaurants/:restaurantId", Handler: h.Restaurants.Get},
			{Method: http.MethodPost, Path: "/webhooks/payments", Handler: h.Payments.Webhook},
		})

		// Role checks happen in the usecases; the groups only require identity.
		owner := apiGroup.Group("/owner")
		owner.Use(authMiddleware.RequireAuth())
		addRoutes(owner, []route{
			{Method: http.MethodGet, Path: "/restaurant", Handler: h.Restaurants.GetMine},
			{Method: http.MethodPost, Path: "/restaurant", Handler: h.Restaurants.Create},
			{Method: http.MethodPut, Path: "/restaurant", Handler: h.Restaurants.Update},
			{Method: http.MethodGet, Path: "/deals", Handler: h.Deals.ListOwn},
			{Method: http.MethodPost, Path: "/deals", Handler: h.Deals.Create},
			{Method: http.MethodPut, Path: "/deals/:id", Handler: h.Deals.Update},
			{Method: http.MethodDelete, Path: "/deals/:id", Handler: h.Deals.Delete},
			{Method: http.MethodPost, Path: "/deals/:id/submit", Handler: h.Deals.Submit},
			{Method: http.MethodGet, Path: "/orders", Handler: h.Orders.ListRestaurant},
			{Method: http.MethodPut, Path: "/orders/:id/status", Handler: h.Orders.AdvanceStatus},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/deals/submitted", Handler: h.Deals.ListSubmitted},
			{Method: http.MethodPost, Path: "/deals/:id/approve", Handler: h.Deals.Approve},
			{Method: http.MethodPost, Path: "/deals/:id/reject", Handler: h.Deals.Reject},
		})

		member := apiGroup.Group("")
		member.Use(authMiddleware.RequireAuth())
		addRoutes(member, []route{
			{Method: http.MethodPost, Path: "/orders", Handler: h.Orders.Checkout},
			{Method: http.MethodGet, Path: "/orders", Handler: h.Orders.ListMine},
			{Method: http.MethodGet, Path: "/orders/:id", Handler: h.Orders.GetMine},
			{Method: http.MethodGet, Path: "/favorites", Handler: h.Favorites.List},
			{Method: http.MethodPost, Path: "/favorites/:dealId", Handler: h.Favorites.Add},
			{Method: http.MethodDelete, Path: "/favorites/:dealId", Handler: h.Favorites.Remove},
			{Method: http.MethodGet, Path: "/notifications", Handler: h.Notifications.List},
			{Method: http.MethodPatch, Path: "/notifications/read-all", Handler: h.Notifications.MarkAllRead},
			{Method: http.MethodPatch, Path: "/notifications/:id/read", Handler: h.Notifications.MarkRead},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
