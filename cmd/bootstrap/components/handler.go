package components

import (
	"github.com/gin-gonic/gin"

	"deal-marketplace/internal/handler"
	"deal-marketplace/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDealHandler,
		api.NewOrderHandler,
		api.NewFavoriteHandler,
		api.NewNotificationHandler,
		api.NewRestaurantHandler,
		api.NewPaymentHandler,
		NewHandlers,
		NewEngine,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	deals *api.DealHandler,
	orders *api.OrderHandler,
	favorites *api.FavoriteHandler,
	notifications *api.NotificationHandler,
	restaurants *api.RestaurantHandler,
	payments *api.PaymentHandler,
) handler.Handlers {
	return handler.Handlers{
		Deals:         deals,
		Orders:        orders,
		Favorites:     favorites,
		Notifications: notifications,
		Restaurants:   restaurants,
		Payments:      payments,
	}
}

func NewEngine() *gin.Engine {
	gin.EnableJsonDecoderDisallowUnknownFields()
	return gin.New()
}
