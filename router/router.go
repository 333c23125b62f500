package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/food-ordering-app/config"
	"github.com/yeremiapane/food-ordering-app/controllers"
	"github.com/yeremiapane/food-ordering-app/feed"
	"github.com/yeremiapane/food-ordering-app/metrics"
	"github.com/yeremiapane/food-ordering-app/middlewares"
	"github.com/yeremiapane/food-ordering-app/services"
	"golang.org/x/time/rate"
)

// Deps is everything the HTTP layer needs, built once in main.
type Deps struct {
	Config      config.Config
	Log         *logrus.Logger
	Metrics     *metrics.Metrics
	Hub         *feed.Hub
	Customers   *services.CustomerService
	Addresses   *services.AddressService
	Restaurants *services.RestaurantService
	Categories  *services.CategoryService
	Items       *services.ItemService
	Payments    *services.PaymentService
	Orders      *services.OrderService
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Urutan penting: error handler paling dalam agar logger & metrics melihat status akhir
	if d.Config.MetricsEnabled {
		r.Use(d.Metrics.GinMiddleware())
	}
	r.Use(middlewares.LoggerMiddleware(d.Log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(d.Config.CORSAllowedOrigins))
	r.Use(middlewares.NewRateLimiter(rate.Limit(d.Config.RateLimitRPS), d.Config.RateLimitBurst).RateLimit())
	r.Use(middlewares.ErrorHandlingMiddleware(d.Log))

	// Inisialisasi controller
	customerCtrl := controllers.NewCustomerController(d.Customers)
	addressCtrl := controllers.NewAddressController(d.Addresses)
	categoryCtrl := controllers.NewCategoryController(d.Categories)
	restaurantCtrl := controllers.NewRestaurantController(d.Restaurants)
	itemCtrl := controllers.NewItemController(d.Items, d.Restaurants)
	paymentCtrl := controllers.NewPaymentController(d.Payments)
	orderCtrl := controllers.NewOrderController(d.Orders)
	feedCtrl := controllers.NewFeedController(d.Hub, d.Config.CORSAllowedOrigins, d.Log)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if d.Config.MetricsEnabled {
		r.GET("/metrics", d.Metrics.Handler())
	}

	// Rate limiter untuk login/register
	strict := r.Group("/customer")
	strict.Use(middlewares.NewStrictRateLimiter().RateLimit())
	{
		strict.POST("/signup", customerCtrl.Signup)
		strict.POST("/login", customerCtrl.Login)
	}

	r.GET("/states", addressCtrl.GetAllStates)
	r.GET("/category", categoryCtrl.GetAllCategories)
	r.GET("/category/:category_id", categoryCtrl.GetCategoryByID)
	r.GET("/restaurant", restaurantCtrl.GetAllRestaurants)
	r.GET("/restaurant/name/:restaurant_name", restaurantCtrl.GetRestaurantsByName)
	r.GET("/restaurant/category/:category_id", restaurantCtrl.GetRestaurantsByCategory)
	r.GET("/restaurant/:restaurant_id", restaurantCtrl.GetRestaurantByID)
	r.GET("/item/restaurant/:restaurant_id", itemCtrl.GetPopularItems)
	r.GET("/payment", paymentCtrl.GetPaymentMethods)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.CustomerAuth(d.Customers))
	{
		auth.POST("/customer/logout", customerCtrl.Logout)
		auth.PUT("/customer", customerCtrl.UpdateCustomer)
		auth.PUT("/customer/password", customerCtrl.ChangePassword)

		auth.POST("/address", addressCtrl.SaveAddress)
		auth.GET("/address/customer", addressCtrl.GetCustomerAddresses)
		auth.DELETE("/address/:address_id", addressCtrl.DeleteAddress)

		auth.PUT("/restaurant/:restaurant_id", restaurantCtrl.UpdateRating)

		auth.GET("/order/coupon/:coupon_name", orderCtrl.GetCouponByName)
		auth.GET("/order", orderCtrl.GetCustomerOrders)
		auth.POST("/order", orderCtrl.SaveOrder)
	}

	// WebSocket endpoint dengan middleware khusus
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware(d.Customers))
	{
		wsGroup.GET("/orders", feedCtrl.OrderFeed)
	}

	return r
}
