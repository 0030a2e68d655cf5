package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-site/config"
	"github.com/yeremiapane/restaurant-site/controllers"
	"github.com/yeremiapane/restaurant-site/kds"
	"github.com/yeremiapane/restaurant-site/middlewares"
	"github.com/yeremiapane/restaurant-site/services"
)

// App berisi semua dependency yang dibuat oleh main dan dibagikan ke controller
type App struct {
	Config   *config.Config
	Catalog  *services.Catalog
	Sessions *services.SessionStore
	Hub      *kds.Hub
	Assigner services.TableAssigner
}

func SetupRouter(app *App) *gin.Engine {
	cfg := app.Config
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders(cfg.GinMode == gin.ReleaseMode))
	r.Use(middlewares.CORSMiddlewares(cfg.AllowedOrigin))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Interval).RateLimit())

	// Inisialisasi controller
	menuCtrl := controllers.NewMenuController(app.Catalog, cfg.MaxQuantity)
	filterCtrl := controllers.NewFilterController()
	cartCtrl := controllers.NewCartController(app.Catalog, cfg.MaxQuantity)
	orderCtrl := controllers.NewOrderController(app.Catalog, app.Hub)
	bookingCtrl := controllers.NewBookingController(cfg.BookingWindowMonths, app.Assigner, app.Hub)
	carouselCtrl := controllers.NewCarouselController(app.Catalog, cfg.CarouselInterval)
	sessionCtrl := controllers.NewSessionController(app.Catalog)
	kdsCtrl := controllers.NewKDSController(app.Hub)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/menu", menuCtrl.GetMenu)
	r.GET("/menu/sections", menuCtrl.GetSections)
	r.GET("/menu/:item_id", menuCtrl.GetMenuItemByID)

	r.GET("/booking/slots", bookingCtrl.GetSlots)
	r.GET("/booking/options", bookingCtrl.GetOptions)

	r.GET("/carousel", carouselCtrl.GetFrame)
	r.GET("/carousel/ws", carouselCtrl.CarouselSocket)

	// Kitchen display
	r.GET("/kds/ws", kdsCtrl.KDSHandler)

	// ----------------------------------------------------------------
	//                      SESSION ROUTES
	// ----------------------------------------------------------------
	session := r.Group("/session")
	session.Use(middlewares.SessionMiddleware(app.Sessions), middlewares.NoStore())
	{
		session.GET("", sessionCtrl.GetSession)
		session.GET("/menu", menuCtrl.GetSessionMenu)

		// FILTERS
		session.GET("/filters", filterCtrl.GetFilters)
		session.PUT("/filters/query", filterCtrl.SetQuery)
		session.PUT("/filters/veg", filterCtrl.SetVeg)
		session.POST("/filters/veg/toggle", filterCtrl.ToggleVeg)

		// CART
		session.GET("/cart", cartCtrl.GetCart)
		session.POST("/cart/items/:item_id", cartCtrl.AddItem)
		session.PUT("/cart/items/:item_id", cartCtrl.UpdateItem)
		session.POST("/cart/items/:item_id/increment", cartCtrl.IncrementItem)
		session.POST("/cart/items/:item_id/decrement", cartCtrl.DecrementItem)
		session.DELETE("/cart", cartCtrl.ClearCart)

		// ORDERS
		session.GET("/orders/confirmation", orderCtrl.GetConfirmation)
		session.DELETE("/orders/confirmation", orderCtrl.CloseConfirmation)

		// BOOKING
		session.GET("/booking", bookingCtrl.GetBooking)
		session.PUT("/booking/date", bookingCtrl.SelectDate)
		session.PUT("/booking/time", bookingCtrl.SelectTime)
		session.PUT("/booking/party-size", bookingCtrl.SelectPartySize)
	}

	// Endpoint yang membuat order/reservasi dibatasi lebih ketat
	strict := session.Group("")
	strict.Use(middlewares.NewStrictRateLimiter(100*time.Millisecond, 20))
	{
		strict.POST("/orders", orderCtrl.PlaceOrder)
		strict.POST("/booking", bookingCtrl.SubmitBooking)
	}

	return r
}
