package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-site/controllers"
	"github.com/yeremiapane/restaurant-site/database"
	"github.com/yeremiapane/restaurant-site/kds"
	"github.com/yeremiapane/restaurant-site/middlewares"
	"github.com/yeremiapane/restaurant-site/services"
)

// Senin, 19 Oktober 2026
var fixedNow = time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)

type fixedAssigner struct {
	table int
	calls int
}

func (f *fixedAssigner) AssignTable() int {
	f.calls++
	return f.table
}

func setupTestCatalog(t *testing.T) *services.Catalog {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.SeedCatalog(db, database.SeedMenu()))

	items, err := database.LoadCatalog(db)
	require.NoError(t, err)
	return services.NewCatalogWithSections(items, database.Sections)
}

type testApp struct {
	Router   *gin.Engine
	Catalog  *services.Catalog
	Sessions *services.SessionStore
	Hub      *kds.Hub
	Assigner *fixedAssigner
	Booking  *controllers.BookingController
}

func setupTestApp(t *testing.T) *testApp {
	gin.SetMode(gin.TestMode)
	app := &testApp{
		Catalog:  setupTestCatalog(t),
		Sessions: services.NewSessionStore(0),
		Hub:      kds.NewHub(),
		Assigner: &fixedAssigner{table: 7},
	}

	menuCtrl := controllers.NewMenuController(app.Catalog, services.DefaultMaxQuantity)
	filterCtrl := controllers.NewFilterController()
	cartCtrl := controllers.NewCartController(app.Catalog, services.DefaultMaxQuantity)
	orderCtrl := controllers.NewOrderController(app.Catalog, app.Hub)
	bookingCtrl := controllers.NewBookingController(1, app.Assigner, app.Hub)
	bookingCtrl.Now = func() time.Time { return fixedNow }
	app.Booking = bookingCtrl
	carouselCtrl := controllers.NewCarouselController(app.Catalog, 3*time.Second)
	sessionCtrl := controllers.NewSessionController(app.Catalog)

	router := gin.New()
	router.GET("/menu", menuCtrl.GetMenu)
	router.GET("/menu/sections", menuCtrl.GetSections)
	router.GET("/menu/:item_id", menuCtrl.GetMenuItemByID)
	router.GET("/booking/slots", bookingCtrl.GetSlots)
	router.GET("/booking/options", bookingCtrl.GetOptions)
	router.GET("/carousel", carouselCtrl.GetFrame)

	session := router.Group("/session")
	session.Use(middlewares.SessionMiddleware(app.Sessions))
	{
		session.GET("", sessionCtrl.GetSession)
		session.GET("/menu", menuCtrl.GetSessionMenu)
		session.GET("/filters", filterCtrl.GetFilters)
		session.PUT("/filters/query", filterCtrl.SetQuery)
		session.PUT("/filters/veg", filterCtrl.SetVeg)
		session.POST("/filters/veg/toggle", filterCtrl.ToggleVeg)
		session.GET("/cart", cartCtrl.GetCart)
		session.POST("/cart/items/:item_id", cartCtrl.AddItem)
		session.PUT("/cart/items/:item_id", cartCtrl.UpdateItem)
		session.POST("/cart/items/:item_id/increment", cartCtrl.IncrementItem)
		session.POST("/cart/items/:item_id/decrement", cartCtrl.DecrementItem)
		session.DELETE("/cart", cartCtrl.ClearCart)
		session.POST("/orders", orderCtrl.PlaceOrder)
		session.GET("/orders/confirmation", orderCtrl.GetConfirmation)
		session.DELETE("/orders/confirmation", orderCtrl.CloseConfirmation)
		session.GET("/booking", bookingCtrl.GetBooking)
		session.PUT("/booking/date", bookingCtrl.SelectDate)
		session.PUT("/booking/time", bookingCtrl.SelectTime)
		session.PUT("/booking/party-size", bookingCtrl.SelectPartySize)
		session.POST("/booking", bookingCtrl.SubmitBooking)
	}

	app.Router = router
	return app
}

// newSession membuat session baru lewat GET /session dan mengembalikan id-nya
func (a *testApp) newSession(t *testing.T) string {
	w := a.do(t, http.MethodGet, "/session", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get(middlewares.SessionHeader)
	require.NotEmpty(t, id)
	return id
}

func (a *testApp) do(t *testing.T, method, path, sessionID string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set(middlewares.SessionHeader, sessionID)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func responseData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	response := decodeResponse(t, w)
	data, ok := response["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}
