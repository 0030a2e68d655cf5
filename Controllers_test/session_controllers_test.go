package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/restaurant-site/middlewares"
)

func TestGetSessionCreatesNewSession(t *testing.T) {
	app := setupTestApp(t)

	w := app.do(t, http.MethodGet, "/session", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	id := w.Header().Get(middlewares.SessionHeader)
	assert.NotEmpty(t, id)
	assert.Equal(t, 1, app.Sessions.Len())

	data := responseData(t, w)
	assert.Equal(t, id, data["id"])
	assert.Equal(t, false, data["confirmation_open"])
	assert.Equal(t, float64(0), data["cart_total"])
	assert.NotContains(t, data, "last_booking")
}

func TestSessionStateIsKept(t *testing.T) {
	app := setupTestApp(t)
	sid := app.newSession(t)

	app.do(t, http.MethodPost, "/session/cart/items/4", sid, nil)
	app.do(t, http.MethodPut, "/session/filters/veg", sid, map[string]interface{}{"veg": "veg"})

	w := app.do(t, http.MethodGet, "/session", sid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sid, w.Header().Get(middlewares.SessionHeader))

	data := responseData(t, w)
	assert.Equal(t, float64(420), data["cart_total"])
	filters := data["filters"].(map[string]interface{})
	assert.Equal(t, "veg", filters["veg"])
	assert.Equal(t, 1, app.Sessions.Len())
}

func TestUnknownSessionRejected(t *testing.T) {
	app := setupTestApp(t)

	w := app.do(t, http.MethodGet, "/session/cart", "does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "session not found", decodeResponse(t, w)["message"])
	assert.Equal(t, 0, app.Sessions.Len())
}
