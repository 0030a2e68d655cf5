package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-site/services"
	"github.com/yeremiapane/restaurant-site/utils"
)

type SessionController struct {
	Catalog *services.Catalog
}

func NewSessionController(catalog *services.Catalog) *SessionController {
	return &SessionController{Catalog: catalog}
}

// GetSession -> ringkasan state session saat ini
func (sc *SessionController) GetSession(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	cart := session.Cart()
	_, confirmationOpen := session.Confirmation()
	data := gin.H{
		"id":                session.ID,
		"created_at":        session.CreatedAt,
		"filters":           session.Filters(),
		"cart":              cart,
		"cart_total":        services.CartTotal(sc.Catalog, cart),
		"booking":           session.Booking(),
		"confirmation_open": confirmationOpen,
	}
	if booking, ok := session.LastBooking(); ok {
		data["last_booking"] = booking
	}

	utils.RespondJSON(c, http.StatusOK, "Session detail", data)
}
