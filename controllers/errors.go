package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-site/middlewares"
	"github.com/yeremiapane/restaurant-site/services"
	"github.com/yeremiapane/restaurant-site/utils"
)

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

var (
	ErrInvalidItemID     = &CustomError{"invalid menu item id"}
	ErrInvalidQuantity   = &CustomError{"qty exceeds the maximum quantity per item"}
	ErrItemNotFound      = &CustomError{"menu item not found"}
	ErrInvalidVegFilter  = &CustomError{"veg must be one of: all, veg, non-veg"}
	ErrInvalidToggle     = &CustomError{"category must be veg or non-veg"}
	ErrInvalidDate       = &CustomError{"date must be in YYYY-MM-DD format"}
	ErrDateOutOfRange    = &CustomError{"date is outside the booking window"}
	ErrDateRequired      = &CustomError{"select a date first"}
	ErrTimeRequired      = &CustomError{"select a time first"}
	ErrUnknownTimeSlot   = &CustomError{"time is not an available slot for this date"}
	ErrInvalidPartySize  = &CustomError{"party size is not one of the available options"}
	ErrIncompleteBooking = &CustomError{"date, time and party size are required"}
	ErrNoConfirmation    = &CustomError{"no order confirmation is open"}
)

// currentSession mengambil session dari context; menulis response error jika tidak ada
func currentSession(c *gin.Context) (*services.Session, bool) {
	session, err := middlewares.CurrentSession(c)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return nil, false
	}
	return session, true
}

func parseItemID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidItemID)
		return 0, false
	}
	return uint(id), true
}
