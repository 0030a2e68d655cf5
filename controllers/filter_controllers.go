package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-site/models"
	"github.com/yeremiapane/restaurant-site/utils"
)

type FilterController struct{}

func NewFilterController() *FilterController {
	return &FilterController{}
}

func (fc *FilterController) GetFilters(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Current filters", session.Filters())
}

// SetQuery -> query disimpan apa adanya (string kosong diperbolehkan)
func (fc *FilterController) SetQuery(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var body struct {
		Query *string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Query updated", session.SetQuery(*body.Query))
}

func (fc *FilterController) SetVeg(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var body struct {
		Veg models.VegFilter `json:"veg" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !body.Veg.Valid() {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidVegFilter)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Veg filter updated", session.SetVeg(body.Veg))
}

// ToggleVeg -> perilaku checkbox "Veg only" / "Non-Veg only"
func (fc *FilterController) ToggleVeg(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var body struct {
		Category models.VegFilter `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Category != models.VegOnly && body.Category != models.NonVegOnly {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidToggle)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Veg filter toggled", session.ToggleVeg(body.Category))
}
