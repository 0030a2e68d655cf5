package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-site/services"
	"github.com/yeremiapane/restaurant-site/utils"
)

type MenuController struct {
	Catalog     *services.Catalog
	MaxQuantity int
}

func NewMenuController(catalog *services.Catalog, maxQuantity int) *MenuController {
	return &MenuController{Catalog: catalog, MaxQuantity: maxQuantity}
}

// GetMenu -> seluruh katalog beserta daftar section
func (mc *MenuController) GetMenu(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of menu items", gin.H{
		"items":    mc.Catalog.Items(),
		"sections": mc.Catalog.Sections(),
	})
}

func (mc *MenuController) GetSections(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of sections", mc.Catalog.Sections())
}

// GetMenuItemByID
func (mc *MenuController) GetMenuItemByID(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	item, found := mc.Catalog.Lookup(id)
	if !found {
		utils.RespondError(c, http.StatusNotFound, ErrItemNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// GetSessionMenu -> menu yang sudah difilter sesuai filter session, dikelompokkan
// per section dan diberi kontrol keranjang per item
func (mc *MenuController) GetSessionMenu(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	filters := session.Filters()
	items := services.FilterMenu(mc.Catalog, filters)
	decorator := services.NewCartDecorator(session.Cart(), mc.MaxQuantity)

	utils.RespondJSON(c, http.StatusOK, "Filtered menu", gin.H{
		"filters":  filters,
		"count":    len(items),
		"sections": services.BuildMenuSections(mc.Catalog.Sections(), items, decorator),
	})
}
