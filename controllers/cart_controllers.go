package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-site/models"
	"github.com/yeremiapane/restaurant-site/services"
	"github.com/yeremiapane/restaurant-site/utils"
)

type CartController struct {
	Catalog     *services.Catalog
	MaxQuantity int
}

func NewCartController(catalog *services.Catalog, maxQuantity int) *CartController {
	return &CartController{Catalog: catalog, MaxQuantity: maxQuantity}
}

type CartView struct {
	Items      models.Cart `json:"items"`
	ItemCount  int         `json:"item_count"`
	Total      int         `json:"total"`
	TotalLabel string      `json:"total_label"`
}

func (cc *CartController) view(cart models.Cart) CartView {
	count := 0
	for _, qty := range cart {
		count += qty
	}
	total := services.CartTotal(cc.Catalog, cart)
	return CartView{
		Items:      cart,
		ItemCount:  count,
		Total:      total,
		TotalLabel: utils.FormatRupees(total),
	}
}

func (cc *CartController) GetCart(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart detail", cc.view(session.Cart()))
}

// AddItem -> tambah 1. Id tidak dicek ke katalog di sini; item yang tidak
// dikenal dihitung 0 pada total.
func (cc *CartController) AddItem(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item added", cc.view(session.AddItem(id)))
}

// UpdateItem -> set jumlah; qty <= 0 menghapus item dari keranjang,
// qty di atas MaxQuantity ditolak
func (cc *CartController) UpdateItem(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	var body struct {
		Qty *int `json:"qty" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	// qty <= 0 tetap valid (hapus item); batas atas sama dengan stepper
	if *body.Qty > cc.MaxQuantity {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidQuantity)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item updated", cc.view(session.UpdateItem(id, *body.Qty)))
}

func (cc *CartController) IncrementItem(c *gin.Context) {
	cc.step(c, 1)
}

func (cc *CartController) DecrementItem(c *gin.Context) {
	cc.step(c, -1)
}

func (cc *CartController) step(c *gin.Context, delta int) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	cart := session.StepItem(id, delta, services.DefaultMinQuantity, cc.MaxQuantity)
	utils.RespondJSON(c, http.StatusOK, "Item quantity changed", cc.view(cart))
}

func (cc *CartController) ClearCart(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	session.ClearCart()
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", cc.view(session.Cart()))
}
