package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-site/kds"
	"github.com/yeremiapane/restaurant-site/models"
	"github.com/yeremiapane/restaurant-site/services"
	"github.com/yeremiapane/restaurant-site/utils"
)

type OrderController struct {
	Catalog *services.Catalog
	Hub     *kds.Hub
}

func NewOrderController(catalog *services.Catalog, hub *kds.Hub) *OrderController {
	return &OrderController{Catalog: catalog, Hub: hub}
}

type OrderLineView struct {
	models.OrderLine
	Subtotal      int    `json:"subtotal"`
	SubtotalLabel string `json:"subtotal_label"`
}

type OrderSummaryView struct {
	Items      []OrderLineView `json:"items"`
	Total      int             `json:"total"`
	TotalLabel string          `json:"total_label"`
	PlacedAt   string          `json:"placed_at"`
}

func summaryView(summary models.OrderSummary) OrderSummaryView {
	lines := make([]OrderLineView, 0, len(summary.Items))
	for _, line := range summary.Items {
		lines = append(lines, OrderLineView{
			OrderLine:     line,
			Subtotal:      line.Subtotal(),
			SubtotalLabel: utils.FormatRupees(line.Subtotal()),
		})
	}
	return OrderSummaryView{
		Items:      lines,
		Total:      summary.Total,
		TotalLabel: utils.FormatRupees(summary.Total),
		PlacedAt:   summary.PlacedAt.Format(time.RFC3339),
	}
}

// PlaceOrder -> snapshot keranjang, kosongkan keranjang, buka konfirmasi
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	summary, err := session.PlaceOrder(oc.Catalog)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if oc.Hub != nil {
		oc.Hub.BroadcastOrderPlaced(session.ID, summary)
	}
	utils.RespondJSON(c, http.StatusCreated, "Order placed successfully", summaryView(summary))
}

func (oc *OrderController) GetConfirmation(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	summary, open := session.Confirmation()
	if !open {
		utils.RespondError(c, http.StatusNotFound, ErrNoConfirmation)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order summary", summaryView(summary))
}

// CloseConfirmation -> summary dibuang saat modal ditutup
func (oc *OrderController) CloseConfirmation(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	session.CloseConfirmation()
	utils.RespondJSON(c, http.StatusOK, "Order confirmation closed", nil)
}
