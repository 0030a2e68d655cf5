package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/restaurant-site/models"
	"github.com/yeremiapane/restaurant-site/services"
	"github.com/yeremiapane/restaurant-site/utils"
)

const (
	EventCarouselFrame = "carousel_frame"
	defaultViewport    = 1024
)

var ErrInvalidWidth = &CustomError{"width must be a positive integer"}

type CarouselController struct {
	Catalog  *services.Catalog
	Interval time.Duration
}

func NewCarouselController(catalog *services.Catalog, interval time.Duration) *CarouselController {
	return &CarouselController{Catalog: catalog, Interval: interval}
}

func parseWidth(value string) (int, error) {
	if value == "" {
		return defaultViewport, nil
	}
	width, err := strconv.Atoi(value)
	if err != nil || width <= 0 {
		return 0, ErrInvalidWidth
	}
	return width, nil
}

// GetFrame -> GET /carousel?width=&index= untuk client tanpa websocket
func (cc *CarouselController) GetFrame(c *gin.Context) {
	width, err := parseWidth(c.Query("width"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	index, err := strconv.Atoi(c.DefaultQuery("index", "0"))
	if err != nil || index < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("index must be a non-negative integer"))
		return
	}

	items := cc.Catalog.Items()
	if index >= len(items) {
		index = 0
	}
	visible := services.VisibleCount(width)

	utils.RespondJSON(c, http.StatusOK, "Carousel frame", gin.H{
		"frame": models.CarouselFrame{
			Index:   index,
			Visible: visible,
			Items:   services.Window(items, index, visible),
		},
		"next_index":  services.NextIndex(index, visible, len(items)),
		"interval_ms": cc.Interval.Milliseconds(),
	})
}

// wsFramePublisher menulis frame ke satu koneksi websocket
type wsFramePublisher struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (p *wsFramePublisher) PublishFrame(frame models.CarouselFrame) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return p.conn.WriteJSON(gin.H{
		"event": EventCarouselFrame,
		"data":  frame,
	})
}

type resizeMessage struct {
	Width int `json:"width"`
}

// CarouselSocket -> satu carousel per koneksi. Client mengirim {"width": n}
// saat viewport berubah; carousel berhenti saat koneksi putus.
func (cc *CarouselController) CarouselSocket(c *gin.Context) {
	width, err := parseWidth(c.Query("width"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer ws.Close()

	carousel := services.NewCarousel(cc.Catalog.Items(), width, &wsFramePublisher{conn: ws})
	carousel.Interval = cc.Interval
	carousel.Start()

	utils.InfoLogger.Printf("Carousel started for %s (width=%d)", c.ClientIP(), width)

	for {
		var msg resizeMessage
		if err := ws.ReadJSON(&msg); err != nil {
			break
		}
		if msg.Width > 0 {
			carousel.Resize(msg.Width)
		}
	}

	carousel.Stop()
	<-carousel.Done()
	utils.InfoLogger.Printf("Carousel stopped for %s", c.ClientIP())
}
