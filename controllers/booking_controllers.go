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

type BookingController struct {
	WindowMonths int
	Assigner     services.TableAssigner
	Hub          *kds.Hub
	Now          func() time.Time
}

func NewBookingController(windowMonths int, assigner services.TableAssigner, hub *kds.Hub) *BookingController {
	return &BookingController{
		WindowMonths: windowMonths,
		Assigner:     assigner,
		Hub:          hub,
		Now:          time.Now,
	}
}

type BookingFormView struct {
	models.BookingForm
	Slots      []string `json:"slots"`
	PartySizes []int    `json:"party_sizes"`
	CanSubmit  bool     `json:"can_submit"`
}

func (bc *BookingController) formView(form models.BookingForm) BookingFormView {
	view := BookingFormView{
		BookingForm: form,
		Slots:       []string{},
		PartySizes:  []int{},
		CanSubmit:   form.Complete(),
	}
	if date, err := services.ParseBookingDate(form.Date); err == nil {
		view.Slots = services.TimeSlots(date)
	}
	// Party size baru bisa dipilih setelah time dipilih
	if form.Time != "" {
		view.PartySizes = services.PartySizes()
	}
	return view
}

// parseDate memvalidasi format dan rentang tanggal booking
func (bc *BookingController) parseDate(c *gin.Context, value string) (time.Time, bool) {
	date, err := services.ParseBookingDate(value)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidDate)
		return time.Time{}, false
	}
	if !services.InBookingRange(date, bc.Now(), bc.WindowMonths) {
		utils.RespondError(c, http.StatusBadRequest, ErrDateOutOfRange)
		return time.Time{}, false
	}
	return date, true
}

// GetSlots -> GET /booking/slots?date=YYYY-MM-DD
func (bc *BookingController) GetSlots(c *gin.Context) {
	date, ok := bc.parseDate(c, c.Query("date"))
	if !ok {
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Available time slots", gin.H{
		"date":    date.Format(models.BookingDateLayout),
		"weekday": date.Weekday().String(),
		"slots":   services.TimeSlots(date),
	})
}

// GetOptions -> batas tanggal dan pilihan jumlah tamu
func (bc *BookingController) GetOptions(c *gin.Context) {
	first, last := services.BookingDateRange(bc.Now(), bc.WindowMonths)
	utils.RespondJSON(c, http.StatusOK, "Booking options", gin.H{
		"min_date":    first.Format(models.BookingDateLayout),
		"max_date":    last.Format(models.BookingDateLayout),
		"party_sizes": services.PartySizes(),
	})
}

func (bc *BookingController) GetBooking(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking form", bc.formView(session.Booking()))
}

// SelectDate -> mengganti tanggal mereset time dan party size
func (bc *BookingController) SelectDate(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var body struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	date, ok := bc.parseDate(c, body.Date)
	if !ok {
		return
	}

	form := session.SelectBookingDate(date.Format(models.BookingDateLayout))
	utils.RespondJSON(c, http.StatusOK, "Booking date selected", bc.formView(form))
}

func (bc *BookingController) SelectTime(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var body struct {
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	form, err := session.SelectBookingTime(body.Time)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, bookingError(err))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking time selected", bc.formView(form))
}

func (bc *BookingController) SelectPartySize(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	var body struct {
		PartySize int `json:"party_size" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	form, err := session.SelectPartySize(body.PartySize)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, bookingError(err))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Party size selected", bc.formView(form))
}

// SubmitBooking -> tanpa date, time dan party size lengkap tidak ada konfirmasi
// dan tidak ada nomor meja yang dibagikan. Tanggal dicek ulang terhadap
// rentang booking saat submit.
func (bc *BookingController) SubmitBooking(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		return
	}

	confirmation, err := session.SubmitBooking(bc.Assigner, bc.Now(), bc.WindowMonths)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, bookingError(err))
		return
	}

	utils.InfoLogger.Printf("Booking confirmed: %s %s, party of %d, table %d",
		confirmation.Date, confirmation.Time, confirmation.PartySize, confirmation.TableNumber)
	if bc.Hub != nil {
		bc.Hub.BroadcastBookingConfirmed(session.ID, confirmation)
	}
	utils.RespondJSON(c, http.StatusCreated, "Reservation successful", gin.H{
		"confirmed": true,
		"booking":   confirmation,
	})
}

// bookingError menerjemahkan error dari session ke error response
func bookingError(err error) error {
	switch {
	case errors.Is(err, services.ErrBookingDateRequired):
		return ErrDateRequired
	case errors.Is(err, services.ErrBookingTimeRequired):
		return ErrTimeRequired
	case errors.Is(err, services.ErrInvalidBookingDate):
		return ErrInvalidDate
	case errors.Is(err, services.ErrUnknownTimeSlot):
		return ErrUnknownTimeSlot
	case errors.Is(err, services.ErrInvalidPartySize):
		return ErrInvalidPartySize
	case errors.Is(err, services.ErrIncompleteBooking):
		return ErrIncompleteBooking
	case errors.Is(err, services.ErrBookingDateExpired):
		return ErrDateOutOfRange
	}
	return err
}
