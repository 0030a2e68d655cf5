package services

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/yeremiapane/restaurant-site/models"
)

const (
	OpeningHour        = 11
	WeekdayClosingHour = 21
	WeekendClosingHour = 23

	MinPartySize = 2
	MaxPartySize = 10

	DefaultTableCount = 20
)

// TimeSlots menghasilkan slot per jam "HH:00" untuk tanggal tertentu.
// Sabtu dan Minggu buka sampai 23:00, hari lain sampai 21:00 (inklusif).
func TimeSlots(date time.Time) []string {
	closing := WeekdayClosingHour
	if day := date.Weekday(); day == time.Saturday || day == time.Sunday {
		closing = WeekendClosingHour
	}

	slots := make([]string, 0, closing-OpeningHour+1)
	for hour := OpeningHour; hour <= closing; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
	}
	return slots
}

// ParseBookingDate parses a YYYY-MM-DD calendar date.
func ParseBookingDate(value string) (time.Time, error) {
	return time.Parse(models.BookingDateLayout, value)
}

// BookingDateRange returns the first and last bookable calendar dates:
// today through today plus the given number of months.
func BookingDateRange(now time.Time, months int) (time.Time, time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today, today.AddDate(0, months, 0)
}

func InBookingRange(date, now time.Time, months int) bool {
	first, last := BookingDateRange(now, months)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(first) && !day.After(last)
}

func HasSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

// PartySizes lists the selectable party sizes.
func PartySizes() []int {
	sizes := make([]int, 0, MaxPartySize-MinPartySize+1)
	for n := MinPartySize; n <= MaxPartySize; n++ {
		sizes = append(sizes, n)
	}
	return sizes
}

// SelectDate changes the date and drops the time and party size chosen for
// the previous date.
func SelectDate(form models.BookingForm, date string) models.BookingForm {
	return models.BookingForm{Date: date}
}

// SelectTime changes the time and drops the party size.
func SelectTime(form models.BookingForm, slot string) models.BookingForm {
	form.Time = slot
	form.PartySize = 0
	return form
}

func SelectPartySize(form models.BookingForm, size int) models.BookingForm {
	form.PartySize = size
	return form
}

// TableAssigner memberikan nomor meja placeholder
type TableAssigner interface {
	AssignTable() int
}

// RandomTableAssigner picks a table uniformly in [1, Tables].
type RandomTableAssigner struct {
	Tables int

	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomTableAssigner(tables int, seed int64) *RandomTableAssigner {
	if tables <= 0 {
		tables = DefaultTableCount
	}
	return &RandomTableAssigner{
		Tables: tables,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (a *RandomTableAssigner) AssignTable() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rng.Intn(a.Tables) + 1
}

// SubmitBooking returns false, and does not touch the assigner, unless date,
// time and party size are all present.
func SubmitBooking(form models.BookingForm, assigner TableAssigner, now time.Time) (models.BookingConfirmation, bool) {
	if !form.Complete() {
		return models.BookingConfirmation{}, false
	}
	return models.BookingConfirmation{
		Date:        form.Date,
		Time:        form.Time,
		PartySize:   form.PartySize,
		TableNumber: assigner.AssignTable(),
		ConfirmedAt: now,
	}, true
}
