package models

import "time"

const BookingDateLayout = "2006-01-02"

// BookingForm menyimpan pilihan user selama proses booking
type BookingForm struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize int    `json:"party_size"`
}

// Complete reports whether date, time and party size are all present.
func (f BookingForm) Complete() bool {
	return f.Date != "" && f.Time != "" && f.PartySize > 0
}

type BookingConfirmation struct {
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	PartySize   int       `json:"party_size"`
	TableNumber int       `json:"table_number"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}
