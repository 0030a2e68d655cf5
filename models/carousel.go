package models

// CarouselFrame adalah jendela item yang sedang tampil di carousel
type CarouselFrame struct {
	Index   int        `json:"index"`
	Visible int        `json:"visible"`
	Items   []MenuItem `json:"items"`
}
