package models

// DishType membedakan hidangan vegetarian dan non-vegetarian
type DishType string

const (
	DishVeg    DishType = "veg"
	DishNonVeg DishType = "non-veg"
)

type MenuItem struct {
	ID      uint     `gorm:"primaryKey" json:"id"`
	Name    string   `gorm:"type:varchar(255);not null" json:"name"`
	Desc    string   `gorm:"type:text" json:"desc"`
	Price   int      `gorm:"not null" json:"price"`
	Type    DishType `gorm:"type:varchar(10);not null" json:"type"`
	Section string   `gorm:"type:varchar(100);not null;index" json:"section"`
	Img     string   `gorm:"type:varchar(500)" json:"img"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

func (m MenuItem) IsVeg() bool {
	return m.Type == DishVeg
}
