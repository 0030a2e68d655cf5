package services

import "github.com/yeremiapane/restaurant-site/models"

func testMenu() []models.MenuItem {
	return []models.MenuItem{
		{ID: 1, Name: "Paneer Tikka", Desc: "Chargrilled cottage cheese", Price: 280, Type: models.DishVeg, Section: "Starters"},
		{ID: 2, Name: "Chicken 65", Desc: "Crispy fried chicken with curry leaves", Price: 320, Type: models.DishNonVeg, Section: "Starters"},
		{ID: 3, Name: "Butter Chicken", Desc: "Chicken in creamy tomato gravy", Price: 420, Type: models.DishNonVeg, Section: "Main Course"},
		{ID: 4, Name: "Dal Makhani", Desc: "Black lentils with butter and cream", Price: 300, Type: models.DishVeg, Section: "Main Course"},
		{ID: 5, Name: "Gulab Jamun", Desc: "Milk dumplings in rose syrup", Price: 120, Type: models.DishVeg, Section: "Desserts"},
	}
}

func testCatalog() *Catalog {
	return NewCatalog(testMenu())
}

type fixedAssigner struct {
	table int
	calls int
}

func (a *fixedAssigner) AssignTable() int {
	a.calls++
	return a.table
}
