package database

import "github.com/yeremiapane/restaurant-site/models"

// Sections dalam urutan tampil di halaman menu
var Sections = []string{"Starters", "Main Course", "Breads", "Desserts", "Beverages"}

var seedMenu = []models.MenuItem{
	{ID: 1, Name: "Paneer Tikka", Desc: "Cottage cheese cubes marinated in spiced yogurt, chargrilled in the tandoor", Price: 280, Type: models.DishVeg, Section: "Starters", Img: "https://images.unsplash.com/photo-1599487488170-d11ec9c172f0"},
	{ID: 2, Name: "Chicken 65", Desc: "Crispy fried chicken tossed with curry leaves and red chillies", Price: 320, Type: models.DishNonVeg, Section: "Starters", Img: "https://images.unsplash.com/photo-1610057099443-fde8c4d50f91"},
	{ID: 3, Name: "Hara Bhara Kebab", Desc: "Spinach, peas and potato patties with mint chutney", Price: 240, Type: models.DishVeg, Section: "Starters", Img: "https://images.unsplash.com/photo-1601050690597-df0568f70950"},
	{ID: 4, Name: "Butter Chicken", Desc: "Tandoori chicken simmered in a creamy tomato and butter gravy", Price: 420, Type: models.DishNonVeg, Section: "Main Course", Img: "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398"},
	{ID: 5, Name: "Dal Makhani", Desc: "Black lentils slow cooked overnight with butter and cream", Price: 300, Type: models.DishVeg, Section: "Main Course", Img: "https://images.unsplash.com/photo-1546833999-b9f581a1996d"},
	{ID: 6, Name: "Mutton Rogan Josh", Desc: "Kashmiri lamb curry with whole spices and dried chillies", Price: 480, Type: models.DishNonVeg, Section: "Main Course", Img: "https://images.unsplash.com/photo-1545247181-516773cae754"},
	{ID: 7, Name: "Palak Paneer", Desc: "Cottage cheese in a smooth spinach gravy", Price: 320, Type: models.DishVeg, Section: "Main Course", Img: "https://images.unsplash.com/photo-1631452180519-c014fe946bc7"},
	{ID: 8, Name: "Veg Biryani", Desc: "Basmati rice layered with vegetables, saffron and fried onions", Price: 340, Type: models.DishVeg, Section: "Main Course", Img: "https://images.unsplash.com/photo-1563379091339-03246963d29a"},
	{ID: 9, Name: "Butter Naan", Desc: "Soft leavened bread brushed with butter", Price: 60, Type: models.DishVeg, Section: "Breads", Img: "https://images.unsplash.com/photo-1565557623262-b51c2513a641"},
	{ID: 10, Name: "Garlic Naan", Desc: "Tandoor baked bread topped with garlic and coriander", Price: 80, Type: models.DishVeg, Section: "Breads", Img: "https://images.unsplash.com/photo-1633945274405-b6c8069047b0"},
	{ID: 11, Name: "Keema Kulcha", Desc: "Stuffed bread filled with spiced minced lamb", Price: 140, Type: models.DishNonVeg, Section: "Breads", Img: "https://images.unsplash.com/photo-1626074353765-517a681e40be"},
	{ID: 12, Name: "Gulab Jamun", Desc: "Milk dumplings soaked in rose and cardamom syrup", Price: 120, Type: models.DishVeg, Section: "Desserts", Img: "https://images.unsplash.com/photo-1601303516534-bf4d4a3e2c89"},
	{ID: 13, Name: "Rasmalai", Desc: "Cottage cheese discs in saffron milk with pistachio", Price: 150, Type: models.DishVeg, Section: "Desserts", Img: "https://images.unsplash.com/photo-1605197161470-5d2a9af0e5ae"},
	{ID: 14, Name: "Mango Lassi", Desc: "Chilled yogurt drink blended with Alphonso mango", Price: 110, Type: models.DishVeg, Section: "Beverages", Img: "https://images.unsplash.com/photo-1571006682889-7e8a4a6f4a5a"},
	{ID: 15, Name: "Masala Chai", Desc: "Spiced milk tea brewed with ginger and cardamom", Price: 70, Type: models.DishVeg, Section: "Beverages", Img: "https://images.unsplash.com/photo-1561336313-0bd5e0b27ec8"},
}

// SeedMenu returns a copy of the built-in dish list.
func SeedMenu() []models.MenuItem {
	out := make([]models.MenuItem, len(seedMenu))
	copy(out, seedMenu)
	return out
}
