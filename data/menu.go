// Package data holds the static, read-only menu catalog the canteen
// serves. The cart engine only copies these fields into cart lines; it
// never owns or validates the catalog.
package data

import "canteen/entity"

var MenuItems = []entity.MenuItem{
	// Snacks
	{
		ID:          "1",
		Name:        "Crispy Samosa",
		Description: "Golden fried triangular pastry with spiced potato filling",
		Price:       25,
		Image:       "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=300&h=200&fit=crop",
		Category:    entity.CategorySnacks,
		IsVeg:       true,
	},
	{
		ID:          "2",
		Name:        "Chicken Sandwich",
		Description: "Grilled chicken with fresh veggies in toasted bread",
		Price:       65,
		Image:       "https://images.unsplash.com/photo-1553909489-cd47e0ef937f?w=300&h=200&fit=crop",
		Category:    entity.CategorySnacks,
		IsVeg:       false,
	},
	{
		ID:          "3",
		Name:        "Masala Fries",
		Description: "Crispy potato fries tossed with Indian spices",
		Price:       45,
		Image:       "https://images.unsplash.com/photo-1573080496219-bb080dd4f877?w=300&h=200&fit=crop",
		Category:    entity.CategorySnacks,
		IsVeg:       true,
	},
	{
		ID:          "4",
		Name:        "Paneer Roll",
		Description: "Spiced paneer wrapped in soft chapati with mint chutney",
		Price:       55,
		Image:       "https://images.unsplash.com/photo-1606491956689-2ea866880c84?w=300&h=200&fit=crop",
		Category:    entity.CategorySnacks,
		IsVeg:       true,
	},

	// Main course
	{
		ID:          "5",
		Name:        "Rajma Rice Bowl",
		Description: "Creamy kidney bean curry served with basmati rice",
		Price:       85,
		Image:       "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=300&h=200&fit=crop",
		Category:    entity.CategoryMainCourse,
		IsVeg:       true,
	},
	{
		ID:          "6",
		Name:        "Chicken Biryani",
		Description: "Fragrant basmati rice with tender chicken and aromatic spices",
		Price:       120,
		Image:       "https://images.unsplash.com/photo-1563379091339-03246963d96c?w=300&h=200&fit=crop",
		Category:    entity.CategoryMainCourse,
		IsVeg:       false,
	},
	{
		ID:          "7",
		Name:        "Dal Tadka with Roti",
		Description: "Yellow lentils tempered with cumin, served with wheat flatbread",
		Price:       70,
		Image:       "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=300&h=200&fit=crop",
		Category:    entity.CategoryMainCourse,
		IsVeg:       true,
	},
	{
		ID:          "8",
		Name:        "Pasta Arrabbiata",
		Description: "Penne pasta in spicy tomato sauce with herbs",
		Price:       95,
		Image:       "https://images.unsplash.com/photo-1621996346565-e3dbc353d2e5?w=300&h=200&fit=crop",
		Category:    entity.CategoryMainCourse,
		IsVeg:       true,
	},

	// Beverages
	{
		ID:          "9",
		Name:        "Masala Chai",
		Description: "Traditional Indian spiced tea with milk",
		Price:       15,
		Image:       "https://images.unsplash.com/photo-1571934811356-5cc061b6821f?w=300&h=200&fit=crop",
		Category:    entity.CategoryBeverages,
		IsVeg:       true,
	},
	{
		ID:          "10",
		Name:        "Fresh Lime Soda",
		Description: "Refreshing lime juice with soda and mint",
		Price:       30,
		Image:       "https://images.unsplash.com/photo-1513558161293-cdaf765ed2fd?w=300&h=200&fit=crop",
		Category:    entity.CategoryBeverages,
		IsVeg:       true,
	},
	{
		ID:          "11",
		Name:        "Mango Lassi",
		Description: "Creamy yogurt drink blended with sweet mango",
		Price:       40,
		Image:       "https://images.unsplash.com/photo-1570197788417-0e82375c9371?w=300&h=200&fit=crop",
		Category:    entity.CategoryBeverages,
		IsVeg:       true,
	},
	{
		ID:          "12",
		Name:        "Filter Coffee",
		Description: "South Indian style strong coffee with milk",
		Price:       20,
		Image:       "https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=300&h=200&fit=crop",
		Category:    entity.CategoryBeverages,
		IsVeg:       true,
	},
}
