package models

// All returns every model in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Customer{},
		&CustomerAuth{},
		&State{},
		&Address{},
		&CustomerAddress{},
		&Category{},
		&Item{},
		&CategoryItem{},
		&Restaurant{},
		&RestaurantCategory{},
		&RestaurantItem{},
		&Coupon{},
		&Payment{},
		&Order{},
		&OrderItem{},
	}
}
