package models

type Restaurant struct {
	ID                   uint    `gorm:"primaryKey" json:"-"`
	UUID                 string  `gorm:"type:varchar(200);uniqueIndex;not null" json:"id"`
	RestaurantName       string  `gorm:"type:varchar(50);not null" json:"restaurant_name"`
	PhotoURL             string  `gorm:"column:photo_url;type:varchar(255)" json:"photo_url"`
	CustomerRating       float64 `gorm:"not null;default:0" json:"customer_rating"`
	AveragePriceForTwo   int     `gorm:"not null" json:"average_price"`
	NumberCustomersRated int     `gorm:"column:number_of_customers_rated;not null;default:0" json:"number_customers_rated"`
	AddressID            uint    `gorm:"index" json:"-"`
	Address              Address `gorm:"foreignKey:AddressID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"address"`
}

func (Restaurant) TableName() string { return "restaurant" }

type RestaurantCategory struct {
	ID           uint `gorm:"primaryKey"`
	RestaurantID uint `gorm:"not null;index"`
	CategoryID   uint `gorm:"not null;index"`
}

func (RestaurantCategory) TableName() string { return "restaurant_category" }

type RestaurantItem struct {
	ID           uint `gorm:"primaryKey"`
	ItemID       uint `gorm:"not null;index"`
	RestaurantID uint `gorm:"not null;index"`
}

func (RestaurantItem) TableName() string { return "restaurant_item" }
