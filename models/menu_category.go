package models

type Category struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	UUID         string `gorm:"type:varchar(200);uniqueIndex;not null" json:"id"`
	CategoryName string `gorm:"type:varchar(255);not null" json:"category_name"`
}

func (Category) TableName() string { return "category" }

type CategoryItem struct {
	ID         uint `gorm:"primaryKey"`
	ItemID     uint `gorm:"not null;index"`
	CategoryID uint `gorm:"not null;index"`
}

func (CategoryItem) TableName() string { return "category_item" }
