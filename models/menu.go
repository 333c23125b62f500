package models

// Item types as stored in item.type.
const (
	ItemTypeVeg    = "0"
	ItemTypeNonVeg = "1"
)

type Item struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	UUID     string `gorm:"type:varchar(200);uniqueIndex;not null" json:"id"`
	ItemName string `gorm:"type:varchar(30);not null" json:"item_name"`
	Price    int    `gorm:"not null" json:"price"`
	Type     string `gorm:"type:varchar(10);not null" json:"item_type"`
}

func (Item) TableName() string { return "item" }

// TypeName returns VEG or NON_VEG.
func (i Item) TypeName() string {
	if i.Type == ItemTypeNonVeg {
		return "NON_VEG"
	}
	return "VEG"
}
