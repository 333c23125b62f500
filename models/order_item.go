package models

// OrderItem stores the price the customer saw at order time, not the live item price.
type OrderItem struct {
	ID      uint `gorm:"primaryKey" json:"-"`
	OrderID uint `gorm:"not null;index" json:"-"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order    Order `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ItemID   uint  `gorm:"not null;index" json:"-"`
	Item     Item  `gorm:"foreignKey:ItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"item"`
	Quantity int   `gorm:"not null" json:"quantity"`
	Price    int   `gorm:"not null" json:"price"`
}

func (OrderItem) TableName() string { return "order_item" }
