package models

import "time"

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"-"`
	UUID         string      `gorm:"type:varchar(200);uniqueIndex;not null" json:"id"`
	Bill         float64     `gorm:"type:decimal(10,2);not null" json:"bill"`
	CouponID     *uint       `gorm:"index" json:"-"`
	Coupon       *Coupon     `gorm:"foreignKey:CouponID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"coupon,omitempty"`
	Discount     float64     `gorm:"type:decimal(10,2);not null;default:0" json:"discount"`
	Date         time.Time   `gorm:"not null;index" json:"date"`
	PaymentID    uint        `gorm:"not null;index" json:"-"`
	Payment      Payment     `gorm:"foreignKey:PaymentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"payment"`
	CustomerID   uint        `gorm:"not null;index" json:"-"`
	Customer     Customer    `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	AddressID    uint        `gorm:"not null;index" json:"-"`
	Address      Address     `gorm:"foreignKey:AddressID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"address"`
	RestaurantID uint        `gorm:"not null;index" json:"-"`
	Restaurant   Restaurant  `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"restaurant"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"item_quantities"`
}

func (Order) TableName() string { return "orders" }
