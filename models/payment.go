package models

// Payment is a selectable payment method (cash, card, wallet...).
type Payment struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	UUID        string `gorm:"type:varchar(200);uniqueIndex;not null" json:"id"`
	PaymentName string `gorm:"type:varchar(255)" json:"payment_name"`
}

func (Payment) TableName() string { return "payment" }
