package models

const (
	AddressActive   = 1
	AddressInactive = 0
)

type Address struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	UUID       string `gorm:"type:varchar(200);uniqueIndex;not null" json:"id"`
	FlatBuilNo string `gorm:"column:flat_buil_number;type:varchar(255)" json:"flat_building_name"`
	Locality   string `gorm:"type:varchar(255)" json:"locality"`
	City       string `gorm:"type:varchar(30)" json:"city"`
	Pincode    string `gorm:"type:varchar(30)" json:"pincode"`
	StateID    uint   `gorm:"index" json:"-"`
	State      State  `gorm:"foreignKey:StateID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"state"`
	Active     int    `gorm:"not null;default:1" json:"-"`
}

func (Address) TableName() string { return "address" }

// CustomerAddress links a customer to one of their saved addresses.
type CustomerAddress struct {
	ID         uint `gorm:"primaryKey"`
	CustomerID uint `gorm:"not null;index"`
	AddressID  uint `gorm:"not null;uniqueIndex"`
}

func (CustomerAddress) TableName() string { return "customer_address" }
