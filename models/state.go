package models

type State struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	UUID      string `gorm:"type:varchar(200);uniqueIndex;not null" json:"id"`
	StateName string `gorm:"type:varchar(30);not null" json:"state_name"`
}

func (State) TableName() string { return "state" }
