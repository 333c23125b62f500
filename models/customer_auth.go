package models

import "time"

// CustomerAuth is one login session. A session is usable while LogoutAt is nil
// and the current time has not passed ExpiresAt.
type CustomerAuth struct {
	ID          uint       `gorm:"primaryKey" json:"-"`
	UUID        string     `gorm:"type:varchar(200);uniqueIndex;not null" json:"id"`
	CustomerID  uint       `gorm:"not null;index" json:"-"`
	Customer    Customer   `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	AccessToken string     `gorm:"type:varchar(500);uniqueIndex;not null" json:"-"`
	LoginAt     time.Time  `gorm:"not null" json:"login_at"`
	ExpiresAt   time.Time  `gorm:"not null" json:"expires_at"`
	LogoutAt    *time.Time `json:"logout_at,omitempty"`
}

func (CustomerAuth) TableName() string { return "customer_auth" }

func (a *CustomerAuth) IsLoggedOut() bool {
	return a.LogoutAt != nil
}

func (a *CustomerAuth) IsExpired(now time.Time) bool {
	return now.After(a.ExpiresAt)
}
