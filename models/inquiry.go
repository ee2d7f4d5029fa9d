package models

import (
	"time"
)

// Inquiry is a contact-form submission, independent of the booking flow.
// Unlike bookings there is no per-date uniqueness rule.
type Inquiry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Phone     string    `json:"phone" gorm:"size:30;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Service   string    `json:"service" gorm:"size:100"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Status    string    `json:"status" gorm:"size:20;default:'new'"`
	Read      bool      `json:"read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Inquiry model
func (Inquiry) TableName() string {
	return "inquiries"
}
