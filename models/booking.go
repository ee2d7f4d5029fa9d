package models

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking records a visitor's request to reserve a calendar date for a design.
// DesignTitle and DesignPrice are snapshots taken at submission time so later
// catalog edits or deletions never alter booking history. Date is the
// YYYY-MM-DD partition key; the unique index enforces one booking per date.
type Booking struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	Name          string        `json:"name" gorm:"size:255;not null"`
	DesignTitle   string        `json:"design_title" gorm:"size:200;not null;default:'N/A'"`
	DesignPrice   string        `json:"design_price" gorm:"size:50;not null;default:'N/A'"`
	ContactNumber string        `json:"contact_number" gorm:"size:30;not null"`
	Email         string        `json:"email" gorm:"size:255"`
	Address       string        `json:"address" gorm:"size:500;not null"`
	AvailableTime string        `json:"available_time" gorm:"size:20;not null"`
	Date          string        `json:"date" gorm:"size:10;not null;uniqueIndex:idx_bookings_date"`
	Day           string        `json:"day" gorm:"size:20;not null"`
	Status        BookingStatus `json:"status" gorm:"type:varchar(20);default:'pending';check:status IN ('pending','confirmed','completed','cancelled')"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// IsCompleted checks if the booking has been completed
func (b *Booking) IsCompleted() bool {
	return b.Status == BookingStatusCompleted
}
