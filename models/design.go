package models

import (
	"strings"
	"time"
)

// ServiceType is the categorical tag a design is filed under
type ServiceType string

const (
	ServiceBridal      ServiceType = "Bridal Mehendi"
	ServiceFestive     ServiceType = "Festive Mehendi"
	ServiceArabic      ServiceType = "Arabic Style"
	ServiceTraditional ServiceType = "Traditional Indian"
	ServiceKids        ServiceType = "Kids Mehendi"
	ServiceCustom      ServiceType = "Custom Designs"
)

// ServiceTypes lists every selectable service type, in display order
var ServiceTypes = []ServiceType{
	ServiceBridal,
	ServiceFestive,
	ServiceArabic,
	ServiceTraditional,
	ServiceKids,
	ServiceCustom,
}

// IsValidServiceType checks whether s matches a known service type
func IsValidServiceType(s string) bool {
	for _, st := range ServiceTypes {
		if s == string(st) {
			return true
		}
	}
	return false
}

// Design represents a bookable design offering in the public catalog.
// Price is stored as a string with the currency prefix (e.g. "₹85");
// numeric comparisons must go through ledger.ParsePrice.
type Design struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Price       string    `json:"price" gorm:"size:50;not null"`
	ServiceType string    `json:"service_type" gorm:"size:50;not null;index"`
	Tags        string    `json:"-" gorm:"type:text"`
	ImageURL    string    `json:"image_url" gorm:"size:500;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Design model
func (Design) TableName() string {
	return "designs"
}

// TagList splits the stored comma-joined tags into a slice
func (d *Design) TagList() []string {
	if d.Tags == "" {
		return []string{}
	}
	parts := strings.Split(d.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// SetTags stores the given tags as a comma-joined string, dropping empties
func (d *Design) SetTags(tags []string) {
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	d.Tags = strings.Join(cleaned, ",")
}
