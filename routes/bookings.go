package routes

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mehendi-studio-server/database"
	"mehendi-studio-server/ledger"
	"mehendi-studio-server/models"
	ws "mehendi-studio-server/websocket"
)

// eventHub receives booking/inquiry events for the admin dashboard feed.
// Optional: handlers work fine with it unset.
var eventHub *ws.Hub

// SetEventHub wires the admin dashboard event feed into the public handlers
func SetEventHub(hub *ws.Hub) {
	eventHub = hub
}

// DateConflictMessage is the user-visible rejection for an already-booked date
const DateConflictMessage = "This date is already booked. Please choose another date."

// BookingInput is the public booking submission payload. DesignTitle and
// DesignPrice are the snapshot of the selected design at booking time.
type BookingInput struct {
	Name          string `json:"name"`
	DesignTitle   string `json:"design_title"`
	DesignPrice   string `json:"design_price"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	AvailableTime string `json:"available_time"`
	Date          string `json:"date"`
}

// Validate checks the required fields; it returns a user-facing message,
// or "" when the submission is acceptable
func (in BookingInput) Validate() string {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.ContactNumber) == "" ||
		strings.TrimSpace(in.Address) == "" ||
		strings.TrimSpace(in.AvailableTime) == "" ||
		strings.TrimSpace(in.Date) == "" {
		return "Please fill all required fields."
	}
	if _, err := ledger.DeriveDay(in.Date); err != nil {
		return "Date must be in YYYY-MM-DD format."
	}
	return ""
}

// snapshotOrNA falls back to "N/A" when a booking is submitted without a
// selected design
func snapshotOrNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}

// SubmitBooking records a visitor's booking request. At most one booking
// may exist per calendar date regardless of time or style: the existence
// check produces the friendly rejection, and the unique index on
// bookings.date closes the race between check and insert.
func SubmitBooking(c *gin.Context) {
	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	if msg := input.Validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}

	day, _ := ledger.DeriveDay(input.Date)

	var existing int64
	if err := database.DB.Model(&models.Booking{}).Where("date = ?", input.Date).Count(&existing).Error; err != nil {
		log.Printf("❌ Failed to check booking date %s: %v", input.Date, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to submit booking. Please try again."})
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": DateConflictMessage})
		return
	}

	booking := models.Booking{
		Name:          strings.TrimSpace(input.Name),
		DesignTitle:   snapshotOrNA(input.DesignTitle),
		DesignPrice:   snapshotOrNA(input.DesignPrice),
		ContactNumber: strings.TrimSpace(input.ContactNumber),
		Email:         strings.TrimSpace(input.Email),
		Address:       strings.TrimSpace(input.Address),
		AvailableTime: strings.TrimSpace(input.AvailableTime),
		Date:          input.Date,
		Day:           day,
		Status:        models.BookingStatusPending,
	}

	if err := database.DB.Create(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Another submission won the race for this date
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": DateConflictMessage})
			return
		}
		log.Printf("❌ Failed to create booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to submit booking. Please try again."})
		return
	}

	log.Printf("✅ Booking created: %s on %s (%s), ID %d", booking.Name, booking.Date, booking.Day, booking.ID)

	if eventHub != nil {
		eventHub.NotifyBookingCreated(booking)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking confirmed! We'll contact you soon to confirm details.",
		"data":    booking,
	})
}
