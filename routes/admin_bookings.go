package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mehendi-studio-server/database"
	"mehendi-studio-server/ledger"
	"mehendi-studio-server/models"
)

// bookingResponse shapes a booking for the admin surface, adding the
// derived service label used by the dashboard tables
func bookingResponse(b models.Booking) gin.H {
	return gin.H{
		"id":             b.ID,
		"name":           b.Name,
		"design_title":   b.DesignTitle,
		"design_price":   b.DesignPrice,
		"contact_number": b.ContactNumber,
		"email":          b.Email,
		"address":        b.Address,
		"available_time": b.AvailableTime,
		"date":           b.Date,
		"day":            b.Day,
		"status":         b.Status,
		"service":        ledger.Classify(b.DesignTitle, ""),
		"created_at":     b.CreatedAt,
		"updated_at":     b.UpdatedAt,
	}
}

// GetAllBookings returns the full booking ledger, newest first
func GetAllBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := database.DB.Order("created_at DESC").Find(&bookings).Error; err != nil {
		log.Printf("❌ Failed to fetch bookings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	list := make([]gin.H, 0, len(bookings))
	for _, b := range bookings {
		list = append(list, bookingResponse(b))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    list,
		"total":   len(list),
	})
}

// CompleteBooking marks a booking as completed. Completing an
// already-completed booking is a no-op.
func CompleteBooking(c *gin.Context) {
	bookingID := c.Param("id")

	var booking models.Booking
	if err := database.DB.First(&booking, bookingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	if booking.IsCompleted() {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Booking is already completed",
			"data":    bookingResponse(booking),
		})
		return
	}

	booking.Status = models.BookingStatusCompleted
	if err := database.DB.Save(&booking).Error; err != nil {
		log.Printf("❌ Failed to complete booking %d: %v", booking.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		return
	}

	log.Printf("✅ Booking %d marked completed", booking.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking marked as completed",
		"data":    bookingResponse(booking),
	})
}

// DeleteBooking removes a booking from the ledger
func DeleteBooking(c *gin.Context) {
	bookingID := c.Param("id")

	var booking models.Booking
	if err := database.DB.First(&booking, bookingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	if err := database.DB.Delete(&booking).Error; err != nil {
		log.Printf("❌ Failed to delete booking %d: %v", booking.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
		return
	}

	log.Printf("✅ Booking %d deleted (date %s freed)", booking.ID, booking.Date)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking deleted successfully",
	})
}
