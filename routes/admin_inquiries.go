package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mehendi-studio-server/database"
	"mehendi-studio-server/models"
)

// GetAllInquiries returns the inquiry log, newest first
func GetAllInquiries(c *gin.Context) {
	var inquiries []models.Inquiry
	if err := database.DB.Order("created_at DESC").Find(&inquiries).Error; err != nil {
		log.Printf("❌ Failed to fetch inquiries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inquiries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    inquiries,
		"total":   len(inquiries),
	})
}

// MarkInquiryRead flips the read flag on. Idempotent: marking an
// already-read inquiry succeeds without change.
func MarkInquiryRead(c *gin.Context) {
	inquiryID := c.Param("id")

	var inquiry models.Inquiry
	if err := database.DB.First(&inquiry, inquiryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	}

	if !inquiry.Read {
		inquiry.Read = true
		if err := database.DB.Save(&inquiry).Error; err != nil {
			log.Printf("❌ Failed to mark inquiry %d read: %v", inquiry.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inquiry"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Inquiry marked as read",
		"data":    inquiry,
	})
}

// DeleteInquiry removes an inquiry from the log
func DeleteInquiry(c *gin.Context) {
	inquiryID := c.Param("id")

	var inquiry models.Inquiry
	if err := database.DB.First(&inquiry, inquiryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	}

	if err := database.DB.Delete(&inquiry).Error; err != nil {
		log.Printf("❌ Failed to delete inquiry %d: %v", inquiry.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inquiry"})
		return
	}

	log.Printf("✅ Inquiry %d deleted", inquiry.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Inquiry deleted successfully",
	})
}
