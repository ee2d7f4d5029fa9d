package routes

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mehendi-studio-server/database"
	"mehendi-studio-server/models"
)

// InquiryInput is the public contact-form payload
type InquiryInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// Validate checks the required fields; service is optional
func (in InquiryInput) Validate() string {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Phone) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Message) == "" {
		return "Please fill all required fields."
	}
	return ""
}

// SubmitInquiry records a contact-form submission. Unlike bookings there
// is no per-date limit; any number of inquiries may arrive.
func SubmitInquiry(c *gin.Context) {
	var input InquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	if msg := input.Validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}

	inquiry := models.Inquiry{
		Name:    strings.TrimSpace(input.Name),
		Phone:   strings.TrimSpace(input.Phone),
		Email:   strings.TrimSpace(input.Email),
		Service: strings.TrimSpace(input.Service),
		Message: strings.TrimSpace(input.Message),
		Status:  "new",
		Read:    false,
	}

	if err := database.DB.Create(&inquiry).Error; err != nil {
		log.Printf("❌ Failed to create inquiry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong. Please try again later."})
		return
	}

	log.Printf("✅ Inquiry received from %s (ID: %d)", inquiry.Name, inquiry.ID)

	if eventHub != nil {
		eventHub.NotifyInquiryCreated(inquiry)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Thanks for reaching out! We'll get back to you soon.",
		"data":    inquiry,
	})
}
