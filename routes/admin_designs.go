package routes

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"

	"mehendi-studio-server/config"
	"mehendi-studio-server/database"
	"mehendi-studio-server/ledger"
	"mehendi-studio-server/models"
)

// validateImageFile validates mimetype and size (<= 5MB)
func validateImageFile(h *multipart.FileHeader) bool {
	if h == nil || h.Size <= 0 || h.Size > 5*1024*1024 {
		return false
	}
	ext := strings.ToLower(filepath.Ext(h.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	default:
		return false
	}
}

// uploadDesignImage pushes the image to Cloudinary and returns its secure URL
func uploadDesignImage(ctx context.Context, header *multipart.FileHeader) (string, error) {
	cfg := config.AppConfig.Cloudinary
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return "", fmt.Errorf("cloudinary is not configured")
	}

	cloudinaryURL := fmt.Sprintf("cloudinary://%s:%s@%s", cfg.APIKey, cfg.APISecret, cfg.CloudName)
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return "", fmt.Errorf("cloudinary initialization failed: %w", err)
	}

	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	ow := true
	uf := true
	up, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         cfg.Folder,
		PublicID:       strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename)),
		Overwrite:      &ow,
		UniqueFilename: &uf,
		ResourceType:   "image",
	})
	if err != nil {
		return "", err
	}
	return up.SecureURL, nil
}

// designForm carries the multipart fields of the admin design form
type designForm struct {
	Title       string
	Description string
	Price       string
	ServiceType string
	Tags        string
}

func bindDesignForm(c *gin.Context) designForm {
	return designForm{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Price:       strings.TrimSpace(c.PostForm("price")),
		ServiceType: strings.TrimSpace(c.PostForm("service_type")),
		Tags:        c.PostForm("tags"),
	}
}

// validate checks the required fields and the price; it returns a
// user-facing message, or "" when the form is acceptable
func (f designForm) validate() string {
	if f.Title == "" || f.Description == "" || f.Price == "" || f.ServiceType == "" {
		return "Title, description, price and service type are required"
	}
	price, err := strconv.ParseFloat(strings.TrimPrefix(f.Price, ledger.CurrencyPrefix), 64)
	if err != nil {
		return "Price must be a number"
	}
	if price < 0 {
		return "Price must be positive"
	}
	if !models.IsValidServiceType(f.ServiceType) {
		return "Unknown service type"
	}
	return ""
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// CreateDesign creates a catalog design. The image is uploaded first and
// the record is only persisted on upload success. If persistence then
// fails the uploaded image is orphaned; that is accepted and only logged.
func CreateDesign(c *gin.Context) {
	form := bindDesignForm(c)
	if msg := form.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}

	imageHeader, err := c.FormFile("image")
	if err != nil || imageHeader == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "An image file is required"})
		return
	}
	if !validateImageFile(imageHeader) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid image file"})
		return
	}

	imageURL, err := uploadDesignImage(c.Request.Context(), imageHeader)
	if err != nil {
		log.Printf("❌ Design image upload failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Image upload failed"})
		return
	}

	design := models.Design{
		Title:       form.Title,
		Description: form.Description,
		Price:       ledger.FormatPrice(form.Price),
		ServiceType: form.ServiceType,
		ImageURL:    imageURL,
	}
	design.SetTags(splitTags(form.Tags))

	if err := database.DB.Create(&design).Error; err != nil {
		log.Printf("❌ Failed to create design (uploaded image %s is orphaned): %v", imageURL, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save design"})
		return
	}

	log.Printf("✅ Design created: %s (ID: %d)", design.Title, design.ID)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Design added successfully",
		"data":    designResponse(design),
	})
}

// UpdateDesign overwrites every field of a design. A new image file is
// optional; without one the existing image URL is retained.
func UpdateDesign(c *gin.Context) {
	designID := c.Param("id")

	var design models.Design
	if err := database.DB.First(&design, designID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Design not found"})
		return
	}

	form := bindDesignForm(c)
	if msg := form.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}

	imageURL := design.ImageURL
	if imageHeader, err := c.FormFile("image"); err == nil && imageHeader != nil {
		if !validateImageFile(imageHeader) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid image file"})
			return
		}
		uploadedURL, err := uploadDesignImage(c.Request.Context(), imageHeader)
		if err != nil {
			log.Printf("❌ Design image upload failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Image upload failed"})
			return
		}
		imageURL = uploadedURL
	}

	design.Title = form.Title
	design.Description = form.Description
	design.Price = ledger.FormatPrice(form.Price)
	design.ServiceType = form.ServiceType
	design.ImageURL = imageURL
	design.SetTags(splitTags(form.Tags))

	if err := database.DB.Save(&design).Error; err != nil {
		log.Printf("❌ Failed to update design: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update design"})
		return
	}

	log.Printf("✅ Design updated: %s (ID: %d)", design.Title, design.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Design updated successfully",
		"data":    designResponse(design),
	})
}

// DeleteDesign removes a design from the catalog. Bookings keep their
// denormalized title/price snapshots, so history is unaffected.
func DeleteDesign(c *gin.Context) {
	designID := c.Param("id")

	var design models.Design
	if err := database.DB.First(&design, designID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Design not found"})
		return
	}

	if err := database.DB.Delete(&design).Error; err != nil {
		log.Printf("❌ Failed to delete design: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete design"})
		return
	}

	log.Printf("✅ Design deleted: %s (ID: %d)", design.Title, design.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Design deleted successfully",
	})
}
