package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mehendi-studio-server/database"
	"mehendi-studio-server/ledger"
	"mehendi-studio-server/models"
)

// Sort options accepted by the public catalog listing
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// designResponse shapes a design for the API, exposing tags as an array
func designResponse(d models.Design) gin.H {
	return gin.H{
		"id":           d.ID,
		"title":        d.Title,
		"description":  d.Description,
		"price":        d.Price,
		"service_type": d.ServiceType,
		"tags":         d.TagList(),
		"image_url":    d.ImageURL,
		"created_at":   d.CreatedAt,
		"updated_at":   d.UpdatedAt,
	}
}

func designResponses(designs []models.Design) []gin.H {
	out := make([]gin.H, 0, len(designs))
	for _, d := range designs {
		out = append(out, designResponse(d))
	}
	return out
}

// GetDesigns returns the public design catalog, optionally filtered by
// service type. Newest-first ordering is done in SQL; price ordering is
// applied in-process after fetch because prices are stored as prefixed
// strings. The full collection is returned, no pagination.
func GetDesigns(c *gin.Context) {
	serviceType := c.Query("service_type")
	sortBy := c.DefaultQuery("sort", SortNewest)

	query := database.DB.Model(&models.Design{}).Order("created_at DESC")
	if serviceType != "" {
		query = query.Where("service_type = ?", serviceType)
	}

	var designs []models.Design
	if err := query.Find(&designs).Error; err != nil {
		log.Printf("❌ Failed to fetch designs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch designs"})
		return
	}

	switch sortBy {
	case SortPriceAsc:
		ledger.SortDesignsByPrice(designs, true)
	case SortPriceDesc:
		ledger.SortDesignsByPrice(designs, false)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    designResponses(designs),
		"total":   len(designs),
	})
}

// GetServiceTypes returns the selectable service types for filters and forms
func GetServiceTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    models.ServiceTypes,
	})
}
