package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mehendi-studio-server/database"
	"mehendi-studio-server/models"
	"mehendi-studio-server/utils"
	ws "mehendi-studio-server/websocket"
)

// AdminFeed upgrades an admin dashboard connection onto the event hub.
// Browsers cannot set an Authorization header on WebSocket requests, so
// the token travels as a query parameter.
func AdminFeed(hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
			return
		}

		userID, err := utils.ValidateToken(token)
		if err != nil {
			log.Printf("❌ Admin feed token rejected: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		var user models.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}
		if !user.IsAdmin() || !user.IsActive {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		ws.ServeAdminFeed(hub, c.Writer, c.Request)
	}
}
