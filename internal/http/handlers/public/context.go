package public

import (
	handlershared "github.com/stylemart/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, "user_id", "invalid user id", "invalid user id type")
}

func getUserRole(c *gin.Context) string {
	if value, ok := c.Get("user_role"); ok {
		if role, ok := value.(string); ok {
			return role
		}
	}
	return ""
}
