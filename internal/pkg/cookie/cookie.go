package cookie

import (
	"github.com/gin-gonic/gin"
)

// Issued by the identity service on the shared parent domain.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
