package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"beaute-shop/models"
	"beaute-shop/utils"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Message: "Informations d'authentification non fournies",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Message: "En-tête Authorization invalide",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1], utils.TokenTypeAccess)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Message: "Jeton invalide ou expiré",
				Detail:  err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("is_admin", claims.IsAdmin)
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Message: "Accès réservé aux administrateurs",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
