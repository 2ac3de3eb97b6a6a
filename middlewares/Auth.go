package middlewares

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harrison-nc/tipestry-homepage/models"
)

// ActiveUserKey is the context key holding the authenticated user.
const ActiveUserKey = "activeUser"

// AuthConfig controls whether requests may proceed without a credential.
type AuthConfig struct {
	TokenRequired bool
}

// Auth decodes a bearer token from the Authorization header into the active
// user. A missing token is rejected only when TokenRequired is set; a token
// that is present but invalid is always rejected.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			if cfg.TokenRequired {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing credential"})
				return
			}
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("SECRET_KEY")), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credential"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credential"})
			return
		}

		user := models.User{
			Name:  stringClaim(claims, "name"),
			Email: stringClaim(claims, "email"),
		}
		if sub, err := claims.GetSubject(); err == nil {
			if id, err := primitive.ObjectIDFromHex(sub); err == nil {
				user.ID = id
			}
		}

		c.Set(ActiveUserKey, user)
		c.Next()
	}
}

// ActiveUser returns the user set by Auth, if any.
func ActiveUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ActiveUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
