package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostIDKey is the context key holding the object id parsed from the route.
const PostIDKey = "postID"

// ValidateObjectID rejects requests whose route parameter is not a
// well-formed object id. Malformed ids never reach the repository layer.
func ValidateObjectID(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param(param))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
			return
		}

		c.Set(PostIDKey, id)
		c.Next()
	}
}
