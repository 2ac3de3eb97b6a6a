package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harrison-nc/tipestry-homepage/models"
	"github.com/harrison-nc/tipestry-homepage/repository"
)

// PostKey is the context key holding the post resolved by ValidatePost.
const PostKey = "post"

// PostFinder is the slice of the post repository the existence check needs.
type PostFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Post, error)
}

// ValidatePost loads the post identified by the id that ValidateObjectID
// put in the context and attaches it for downstream handlers, or ends the
// request with a not-found response. Must be registered after
// ValidateObjectID on the same route.
func ValidatePost(finder PostFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.MustGet(PostIDKey).(primitive.ObjectID)

		post, err := finder.FindByID(c.Request.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		if err != nil {
			log.Error().Err(err).Str("post", id.Hex()).Msg("post lookup failed")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(PostKey, post)
		c.Next()
	}
}
