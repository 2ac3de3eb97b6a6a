package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/harrison-nc/tipestry-homepage/controllers"
	"github.com/harrison-nc/tipestry-homepage/middlewares"
)

// PostRouterConfig selects which endpoint variants are registered. The two
// vote shapes coexisted historically; both flags may be set at once.
type PostRouterConfig struct {
	// BasePath mounts the routes under a prefix, /api/posts by default.
	BasePath string
	// RequireAuth rejects unauthenticated post and comment creation
	// instead of attributing content anonymously.
	RequireAuth bool
	// CombinedVotes registers POST /:id/votes taking both counters.
	CombinedVotes bool
	// SplitVotes registers POST /:id/upvotes and POST /:id/downvotes.
	SplitVotes bool
}

func PostRouter(router *gin.Engine, cfg PostRouterConfig, store controllers.PostStore) {
	base := cfg.BasePath
	if base == "" {
		base = "/api/posts"
	}

	posts := controllers.NewPostController(store)

	auth := middlewares.Auth(middlewares.AuthConfig{TokenRequired: cfg.RequireAuth})
	validateID := middlewares.ValidateObjectID("id")
	loadPost := middlewares.ValidatePost(store)

	group := router.Group(base)

	group.GET("", posts.GetPosts)
	group.GET("/:id", validateID, loadPost, posts.GetPost)
	group.POST("", auth, posts.CreatePost)

	if cfg.CombinedVotes {
		group.POST("/:id/votes", validateID, loadPost, posts.UpdateVotes)
	}
	if cfg.SplitVotes {
		group.POST("/:id/upvotes", validateID, loadPost, posts.UpdateUpVotes)
		group.POST("/:id/downvotes", validateID, loadPost, posts.UpdateDownVotes)
	}

	group.GET("/:id/comments", validateID, loadPost, posts.GetComments)
	group.POST("/:id/comments", auth, validateID, loadPost, posts.AddComment)
}
