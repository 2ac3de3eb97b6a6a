package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harrison-nc/tipestry-homepage/middlewares"
	"github.com/harrison-nc/tipestry-homepage/models"
	"github.com/harrison-nc/tipestry-homepage/repository"
	"github.com/harrison-nc/tipestry-homepage/schemas"
)

// PostStore is the persistence surface the post endpoints need.
type PostStore interface {
	FindAll(ctx context.Context) ([]models.Post, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Post, error)
	Create(ctx context.Context, body schemas.CreatePost, author *models.User) (models.Post, error)
	Save(ctx context.Context, post models.Post) error
	AddComment(ctx context.Context, postID primitive.ObjectID, text string, user *models.User) (models.Comment, error)
	DeleteAll(ctx context.Context) error
}

type PostController struct {
	posts PostStore
}

func NewPostController(posts PostStore) *PostController {
	return &PostController{posts: posts}
}

func (pc *PostController) GetPosts(c *gin.Context) {
	posts, err := pc.posts.FindAll(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("listing posts failed")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (pc *PostController) GetPost(c *gin.Context) {
	post := c.MustGet(middlewares.PostKey).(models.Post)
	c.JSON(http.StatusOK, post)
}

func (pc *PostController) CreatePost(c *gin.Context) {
	var body schemas.CreatePost
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fields := schemas.Check(body); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post", "fields": fields})
		return
	}

	var author *models.User
	if user, ok := middlewares.ActiveUser(c); ok {
		author = &user
	}

	post, err := pc.posts.Create(c.Request.Context(), body, author)
	if err != nil {
		log.Error().Err(err).Msg("creating post failed")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdateVotes overwrites both counters from the body. Client-supplied
// values win; there is no increment semantics and no per-user tracking.
func (pc *PostController) UpdateVotes(c *gin.Context) {
	post := c.MustGet(middlewares.PostKey).(models.Post)

	var body schemas.Votes
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fields := schemas.Check(body); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid votes", "fields": fields})
		return
	}

	post.UpVotes = *body.UpVotes
	post.DownVotes = *body.DownVotes

	if !pc.save(c, post) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"upVotes": post.UpVotes, "downVotes": post.DownVotes})
}

func (pc *PostController) UpdateUpVotes(c *gin.Context) {
	post := c.MustGet(middlewares.PostKey).(models.Post)

	var body schemas.UpVotes
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fields := schemas.Check(body); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid votes", "fields": fields})
		return
	}

	post.UpVotes = *body.UpVotes

	if !pc.save(c, post) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"upVotes": post.UpVotes})
}

func (pc *PostController) UpdateDownVotes(c *gin.Context) {
	post := c.MustGet(middlewares.PostKey).(models.Post)

	var body schemas.DownVotes
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fields := schemas.Check(body); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid votes", "fields": fields})
		return
	}

	post.DownVotes = *body.DownVotes

	if !pc.save(c, post) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"downVotes": post.DownVotes})
}

func (pc *PostController) GetComments(c *gin.Context) {
	post := c.MustGet(middlewares.PostKey).(models.Post)
	c.JSON(http.StatusOK, gin.H{"_id": post.ID, "comments": post.Comments})
}

// AddComment appends a comment to the post in the context. Attribution
// precedence: active user, then body-supplied user, then the anonymous
// placeholder.
func (pc *PostController) AddComment(c *gin.Context) {
	post := c.MustGet(middlewares.PostKey).(models.Post)

	var body schemas.Comment
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fields := schemas.Check(body); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment", "fields": fields})
		return
	}

	var user *models.User
	if active, ok := middlewares.ActiveUser(c); ok {
		user = &active
	} else if body.User != nil {
		user = &models.User{Name: body.User.Name, Email: body.User.Email}
	}

	comment, err := pc.posts.AddComment(c.Request.Context(), post.ID, body.Text, user)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("post", post.ID.Hex()).Msg("adding comment failed")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (pc *PostController) save(c *gin.Context, post models.Post) bool {
	err := pc.posts.Save(c.Request.Context(), post)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return false
	}
	if err != nil {
		log.Error().Err(err).Str("post", post.ID.Hex()).Msg("saving post failed")
		c.AbortWithStatus(http.StatusInternalServerError)
		return false
	}
	return true
}
