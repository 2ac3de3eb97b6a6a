package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harrison-nc/tipestry-homepage/models"
	"github.com/harrison-nc/tipestry-homepage/repository"
)

type stubFinder struct {
	post  models.Post
	err   error
	calls int
}

func (f *stubFinder) FindByID(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	f.calls++
	if f.err != nil {
		return models.Post{}, f.err
	}
	return f.post, nil
}

func newPostRoute(finder *stubFinder) (*gin.Engine, *models.Post) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var loaded models.Post
	router.GET("/posts/:id", ValidateObjectID("id"), ValidatePost(finder), func(c *gin.Context) {
		loaded = c.MustGet(PostKey).(models.Post)
		c.Status(http.StatusOK)
	})
	return router, &loaded
}

func TestValidatePost(t *testing.T) {
	t.Run("attaches the post to the context", func(t *testing.T) {
		post := models.Post{ID: primitive.NewObjectID(), Title: "post1"}
		finder := &stubFinder{post: post}
		router, loaded := newPostRoute(finder)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/posts/"+post.ID.Hex(), nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, post, *loaded)
		assert.Equal(t, 1, finder.calls)
	})

	t.Run("returns 404 for a well-formed id with no document", func(t *testing.T) {
		finder := &stubFinder{err: repository.ErrNotFound}
		router, _ := newPostRoute(finder)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/posts/"+primitive.NewObjectID().Hex(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 500 when the store fails", func(t *testing.T) {
		finder := &stubFinder{err: errors.New("connection reset")}
		router, _ := newPostRoute(finder)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/posts/"+primitive.NewObjectID().Hex(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("never queries the store for a malformed id", func(t *testing.T) {
		finder := &stubFinder{}
		router, _ := newPostRoute(finder)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/posts/not-an-id", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, finder.calls)
	})
}
