package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harrison-nc/tipestry-homepage/controllers"
	"github.com/harrison-nc/tipestry-homepage/models"
	"github.com/harrison-nc/tipestry-homepage/repository"
	"github.com/harrison-nc/tipestry-homepage/routes"
	"github.com/harrison-nc/tipestry-homepage/schemas"
)

// memoryPostStore implements controllers.PostStore without a live mongo,
// mirroring the repository's observable behavior.
type memoryPostStore struct {
	mu    sync.Mutex
	posts []models.Post
	finds int
}

func (s *memoryPostStore) FindAll(ctx context.Context) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out, nil
}

func (s *memoryPostStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finds++
	for _, post := range s.posts {
		if post.ID == id {
			return post, nil
		}
	}
	return models.Post{}, repository.ErrNotFound
}

func (s *memoryPostStore) Create(ctx context.Context, body schemas.CreatePost, author *models.User) (models.Post, error) {
	post := models.Post{
		ID:          primitive.NewObjectID(),
		Title:       body.Title,
		ResourceURL: body.ResourceURL,
		Description: body.Description,
		Tags:        body.Tags,
		Comments:    []models.Comment{},
		Author:      author,
		CreatedAt:   time.Now(),
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if body.UpVotes != nil {
		post.UpVotes = *body.UpVotes
	}
	if body.DownVotes != nil {
		post.DownVotes = *body.DownVotes
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, post)
	return post, nil
}

func (s *memoryPostStore) Save(ctx context.Context, post models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == post.ID {
			s.posts[i] = post
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *memoryPostStore) AddComment(ctx context.Context, postID primitive.ObjectID, text string, user *models.User) (models.Comment, error) {
	author := models.AnonymousUser()
	if user != nil {
		author = *user
	}

	comment := models.Comment{
		ID:        primitive.NewObjectID(),
		Text:      text,
		User:      author,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts[i].Comments = append(s.posts[i].Comments, comment)
			return comment, nil
		}
	}
	return models.Comment{}, repository.ErrNotFound
}

func (s *memoryPostStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = nil
	return nil
}

// failingPostStore makes one operation fail while the rest behave.
type failingPostStore struct {
	*memoryPostStore
	addCommentErr error
	saveErr       error
}

func (s *failingPostStore) AddComment(ctx context.Context, postID primitive.ObjectID, text string, user *models.User) (models.Comment, error) {
	if s.addCommentErr != nil {
		return models.Comment{}, s.addCommentErr
	}
	return s.memoryPostStore.AddComment(ctx, postID, text, user)
}

func (s *failingPostStore) Save(ctx context.Context, post models.Post) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	return s.memoryPostStore.Save(ctx, post)
}

// memoryUserStore implements controllers.UserStore keyed by email.
type memoryUserStore struct {
	mu    sync.Mutex
	users map[string]models.StoredUser
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: map[string]models.StoredUser{}}
}

func (s *memoryUserStore) FindByEmail(ctx context.Context, email string) (models.StoredUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return models.StoredUser{}, repository.ErrNotFound
	}
	return user, nil
}

func (s *memoryUserStore) Create(ctx context.Context, user models.StoredUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Email] = user
	return nil
}

func newPostRouter(store controllers.PostStore, cfg routes.PostRouterConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.PostRouter(router, cfg, store)
	return router
}

func defaultConfig() routes.PostRouterConfig {
	return routes.PostRouterConfig{CombinedVotes: true, SplitVotes: true}
}

type header struct{ key, value string }

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, headers ...header) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, h := range headers {
		req.Header.Set(h.key, h.value)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func validPostBody() gin.H {
	return gin.H{
		"title":       "post1",
		"resourceUrl": "https://resource.com/myresource",
		"description": "a description",
		"tags":        []string{"tag1"},
	}
}
