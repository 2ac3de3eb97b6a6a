package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harrison-nc/tipestry-homepage/models"
	"github.com/harrison-nc/tipestry-homepage/schemas"
)

// ErrNotFound reports a lookup for a document that does not exist. Callers
// map it to a not-found response; any other error is a store failure.
var ErrNotFound = errors.New("document not found")

const queryTimeout = 10 * time.Second

type PostRepository struct {
	collection *mongo.Collection
}

func NewPostRepository(collection *mongo.Collection) *PostRepository {
	return &PostRepository{collection: collection}
}

func (r *PostRepository) FindAll(ctx context.Context) ([]models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var post models.Post
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, ErrNotFound
	}
	if err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// Create builds a post from a validated body and inserts it. The author is
// optional; posts created without authentication carry none.
func (r *PostRepository) Create(ctx context.Context, body schemas.CreatePost, author *models.User) (models.Post, error) {
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

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// Save persists an in-place mutation of an existing post. Last write wins;
// concurrent saves of the same post are not serialized here.
func (r *PostRepository) Save(ctx context.Context, post models.Post) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddComment appends a comment to the post's embedded list. When user is
// nil the anonymous placeholder is attached instead.
func (r *PostRepository) AddComment(ctx context.Context, postID primitive.ObjectID, text string, user *models.User) (models.Comment, error) {
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

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.M{"$push": bson.M{"comments": comment}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": postID}, update)
	if err != nil {
		return models.Comment{}, err
	}
	if result.MatchedCount == 0 {
		return models.Comment{}, ErrNotFound
	}
	return comment, nil
}

// DeleteAll clears the collection. Test support only, not routed.
func (r *PostRepository) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}
