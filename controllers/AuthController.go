package controllers

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/harrison-nc/tipestry-homepage/models"
	"github.com/harrison-nc/tipestry-homepage/repository"
	"github.com/harrison-nc/tipestry-homepage/schemas"
)

const tokenLifetime = 24 * time.Hour

// UserStore is the persistence surface the auth endpoints need.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.StoredUser, error)
	Create(ctx context.Context, user models.StoredUser) error
}

type AuthController struct {
	users UserStore
}

func NewAuthController(users UserStore) *AuthController {
	return &AuthController{users: users}
}

func (ac *AuthController) SignUp(c *gin.Context) {
	var body schemas.SignUp
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fields := schemas.Check(body); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signup", "fields": fields})
		return
	}

	_, err := ac.users.FindByEmail(c.Request.Context(), body.Email)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "this email is already in use"})
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		log.Error().Err(err).Msg("signup lookup failed")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("hashing password failed")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	user := models.StoredUser{
		ID:        primitive.NewObjectID(),
		Name:      body.Name,
		Email:     body.Email,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}

	if err := ac.users.Create(c.Request.Context(), user); err != nil {
		log.Error().Err(err).Msg("creating user failed")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, user.Public())
}

func (ac *AuthController) Login(c *gin.Context) {
	var body schemas.Login
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fields := schemas.Check(body); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid login", "fields": fields})
		return
	}

	user, err := ac.users.FindByEmail(c.Request.Context(), body.Email)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("login lookup failed")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID.Hex(),
		"name":  user.Name,
		"email": user.Email,
		"exp":   time.Now().Add(tokenLifetime).Unix(),
	})

	signed, err := token.SignedString([]byte(os.Getenv("SECRET_KEY")))
	if err != nil {
		log.Error().Err(err).Msg("signing token failed")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": signed})
}
