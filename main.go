package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/harrison-nc/tipestry-homepage/database"
	"github.com/harrison-nc/tipestry-homepage/initializers"
	"github.com/harrison-nc/tipestry-homepage/repository"
	"github.com/harrison-nc/tipestry-homepage/routes"
)

func init() {
	initializers.LoadEnvVariables()
	initializers.SetupLogger()
}

func main() {
	client, err := database.Connect(os.Getenv("MONGO_URI"))
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to mongodb failed")
	}
	log.Info().Msg("connected to mongodb")

	postRepo := repository.NewPostRepository(database.OpenCollection(client, "posts-collection"))
	userRepo := repository.NewUserRepository(database.OpenCollection(client, "user-collection"))

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://127.0.0.1:5500", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.AuthRouter(router, userRepo)
	routes.PostRouter(router, routes.PostRouterConfig{
		BasePath:      os.Getenv("BASE_PATH"),
		CombinedVotes: true,
		SplitVotes:    true,
	}, postRepo)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
