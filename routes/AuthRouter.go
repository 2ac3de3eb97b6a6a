package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/harrison-nc/tipestry-homepage/controllers"
)

func AuthRouter(router *gin.Engine, users controllers.UserStore) {
	auth := controllers.NewAuthController(users)

	router.POST("/auth/signup", auth.SignUp)
	router.POST("/auth/login", auth.Login)
}
