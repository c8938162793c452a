package routes

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"pollsite/config"
	"pollsite/controllers"
	"pollsite/middleware"
	"pollsite/templates"
)

func SetupRouter() *gin.Engine {
	router := gin.Default()
	router.SetHTMLTemplate(template.Must(template.ParseFS(templates.FS, "*.html")))

	router.Use(middleware.LoadSession())

	// Listing and question creation
	router.GET("/", controllers.Index)
	router.POST("/", middleware.RequireAuth(), controllers.CreateQuestion)

	// Auth routes
	router.GET("/auth", middleware.RequireGuest(), controllers.AuthPage)
	router.POST("/auth", middleware.RequireGuest(), controllers.AuthPage)
	router.POST("/logout", controllers.Logout)

	// Detail, choices, results, votes and comments
	router.GET("/:id", controllers.Detail)
	router.POST("/:id", middleware.RequireAuth(), controllers.CreateChoice)
	router.GET("/:id/results", controllers.Results)
	router.GET("/:id/add_comment", middleware.RequireAuth(), controllers.AddComment)
	router.POST("/:id/add_comment", middleware.RequireAuth(), controllers.AddComment)

	vote := []gin.HandlerFunc{controllers.CastVote}
	if config.VoteRequiresAuth {
		vote = append([]gin.HandlerFunc{middleware.RequireAuth()}, vote...)
	}
	router.POST("/:id/vote", vote...)

	return router
}
