package routes

import (
	"github.com/gin-gonic/gin"

	issuehandlers "zenmai/internal/interfaces/http/handlers/issue"
	"zenmai/internal/interfaces/http/middleware"
)

type IssueRouteConfig struct {
	IssueHandler *issuehandlers.IssueHandler
}

func SetupIssueRoutes(engine *gin.Engine, config *IssueRouteConfig) {
	engine.GET("/", config.IssueHandler.List)

	// Static paths registered before /:id/ so they win route matching.
	engine.GET("/new/",
		middleware.RequireUserOrLogin(),
		config.IssueHandler.NewForm)
	engine.POST("/new/",
		middleware.RequireUser(),
		config.IssueHandler.Create)

	engine.GET("/download/:id/", config.IssueHandler.Download)

	engine.GET("/:id/", config.IssueHandler.Show)
	engine.POST("/:id/",
		middleware.RequireUser(),
		config.IssueHandler.AddComment)
}
