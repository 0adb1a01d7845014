package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "zenmai/internal/interfaces/http/handlers/user"
	"zenmai/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler *userhandlers.UserHandler
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/user")
	{
		users.GET("/login/", config.UserHandler.ShowLogin)
		users.POST("/login/", config.UserHandler.Login)
		users.GET("/logout/", config.UserHandler.Logout)

		users.GET("/new/", config.UserHandler.ShowRegister)
		users.POST("/new/", config.UserHandler.Register)

		users.GET("/edit/",
			middleware.RequireUserOrLogin(),
			config.UserHandler.ShowEdit)
		users.POST("/edit/",
			middleware.RequireUser(),
			config.UserHandler.Edit)
	}
}
