package routes

import (
	"net/http"

	"inkwell/controllers"
	"inkwell/middleware"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, tokens *utils.TokenManager, auth *controllers.AuthController, posts *controllers.PostController, pages *controllers.PagesController) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public pages.
	r.GET("/", posts.Home)
	r.GET("/register", auth.ShowRegister)
	r.POST("/register", auth.Register)
	r.GET("/login", auth.ShowLogin)
	r.POST("/login", auth.Login)

	// Everything else requires an authenticated session.
	private := r.Group("")
	private.Use(middleware.RequireLogin(tokens))
	{
		private.GET("/logout", auth.Logout)

		private.GET("/create", posts.ShowCreate)
		private.POST("/create", posts.CreatePost)
		private.GET("/full_post/:id", posts.FullPost)
		private.POST("/full_post/:id", posts.FullPost)
		private.GET("/edit/:id", posts.ShowEdit)
		private.POST("/edit/:id", posts.EditPost)
		private.GET("/delete/:id", posts.ConfirmDelete)
		private.POST("/delete/:id", posts.DeletePost)

		private.GET("/about", pages.About)
		private.GET("/contact", pages.Contact)
	}
}
