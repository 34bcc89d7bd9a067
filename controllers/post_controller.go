package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"inkwell/middleware"
	"inkwell/models"
	"inkwell/services"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	posts *services.PostService
}

func NewPostController(posts *services.PostService) *PostController {
	return &PostController{posts: posts}
}

// Home renders the public listing, newest post first.
func (pc *PostController) Home(c *gin.Context) {
	posts, err := pc.posts.ListAll()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "index.html", gin.H{
			"flash": "Could not load posts.",
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"posts": posts,
		"year":  time.Now().Format("January 2, 2006"),
		"flash": utils.TakeFlash(c),
	})
}

func (pc *PostController) FullPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	post, err := pc.posts.Get(id)
	if errors.Is(err, services.ErrNotFound) {
		utils.SetFlash(c, "That post does not exist.")
		c.Redirect(http.StatusFound, "/")
		return
	}
	if err != nil {
		utils.SetFlash(c, "Could not load the post.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "full_post.html", gin.H{
		"post":  post,
		"flash": utils.TakeFlash(c),
	})
}

func (pc *PostController) ShowCreate(c *gin.Context) {
	c.HTML(http.StatusOK, "create_post.html", gin.H{
		"form":  &models.PostForm{},
		"flash": utils.TakeFlash(c),
	})
}

func (pc *PostController) CreatePost(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		utils.SetFlash(c, "Please give a title to your post.")
		c.Redirect(http.StatusFound, "/create")
		return
	}

	if _, err := pc.posts.Create(userID, &form); err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.SetFlash(c, "Please give a title to your post.")
		} else {
			utils.SetFlash(c, "Could not save your post. Please try again.")
		}
		c.Redirect(http.StatusFound, "/create")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (pc *PostController) ShowEdit(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id, ok := postID(c)
	if !ok {
		return
	}

	post, err := pc.posts.Get(id)
	if err != nil {
		utils.SetFlash(c, "That post does not exist.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if !post.OwnedBy(userID) {
		utils.SetFlash(c, "You are not authorized to update this post.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "edit_post.html", gin.H{
		"form":  models.PostFormFromPost(post),
		"post":  post,
		"flash": utils.TakeFlash(c),
	})
}

func (pc *PostController) EditPost(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id, ok := postID(c)
	if !ok {
		return
	}

	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		utils.SetFlash(c, "Please give a title to your post.")
		c.Redirect(http.StatusFound, "/edit/"+c.Param("id"))
		return
	}

	_, err := pc.posts.Update(id, userID, &form)
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.SetFlash(c, "That post does not exist.")
	case errors.Is(err, services.ErrForbidden):
		utils.SetFlash(c, "You are not authorized to update this post.")
	case errors.Is(err, services.ErrValidation):
		utils.SetFlash(c, "Please give a title to your post.")
		c.Redirect(http.StatusFound, "/edit/"+c.Param("id"))
		return
	case err != nil:
		utils.SetFlash(c, "Could not save your changes. Please try again.")
	}

	c.Redirect(http.StatusFound, "/")
}

func (pc *PostController) ConfirmDelete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id, ok := postID(c)
	if !ok {
		return
	}

	post, err := pc.posts.Get(id)
	if err != nil {
		utils.SetFlash(c, "That post does not exist.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if !post.OwnedBy(userID) {
		utils.SetFlash(c, "You are not authorized to delete this post.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "confirm_delete.html", gin.H{
		"post":  post,
		"flash": utils.TakeFlash(c),
	})
}

func (pc *PostController) DeletePost(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id, ok := postID(c)
	if !ok {
		return
	}

	err := pc.posts.Delete(id, userID)
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.SetFlash(c, "That post does not exist.")
	case errors.Is(err, services.ErrForbidden):
		utils.SetFlash(c, "You are not authorized to delete this post.")
	case err != nil:
		utils.SetFlash(c, "Could not delete the post. Please try again.")
	default:
		utils.SetFlash(c, "Post deleted successfully!")
	}

	c.Redirect(http.StatusFound, "/")
}

// postID parses the :id path param, redirecting home on garbage input.
func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SetFlash(c, "That post does not exist.")
		c.Redirect(http.StatusFound, "/")
		return 0, false
	}
	return uint(id), true
}
