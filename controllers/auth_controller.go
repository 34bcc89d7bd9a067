package controllers

import (
	"errors"
	"net/http"

	"inkwell/middleware"
	"inkwell/models"
	"inkwell/services"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
)

const sessionMaxAge = 24 * 60 * 60

type AuthController struct {
	users  *services.UserService
	tokens *utils.TokenManager
}

func NewAuthController(users *services.UserService, tokens *utils.TokenManager) *AuthController {
	return &AuthController{
		users:  users,
		tokens: tokens,
	}
}

func (ac *AuthController) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{
		"flash": utils.TakeFlash(c),
	})
}

func (ac *AuthController) Register(c *gin.Context) {
	var form models.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		utils.SetFlash(c, "Please check the form and try again.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	user, err := ac.users.Register(&form)
	if errors.Is(err, services.ErrDuplicateAccount) {
		utils.SetFlash(c, "You've already signed up with that email, log in instead!")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if err != nil {
		utils.SetFlash(c, "Could not create your account. Please try again.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	// Log the user in right after registration.
	if err := ac.startSession(c, user.ID); err != nil {
		utils.SetFlash(c, "Your account was created, please log in.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	utils.SetFlash(c, "Your account has been created!")
	c.Redirect(http.StatusFound, "/")
}

func (ac *AuthController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"flash": utils.TakeFlash(c),
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		utils.SetFlash(c, "Please enter your email and password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := ac.users.Authenticate(form.Email, form.Password)
	switch {
	case errors.Is(err, services.ErrUnknownEmail):
		utils.SetFlash(c, "The email you have entered does not exist in our records.")
		c.Redirect(http.StatusFound, "/login")
		return
	case errors.Is(err, services.ErrInvalidPassword):
		utils.SetFlash(c, "Invalid password. Please try again.")
		c.Redirect(http.StatusFound, "/login")
		return
	case err != nil:
		utils.SetFlash(c, "Could not log you in. Please try again.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := ac.startSession(c, user.ID); err != nil {
		utils.SetFlash(c, "Could not log you in. Please try again.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (ac *AuthController) startSession(c *gin.Context, userID uint) error {
	token, err := ac.tokens.Issue(userID)
	if err != nil {
		return err
	}
	c.SetCookie(middleware.SessionCookie, token, sessionMaxAge, "/", "", false, true)
	return nil
}
