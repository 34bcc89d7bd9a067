package controllers

import (
	"net/http"
	"time"

	"inkwell/utils"

	"github.com/gin-gonic/gin"
)

type PagesController struct{}

func NewPagesController() *PagesController {
	return &PagesController{}
}

func (p *PagesController) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"year":  time.Now().Format("January 2, 2006"),
		"flash": utils.TakeFlash(c),
	})
}

func (p *PagesController) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"year":  time.Now().Year(),
		"flash": utils.TakeFlash(c),
	})
}
