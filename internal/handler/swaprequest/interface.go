package swaprequest

import "github.com/gin-gonic/gin"

type IHandler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Respond(c *gin.Context)
	Cancel(c *gin.Context)
	Complete(c *gin.Context)
	SubmitRating(c *gin.Context)
}
