package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvaldebenito/gamestore-backend/internal/services"
)

// LinkHandler serves one bridge-relation kind. Routes use the pair of ids
// directly; unlink returns 204 even when the pair does not exist.
type LinkHandler[T any] struct {
	service services.LinkService[T]
}

func NewLinkHandler[T any](service services.LinkService[T]) *LinkHandler[T] {
	return &LinkHandler[T]{service: service}
}

func (lh *LinkHandler[T]) Register(rg *gin.RouterGroup, path string) {
	rg.POST("/"+path+"/:leftID/:rightID", lh.Link)
	rg.DELETE("/"+path+"/:leftID/:rightID", lh.Unlink)
	rg.GET("/"+path+"/left/:leftID", lh.ListByLeft)
	rg.GET("/"+path+"/right/:rightID", lh.ListByRight)
}

func (lh *LinkHandler[T]) Link(c *gin.Context) {
	leftID, ok := parseUUIDParam(c, "leftID")
	if !ok {
		return
	}
	rightID, ok := parseUUIDParam(c, "rightID")
	if !ok {
		return
	}
	link, err := lh.service.Link(c.Request.Context(), leftID, rightID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondCreated(c, link)
}

func (lh *LinkHandler[T]) Unlink(c *gin.Context) {
	leftID, ok := parseUUIDParam(c, "leftID")
	if !ok {
		return
	}
	rightID, ok := parseUUIDParam(c, "rightID")
	if !ok {
		return
	}
	if err := lh.service.Unlink(c.Request.Context(), leftID, rightID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (lh *LinkHandler[T]) ListByLeft(c *gin.Context) {
	leftID, ok := parseUUIDParam(c, "leftID")
	if !ok {
		return
	}
	results, err := lh.service.ListByLeft(c.Request.Context(), leftID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, results)
}

func (lh *LinkHandler[T]) ListByRight(c *gin.Context) {
	rightID, ok := parseUUIDParam(c, "rightID")
	if !ok {
		return
	}
	results, err := lh.service.ListByRight(c.Request.Context(), rightID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, results)
}
