package handler

import (
	"errors"
	"net/http"

	"github.com/canvaspress/internal/service"
	"github.com/gin-gonic/gin"
)

type tagRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

// GetTags 获取标签列表
func (a *API) GetTags(c *gin.Context) {
	tags, err := a.tags.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list tags")
		return
	}

	c.JSON(http.StatusOK, newTagResponses(tags))
}

// CreateTag 创建新标签
func (a *API) CreateTag(c *gin.Context) {
	var req tagRequest
	if !bindJSON(c, &req, "invalid tag data") {
		return
	}

	tag, err := a.tags.Create(req.Name, req.Slug)
	if err != nil {
		if errors.Is(err, service.ErrTagExists) {
			respondError(c, http.StatusBadRequest, "tag already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create tag")
		return
	}

	c.JSON(http.StatusCreated, tagResponse{ID: tag.ID, Name: tag.Name, Slug: tag.Slug})
}
