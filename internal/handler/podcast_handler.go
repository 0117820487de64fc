package handler

import (
	"errors"
	"net/http"

	"github.com/canvaspress/internal/service"
	"github.com/gin-gonic/gin"
)

type podcastRequest struct {
	Title         string `json:"title" binding:"required"`
	Slug          string `json:"slug" binding:"required"`
	Description   string `json:"description" binding:"required"`
	ImageURL      string `json:"imageUrl"`
	AudioURL      string `json:"audioUrl" binding:"required"`
	Duration      int    `json:"duration"`
	EpisodeNumber *int   `json:"episodeNumber"`
	AuthorID      uint   `json:"authorId" binding:"required"`
	CategoryID    *uint  `json:"categoryId"`
	Published     bool   `json:"published"`
}

type podcastUpdateRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	ImageURL      *string `json:"imageUrl"`
	AudioURL      *string `json:"audioUrl"`
	Duration      *int    `json:"duration"`
	EpisodeNumber *int    `json:"episodeNumber"`
	CategoryID    *uint   `json:"categoryId"`
	Published     *bool   `json:"published"`
}

// GetPodcasts 获取已发布播客列表，支持 limit/categoryId 过滤。
func (a *API) GetPodcasts(c *gin.Context) {
	filter := service.PodcastFilter{
		CategoryID: parseOptionalUintQuery(c, "categoryId"),
		Limit:      parseLimitQuery(c),
	}

	podcasts, err := a.podcasts.List(filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list podcasts")
		return
	}

	c.JSON(http.StatusOK, newPodcastResponses(podcasts))
}

// GetPodcast 按 slug 获取播客详情。
func (a *API) GetPodcast(c *gin.Context) {
	podcast, err := a.podcasts.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPodcastNotFound) {
			respondError(c, http.StatusNotFound, "podcast not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load podcast")
		return
	}

	c.JSON(http.StatusOK, newPodcastResponse(*podcast))
}

// CreatePodcast 创建播客
func (a *API) CreatePodcast(c *gin.Context) {
	var req podcastRequest
	if !bindJSON(c, &req, "invalid podcast data") {
		return
	}

	podcast, err := a.podcasts.Create(service.PodcastInput{
		Title:         req.Title,
		Slug:          req.Slug,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		AudioURL:      req.AudioURL,
		Duration:      req.Duration,
		EpisodeNumber: req.EpisodeNumber,
		AuthorID:      req.AuthorID,
		CategoryID:    req.CategoryID,
		Published:     req.Published,
	})
	if err != nil {
		if errors.Is(err, service.ErrPodcastSlugUsed) {
			respondError(c, http.StatusBadRequest, "podcast slug already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create podcast")
		return
	}

	c.JSON(http.StatusCreated, newPodcastResponse(*podcast))
}

// UpdatePodcast 部分更新播客
func (a *API) UpdatePodcast(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid podcast id")
		return
	}

	var req podcastUpdateRequest
	if !bindJSON(c, &req, "invalid podcast data") {
		return
	}

	podcast, err := a.podcasts.Update(id, service.PodcastUpdate{
		Title:         req.Title,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		AudioURL:      req.AudioURL,
		Duration:      req.Duration,
		EpisodeNumber: req.EpisodeNumber,
		CategoryID:    req.CategoryID,
		Published:     req.Published,
	})
	if err != nil {
		if errors.Is(err, service.ErrPodcastNotFound) {
			respondError(c, http.StatusNotFound, "podcast not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to update podcast")
		return
	}

	c.JSON(http.StatusOK, newPodcastResponse(*podcast))
}

// DeletePodcast 删除播客
func (a *API) DeletePodcast(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid podcast id")
		return
	}

	if err := a.podcasts.Delete(id); err != nil {
		if errors.Is(err, service.ErrPodcastNotFound) {
			respondError(c, http.StatusNotFound, "podcast not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete podcast")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "podcast deleted"})
}

// AddPodcastTag 为播客附加标签
func (a *API) AddPodcastTag(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid podcast id")
		return
	}

	var req attachTagRequest
	if !bindJSON(c, &req, "invalid tag data") {
		return
	}

	if err := a.podcasts.AddTag(id, req.TagID); err != nil {
		switch {
		case errors.Is(err, service.ErrPodcastNotFound):
			respondError(c, http.StatusNotFound, "podcast not found")
		case errors.Is(err, service.ErrTagNotFound):
			respondError(c, http.StatusNotFound, "tag not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to attach tag")
		}
		return
	}

	tags, err := a.podcasts.Tags(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load tags")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": newTagResponses(tags)})
}
