package handler

import (
	"errors"
	"net/http"

	"github.com/canvaspress/internal/service"
	"github.com/gin-gonic/gin"
)

type articleRequest struct {
	Title      string `json:"title" binding:"required"`
	Slug       string `json:"slug" binding:"required"`
	Excerpt    string `json:"excerpt" binding:"required"`
	Content    string `json:"content" binding:"required"`
	ImageURL   string `json:"imageUrl"`
	AuthorID   uint   `json:"authorId" binding:"required"`
	CategoryID *uint  `json:"categoryId"`
	Featured   bool   `json:"featured"`
	Published  bool   `json:"published"`
}

type articleUpdateRequest struct {
	Title      *string `json:"title"`
	Excerpt    *string `json:"excerpt"`
	Content    *string `json:"content"`
	ImageURL   *string `json:"imageUrl"`
	CategoryID *uint   `json:"categoryId"`
	Featured   *bool   `json:"featured"`
	Published  *bool   `json:"published"`
}

type attachTagRequest struct {
	TagID uint `json:"tagId" binding:"required"`
}

// GetArticles 获取已发布文章列表，支持 limit/featured/categoryId 过滤。
func (a *API) GetArticles(c *gin.Context) {
	filter := service.ArticleFilter{
		Featured:   parseOptionalBoolQuery(c, "featured"),
		CategoryID: parseOptionalUintQuery(c, "categoryId"),
		Limit:      parseLimitQuery(c),
	}

	articles, err := a.articles.List(filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list articles")
		return
	}

	c.JSON(http.StatusOK, newArticleResponses(articles))
}

// GetFeaturedArticles 获取推荐位文章。
func (a *API) GetFeaturedArticles(c *gin.Context) {
	featured := true
	articles, err := a.articles.List(service.ArticleFilter{
		Featured: &featured,
		Limit:    parseLimitQuery(c),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list articles")
		return
	}

	c.JSON(http.StatusOK, newArticleResponses(articles))
}

// GetArticle 按 slug 获取文章详情，附带渲染后的正文 HTML。
func (a *API) GetArticle(c *gin.Context) {
	article, err := a.articles.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			respondError(c, http.StatusNotFound, "article not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load article")
		return
	}

	response := newArticleResponse(*article)
	response.ContentHTML = renderMarkdown(article.Content)
	c.JSON(http.StatusOK, response)
}

// CreateArticle 创建文章
func (a *API) CreateArticle(c *gin.Context) {
	var req articleRequest
	if !bindJSON(c, &req, "invalid article data") {
		return
	}

	article, err := a.articles.Create(service.ArticleInput{
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		AuthorID:   req.AuthorID,
		CategoryID: req.CategoryID,
		Featured:   req.Featured,
		Published:  req.Published,
	})
	if err != nil {
		if errors.Is(err, service.ErrArticleSlugUsed) {
			respondError(c, http.StatusBadRequest, "article slug already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create article")
		return
	}

	c.JSON(http.StatusCreated, newArticleResponse(*article))
}

// UpdateArticle 部分更新文章
func (a *API) UpdateArticle(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid article id")
		return
	}

	var req articleUpdateRequest
	if !bindJSON(c, &req, "invalid article data") {
		return
	}

	article, err := a.articles.Update(id, service.ArticleUpdate{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		CategoryID: req.CategoryID,
		Featured:   req.Featured,
		Published:  req.Published,
	})
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			respondError(c, http.StatusNotFound, "article not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to update article")
		return
	}

	c.JSON(http.StatusOK, newArticleResponse(*article))
}

// DeleteArticle 删除文章
func (a *API) DeleteArticle(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid article id")
		return
	}

	if err := a.articles.Delete(id); err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			respondError(c, http.StatusNotFound, "article not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete article")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}

// AddArticleTag 为文章附加标签
func (a *API) AddArticleTag(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid article id")
		return
	}

	var req attachTagRequest
	if !bindJSON(c, &req, "invalid tag data") {
		return
	}

	if err := a.articles.AddTag(id, req.TagID); err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			respondError(c, http.StatusNotFound, "article not found")
		case errors.Is(err, service.ErrTagNotFound):
			respondError(c, http.StatusNotFound, "tag not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to attach tag")
		}
		return
	}

	tags, err := a.articles.Tags(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load tags")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": newTagResponses(tags)})
}
