package handler

import (
	"errors"
	"net/http"

	"github.com/canvaspress/internal/service"
	"github.com/gin-gonic/gin"
)

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

// GetCategories 获取分类列表（含已发布文章数）。
func (a *API) GetCategories(c *gin.Context) {
	categories, err := a.categories.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list categories")
		return
	}

	response := make([]categoryResponse, 0, len(categories))
	for i := range categories {
		if view := newCategoryResponse(&categories[i]); view != nil {
			response = append(response, *view)
		}
	}
	c.JSON(http.StatusOK, response)
}

// GetCategory 按 slug 获取分类。
func (a *API) GetCategory(c *gin.Context) {
	category, err := a.categories.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, "category not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load category")
		return
	}

	c.JSON(http.StatusOK, newCategoryResponse(category))
}

// GetCategoryArticles 获取某分类下的已发布文章。
func (a *API) GetCategoryArticles(c *gin.Context) {
	category, err := a.categories.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			respondError(c, http.StatusNotFound, "category not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load category")
		return
	}

	articles, err := a.articles.List(service.ArticleFilter{
		CategoryID: &category.ID,
		Limit:      parseLimitQuery(c),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list articles")
		return
	}

	c.JSON(http.StatusOK, newArticleResponses(articles))
}

// CreateCategory 创建分类
func (a *API) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if !bindJSON(c, &req, "invalid category data") {
		return
	}

	category, err := a.categories.Create(req.Name, req.Slug)
	if err != nil {
		if errors.Is(err, service.ErrCategorySlugUsed) {
			respondError(c, http.StatusBadRequest, "category slug already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create category")
		return
	}

	c.JSON(http.StatusCreated, newCategoryResponse(category))
}
