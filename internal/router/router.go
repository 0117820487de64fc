package router

import (
	"github.com/canvaspress/internal/handler"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup 配置 Gin 引擎和全部 API 路由。
func Setup(gdb *gorm.DB) *gin.Engine {
	r := gin.Default()
	api := handler.NewAPI(gdb)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	root := r.Group("/api")
	{
		root.GET("/settings", api.GetSettings)

		root.GET("/categories", api.GetCategories)
		root.GET("/categories/:slug", api.GetCategory)
		root.GET("/categories/:slug/articles", api.GetCategoryArticles)
		root.POST("/categories", api.CreateCategory)

		root.GET("/articles", api.GetArticles)
		root.GET("/articles/featured", api.GetFeaturedArticles)
		root.GET("/articles/:slug", api.GetArticle)
		root.POST("/articles", api.CreateArticle)
		root.PUT("/articles/:id", api.UpdateArticle)
		root.DELETE("/articles/:id", api.DeleteArticle)
		root.POST("/articles/:id/tags", api.AddArticleTag)

		root.GET("/podcasts", api.GetPodcasts)
		root.GET("/podcasts/:slug", api.GetPodcast)
		root.POST("/podcasts", api.CreatePodcast)
		root.PUT("/podcasts/:id", api.UpdatePodcast)
		root.DELETE("/podcasts/:id", api.DeletePodcast)
		root.POST("/podcasts/:id/tags", api.AddPodcastTag)

		root.GET("/tags", api.GetTags)
		root.POST("/tags", api.CreateTag)

		root.POST("/subscribe", api.Subscribe)
		root.GET("/subscribers", api.GetSubscribers)

		root.POST("/contact", api.SubmitContact)
	}

	return r
}
