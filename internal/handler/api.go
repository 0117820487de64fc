package handler

import (
	"github.com/canvaspress/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db          *gorm.DB
	articles    *service.ArticleService
	podcasts    *service.PodcastService
	categories  *service.CategoryService
	tags        *service.TagService
	subscribers *service.SubscriberService
	settings    *service.SettingService
	contacts    *service.ContactService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB) *API {
	return &API{
		db:          gdb,
		articles:    service.NewArticleService(gdb),
		podcasts:    service.NewPodcastService(gdb),
		categories:  service.NewCategoryService(gdb),
		tags:        service.NewTagService(gdb),
		subscribers: service.NewSubscriberService(gdb),
		settings:    service.NewSettingService(gdb),
		contacts:    service.NewContactService(gdb),
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
