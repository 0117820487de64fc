package service

import (
	"errors"
	"strings"

	"github.com/canvaspress/internal/db"
	"gorm.io/gorm"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrArticleSlugUsed = errors.New("article slug already exists")
)

// ArticleService wraps article related database operations.
type ArticleService struct {
	db *gorm.DB
}

// ArticleFilter describes filters for listing published articles.
// 空字段表示不过滤。
type ArticleFilter struct {
	Featured   *bool
	CategoryID *uint
	Limit      int
}

// ArticleInput represents fields accepted when creating an article.
type ArticleInput struct {
	Title      string
	Slug       string
	Excerpt    string
	Content    string
	ImageURL   string
	AuthorID   uint
	CategoryID *uint
	Featured   bool
	Published  bool
}

// ArticleUpdate carries the fields of a partial update; nil 字段保持原值。
type ArticleUpdate struct {
	Title      *string
	Excerpt    *string
	Content    *string
	ImageURL   *string
	CategoryID *uint
	Featured   *bool
	Published  *bool
}

// NewArticleService creates an ArticleService instance.
func NewArticleService(gdb *gorm.DB) *ArticleService {
	return &ArticleService{db: gdb}
}

// List 返回已发布文章，按发布时间倒序（最新在前）。
func (s *ArticleService) List(filter ArticleFilter) ([]db.Article, error) {
	query := s.db.
		Model(&db.Article{}).
		Where("published = ?", true)

	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	query = query.
		Order("created_at desc").
		Order("id desc").
		Preload("Author").
		Preload("Category").
		Preload("Tags")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var articles []db.Article
	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// GetBySlug 按 slug 查找已发布文章，未发布视同不存在。
func (s *ArticleService) GetBySlug(slug string) (*db.Article, error) {
	var article db.Article
	err := s.db.
		Where("slug = ? AND published = ?", strings.TrimSpace(slug), true).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

// Create inserts a new article with a unique slug.
func (s *ArticleService) Create(input ArticleInput) (*db.Article, error) {
	slug := strings.TrimSpace(input.Slug)

	var existing db.Article
	if err := s.db.Unscoped().Where("slug = ?", slug).First(&existing).Error; err == nil {
		return nil, ErrArticleSlugUsed
	}

	article := db.Article{
		Title:      strings.TrimSpace(input.Title),
		Slug:       slug,
		Excerpt:    input.Excerpt,
		Content:    input.Content,
		ImageURL:   input.ImageURL,
		AuthorID:   input.AuthorID,
		CategoryID: input.CategoryID,
		Featured:   input.Featured,
		Published:  input.Published,
	}
	if err := s.db.Create(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// Update merges non-nil fields into the existing article.
func (s *ArticleService) Update(id uint, update ArticleUpdate) (*db.Article, error) {
	var article db.Article
	if err := s.db.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	if update.Title != nil {
		article.Title = strings.TrimSpace(*update.Title)
	}
	if update.Excerpt != nil {
		article.Excerpt = *update.Excerpt
	}
	if update.Content != nil {
		article.Content = *update.Content
	}
	if update.ImageURL != nil {
		article.ImageURL = *update.ImageURL
	}
	if update.CategoryID != nil {
		article.CategoryID = update.CategoryID
	}
	if update.Featured != nil {
		article.Featured = *update.Featured
	}
	if update.Published != nil {
		article.Published = *update.Published
	}

	if err := s.db.Save(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// Delete 软删除文章，ID 不会被复用。
func (s *ArticleService) Delete(id uint) error {
	result := s.db.Delete(&db.Article{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArticleNotFound
	}
	return nil
}

// Tags resolves the tags associated with an article.
// 悬空的关联记录会被静默忽略。
func (s *ArticleService) Tags(id uint) ([]db.Tag, error) {
	var article db.Article
	if err := s.db.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	var tags []db.Tag
	if err := s.db.Model(&article).Association("Tags").Find(&tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// AddTag 关联文章与标签；重复关联是幂等操作。
func (s *ArticleService) AddTag(id, tagID uint) error {
	var article db.Article
	if err := s.db.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return err
	}

	var tag db.Tag
	if err := s.db.First(&tag, tagID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTagNotFound
		}
		return err
	}

	return s.db.Model(&article).Association("Tags").Append(&tag)
}
