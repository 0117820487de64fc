package service

import (
	"errors"
	"strings"

	"github.com/canvaspress/internal/db"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategorySlugUsed = errors.New("category slug already exists")
)

// CategoryService wraps category related database operations.
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a CategoryService instance.
func NewCategoryService(gdb *gorm.DB) *CategoryService {
	return &CategoryService{db: gdb}
}

// List 返回全部分类，并聚合各分类下已发布文章数。
func (s *CategoryService) List() ([]db.Category, error) {
	var categories []db.Category
	err := s.db.
		Model(&db.Category{}).
		Select("categories.*, COUNT(articles.id) AS article_count").
		Joins("LEFT JOIN articles ON articles.category_id = categories.id AND articles.published = ? AND articles.deleted_at IS NULL", true).
		Group("categories.id").
		Order("categories.name asc").
		Order("categories.id asc").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetBySlug 按 slug 查找分类。
func (s *CategoryService) GetBySlug(slug string) (*db.Category, error) {
	var category db.Category
	err := s.db.
		Where("slug = ?", strings.TrimSpace(slug)).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if err := s.db.
		Model(&db.Article{}).
		Where("category_id = ? AND published = ?", category.ID, true).
		Count(&category.ArticleCount).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Create inserts a new category with a unique slug.
func (s *CategoryService) Create(name, slug string) (*db.Category, error) {
	name = strings.TrimSpace(name)
	slug = strings.TrimSpace(slug)
	if name == "" {
		return nil, errors.New("category name is required")
	}
	if slug == "" {
		return nil, errors.New("category slug is required")
	}

	var existing db.Category
	if err := s.db.Unscoped().Where("slug = ?", slug).First(&existing).Error; err == nil {
		return nil, ErrCategorySlugUsed
	}

	category := db.Category{Name: name, Slug: slug}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
