package service

import (
	"errors"
	"strings"

	"github.com/canvaspress/internal/db"
	"gorm.io/gorm"
)

var (
	ErrTagExists   = errors.New("tag already exists")
	ErrTagNotFound = errors.New("tag not found")
)

// TagService wraps tag related operations.
type TagService struct {
	db *gorm.DB
}

// NewTagService creates a TagService instance.
func NewTagService(gdb *gorm.DB) *TagService {
	return &TagService{db: gdb}
}

// List returns all tags ordered by name.
func (s *TagService) List() ([]db.Tag, error) {
	var tags []db.Tag
	if err := s.db.
		Order("name asc").
		Order("id asc").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// GetBySlug 按 slug 查找标签。
func (s *TagService) GetBySlug(slug string) (*db.Tag, error) {
	var tag db.Tag
	err := s.db.Where("slug = ?", strings.TrimSpace(slug)).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// Create inserts a new tag with unique name and slug.
func (s *TagService) Create(name, slug string) (*db.Tag, error) {
	name = strings.TrimSpace(name)
	slug = strings.TrimSpace(slug)
	if name == "" {
		return nil, errors.New("tag name is required")
	}
	if slug == "" {
		return nil, errors.New("tag slug is required")
	}

	var existing db.Tag
	if err := s.db.Unscoped().Where("name = ? OR slug = ?", name, slug).First(&existing).Error; err == nil {
		return nil, ErrTagExists
	}

	tag := db.Tag{Name: name, Slug: slug}
	if err := s.db.Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}
