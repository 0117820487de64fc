package service

import (
	"errors"
	"strings"

	"github.com/canvaspress/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPodcastNotFound = errors.New("podcast not found")
	ErrPodcastSlugUsed = errors.New("podcast slug already exists")
)

// PodcastService wraps podcast related database operations.
type PodcastService struct {
	db *gorm.DB
}

// PodcastFilter describes filters for listing published podcasts.
type PodcastFilter struct {
	CategoryID *uint
	Limit      int
}

// PodcastInput represents fields accepted when creating a podcast.
type PodcastInput struct {
	Title         string
	Slug          string
	Description   string
	ImageURL      string
	AudioURL      string
	Duration      int
	EpisodeNumber *int
	AuthorID      uint
	CategoryID    *uint
	Published     bool
}

// PodcastUpdate carries the fields of a partial update.
type PodcastUpdate struct {
	Title         *string
	Description   *string
	ImageURL      *string
	AudioURL      *string
	Duration      *int
	EpisodeNumber *int
	CategoryID    *uint
	Published     *bool
}

// NewPodcastService creates a PodcastService instance.
func NewPodcastService(gdb *gorm.DB) *PodcastService {
	return &PodcastService{db: gdb}
}

// List 返回已发布播客，按集数倒序；没有集数的单集固定排在最后。
func (s *PodcastService) List(filter PodcastFilter) ([]db.Podcast, error) {
	query := s.db.
		Model(&db.Podcast{}).
		Where("published = ?", true)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	query = query.
		Order("episode_number IS NULL").
		Order("episode_number desc").
		Order("id desc").
		Preload("Author").
		Preload("Category").
		Preload("Tags")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var podcasts []db.Podcast
	if err := query.Find(&podcasts).Error; err != nil {
		return nil, err
	}
	return podcasts, nil
}

// GetBySlug 按 slug 查找已发布播客。
func (s *PodcastService) GetBySlug(slug string) (*db.Podcast, error) {
	var podcast db.Podcast
	err := s.db.
		Where("slug = ? AND published = ?", strings.TrimSpace(slug), true).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		First(&podcast).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPodcastNotFound
		}
		return nil, err
	}
	return &podcast, nil
}

// Create inserts a new podcast with a unique slug.
func (s *PodcastService) Create(input PodcastInput) (*db.Podcast, error) {
	slug := strings.TrimSpace(input.Slug)

	var existing db.Podcast
	if err := s.db.Unscoped().Where("slug = ?", slug).First(&existing).Error; err == nil {
		return nil, ErrPodcastSlugUsed
	}

	podcast := db.Podcast{
		Title:         strings.TrimSpace(input.Title),
		Slug:          slug,
		Description:   input.Description,
		ImageURL:      input.ImageURL,
		AudioURL:      input.AudioURL,
		Duration:      input.Duration,
		EpisodeNumber: input.EpisodeNumber,
		AuthorID:      input.AuthorID,
		CategoryID:    input.CategoryID,
		Published:     input.Published,
	}
	if err := s.db.Create(&podcast).Error; err != nil {
		return nil, err
	}
	return &podcast, nil
}

// Update merges non-nil fields into the existing podcast.
func (s *PodcastService) Update(id uint, update PodcastUpdate) (*db.Podcast, error) {
	var podcast db.Podcast
	if err := s.db.First(&podcast, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPodcastNotFound
		}
		return nil, err
	}

	if update.Title != nil {
		podcast.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		podcast.Description = *update.Description
	}
	if update.ImageURL != nil {
		podcast.ImageURL = *update.ImageURL
	}
	if update.AudioURL != nil {
		podcast.AudioURL = *update.AudioURL
	}
	if update.Duration != nil {
		podcast.Duration = *update.Duration
	}
	if update.EpisodeNumber != nil {
		podcast.EpisodeNumber = update.EpisodeNumber
	}
	if update.CategoryID != nil {
		podcast.CategoryID = update.CategoryID
	}
	if update.Published != nil {
		podcast.Published = *update.Published
	}

	if err := s.db.Save(&podcast).Error; err != nil {
		return nil, err
	}
	return &podcast, nil
}

// Delete 软删除播客。
func (s *PodcastService) Delete(id uint) error {
	result := s.db.Delete(&db.Podcast{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPodcastNotFound
	}
	return nil
}

// Tags resolves the tags associated with a podcast.
func (s *PodcastService) Tags(id uint) ([]db.Tag, error) {
	var podcast db.Podcast
	if err := s.db.First(&podcast, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPodcastNotFound
		}
		return nil, err
	}

	var tags []db.Tag
	if err := s.db.Model(&podcast).Association("Tags").Find(&tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// AddTag 关联播客与标签；重复关联是幂等操作。
func (s *PodcastService) AddTag(id, tagID uint) error {
	var podcast db.Podcast
	if err := s.db.First(&podcast, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPodcastNotFound
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

	return s.db.Model(&podcast).Association("Tags").Append(&tag)
}
