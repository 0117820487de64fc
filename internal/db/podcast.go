package db

import "gorm.io/gorm"

// Podcast 定义了播客单集模型。
// Duration 统一为秒数，展示层自行格式化。
type Podcast struct {
	gorm.Model
	Title         string `gorm:"not null"`
	Slug          string `gorm:"uniqueIndex;not null"`
	Description   string `gorm:"type:text"`
	ImageURL      string
	AudioURL      string
	Duration      int
	EpisodeNumber *int
	AuthorID      uint
	Author        User
	CategoryID    *uint
	Category      *Category
	Published     bool  `gorm:"default:false"`
	Tags          []Tag `gorm:"many2many:podcast_tags;"`
}
