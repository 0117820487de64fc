package db

import "gorm.io/gorm"

// Article 定义了文章模型
type Article struct {
	gorm.Model
	Title      string `gorm:"not null"`
	Slug       string `gorm:"uniqueIndex;not null"`
	Excerpt    string `gorm:"type:text"`
	Content    string `gorm:"type:text"`
	ImageURL   string
	AuthorID   uint
	Author     User
	CategoryID *uint
	Category   *Category
	Featured   bool  `gorm:"default:false"`
	Published  bool  `gorm:"default:false"`
	Tags       []Tag `gorm:"many2many:article_tags;"`
}
