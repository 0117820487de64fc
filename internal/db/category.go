package db

import "gorm.io/gorm"

// Category 定义了内容分类模型
type Category struct {
	gorm.Model
	Name string `gorm:"not null"`
	Slug string `gorm:"uniqueIndex;not null"`

	// ArticleCount 由列表查询聚合得出，不落表。
	ArticleCount int64 `gorm:"->;-:migration"`
}
