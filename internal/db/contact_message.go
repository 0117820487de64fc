package db

import "gorm.io/gorm"

// ContactMessage 定义了联系表单留言模型。
// Reference 为对外返回的查询凭据，避免暴露自增 ID。
type ContactMessage struct {
	gorm.Model
	Reference string `gorm:"size:36;uniqueIndex;not null"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Message   string `gorm:"type:text;not null"`
}
