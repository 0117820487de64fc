package db

import "gorm.io/gorm"

// Subscriber 定义了邮件订阅者模型
type Subscriber struct {
	gorm.Model
	Email string `gorm:"uniqueIndex;not null"`
}
