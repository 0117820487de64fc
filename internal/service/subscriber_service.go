package service

import (
	"errors"
	"strings"

	"github.com/canvaspress/internal/db"
	"gorm.io/gorm"
)

// SubscriberService wraps newsletter subscriber operations.
type SubscriberService struct {
	db *gorm.DB
}

// NewSubscriberService creates a SubscriberService instance.
func NewSubscriberService(gdb *gorm.DB) *SubscriberService {
	return &SubscriberService{db: gdb}
}

// Add 订阅邮箱。重复订阅是幂等操作：已存在时返回原记录而非报错。
func (s *SubscriberService) Add(email string) (*db.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errors.New("email is required")
	}

	var existing db.Subscriber
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	subscriber := db.Subscriber{Email: email}
	if err := s.db.Create(&subscriber).Error; err != nil {
		return nil, err
	}
	return &subscriber, nil
}

// List returns all subscribers ordered by signup time.
func (s *SubscriberService) List() ([]db.Subscriber, error) {
	var subscribers []db.Subscriber
	if err := s.db.
		Order("created_at asc").
		Order("id asc").
		Find(&subscribers).Error; err != nil {
		return nil, err
	}
	return subscribers, nil
}
