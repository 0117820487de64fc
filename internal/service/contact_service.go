package service

import (
	"errors"
	"strings"

	"github.com/canvaspress/internal/db"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactService 负责保存联系表单留言。
type ContactService struct {
	db *gorm.DB
}

// NewContactService creates a ContactService instance.
func NewContactService(gdb *gorm.DB) *ContactService {
	return &ContactService{db: gdb}
}

// Record stores a contact message and returns it with a generated reference.
func (s *ContactService) Record(name, email, message string) (*db.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if name == "" || email == "" || message == "" {
		return nil, errors.New("name, email and message are required")
	}

	record := db.ContactMessage{
		Reference: uuid.NewString(),
		Name:      name,
		Email:     email,
		Message:   message,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
