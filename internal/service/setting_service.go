package service

import (
	"errors"
	"strings"

	"github.com/canvaspress/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSettingNotFound 表示配置键不存在。
var ErrSettingNotFound = errors.New("setting not found")

// SettingService 提供站点设置的读取与更新能力。
type SettingService struct {
	db *gorm.DB
}

// NewSettingService creates a SettingService instance.
func NewSettingService(gdb *gorm.DB) *SettingService {
	return &SettingService{db: gdb}
}

// Get 按键读取配置。
func (s *SettingService) Get(key string) (*db.Setting, error) {
	var setting db.Setting
	err := s.db.Where("key = ?", strings.TrimSpace(key)).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return &setting, nil
}

// Upsert 写入配置，键不存在时创建。
func (s *SettingService) Upsert(key, value string) (*db.Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, errors.New("setting key is required")
	}

	setting := db.Setting{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return nil, err
	}

	return s.Get(key)
}

// SiteSettings 返回对外公开的站点外观配置，缺失的键跳过。
func (s *SettingService) SiteSettings() (map[string]string, error) {
	var settings []db.Setting
	if err := s.db.Where("key IN ?", db.SiteSettingKeys).Find(&settings).Error; err != nil {
		return nil, err
	}

	result := make(map[string]string, len(settings))
	for _, setting := range settings {
		result[setting.Key] = setting.Value
	}
	return result, nil
}
