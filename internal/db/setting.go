package db

import "gorm.io/gorm"

// Setting 存储站点级键值对配置。
type Setting struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName 自定义表名以保持命名一致。
func (Setting) TableName() string {
	return "settings"
}

const (
	// SettingKeySiteTitle 表示站点名称。
	SettingKeySiteTitle = "site_title"
	// SettingKeySiteDescription 表示站点描述。
	SettingKeySiteDescription = "site_description"
	// SettingKeySiteLogo 表示站点 Logo 链接。
	SettingKeySiteLogo = "site_logo"
	// SettingKeyPrimaryColor 表示主题主色。
	SettingKeyPrimaryColor = "primary_color"
	// SettingKeyAccentColor 表示主题强调色。
	SettingKeyAccentColor = "accent_color"
	// SettingKeyFontHeading 表示标题字体。
	SettingKeyFontHeading = "font_heading"
	// SettingKeyFontBody 表示正文字体。
	SettingKeyFontBody = "font_body"
)

// SiteSettingKeys 列出对外公开的站点外观配置键。
var SiteSettingKeys = []string{
	SettingKeySiteTitle,
	SettingKeySiteDescription,
	SettingKeySiteLogo,
	SettingKeyPrimaryColor,
	SettingKeyAccentColor,
	SettingKeyFontHeading,
	SettingKeyFontBody,
}
