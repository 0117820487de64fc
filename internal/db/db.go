package db

import (
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DefaultDSN 指向仅存在于进程内存中的 SQLite 库。
// 进程重启后所有写入丢失，由 Seed 重新填充演示数据。
const DefaultDSN = "file:canvaspress?mode=memory&cache=shared"

// Init 打开数据库连接并执行自动迁移。
// dsn 为空时回退到默认的内存库。
func Init(dsn string) (*gorm.DB, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		dsn = DefaultDSN
	}

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if isMemoryDSN(dsn) {
		// 内存库在最后一个连接关闭时即被释放，固定单连接以保住状态。
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	// 自动迁移模式，为核心模型创建表
	if err := gdb.AutoMigrate(
		&User{},
		&Category{},
		&Article{},
		&Podcast{},
		&Tag{},
		&Subscriber{},
		&Setting{},
		&ContactMessage{},
	); err != nil {
		return nil, err
	}

	return gdb, nil
}

func isMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
