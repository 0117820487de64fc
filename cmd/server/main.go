package main

import (
	"log"

	"github.com/canvaspress/internal/config"
	"github.com/canvaspress/internal/db"
	"github.com/canvaspress/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env 不存在时静默跳过，直接读环境变量
	_ = godotenv.Load()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库并填充演示数据
	gdb, err := db.Init(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	if err := db.Seed(gdb); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}
	// 可选：从环境变量补一个额外的作者账号
	if err := db.EnsureUser(gdb, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminUsername); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}

	// 设置并运行 Gin 服务器
	r := router.Setup(gdb)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
