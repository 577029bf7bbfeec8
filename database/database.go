package database

import (
	"fmt"
	"log"

	"expensetracker/config"
	"expensetracker/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接
func Init(cfg *config.Config) error {
	// 构建 PostgreSQL DSN 连接字符串
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.DBName,
		cfg.DBSSLMode(),
	)

	logMode := logger.Info
	if cfg.IsProduction() {
		logMode = logger.Warn
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 连接池配置
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(10)  // 最大空闲连接数
	sqlDB.SetMaxOpenConns(100) // 最大打开连接数

	// 自动迁移数据库表
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Expense{},
	); err != nil {
		return err
	}

	// 初始化默认类别
	if err := SeedCategories(DB); err != nil {
		return err
	}

	log.Println("数据库初始化成功")
	return nil
}

// SeedCategories 初始化默认消费类别（仅当表为空时，重复调用不会产生重复数据）
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var cats []models.Category
	for _, c := range models.DefaultCategories() {
		cats = append(cats, models.Category{
			Name:      c.Name,
			Icon:      c.Icon,
			IsDefault: true,
		})
	}
	if err := db.Create(&cats).Error; err != nil {
		return fmt.Errorf("初始化默认类别失败: %w", err)
	}
	log.Printf("已初始化 %d 个默认消费类别", len(cats))
	return nil
}

// Close 关闭数据库连接
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
