package models

import (
	"time"
)

// Expense 消费记录模型
// 类别在存储层允许为空（类别被删除后记录仍保留），API 层创建时必填
type Expense struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	CategoryID  *uint     `json:"category_id" gorm:"index"`
	Amount      float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Description string    `json:"description" gorm:"type:text;default:''"`
	Date        time.Time `json:"date" gorm:"type:date;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	User        User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Category    *Category `json:"-" gorm:"foreignKey:CategoryID"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// ExpenseWithCategory 消费记录 + 类别信息（LEFT JOIN 查询结果，类别已删除时为 null）
type ExpenseWithCategory struct {
	Expense
	CategoryName *string `json:"category_name"`
	CategoryIcon *string `json:"category_icon"`
}
