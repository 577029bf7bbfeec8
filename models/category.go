package models

// Category 消费类别（启动时初始化，API 只读）
type Category struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:100;not null"`
	Icon      string `json:"icon" gorm:"size:50"`
	IsDefault bool   `json:"is_default" gorm:"default:false"`
}

func (Category) TableName() string {
	return "categories"
}

// DefaultCategory 默认类别种子数据
type DefaultCategory struct {
	Name string
	Icon string
}

// DefaultCategories 获取默认类别列表（类别表为空时写入）
func DefaultCategories() []DefaultCategory {
	return []DefaultCategory{
		{"Food & Dining", "🍔"},
		{"Transportation", "🚗"},
		{"Shopping", "🛍️"},
		{"Entertainment", "🎬"},
		{"Bills & Utilities", "💡"},
		{"Healthcare", "⚕️"},
		{"Education", "📚"},
		{"Other", "📦"},
	}
}
