package api

import (
	"net/http"

	"expensetracker/database"
	"expensetracker/models"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 消费类别处理器（只读，类别在启动时初始化）
type CategoryHandler struct{}

// NewCategoryHandler 创建消费类别处理器
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// List 获取类别列表
// @Summary 获取消费类别列表
// @Description 获取全部消费类别，按名称排序。类别为全局数据，不按用户区分
// @Tags 消费类别
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Category "获取成功"
// @Failure 401 {object} ErrorResponse "未携带 token"
// @Failure 500 {object} ErrorResponse "查询失败"
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories := make([]models.Category, 0)
	if err := database.DB.Order("name ASC").Find(&categories).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error fetching categories"))
		return
	}
	c.JSON(http.StatusOK, categories)
}
