package api

import (
	"net/http"
	"strconv"
	"time"

	"expensetracker/database"
	"expensetracker/middleware"
	"expensetracker/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ExpenseHandler 消费记录处理器
type ExpenseHandler struct{}

// NewExpenseHandler 创建消费记录处理器
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{}
}

// CreateExpenseRequest 创建消费记录请求
type CreateExpenseRequest struct {
	Amount      float64 `json:"amount" binding:"required" example:"42.50"`
	Description string  `json:"description" example:"Lunch"`
	CategoryID  uint    `json:"category_id" binding:"required" example:"1"`
	Date        string  `json:"date" binding:"required" example:"2024-01-15"`
}

// UpdateExpenseRequest 更新消费记录请求（整体替换，不是部分更新）
type UpdateExpenseRequest struct {
	Amount      float64 `json:"amount" binding:"required" example:"42.50"`
	Description string  `json:"description" example:"Lunch"`
	CategoryID  uint    `json:"category_id" binding:"required" example:"1"`
	Date        string  `json:"date" binding:"required" example:"2024-01-15"`
}

// ExpenseMutationResponse 创建/更新响应
type ExpenseMutationResponse struct {
	Message string         `json:"message"`
	Expense models.Expense `json:"expense"`
}

const dateLayout = "2006-01-02"

// expenseWithCategoryQuery 消费记录关联类别信息的基础查询
// 类别使用 LEFT JOIN，类别被删除时 category_name/category_icon 为 null
func expenseWithCategoryQuery(userID uint) *gorm.DB {
	return database.DB.Model(&models.Expense{}).
		Select("expenses.*, categories.name AS category_name, categories.icon AS category_icon").
		Joins("LEFT JOIN categories ON categories.id = expenses.category_id").
		Where("expenses.user_id = ?", userID)
}

// List 获取消费记录列表
// @Summary 获取消费记录列表
// @Description 获取当前用户的全部消费记录，附带类别名称和图标，按日期倒序、创建时间倒序排列。支持日期范围（含边界）和类别筛选
// @Tags 消费记录
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "开始日期 (2024-01-01)，含当天"
// @Param endDate query string false "结束日期 (2024-12-31)，含当天"
// @Param category query int false "类别ID"
// @Success 200 {array} models.ExpenseWithCategory "获取成功"
// @Failure 401 {object} ErrorResponse "未携带 token"
// @Failure 500 {object} ErrorResponse "查询失败"
// @Router /api/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	query := expenseWithCategoryQuery(userID)

	// 日期范围筛选，两端都含当天
	if startDate := c.Query("startDate"); startDate != "" {
		if t, err := time.ParseInLocation(dateLayout, startDate, time.UTC); err == nil {
			query = query.Where("expenses.date >= ?", t)
		}
	}
	if endDate := c.Query("endDate"); endDate != "" {
		if t, err := time.ParseInLocation(dateLayout, endDate, time.UTC); err == nil {
			query = query.Where("expenses.date <= ?", t)
		}
	}

	// 类别筛选
	if category := c.Query("category"); category != "" {
		query = query.Where("expenses.category_id = ?", category)
	}

	// 无匹配行时返回空数组而不是 null
	expenses := make([]models.ExpenseWithCategory, 0)
	if err := query.Order("expenses.date DESC, expenses.created_at DESC").Scan(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error fetching expenses"))
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// Get 获取单条消费记录
// @Summary 获取单条消费记录
// @Description 根据ID获取当前用户的消费记录详情，附带类别信息。记录不存在或属于其他用户时返回 404
// @Tags 消费记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "消费记录ID"
// @Success 200 {object} models.ExpenseWithCategory "获取成功"
// @Failure 401 {object} ErrorResponse "未携带 token"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Router /api/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Expense not found")
		return
	}

	var expense models.ExpenseWithCategory
	if err := expenseWithCategoryQuery(userID).
		Where("expenses.id = ?", id).
		First(&expense).Error; err != nil {
		NotFound(c, "Expense not found")
		return
	}

	c.JSON(http.StatusOK, expense)
}

// Create 创建消费记录
// @Summary 创建消费记录
// @Description 为当前用户创建一条新的消费记录，amount、category_id、date 必填，description 缺省为空字符串
// @Tags 消费记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateExpenseRequest true "消费记录信息"
// @Success 201 {object} ExpenseMutationResponse "创建成功"
// @Failure 400 {object} ErrorResponse "字段缺失或日期格式错误"
// @Failure 401 {object} ErrorResponse "未携带 token"
// @Router /api/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Amount, category, and date are required")
		return
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
	if err != nil {
		BadRequest(c, "Invalid date, expected format: 2006-01-02")
		return
	}

	categoryID := req.CategoryID
	expense := models.Expense{
		UserID:      userID,
		CategoryID:  &categoryID,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
	}

	if err := database.DB.Create(&expense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error creating expense"))
		return
	}

	c.JSON(http.StatusCreated, ExpenseMutationResponse{
		Message: "Expense created successfully",
		Expense: expense,
	})
}

// Update 更新消费记录
// @Summary 更新消费记录
// @Description 整体替换 amount/description/category_id/date 四个字段并刷新 updated_at，不是部分更新。记录不存在或属于其他用户时返回 404
// @Tags 消费记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "消费记录ID"
// @Param request body UpdateExpenseRequest true "消费记录信息"
// @Success 200 {object} ExpenseMutationResponse "更新成功"
// @Failure 400 {object} ErrorResponse "字段缺失或日期格式错误"
// @Failure 401 {object} ErrorResponse "未携带 token"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Router /api/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Expense not found")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Amount, category, and date are required")
		return
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
	if err != nil {
		BadRequest(c, "Invalid date, expected format: 2006-01-02")
		return
	}

	// 整体替换四个可变字段，updated_at 由 GORM 自动刷新
	result := database.DB.Model(&models.Expense{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"amount":      req.Amount,
			"description": req.Description,
			"category_id": req.CategoryID,
			"date":        date,
		})
	if result.Error != nil {
		InternalError(c, SafeErrorMessage(result.Error, "Error updating expense"))
		return
	}
	if result.RowsAffected == 0 {
		NotFound(c, "Expense not found")
		return
	}

	// 返回更新后的记录
	var expense models.Expense
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&expense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error updating expense"))
		return
	}

	c.JSON(http.StatusOK, ExpenseMutationResponse{
		Message: "Expense updated successfully",
		Expense: expense,
	})
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Description 删除当前用户的指定消费记录。记录不存在或属于其他用户时返回 404
// @Tags 消费记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "消费记录ID"
// @Success 200 {object} map[string]string "删除成功"
// @Failure 401 {object} ErrorResponse "未携带 token"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Router /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		NotFound(c, "Expense not found")
		return
	}

	result := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Expense{})
	if result.Error != nil {
		InternalError(c, SafeErrorMessage(result.Error, "Error deleting expense"))
		return
	}
	if result.RowsAffected == 0 {
		NotFound(c, "Expense not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
