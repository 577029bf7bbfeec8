package api

import (
	"net/http"
	"strings"
	"time"

	"expensetracker/database"
	"expensetracker/middleware"
	"expensetracker/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryStat 按类别统计结果
type CategoryStat struct {
	Name  string  `json:"name"`
	Icon  string  `json:"icon"`
	Total float64 `json:"total"`
}

// SummaryStatsResponse 消费汇总统计响应
type SummaryStatsResponse struct {
	TotalSpending float64        `json:"totalSpending"`
	ExpenseCount  int64          `json:"expenseCount"`
	ByCategory    []CategoryStat `json:"byCategory"`
}

// GetSummaryStats 获取消费汇总统计
// @Summary 获取消费汇总统计
// @Description 统计当前用户在可选日期范围（含边界）内的消费总额、记录数和按类别小计。byCategory 覆盖全部类别，没有消费的类别小计为 0，按小计倒序排列
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "开始日期 (2024-01-01)，含当天"
// @Param endDate query string false "结束日期 (2024-12-31)，含当天"
// @Success 200 {object} SummaryStatsResponse "获取成功"
// @Failure 401 {object} ErrorResponse "未携带 token"
// @Failure 500 {object} ErrorResponse "查询失败"
// @Router /api/expenses/summary/stats [get]
func (h *ExpenseHandler) GetSummaryStats(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	// 可选日期筛选条件，按 AND 组合，避免拼接 SQL 字符串
	conds := []string{}
	args := []interface{}{}
	if startDate := c.Query("startDate"); startDate != "" {
		if t, err := time.ParseInLocation(dateLayout, startDate, time.UTC); err == nil {
			conds = append(conds, "expenses.date >= ?")
			args = append(args, t)
		}
	}
	if endDate := c.Query("endDate"); endDate != "" {
		if t, err := time.ParseInLocation(dateLayout, endDate, time.UTC); err == nil {
			conds = append(conds, "expenses.date <= ?")
			args = append(args, t)
		}
	}

	// 每次构建新查询，避免条件在复用间累积
	expenseQuery := func() *gorm.DB {
		q := database.DB.Model(&models.Expense{}).Where("expenses.user_id = ?", userID)
		for i, cond := range conds {
			q = q.Where(cond, args[i])
		}
		return q
	}

	// 总金额
	var totalSpending float64
	if err := expenseQuery().Select("COALESCE(SUM(amount), 0)").Scan(&totalSpending).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error fetching summary"))
		return
	}

	// 记录数
	var expenseCount int64
	if err := expenseQuery().Count(&expenseCount).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error fetching summary"))
		return
	}

	// 按类别统计：从类别表出发 LEFT JOIN，保证没有消费的类别也有一条小计为 0 的结果
	joinCond := "LEFT JOIN expenses ON expenses.category_id = categories.id AND expenses.user_id = ?"
	joinArgs := []interface{}{userID}
	if len(conds) > 0 {
		joinCond += " AND " + strings.Join(conds, " AND ")
		joinArgs = append(joinArgs, args...)
	}

	byCategory := make([]CategoryStat, 0)
	if err := database.DB.Table("categories").
		Select("categories.name, categories.icon, COALESCE(SUM(expenses.amount), 0) AS total").
		Joins(joinCond, joinArgs...).
		Group("categories.id, categories.name, categories.icon").
		Order("total DESC").
		Scan(&byCategory).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error fetching summary"))
		return
	}

	c.JSON(http.StatusOK, SummaryStatsResponse{
		TotalSpending: totalSpending,
		ExpenseCount:  expenseCount,
		ByCategory:    byCategory,
	})
}
