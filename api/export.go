package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"expensetracker/middleware"
	"expensetracker/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// queryExportExpenses 查询当前用户待导出的消费记录，日期范围可选（含边界），按日期倒序
func queryExportExpenses(c *gin.Context) ([]models.ExpenseWithCategory, error) {
	userID := middleware.GetCurrentUserID(c)

	query := expenseWithCategoryQuery(userID)
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

	expenses := make([]models.ExpenseWithCategory, 0)
	err := query.Order("expenses.date DESC, expenses.created_at DESC").Scan(&expenses).Error
	return expenses, err
}

func categoryLabel(e models.ExpenseWithCategory) string {
	if e.CategoryName == nil {
		return ""
	}
	return *e.CategoryName
}

// ExportCSV 导出消费记录为 CSV
// @Summary 导出消费记录为 CSV
// @Description 导出当前用户的消费记录为 CSV 文件，日期范围可选（含边界），不传则导出全部
// @Tags 导出
// @Produce text/csv
// @Security BearerAuth
// @Param startDate query string false "开始日期 (2024-01-01)"
// @Param endDate query string false "结束日期 (2024-12-31)"
// @Success 200 {file} file "CSV 文件"
// @Failure 401 {object} ErrorResponse "未携带 token"
// @Failure 500 {object} ErrorResponse "查询失败"
// @Router /api/expenses/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	expenses, err := queryExportExpenses(c)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Error exporting expenses"))
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 直接打开
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	// 写入表头
	headers := []string{"ID", "Date", "Amount", "Category", "Description", "Created At"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "Error exporting expenses")
		return
	}

	// 写入数据
	for _, expense := range expenses {
		row := []string{
			fmt.Sprintf("%d", expense.ID),
			expense.Date.Format(dateLayout),
			fmt.Sprintf("%.2f", expense.Amount),
			categoryLabel(expense),
			expense.Description,
			expense.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "Error exporting expenses")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "Error exporting expenses")
		return
	}

	// 设置响应头
	filename := fmt.Sprintf("expenses_%s.csv", time.Now().Format(dateLayout))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON 导出消费记录为 JSON
// @Summary 导出消费记录为 JSON
// @Description 导出当前用户的消费记录为 JSON 格式，附带汇总信息
// @Tags 导出
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "开始日期 (2024-01-01)"
// @Param endDate query string false "结束日期 (2024-12-31)"
// @Success 200 {object} map[string]interface{} "导出成功"
// @Failure 401 {object} ErrorResponse "未携带 token"
// @Failure 500 {object} ErrorResponse "查询失败"
// @Router /api/expenses/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	expenses, err := queryExportExpenses(c)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Error exporting expenses"))
		return
	}

	// 计算汇总信息
	var totalAmount float64
	for _, expense := range expenses {
		totalAmount += expense.Amount
	}

	c.JSON(http.StatusOK, gin.H{
		"total_count":  len(expenses),
		"total_amount": totalAmount,
		"expenses":     expenses,
	})
}

// ExportExcel 导出消费记录为 Excel
// @Summary 导出消费记录为 Excel
// @Description 导出当前用户的消费记录为 xlsx 文件，带表头样式和合计行
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param startDate query string false "开始日期 (2024-01-01)"
// @Param endDate query string false "结束日期 (2024-12-31)"
// @Success 200 {file} file "Excel 文件"
// @Failure 401 {object} ErrorResponse "未携带 token"
// @Failure 500 {object} ErrorResponse "查询失败"
// @Router /api/expenses/export/xlsx [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	expenses, err := queryExportExpenses(c)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Error exporting expenses"))
		return
	}

	// 创建 Excel 文件
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Expenses"
	f.SetSheetName("Sheet1", sheetName)

	// 表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 数据样式
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 15)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 20)
	f.SetColWidth(sheetName, "E", "E", 30)
	f.SetColWidth(sheetName, "F", "F", 20)

	// 写入表头
	headers := []string{"ID", "Date", "Amount", "Category", "Description", "Created At"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// 写入数据
	var totalAmount float64
	for i, expense := range expenses {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), expense.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.Date.Format(dateLayout))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), expense.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), categoryLabel(expense))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), expense.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), expense.CreatedAt.Format("2006-01-02 15:04:05"))

		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), dataStyle)
		totalAmount += expense.Amount
	}

	// 合计行
	summaryRow := len(expenses) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Total")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("B%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), totalAmount)
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("%d expenses", len(expenses)))
	f.MergeCell(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("F%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("F%d", summaryRow), summaryStyle)

	// 设置响应头
	filename := fmt.Sprintf("expenses_%s.xlsx", time.Now().Format(dateLayout))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	// 写入响应
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "Error exporting expenses")
		return
	}
}
