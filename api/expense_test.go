package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setUserIDMiddleware 模拟 JWT 中间件注入的用户身份
func setUserIDMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func setupExpenseRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewExpenseHandler()
	group := router.Group("/expenses", setUserIDMiddleware(userID))
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
	return router
}

func expenseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "category_id", "amount", "description",
		"date", "created_at", "updated_at", "category_name", "category_icon",
	})
}

func TestExpenseHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT expenses\..* FROM "expenses" LEFT JOIN categories`).
		WillReturnRows(expenseRows().
			AddRow(2, 1, 1, 58.90, "Dinner", now, now, now, "Food & Dining", "🍔").
			AddRow(1, 1, 2, 12.50, "Bus pass", now.Add(-24*time.Hour), now, now, "Transportation", "🚗"))

	router := setupExpenseRouter(1)
	req := httptest.NewRequest("GET", "/expenses", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Dinner", resp[0]["description"])
	assert.Equal(t, "Food & Dining", resp[0]["category_name"])
	assert.Equal(t, "🚗", resp[1]["category_icon"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_List_Empty(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT expenses\..* FROM "expenses" LEFT JOIN categories`).
		WillReturnRows(expenseRows())

	router := setupExpenseRouter(1)
	req := httptest.NewRequest("GET", "/expenses", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	// 空结果返回 [] 而不是 null
	assert.Equal(t, "[]", w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_List_DateRange(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	// 两端日期都含当天，按日期倒序、创建时间倒序
	mock.ExpectQuery(`SELECT expenses\..* FROM "expenses" LEFT JOIN categories ON categories\.id = expenses\.category_id WHERE expenses\.user_id = \$1 AND expenses\.date >= \$2 AND expenses\.date <= \$3 ORDER BY expenses\.date DESC, expenses\.created_at DESC`).
		WillReturnRows(expenseRows().
			AddRow(3, 1, 1, 30.00, "Groceries", now, now, now, "Food & Dining", "🍔"))

	router := setupExpenseRouter(1)
	req := httptest.NewRequest("GET", "/expenses?startDate=2026-08-01&endDate=2026-08-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Groceries", resp[0]["description"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_List_CategoryFilter(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`WHERE expenses\.user_id = \$1 AND expenses\.category_id = \$2`).
		WillReturnRows(expenseRows())

	router := setupExpenseRouter(1)
	req := httptest.NewRequest("GET", "/expenses?category=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_List_InvalidDateIgnored(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 非法日期参数被忽略，不影响查询
	mock.ExpectQuery(`SELECT expenses\..* FROM "expenses" LEFT JOIN categories`).
		WillReturnRows(expenseRows())

	router := setupExpenseRouter(1)
	req := httptest.NewRequest("GET", "/expenses?startDate=not-a-date", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Get(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT expenses\..* FROM "expenses" LEFT JOIN categories`).
		WillReturnRows(expenseRows().
			AddRow(7, 1, 3, 199.00, "Headphones", now, now, now, "Shopping", "🛍️"))

	router := setupExpenseRouter(1)
	req := httptest.NewRequest("GET", "/expenses/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(7), resp["id"])
	assert.Equal(t, "Shopping", resp["category_name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Get_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 其他用户的记录或不存在的记录都查不到
	mock.ExpectQuery(`SELECT expenses\..* FROM "expenses" LEFT JOIN categories`).
		WillReturnRows(expenseRows())

	router := setupExpenseRouter(1)
	req := httptest.NewRequest("GET", "/expenses/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Expense not found", resp["error"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Get_InvalidID(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := setupExpenseRouter(1)
	req := httptest.NewRequest("GET", "/expenses/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
}

func TestExpenseHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "expenses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectCommit()

	router := setupExpenseRouter(1)
	body := `{"amount":42.50,"category_id":1,"date":"2026-08-30"}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Expense created successfully", resp["message"])
	expense := resp["expense"].(map[string]interface{})
	assert.Equal(t, float64(10), expense["id"])
	assert.Equal(t, 42.50, expense["amount"])
	// 描述缺省为空字符串
	assert.Equal(t, "", expense["description"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_MissingFields(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := setupExpenseRouter(1)
	body := `{"description":"no amount"}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Amount, category, and date are required", resp["error"])
}

func TestExpenseHandler_Create_InvalidDate(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := setupExpenseRouter(1)
	body := `{"amount":10,"category_id":1,"date":"30/08/2026"}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestExpenseHandler_Update(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "expenses"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "expenses"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "category_id", "amount", "description", "date", "created_at", "updated_at",
		}).AddRow(5, 1, 2, 99.99, "Updated trip", now, now, now))

	router := setupExpenseRouter(1)
	body := `{"amount":99.99,"description":"Updated trip","category_id":2,"date":"2026-08-15"}`
	req := httptest.NewRequest("PUT", "/expenses/5", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Expense updated successfully", resp["message"])
	expense := resp["expense"].(map[string]interface{})
	assert.Equal(t, "Updated trip", expense["description"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Update_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "expenses"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	router := setupExpenseRouter(1)
	body := `{"amount":99.99,"description":"x","category_id":2,"date":"2026-08-15"}`
	req := httptest.NewRequest("PUT", "/expenses/999", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Expense not found", resp["error"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "expenses"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := setupExpenseRouter(1)
	req := httptest.NewRequest("DELETE", "/expenses/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Expense deleted successfully", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Delete_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "expenses"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	router := setupExpenseRouter(1)
	req := httptest.NewRequest("DELETE", "/expenses/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
