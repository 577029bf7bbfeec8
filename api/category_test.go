package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "icon", "is_default"}).
			AddRow(5, "Bills & Utilities", "💡", true).
			AddRow(7, "Education", "📚", true).
			AddRow(1, "Food & Dining", "🍔", true))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewCategoryHandler()
	router.GET("/categories", h.List)

	req := httptest.NewRequest("GET", "/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 3)
	// 按名称排序返回
	assert.Equal(t, "Bills & Utilities", resp[0]["name"])
	assert.Equal(t, "Food & Dining", resp[2]["name"])
	assert.Equal(t, true, resp[0]["is_default"])
	require.NoError(t, mock.ExpectationsWereMet())
}
