package productcontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/sohil-khan01/flipkart/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	products := r.Group("/api/products")
	{
		products.GET("", ListProducts(db))
		products.GET("/:id", GetProduct(db))
		products.POST("", CreateProduct(db))
		products.POST("/bulk", CreateProductsBulk(db))
		products.DELETE("/admin", DeleteAllProducts(db))
	}
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProductDefaults(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(r, http.MethodPost, "/api/products", map[string]any{
		"title":    "Wireless Mouse",
		"category": "electronics",
		"price":    499,
		"mrp":      999,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "wireless-mouse", resp.Data.Slug)
	assert.Regexp(t, `^wireless-mouse-[0-9A-Z]{4}$`, resp.Data.SKU)
	assert.Equal(t, 4.0, resp.Data.Rating)
	assert.Equal(t, 0, resp.Data.RatingCount)
	assert.NotNil(t, resp.Data.Images)
	assert.Empty(t, resp.Data.Images)
	assert.NotNil(t, resp.Data.Specs)
}

func TestCreateProductRequiresTitle(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(r, http.MethodPost, "/api/products", map[string]any{"category": "electronics"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProductSlugCollision(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	for i, want := range []string{"wireless-mouse", "wireless-mouse-2", "wireless-mouse-3"} {
		w := doJSON(r, http.MethodPost, "/api/products", map[string]any{
			"title": "Wireless Mouse",
			"price": 499 + i,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp struct {
			Data models.Product `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, want, resp.Data.Slug)
	}
}

func TestCreateProductPrefersRequestedSlug(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(r, http.MethodPost, "/api/products", map[string]any{
		"title": "Wireless Mouse",
		"slug":  "Mouse Deluxe",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mouse-deluxe", resp.Data.Slug)
}

func TestGetProduct(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(r, http.MethodPost, "/api/products", map[string]any{"title": "USB Cable"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data models.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/products/%d", created.Data.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/products/999999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProductsBulkPartialFailure(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(r, http.MethodPost, "/api/products/bulk", map[string]any{
		"items": []map[string]any{
			{"title": "Keyboard", "category": "electronics", "images": []string{"/uploads/kb.jpg"}},
			{"title": "Monitor", "images": []string{"/uploads/mon.jpg"}}, // missing category
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "item 1")

	var resp struct {
		Data struct {
			Count int              `json:"count"`
			Items []models.Product `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.Count)
	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, "keyboard", resp.Data.Items[0].Slug)

	// item 0 stays committed
	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateProductsBulkSuccess(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(r, http.MethodPost, "/api/products/bulk", map[string]any{
		"items": []map[string]any{
			{"title": "Keyboard", "category": "electronics", "images": []string{"/uploads/kb.jpg"}},
			{"title": "Monitor", "category": "electronics", "images": []string{"/uploads/mon.jpg"}},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Count int              `json:"count"`
			Items []models.Product `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Count)
	assert.Len(t, resp.Data.Items, 2)
}

func TestDeleteAllProducts(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	for _, title := range []string{"Keyboard", "Monitor"} {
		w := doJSON(r, http.MethodPost, "/api/products", map[string]any{"title": title})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(r, http.MethodDelete, "/api/products/admin", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}
