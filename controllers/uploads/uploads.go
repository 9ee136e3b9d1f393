package uploadsController

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	maxUploadFiles    = 8
	maxUploadSize     = 5 << 20 // 5MB per file
	uploadPublicRoute = "/uploads"
)

type uploadedItem struct {
	OriginalName string `json:"originalName"`
	URL          string `json:"url"`
}

// UploadImages accepts up to 8 image files under the "images" multipart field
// and stores them with random names. Admin only.
func UploadImages(uploadsDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid multipart form"})
			return
		}

		files := form.File["images"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No images uploaded"})
			return
		}
		if len(files) > maxUploadFiles {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": fmt.Sprintf("At most %d images per upload", maxUploadFiles)})
			return
		}

		for _, f := range files {
			if f.Size > maxUploadSize {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": fmt.Sprintf("%s exceeds the 5MB limit", f.Filename)})
				return
			}
			if !strings.HasPrefix(f.Header.Get("Content-Type"), "image/") {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Only image uploads are allowed"})
				return
			}
		}

		if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create upload folder"})
			return
		}

		items := make([]uploadedItem, 0, len(files))
		urls := make([]string, 0, len(files))
		for _, f := range files {
			ext := strings.ToLower(filepath.Ext(f.Filename))
			if len(ext) > 10 {
				ext = ""
			}
			filename := uuid.NewString() + ext

			if err := c.SaveUploadedFile(f, filepath.Join(uploadsDir, filename)); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save image"})
				return
			}

			url := uploadPublicRoute + "/" + filename
			items = append(items, uploadedItem{OriginalName: f.Filename, URL: url})
			urls = append(urls, url)
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"data":    gin.H{"urls": urls, "items": items},
		})
	}
}
