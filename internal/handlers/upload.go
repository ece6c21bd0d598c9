package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Shubham0723/geocool-fcc-sub000/internal/storage"
)

type UploadHandler struct {
	Bucket *storage.Bucket
	Log    *zap.Logger

	client *http.Client
}

func NewUploadHandler(bucket *storage.Bucket, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		Bucket: bucket,
		Log:    log,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload stores a document blob and returns its signed read URL. Object
// names embed vehicle, kind and upload time so re-uploads never collide.
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.Bucket == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Storage is not configured"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file provided"})
		return
	}

	documentType := c.PostForm("documentType")
	vehicleNumber := c.PostForm("vehicleNumber")
	if documentType == "" || vehicleNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing documentType or vehicleNumber"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to upload document"})
		return
	}
	defer src.Close()

	objectName := fmt.Sprintf("%s_%s_%d%s", vehicleNumber, documentType, time.Now().UnixMilli(), filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")

	url, err := h.Bucket.Upload(c.Request.Context(), objectName, contentType, src)
	if err != nil {
		h.Log.Error("upload failed", zap.String("object", objectName), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to upload document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"url":      url,
		"fileName": objectName,
		"message":  strings.ToUpper(documentType) + " document uploaded successfully",
	})
}

// Download proxies a stored object back as an attachment, so the browser
// saves it under a friendly name instead of the bucket's object name.
func (h *UploadHandler) Download(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "url is required"})
		return
	}
	name := c.Query("name")
	if name == "" {
		name = "document"
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, url, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "url is invalid"})
		return
	}

	upstream, err := h.client.Do(req)
	if err != nil {
		h.Log.Error("download fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Download failed"})
		return
	}
	defer upstream.Body.Close()

	if upstream.StatusCode != http.StatusOK {
		c.JSON(upstream.StatusCode, gin.H{"success": false, "message": "Failed to fetch source"})
		return
	}

	contentType := upstream.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(http.StatusOK, upstream.ContentLength, contentType, upstream.Body, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", name),
		"Cache-Control":       "no-store",
	})
}
