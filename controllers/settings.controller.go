// File: controllers/settings.controller.go
package controllers

import (
	"io"
	"net/http"

	"arunika-backend/assets"

	"github.com/gin-gonic/gin"
)

// MaxAssetSize adalah ukuran maksimal file aset yang diterima.
const MaxAssetSize = 5 * 1024 * 1024 // 5MB

// GetAsset menangani pengambilan URL aset (logo, watermark, foto profil).
// Bila belum ada aset kustom, klien memakai aset bawaan.
func (ctrl *Controller) GetAsset(c *gin.Context) {
	kind := c.Param("kind")
	if _, ok := assets.KindFor(kind); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown asset kind"})
		return
	}

	filename, ok := ctrl.Assets.Get(kind)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"exists": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": true, "url": "/uploads/" + filename})
}

// UploadAsset menangani unggah aset baru. Semua varian lama dari jenis
// tersebut dihapus dulu agar selalu ada tepat satu file per jenis.
func (ctrl *Controller) UploadAsset(c *gin.Context) {
	kind := c.Param("kind")
	if _, ok := assets.KindFor(kind); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown asset kind"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	if fileHeader.Size > MaxAssetSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	filename, err := ctrl.Assets.Upload(kind, mimeType, data)
	if err != nil {
		if err == assets.ErrUnsupportedType {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Asset uploaded", "url": "/uploads/" + filename})
}

// DeleteAsset menangani penghapusan aset. Menghapus aset yang tidak ada
// tetap dianggap sukses supaya operasi ini idempoten.
func (ctrl *Controller) DeleteAsset(c *gin.Context) {
	kind := c.Param("kind")
	if _, ok := assets.KindFor(kind); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown asset kind"})
		return
	}

	if err := ctrl.Assets.Remove(kind); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Asset removed"})
}
