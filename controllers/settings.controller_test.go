package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"arunika-backend/assets"

	"github.com/gin-gonic/gin"
)

func newSettingsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := assets.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	ctrl := &Controller{Assets: store}

	r := gin.New()
	r.GET("/api/settings/:kind", ctrl.GetAsset)
	r.POST("/api/settings/:kind", ctrl.UploadAsset)
	r.DELETE("/api/settings/:kind", ctrl.DeleteAsset)
	return r
}

func multipartFile(t *testing.T, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="upload"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("part write: %v", err)
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestUploadAndGetLogo(t *testing.T) {
	r := newSettingsRouter(t)

	body, contentType := multipartFile(t, "image/png", []byte("png-bytes"))
	req := httptest.NewRequest("POST", "/api/settings/logo", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("upload status = %d, body %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest("GET", "/api/settings/logo", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp struct {
		Exists bool   `json:"exists"`
		URL    string `json:"url"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Exists || resp.URL != "/uploads/logo.png" {
		t.Errorf("get = %+v, want exists with /uploads/logo.png", resp)
	}
}

func TestUploadRejectsWrongType(t *testing.T) {
	r := newSettingsRouter(t)

	body, contentType := multipartFile(t, "image/gif", []byte("gif-bytes"))
	req := httptest.NewRequest("POST", "/api/settings/watermark", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestUnknownKind(t *testing.T) {
	r := newSettingsRouter(t)

	req := httptest.NewRequest("GET", "/api/settings/banner", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestDeleteMissingAssetSucceeds(t *testing.T) {
	r := newSettingsRouter(t)

	req := httptest.NewRequest("DELETE", "/api/settings/watermark", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestGetWithoutAssetFallsBack(t *testing.T) {
	r := newSettingsRouter(t)

	req := httptest.NewRequest("GET", "/api/settings/profile-image", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Exists bool `json:"exists"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Exists {
		t.Error("expected exists=false for empty store")
	}
}
