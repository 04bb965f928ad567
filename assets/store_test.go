package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestUploadAndGet(t *testing.T) {
	store := newTestStore(t)

	filename, err := store.Upload("logo", "image/png", []byte("png-bytes"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if filename != "logo.png" {
		t.Errorf("filename = %q, want logo.png", filename)
	}

	got, ok := store.Get("logo")
	if !ok || got != "logo.png" {
		t.Errorf("Get = %q, %v; want logo.png, true", got, ok)
	}
}

func TestUploadReplacesOldVariants(t *testing.T) {
	store := newTestStore(t)

	for _, f := range []string{"logo.png", "logo.jpg", "logo.jpeg"} {
		if err := os.WriteFile(filepath.Join(store.dir, f), []byte("old"), 0o644); err != nil {
			t.Fatalf("seed %s: %v", f, err)
		}
	}

	if _, err := store.Upload("logo", "image/svg+xml", []byte("<svg/>")); err != nil {
		t.Fatalf("Upload: %v", err)
	}

	for _, f := range []string{"logo.png", "logo.jpg", "logo.jpeg"} {
		if _, err := os.Stat(filepath.Join(store.dir, f)); !os.IsNotExist(err) {
			t.Errorf("old variant %s still exists", f)
		}
	}
	got, ok := store.Get("logo")
	if !ok || got != "logo.svg" {
		t.Errorf("Get = %q, %v; want logo.svg, true", got, ok)
	}
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Upload("watermark", "image/svg+xml", []byte("<svg/>")); err != ErrUnsupportedType {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
	if _, err := store.Upload("nope", "image/png", nil); err != ErrUnknownKind {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestGetWithoutAsset(t *testing.T) {
	store := newTestStore(t)
	if _, ok := store.Get("profile-image"); ok {
		t.Error("expected no asset for empty store")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Upload("watermark", "image/png", []byte("wm")); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if err := store.Remove("watermark"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	// hapus kedua kali tetap sukses
	if err := store.Remove("watermark"); err != nil {
		t.Fatalf("Remove (second): %v", err)
	}
	if _, ok := store.Get("watermark"); ok {
		t.Error("asset should be gone after Remove")
	}
}
