// Package assets menyimpan aset tunggal (logo, watermark, foto profil)
// di filesystem. Setiap jenis aset hanya punya satu file aktif.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrUnknownKind dikembalikan untuk jenis aset yang tidak dikenal.
	ErrUnknownKind = errors.New("unknown asset kind")
	// ErrUnsupportedType dikembalikan untuk tipe file yang tidak diizinkan.
	ErrUnsupportedType = errors.New("unsupported file type")
)

// Kind mendefinisikan konfigurasi satu jenis aset: nama dasar file,
// pemetaan MIME ke ekstensi, dan urutan prioritas saat mencari file.
type Kind struct {
	Name       string
	Base       string
	MIME       map[string]string
	Extensions []string
}

var kinds = map[string]Kind{
	"logo": {
		Name: "logo",
		Base: "logo",
		MIME: map[string]string{
			"image/png":     "png",
			"image/jpeg":    "jpg",
			"image/svg+xml": "svg",
		},
		Extensions: []string{"png", "svg", "jpg", "jpeg"},
	},
	"watermark": {
		Name: "watermark",
		Base: "watermark",
		MIME: map[string]string{
			"image/png":  "png",
			"image/jpeg": "jpg",
		},
		Extensions: []string{"png", "jpg", "jpeg"},
	},
	"profile-image": {
		Name: "profile-image",
		Base: "profile",
		MIME: map[string]string{
			"image/png":  "png",
			"image/jpeg": "jpg",
		},
		Extensions: []string{"png", "jpg", "jpeg"},
	},
}

// KindFor mengembalikan konfigurasi jenis aset berdasarkan nama.
func KindFor(name string) (Kind, bool) {
	k, ok := kinds[name]
	return k, ok
}

// Store menyimpan aset di bawah satu direktori dasar.
type Store struct {
	dir string
}

// NewStore membuat Store dan memastikan direktori dasarnya ada.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("asset directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create asset directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Upload menghapus semua varian lama dari jenis tersebut lalu menulis
// file baru, sehingga selalu ada tepat satu file per jenis.
func (s *Store) Upload(kindName, mimeType string, data []byte) (string, error) {
	kind, ok := kinds[kindName]
	if !ok {
		return "", ErrUnknownKind
	}
	ext, ok := kind.MIME[mimeType]
	if !ok {
		return "", ErrUnsupportedType
	}

	if err := s.removeVariants(kind); err != nil {
		return "", err
	}

	filename := kind.Base + "." + ext
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write asset: %w", err)
	}
	return filename, nil
}

// Get mencari file aset sesuai urutan prioritas ekstensi.
// Mengembalikan false jika belum ada aset kustom.
func (s *Store) Get(kindName string) (string, bool) {
	kind, ok := kinds[kindName]
	if !ok {
		return "", false
	}
	for _, ext := range kind.Extensions {
		filename := kind.Base + "." + ext
		if _, err := os.Stat(filepath.Join(s.dir, filename)); err == nil {
			return filename, true
		}
	}
	return "", false
}

// Remove menghapus semua varian dari jenis tersebut.
// Menghapus aset yang tidak ada bukan error.
func (s *Store) Remove(kindName string) error {
	kind, ok := kinds[kindName]
	if !ok {
		return ErrUnknownKind
	}
	return s.removeVariants(kind)
}

func (s *Store) removeVariants(kind Kind) error {
	for _, ext := range kind.Extensions {
		path := filepath.Join(s.dir, kind.Base+"."+ext)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove asset: %w", err)
		}
	}
	return nil
}
