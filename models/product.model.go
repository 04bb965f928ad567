package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxTags adalah jumlah maksimal tag per produk.
const MaxTags = 10

// Categories adalah daftar kategori produk yang valid.
var Categories = []string{"logo", "template", "mockup", "font", "illustration"}

// Product mendefinisikan struktur untuk produk digital.
// FilePath dan WatermarkPath tidak pernah dikirim ke klien; akses file
// hanya lewat link download yang diterbitkan pada alur order.
type Product struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Description   string             `json:"description" bson:"description"`
	Price         float64            `json:"price" bson:"price"`
	OriginalPrice float64            `json:"original_price" bson:"original_price"`
	Category      string             `json:"category" bson:"category"`
	FilePath      string             `json:"-" bson:"file_path"`
	WatermarkPath string             `json:"-" bson:"watermark_path,omitempty"`
	PreviewImages []string           `json:"preview_images" bson:"preview_images"`
	Tags          []string           `json:"tags" bson:"tags"`
	Downloads     int64              `json:"downloads" bson:"downloads"`
	IsActive      bool               `json:"is_active" bson:"is_active"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
	PreviewBase64 string             `json:"preview_base64,omitempty" bson:"-"`
}

// ProductInput mendefinisikan struktur untuk pembuatan/pembaruan produk.
type ProductInput struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price"`
	Category      string   `json:"category" binding:"required"`
	FilePath      string   `json:"file_path"`
	WatermarkPath string   `json:"watermark_path"`
	PreviewImages []string `json:"preview_images"`
	Tags          []string `json:"tags"`
	IsActive      *bool    `json:"is_active"`
	PreviewBase64 string   `json:"preview_base64"`
}

// ProductView mendefinisikan struktur produk yang aman dikirim ke klien.
// Field diskon dihitung saat serialisasi, tidak pernah disimpan.
type ProductView struct {
	ID              primitive.ObjectID `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Price           float64            `json:"price"`
	OriginalPrice   float64            `json:"original_price"`
	DiscountPercent int                `json:"discount_percent"`
	DiscountAmount  float64            `json:"discount_amount"`
	Category        string             `json:"category"`
	PreviewImages   []string           `json:"preview_images"`
	Tags            []string           `json:"tags"`
	Downloads       int64              `json:"downloads"`
	IsActive        bool               `json:"is_active"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// DiscountPercent menghitung persentase diskon dari harga asli.
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice <= 0 {
		return 0
	}
	return int(math.Round((p.OriginalPrice - p.Price) / p.OriginalPrice * 100))
}

// DiscountAmount menghitung besaran diskon dalam satuan harga.
func (p *Product) DiscountAmount() float64 {
	if p.OriginalPrice <= p.Price {
		return 0
	}
	return p.OriginalPrice - p.Price
}

// View membangun ProductView dari produk, tanpa referensi file internal.
func (p *Product) View() ProductView {
	return ProductView{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		Price:           p.Price,
		OriginalPrice:   p.OriginalPrice,
		DiscountPercent: p.DiscountPercent(),
		DiscountAmount:  p.DiscountAmount(),
		Category:        p.Category,
		PreviewImages:   p.PreviewImages,
		Tags:            p.Tags,
		Downloads:       p.Downloads,
		IsActive:        p.IsActive,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// ValidCategory memeriksa apakah kategori termasuk daftar yang valid.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
