package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status pembayaran order.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

// Status pengiriman order.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderDelivered  = "delivered"
	OrderFailed     = "failed"
)

// DownloadWindow adalah lama link download berlaku setelah order selesai.
const DownloadWindow = 30 * 24 * time.Hour

// OrderItem mendefinisikan struktur untuk satu baris produk dalam order.
// Harga dan diskon disalin dari produk saat order dibuat, sehingga
// perubahan harga katalog tidak mengubah order lama.
type OrderItem struct {
	ProductID       primitive.ObjectID `json:"product_id" bson:"product_id"`
	Title           string             `json:"title" bson:"title"`
	Quantity        int                `json:"quantity" bson:"quantity"`
	Price           float64            `json:"price" bson:"price"`
	DiscountPercent int                `json:"discount_percent" bson:"discount_percent"`
	FinalPrice      float64            `json:"final_price" bson:"final_price"`
}

// Order mendefinisikan struktur untuk order pelanggan.
type Order struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrderNumber     string             `json:"order_number" bson:"order_number"`
	CustomerName    string             `json:"customer_name" bson:"customer_name"`
	CustomerEmail   string             `json:"customer_email" bson:"customer_email"`
	CustomerPhone   string             `json:"customer_phone,omitempty" bson:"customer_phone,omitempty"`
	Items           []OrderItem        `json:"items" bson:"items"`
	TotalAmount     float64            `json:"total_amount" bson:"total_amount"`
	PaymentStatus   string             `json:"payment_status" bson:"payment_status"`
	OrderStatus     string             `json:"order_status" bson:"order_status"`
	DownloadLink    string             `json:"download_link,omitempty" bson:"download_link,omitempty"`
	DownloadExpires *time.Time         `json:"download_expires,omitempty" bson:"download_expires,omitempty"`
	PaymentProof    string             `json:"payment_proof,omitempty" bson:"payment_proof,omitempty"`
	Notes           string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

// OrderItemInput mendefinisikan struktur satu baris produk saat checkout.
type OrderItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// OrderInput mendefinisikan struktur untuk permintaan checkout.
type OrderInput struct {
	CustomerName  string           `json:"customer_name" binding:"required"`
	CustomerEmail string           `json:"customer_email" binding:"required,email"`
	CustomerPhone string           `json:"customer_phone"`
	Items         []OrderItemInput `json:"items" binding:"required"`
	Notes         string           `json:"notes"`
}

// ConfirmOrderRequest mendefinisikan struktur untuk konfirmasi order oleh admin.
type ConfirmOrderRequest struct {
	PaymentStatus string `json:"payment_status"`
	OrderStatus   string `json:"order_status"`
	DownloadLink  string `json:"download_link"`
	Notes         string `json:"notes"`
}

// NewOrderNumber menghasilkan nomor order unik yang mudah dibaca,
// misalnya ORD-1719988888123-3FA2B1.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}

// NewOrderItem menyalin harga dan diskon produk ke baris order.
func NewOrderItem(p *Product, quantity int) OrderItem {
	if quantity < 1 {
		quantity = 1
	}
	price := p.Price
	if p.OriginalPrice > p.Price {
		price = p.OriginalPrice
	}
	return OrderItem{
		ProductID:       p.ID,
		Title:           p.Title,
		Quantity:        quantity,
		Price:           price,
		DiscountPercent: p.DiscountPercent(),
		FinalPrice:      p.Price,
	}
}

// TotalAmount menjumlahkan harga akhir semua baris order.
func TotalAmount(items []OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.FinalPrice * float64(it.Quantity)
	}
	return total
}

// Completed melaporkan apakah order sudah dibayar dan terkirim.
func (o *Order) Completed() bool {
	return o.PaymentStatus == PaymentPaid && o.OrderStatus == OrderDelivered
}

// StampDownloadExpiry menetapkan batas akhir download satu kali saja
// ketika order sudah paid dan delivered. Mengembalikan true hanya jika
// batas baru saja ditetapkan; konfirmasi ulang tidak menggeser batas.
func (o *Order) StampDownloadExpiry(now time.Time) bool {
	if !o.Completed() || o.DownloadExpires != nil {
		return false
	}
	expires := now.Add(DownloadWindow)
	o.DownloadExpires = &expires
	return true
}

// DownloadExpired melaporkan apakah jendela download sudah lewat.
func (o *Order) DownloadExpired(now time.Time) bool {
	return o.DownloadExpires != nil && now.After(*o.DownloadExpires)
}

// ValidPaymentStatus memeriksa status pembayaran yang dikenal.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// ValidOrderStatus memeriksa status pengiriman yang dikenal.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderDelivered, OrderFailed:
		return true
	}
	return false
}
