// File: controllers/order.controller.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"arunika-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateOrder menangani checkout pelanggan. Harga dan diskon setiap
// produk disalin ke baris order saat ini juga, sehingga perubahan harga
// katalog di kemudian hari tidak mengubah order yang sudah ada.
func (ctrl *Controller) CreateOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(input.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order must contain at least one product"})
		return
	}

	products := ctrl.DB.Collection("products")
	items := make([]models.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		objectID, err := primitive.ObjectIDFromHex(line.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		err = products.FindOne(ctx, bson.M{"_id": objectID, "is_active": true}).Decode(&product)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		items = append(items, models.NewOrderItem(&product, line.Quantity))
	}

	now := time.Now()
	order := models.Order{
		OrderNumber:   models.NewOrderNumber(now),
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Items:         items,
		TotalAmount:   models.TotalAmount(items),
		PaymentStatus: models.PaymentPending,
		OrderStatus:   models.OrderPending,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	collection := ctrl.DB.Collection("orders")
	result, err := collection.InsertOne(ctx, order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	order.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// GetOrders menangani pengambilan daftar order untuk admin,
// terbaru lebih dulu, dengan filter payment_status opsional.
func (ctrl *Controller) GetOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := c.Query("payment_status"); status != "" {
		filter["payment_status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	collection := ctrl.DB.Collection("orders")
	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var orderList []models.Order
	if err = cursor.All(ctx, &orderList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orderList})
}

// GetOrder menangani pengambilan satu order berdasarkan ID.
func (ctrl *Controller) GetOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var order models.Order
	collection := ctrl.DB.Collection("orders")
	err = collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// ConfirmOrder menangani konfirmasi order oleh admin. Saat order
// mencapai paid dan delivered, batas download 30 hari ditetapkan satu
// kali saja; konfirmasi ulang tidak menggeser batas itu. Email link
// download hanya dikirim pada transisi pertama tersebut.
func (ctrl *Controller) ConfirmOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var req models.ConfirmOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PaymentStatus != "" && !models.ValidPaymentStatus(req.PaymentStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment status"})
		return
	}
	if req.OrderStatus != "" && !models.ValidOrderStatus(req.OrderStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
		return
	}

	collection := ctrl.DB.Collection("orders")

	var order models.Order
	err = collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if req.PaymentStatus != "" {
		order.PaymentStatus = req.PaymentStatus
	}
	if req.OrderStatus != "" {
		order.OrderStatus = req.OrderStatus
	}
	if req.DownloadLink != "" {
		order.DownloadLink = req.DownloadLink
	}
	if req.Notes != "" {
		order.Notes = req.Notes
	}

	now := time.Now()
	stamped := order.StampDownloadExpiry(now)
	order.UpdatedAt = now

	update := bson.M{
		"payment_status": order.PaymentStatus,
		"order_status":   order.OrderStatus,
		"download_link":  order.DownloadLink,
		"notes":          order.Notes,
		"updated_at":     order.UpdatedAt,
	}
	if stamped {
		update["download_expires"] = order.DownloadExpires
	}

	if _, err := collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": update}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Kirim email sekali saja, pada transisi pertama ke paid+delivered.
	// Gagal kirim tidak membatalkan perubahan status.
	if stamped && order.DownloadLink != "" {
		if err := ctrl.Mailer.SendDownloadLink(order.CustomerEmail, order.OrderNumber, order.DownloadLink); err != nil {
			log.Println("Failed to send download email:", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order updated", "order": order})
}

// DownloadOrder menangani permintaan link download pelanggan
// berdasarkan nomor order, selama jendela download masih berlaku.
func (ctrl *Controller) DownloadOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	number := c.Param("number")

	var order models.Order
	collection := ctrl.DB.Collection("orders")
	err := collection.FindOne(ctx, bson.M{"order_number": number}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !order.Completed() || order.DownloadLink == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Order is not ready for download"})
		return
	}
	if order.DownloadExpired(time.Now()) {
		c.JSON(http.StatusGone, gin.H{"error": "Download link has expired"})
		return
	}

	// Catat jumlah download pada setiap produk dalam order
	products := ctrl.DB.Collection("products")
	for _, item := range order.Items {
		if _, err := products.UpdateOne(ctx, bson.M{"_id": item.ProductID},
			bson.M{"$inc": bson.M{"downloads": 1}}); err != nil {
			log.Println("Failed to increment download counter:", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"download_link":    order.DownloadLink,
		"download_expires": order.DownloadExpires,
	})
}
