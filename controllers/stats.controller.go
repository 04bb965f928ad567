package controllers

import (
	"context"
	"net/http"
	"time"

	"arunika-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// HealthCheck memeriksa status koneksi database.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := ctrl.DB.Client().Ping(ctx, nil)
	dbStatus := "connected"
	if err != nil {
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"timestamp": time.Now().Unix(),
	})
}

// GetStats mengambil data statistik dari aplikasi.
func (ctrl *Controller) GetStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	productsCollection := ctrl.DB.Collection("products")
	ordersCollection := ctrl.DB.Collection("orders")
	usersCollection := ctrl.DB.Collection("users")

	totalProducts, _ := productsCollection.CountDocuments(ctx, bson.M{})
	totalOrders, _ := ordersCollection.CountDocuments(ctx, bson.M{})
	totalUsers, _ := usersCollection.CountDocuments(ctx, bson.M{})

	pipeline := []bson.M{
		{"$match": bson.M{"payment_status": models.PaymentPaid}},
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total_amount"},
		}},
	}
	cursor, err := ordersCollection.Aggregate(ctx, pipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var result []bson.M
	var totalRevenue float64
	if err := cursor.All(ctx, &result); err == nil && len(result) > 0 {
		if val, ok := result[0]["total"].(float64); ok {
			totalRevenue = val
		}
	}

	stats := models.Stats{
		TotalProducts: totalProducts,
		TotalOrders:   totalOrders,
		TotalUsers:    totalUsers,
		TotalRevenue:  totalRevenue,
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
