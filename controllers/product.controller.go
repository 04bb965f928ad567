// File: controllers/product.controller.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"arunika-backend/models"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RelatedLimit adalah jumlah maksimal produk terkait yang dikembalikan.
const RelatedLimit = 8

// GetProducts menangani pengambilan daftar produk aktif.
// Mendukung filter category, tag, dan pencarian teks q.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"is_active": true}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}
	if tag := c.Query("tag"); tag != "" {
		filter["tags"] = tag
	}
	if q := c.Query("q"); q != "" {
		filter["$text"] = bson.M{"$search": q}
	}

	collection := ctrl.DB.Collection("products")
	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var productList []models.Product
	if err = cursor.All(ctx, &productList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]models.ProductView, 0, len(productList))
	for i := range productList {
		views = append(views, productList[i].View())
	}
	c.JSON(http.StatusOK, gin.H{"products": views})
}

// GetAllProducts menangani pengambilan semua produk untuk admin,
// termasuk yang nonaktif.
func (ctrl *Controller) GetAllProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := ctrl.DB.Collection("products")
	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var productList []models.Product
	if err = cursor.All(ctx, &productList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]models.ProductView, 0, len(productList))
	for i := range productList {
		views = append(views, productList[i].View())
	}
	c.JSON(http.StatusOK, gin.H{"products": views})
}

// GetProduct menangani pengambilan satu produk berdasarkan ID,
// beserta maksimal 8 produk terkait.
func (ctrl *Controller) GetProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	collection := ctrl.DB.Collection("products")
	err = collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	related, err := ctrl.findRelated(ctx, &product)
	if err != nil {
		log.Println("Related products query error:", err)
		related = nil
	}

	c.JSON(http.StatusOK, gin.H{"product": product.View(), "related": related})
}

// findRelated mencari produk aktif lain dengan kategori sama atau tag
// beririsan, diurutkan berdasarkan jumlah download lalu tanggal dibuat.
func (ctrl *Controller) findRelated(ctx context.Context, product *models.Product) ([]models.ProductView, error) {
	criteria := []bson.M{{"category": product.Category}}
	if len(product.Tags) > 0 {
		criteria = append(criteria, bson.M{"tags": bson.M{"$in": product.Tags}})
	}
	filter := bson.M{
		"_id":       bson.M{"$ne": product.ID},
		"is_active": true,
		"$or":       criteria,
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "downloads", Value: -1}, {Key: "created_at", Value: -1}}).
		SetLimit(RelatedLimit)

	cursor, err := ctrl.DB.Collection("products").Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var relatedList []models.Product
	if err = cursor.All(ctx, &relatedList); err != nil {
		return nil, err
	}

	views := make([]models.ProductView, 0, len(relatedList))
	for i := range relatedList {
		views = append(views, relatedList[i].View())
	}
	return views, nil
}

// CreateProduct menangani pembuatan produk baru.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateProductInput(&input); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	product := models.Product{
		Title:         input.Title,
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Category:      input.Category,
		FilePath:      input.FilePath,
		WatermarkPath: input.WatermarkPath,
		PreviewImages: input.PreviewImages,
		Tags:          input.Tags,
		IsActive:      true,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	// Jika ada gambar preview (base64), upload ke Cloudinary
	if input.PreviewBase64 != "" && ctrl.Cld != nil {
		uploadResult, err := ctrl.Cld.Upload.Upload(
			context.Background(),
			input.PreviewBase64,
			uploader.UploadParams{Folder: "arunika/products"},
		)
		if err != nil {
			log.Println("Cloudinary upload error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		product.PreviewImages = append(product.PreviewImages, uploadResult.SecureURL)
	}

	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	collection := ctrl.DB.Collection("products")
	result, err := collection.InsertOne(ctx, product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	product.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{"product": product.View()})
}

// UpdateProduct menangani pembaruan data produk.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var input models.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateProductInput(&input); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	previews := input.PreviewImages

	// Jika ada gambar preview baru (base64), upload ke Cloudinary
	if input.PreviewBase64 != "" && ctrl.Cld != nil {
		uploadResult, err := ctrl.Cld.Upload.Upload(
			context.Background(),
			input.PreviewBase64,
			uploader.UploadParams{Folder: "arunika/products"},
		)
		if err != nil {
			log.Println("Cloudinary upload error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		previews = append(previews, uploadResult.SecureURL)
	}

	update := bson.M{
		"title":          input.Title,
		"description":    input.Description,
		"price":          input.Price,
		"original_price": input.OriginalPrice,
		"category":       input.Category,
		"preview_images": previews,
		"tags":           input.Tags,
		"updated_at":     time.Now(),
	}
	if input.FilePath != "" {
		update["file_path"] = input.FilePath
	}
	if input.WatermarkPath != "" {
		update["watermark_path"] = input.WatermarkPath
	}
	if input.IsActive != nil {
		update["is_active"] = *input.IsActive
	}

	collection := ctrl.DB.Collection("products")
	result, err := collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// DeleteProduct menangani penonaktifan produk. Produk tidak dihapus
// dari database agar snapshot order lama tetap bisa ditelusuri.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	collection := ctrl.DB.Collection("products")
	result, err := collection.UpdateOne(ctx, bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now()}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deactivated successfully"})
}

// CleanupProducts menangani penghapusan massal produk nonaktif.
func (ctrl *Controller) CleanupProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := ctrl.DB.Collection("products")
	result, err := collection.DeleteMany(ctx, bson.M{"is_active": false})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cleanup completed", "deleted": result.DeletedCount})
}

// validateProductInput memeriksa aturan dasar produk.
// Mengembalikan pesan error, atau string kosong bila valid.
func validateProductInput(input *models.ProductInput) string {
	if input.Price < 0 || input.OriginalPrice < 0 {
		return "Price must not be negative"
	}
	if !models.ValidCategory(input.Category) {
		return "Invalid category"
	}
	if len(input.Tags) > models.MaxTags {
		return "Too many tags"
	}
	return ""
}
