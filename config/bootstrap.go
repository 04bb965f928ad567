package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"arunika-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureAdmin membuat akun admin bootstrap bila belum ada. Langkah ini
// idempoten: bila proses lain lebih dulu membuat admin yang sama,
// pelanggaran index unik dianggap sukses, bukan error.
func EnsureAdmin(ctx context.Context, db *mongo.Database, cfg *AppConfig) error {
	users := db.Collection("users")

	count, err := users.CountDocuments(ctx, bson.M{"role": models.RoleAdmin})
	if err != nil {
		return fmt.Errorf("error counting admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	if len(cfg.AdminPassword) < models.MinPasswordLength {
		return fmt.Errorf("bootstrap admin password must be at least %d characters", models.MinPasswordLength)
	}

	hashed, err := models.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("error hashing bootstrap password: %w", err)
	}

	admin := models.User{
		Username:  cfg.AdminUsername,
		Email:     cfg.AdminEmail,
		Password:  hashed,
		Role:      models.RoleAdmin,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	if _, err := users.InsertOne(ctx, admin); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Proses lain sudah membuat admin duluan
			log.Println("Bootstrap admin already created by another process")
			return nil
		}
		return fmt.Errorf("error creating bootstrap admin: %w", err)
	}

	log.Printf("Bootstrap admin %q created", cfg.AdminUsername)
	return nil
}
