package main

import (
	"context"
	"log"
	"time"

	"arunika-backend/assets"
	"arunika-backend/config"
	"arunika-backend/controllers"
	"arunika-backend/notify"
	"arunika-backend/routes"
	"arunika-backend/token"

	"github.com/cloudinary/cloudinary-go/v2"
)

func main() {
	cfg := config.Load()

	client, err := config.ConnectDB(cfg.MongoURI, cfg.MongoMode)
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database("arunika")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := config.EnsureIndexes(ctx, db); err != nil {
		log.Fatal(err)
	}
	if err := config.EnsureAdmin(ctx, db, cfg); err != nil {
		log.Fatal(err)
	}

	tokens, err := token.NewMaker(cfg.PasetoSecretKey, cfg.TokenLifetime)
	if err != nil {
		log.Fatal(err)
	}

	assetStore, err := assets.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	var cld *cloudinary.Cloudinary
	if cfg.CloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
		if err != nil {
			log.Println("Cloudinary disabled:", err)
			cld = nil
		}
	}

	mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)

	ctrl := &controllers.Controller{
		DB:     db,
		Cld:    cld,
		Tokens: tokens,
		Assets: assetStore,
		Mailer: mailer,
		Cfg:    cfg,
	}

	r := routes.Setup(ctrl, cfg.Env)
	log.Printf("Server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
