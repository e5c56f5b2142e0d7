package main

import (
	"log"
	"time"

	"sniptaste/internal/archive"
	"sniptaste/internal/auth"
	"sniptaste/internal/catalog"
	"sniptaste/internal/chat"
	"sniptaste/internal/config"
	"sniptaste/internal/db"
	"sniptaste/internal/engine"
	"sniptaste/internal/router"
	"sniptaste/internal/session"
)

func main() {

	// ───────────────────────── CONFIG ─────────────────────────
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Println("warning: JWT_SECRET not set; admin routes will reject every token")
	}

	// ───────────────────────── CATALOG ─────────────────────────
	var cat *catalog.Catalog
	if cfg.MenuFile != "" {
		loaded, err := catalog.LoadFile(cfg.MenuFile)
		if err != nil {
			log.Fatal("menu file failed to load:", err)
		}
		cat = loaded
		log.Println("menu loaded from", cfg.MenuFile)
	} else {
		cat = catalog.Default()
		log.Println("using built-in menu")
	}

	// ───────────────────────── ARCHIVE ─────────────────────────
	var repo archive.Repository
	if cfg.DatabaseURL != "" {
		pool := db.ConnectPostgres(cfg.DatabaseURL)
		defer pool.Close()
		repo = archive.NewPostgresRepository(pool)
	} else {
		repo = archive.NewInMemoryRepository()
		log.Println("DATABASE_URL not set; orders archived in memory only")
	}

	// ───────────────────────── ENGINE ─────────────────────────
	eng := engine.New(cat, cfg.OrderPhone)
	sessions := session.NewStore()

	// drop conversations abandoned for a day
	go func() {
		for range time.Tick(time.Hour) {
			if n := sessions.Sweep(24 * time.Hour); n > 0 {
				log.Printf("swept %d idle sessions", n)
			}
		}
	}()

	// ───────────────────────── HTTP ─────────────────────────
	chatHandler := chat.NewHandler(eng, sessions, repo, cfg.OrderPhone)
	authService := auth.NewService(cfg.AdminUser, cfg.AdminPassword)

	r := router.NewRouter(chatHandler, authService, cfg.AllowedOrigins)

	log.Println("listening on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
