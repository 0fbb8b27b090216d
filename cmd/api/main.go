package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nthanfp/vhiweb-assignment/internal/config"
	"github.com/nthanfp/vhiweb-assignment/internal/database"
	"github.com/nthanfp/vhiweb-assignment/internal/modules/auth"
	"github.com/nthanfp/vhiweb-assignment/internal/modules/product"
	"github.com/nthanfp/vhiweb-assignment/internal/modules/user"
	"github.com/nthanfp/vhiweb-assignment/internal/modules/vendor"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// Prices stay plain JSON numbers on the wire.
	decimal.MarshalJSONWithoutQuotes = true

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	tokenRepo := auth.NewPostgresTokenRepository(db)
	authService := auth.NewService(userRepo, tokenRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authHandler := auth.NewHandler(authService)

	// ── Vendor registrar & product catalog ──────────────────
	vendorRepo := vendor.NewPostgresRepository(db)
	vendorService := vendor.NewService(vendorRepo)
	vendorHandler := vendor.NewHandler(vendorService)

	productRepo := product.NewPostgresRepository(db)
	productService := product.NewService(productRepo, vendorRepo)
	productHandler := product.NewHandler(productService)

	// Public routes.
	userHandler.RegisterRoutes(router)
	authHandler.RegisterRoutes(router)

	// Authenticated routes.
	router.Group(func(r chi.Router) {
		r.Use(auth.Middleware(authService))
		authHandler.RegisterProtectedRoutes(r)
		vendorHandler.RegisterRoutes(r)
		productHandler.RegisterRoutes(r)
	})

	// ── Start server ────────────────────────────────────────
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	fmt.Printf("Marketplace API server starting on :%s\n", cfg.Server.Port)
	log.Fatal(server.ListenAndServe())
}
