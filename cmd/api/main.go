package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"

	"github.com/tmwansa/gearparts-backend/internal/config"
	"github.com/tmwansa/gearparts-backend/internal/modules/auth"
	"github.com/tmwansa/gearparts-backend/internal/modules/customer"
	"github.com/tmwansa/gearparts-backend/internal/modules/order"
	"github.com/tmwansa/gearparts-backend/internal/modules/part"
	"github.com/tmwansa/gearparts-backend/internal/modules/stock"
	"github.com/tmwansa/gearparts-backend/internal/modules/supplier"
	"github.com/tmwansa/gearparts-backend/internal/modules/transaction"
	"github.com/tmwansa/gearparts-backend/internal/modules/user"
	"github.com/tmwansa/gearparts-backend/internal/modules/vehicle"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	jwtKey := []byte(cfg.JWTSecret)

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	authService := auth.NewService(userRepo, jwtKey)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Business modules (token required) ───────────────────
	router.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtKey))

		userService := user.NewService(userRepo)
		user.NewHandler(userService).RegisterRoutes(r)

		vehicleRepo := vehicle.NewPostgresRepository(db)
		vehicle.NewHandler(vehicle.NewService(vehicleRepo)).RegisterRoutes(r)

		supplierRepo := supplier.NewPostgresRepository(db)
		supplier.NewHandler(supplier.NewService(supplierRepo)).RegisterRoutes(r)

		customerRepo := customer.NewPostgresRepository(db)
		customer.NewHandler(customer.NewService(customerRepo)).RegisterRoutes(r)

		partRepo := part.NewPostgresRepository(db)
		part.NewHandler(part.NewService(partRepo)).RegisterRoutes(r)

		stock.NewHandler(stock.NewService(partRepo)).RegisterRoutes(r)

		orderRepo := order.NewPostgresRepository(db)
		order.NewHandler(order.NewService(orderRepo, partRepo)).RegisterRoutes(r)

		transactionRepo := transaction.NewPostgresRepository(db)
		transaction.NewHandler(transaction.NewService(transactionRepo)).RegisterRoutes(r)
	})

	// ── Start server ─────────────────────────────────────────
	fmt.Printf("Gearparts API server starting on :%s\n", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, router))
}
