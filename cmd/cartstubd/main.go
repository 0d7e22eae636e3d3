// cartstubd hosts the in-memory cart and discount service for local
// development of the cart UI, seeded with a small demo catalog.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/1440isme/Liora-Mom-Baby-sub002/internal/cartstub"
)

type Config struct {
	HTTPPort        string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()

	store := cartstub.NewStore()
	seed(store)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Mount("/", cartstub.Handler(store))

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("cart stub service starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}

func seed(store *cartstub.Store) {
	store.AddProduct(cartstub.Product{ID: "p1", Name: "Sữa bột Morinaga số 1", BrandID: "b1", BrandName: "Morinaga", Price: 539000, Stock: 12, Active: true})
	store.AddProduct(cartstub.Product{ID: "p2", Name: "Tã dán Bobby size M", BrandID: "b2", BrandName: "Bobby", Price: 315000, Stock: 40, Active: true})
	store.AddProduct(cartstub.Product{ID: "p3", Name: "Bình sữa Comotomo 250ml", BrandID: "b3", BrandName: "Comotomo", Price: 455000, Stock: 0, Active: true})
	store.AddProduct(cartstub.Product{ID: "p4", Name: "Ghế rung Fisher Price", BrandID: "b4", BrandName: "Fisher Price", Price: 1150000, Stock: 3, Active: false})
	store.AddDiscount(cartstub.DiscountRule{Code: "SAVE10", Percent: 10, MaxAmount: 100000})
	store.AddDiscount(cartstub.DiscountRule{Code: "FREESHIP", Percent: 5, MinSubtotal: 500000})

	for _, p := range []string{"p1", "p2", "p3", "p4"} {
		if _, err := store.AddLine(p, 1, p != "p4"); err != nil {
			log.Fatalf("seed cart: %v", err)
		}
	}
}
