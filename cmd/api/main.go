package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/TinoSantoso/Playtopia-pos/internal/adapter/handler"
	"github.com/TinoSantoso/Playtopia-pos/internal/adapter/store"
	"github.com/TinoSantoso/Playtopia-pos/internal/core/domain"
	"github.com/TinoSantoso/Playtopia-pos/internal/core/ports"
	"github.com/TinoSantoso/Playtopia-pos/internal/core/services"
	"github.com/TinoSantoso/Playtopia-pos/internal/platform/database"
)

func loadEnv(filepath string) {
	file, err := os.Open(filepath)

	if err != nil {
		log.Println("No .env file found, using OS environment variables.")
		return
	}

	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			os.Setenv(key, value)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Failed to read .env file: %v\n", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newStore() ports.CollectionStore {
	driver := envOr("STORE_DRIVER", "memory")

	switch driver {
	case "redis":
		redisHost := envOr("REDIS_HOST", "localhost")
		redisPort := envOr("REDIS_PORT", "6379")

		log.Printf("Connecting to Redis at %s:%s...", redisHost, redisPort)

		redisClient := redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%s", redisHost, redisPort),
			DB:   0,
		})

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Println("Redis connected successfully!")

		return store.NewRedis(redisClient)

	case "postgres":
		dbConfig := database.Config{
			Host:     envOr("DB_HOST", "localhost"),
			Port:     envOr("DB_PORT", "5432"),
			User:     envOr("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   envOr("DB_NAME", "playtopia"),
		}

		db, err := database.NewPostgresDB(dbConfig)
		if err != nil {
			log.Fatalf("Failed to connect to db after retries: %v", err)
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		pgStore, err := store.NewPostgres(db)
		if err != nil {
			log.Fatalf("Failed to prepare state table: %v", err)
		}

		return pgStore

	case "memory":
		log.Println("Using in-memory store (data is lost on shutdown).")
		return store.NewMemory()

	default:
		log.Fatalf("Unknown STORE_DRIVER %q (want memory, redis or postgres)", driver)
		return nil
	}
}

func main() {
	loadEnv(".env")

	collectionStore := newStore()

	zoneRegistry := services.NewZoneRegistry(collectionStore)
	visitorLedger := services.NewVisitorLedger(collectionStore, zoneRegistry)
	partyLedger := services.NewPartyLedger(collectionStore)
	incidentLog := services.NewIncidentLog(collectionStore)
	authService := services.NewAuthService()

	ctx := context.Background()
	if err := zoneRegistry.Load(ctx); err != nil {
		log.Fatalf("Failed to load zones: %v", err)
	}
	if err := visitorLedger.Load(ctx); err != nil {
		log.Fatalf("Failed to load visitors: %v", err)
	}
	if err := partyLedger.Load(ctx); err != nil {
		log.Fatalf("Failed to load parties: %v", err)
	}
	if err := incidentLog.Load(ctx); err != nil {
		log.Fatalf("Failed to load incidents: %v", err)
	}

	authHandler := handler.NewAuthHandler(authService)
	visitorHandler := handler.NewVisitorHandler(visitorLedger)
	zoneHandler := handler.NewZoneHandler(zoneRegistry)
	partyHandler := handler.NewPartyHandler(partyLedger)
	incidentHandler := handler.NewIncidentHandler(incidentLog)
	reportHandler := handler.NewReportHandler(visitorLedger, zoneRegistry, partyLedger, incidentLog)

	// page-level gating from the original front-end
	allStaff := []domain.Role{domain.RoleOwner, domain.RoleManager, domain.RoleSupervisor, domain.RoleCashier}
	floorStaff := []domain.Role{domain.RoleOwner, domain.RoleManager, domain.RoleSupervisor}
	frontDesk := []domain.Role{domain.RoleOwner, domain.RoleManager, domain.RoleCashier}
	management := []domain.Role{domain.RoleOwner, domain.RoleManager}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("POST /logout", authHandler.Logout)

	mux.HandleFunc("POST /visitors", authHandler.RequireRole(visitorHandler.CheckIn, allStaff...))
	mux.HandleFunc("GET /visitors", authHandler.RequireRole(visitorHandler.List, allStaff...))
	mux.HandleFunc("POST /visitors/{id}/transfer", authHandler.RequireRole(visitorHandler.Transfer, allStaff...))
	mux.HandleFunc("POST /visitors/{id}/checkout", authHandler.RequireRole(visitorHandler.CheckOut, allStaff...))
	mux.HandleFunc("DELETE /visitors/{id}", authHandler.RequireRole(visitorHandler.Remove, allStaff...))

	mux.HandleFunc("GET /zones", authHandler.RequireRole(zoneHandler.List, allStaff...))
	mux.HandleFunc("GET /zones/summary", authHandler.RequireRole(zoneHandler.Summary, floorStaff...))
	mux.HandleFunc("PATCH /zones/{id}/capacity", authHandler.RequireRole(zoneHandler.SetCapacity, floorStaff...))
	mux.HandleFunc("PATCH /zones/{id}/active", authHandler.RequireRole(zoneHandler.SetActive, floorStaff...))

	mux.HandleFunc("POST /parties", authHandler.RequireRole(partyHandler.Create, frontDesk...))
	mux.HandleFunc("GET /parties", authHandler.RequireRole(partyHandler.List, frontDesk...))
	mux.HandleFunc("POST /parties/{id}/status", authHandler.RequireRole(partyHandler.ChangeStatus, frontDesk...))
	mux.HandleFunc("PUT /parties/{id}", authHandler.RequireRole(partyHandler.Update, frontDesk...))
	mux.HandleFunc("GET /packages", authHandler.RequireRole(partyHandler.Packages, frontDesk...))

	mux.HandleFunc("POST /incidents", authHandler.RequireRole(incidentHandler.Report, floorStaff...))
	mux.HandleFunc("GET /incidents", authHandler.RequireRole(incidentHandler.Query, floorStaff...))
	mux.HandleFunc("POST /incidents/{id}/resolve", authHandler.RequireRole(incidentHandler.ToggleResolved, floorStaff...))

	mux.HandleFunc("GET /reports", authHandler.RequireRole(reportHandler.Get, management...))
	mux.HandleFunc("GET /reports/export", authHandler.RequireRole(reportHandler.Export, management...))

	server := &http.Server{
		Addr:         ":" + envOr("PORT", "8080"),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
