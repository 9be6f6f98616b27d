package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ducklytics/event-checkin/blob"
	"github.com/ducklytics/event-checkin/cliparse"
	"github.com/ducklytics/event-checkin/db"
	"github.com/ducklytics/event-checkin/middleware"
	"github.com/ducklytics/event-checkin/router"
	"github.com/ducklytics/event-checkin/store"
)

func main() {
	var err error

	// Load .env if present; environment wins over flags' defaults
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "driver", cfg.DatabaseDriver)

	// Pick the object store. Without a configured endpoint images are kept
	// in process memory, which only makes sense for local development.
	var objects blob.ObjectStore
	if cfg.StorageEndpoint != "" {
		objects, err = blob.NewMinioStore(cfg.StorageEndpoint, cfg.StorageAccessKey,
			cfg.StorageSecretKey, cfg.StorageBucket, cfg.StorageUseSSL)
		if err != nil {
			slog.Error("object store connection failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Object storage ready", "endpoint", cfg.StorageEndpoint, "bucket", cfg.StorageBucket)
	} else {
		objects = blob.NewMemStore()
		slog.Warn("No storage endpoint configured, uploaded images are held in memory")
	}

	// Create router
	mux := router.NewRouter(store.New(dbConn), objects, cfg)
	handler := middleware.CORS(middleware.WithRecovery(mux))

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
