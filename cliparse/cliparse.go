package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseDriver string

	// TokenSecret signs bearer tokens (JWT_SECRET env for compatibility
	// with existing deployments).
	TokenSecret string

	// Object storage (S3-compatible). When Endpoint is empty the server
	// falls back to an in-memory store, which only makes sense for local
	// development.
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool
	StorageTimeout   time.Duration
}

// ParseFlags validates flags with environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("event-checkin", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseDriver, "t", "", "Database driver (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.TokenSecret, "token-secret", "", "Bearer token signing secret (prefer env)")

	// Object storage
	fs.StringVar(&cfg.StorageEndpoint, "storage-endpoint", "", "S3-compatible storage endpoint")
	fs.StringVar(&cfg.StorageAccessKey, "storage-access-key", "", "Storage access key (prefer env)")
	fs.StringVar(&cfg.StorageSecretKey, "storage-secret-key", "", "Storage secret key (prefer env)")
	fs.StringVar(&cfg.StorageBucket, "storage-bucket", "", "Storage bucket name")
	fs.BoolVar(&cfg.StorageUseSSL, "storage-ssl", true, "Use TLS for storage calls")
	fs.DurationVar(&cfg.StorageTimeout, "storage-timeout", 0, "Per-call deadline for storage writes")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8787 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseDriver == "" {
		cfg.DatabaseDriver = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseDriver == "" {
			cfg.DatabaseDriver = "sqlite"
		}
	}
	if cfg.DatabaseDriver != "sqlite" && cfg.DatabaseDriver != "postgres" {
		return Config{}, errors.New("database driver must be sqlite or postgres")
	}

	// Secrets - MUST be provided
	if cfg.TokenSecret == "" {
		cfg.TokenSecret = os.Getenv("JWT_SECRET")
	}
	if cfg.TokenSecret == "" {
		return Config{}, errors.New("JWT_SECRET required")
	}

	if cfg.StorageEndpoint == "" {
		cfg.StorageEndpoint = os.Getenv("STORAGE_ENDPOINT")
	}
	if cfg.StorageAccessKey == "" {
		cfg.StorageAccessKey = os.Getenv("STORAGE_ACCESS_KEY")
	}
	if cfg.StorageSecretKey == "" {
		cfg.StorageSecretKey = os.Getenv("STORAGE_SECRET_KEY")
	}
	if cfg.StorageBucket == "" {
		cfg.StorageBucket = os.Getenv("STORAGE_BUCKET")
	}
	if cfg.StorageEndpoint != "" && (cfg.StorageAccessKey == "" || cfg.StorageSecretKey == "" || cfg.StorageBucket == "") {
		return Config{}, errors.New("storage endpoint set but access key, secret key or bucket missing")
	}

	if cfg.StorageTimeout == 0 {
		if timeoutStr := os.Getenv("STORAGE_TIMEOUT"); timeoutStr != "" {
			timeout, err := time.ParseDuration(timeoutStr)
			if err != nil {
				return Config{}, errors.New("invalid STORAGE_TIMEOUT env variable")
			}
			cfg.StorageTimeout = timeout
		} else {
			cfg.StorageTimeout = 10 * time.Second // default
		}
	}

	return cfg, nil
}
