// ABOUTME: Entry point for the myFlix API server
// ABOUTME: Subcommands: serve, init, version

package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"

	"github.com/DavidJulianGit/MovieAPI/internal/api"
	"github.com/DavidJulianGit/MovieAPI/internal/auth"
	"github.com/DavidJulianGit/MovieAPI/internal/config"
	"github.com/DavidJulianGit/MovieAPI/internal/store"
)

// Version is set by the build pipeline.
var version = "dev"

const banner = `
                 ______ _ _
 _ __ ___  _   _|  ____| (_)_  __
| '_ ' _ \| | | | |__  | | \ \/ /
| | | | | | |_| |  __| | | |>  <
|_| |_| |_|\__, |_|    |_|_/_/\_\
           |___/
`

// getConfigPath returns the path to the server config file.
// Priority: MYFLIX_CONFIG env var > ./config.yaml > ~/.config/myflix/config.yaml
func getConfigPath() string {
	if envPath := os.Getenv("MYFLIX_CONFIG"); envPath != "" {
		return envPath
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		return "config.yaml"
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "myflix", "config.yaml")
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: myflix <command>")
		fmt.Println()
		fmt.Println("Commands:")
		fmt.Println("  serve     Start the API server")
		fmt.Println("  init      Create a starter config file")
		fmt.Println("  version   Print version information")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(ctx)
	case "init":
		err = runInit()
	case "version":
		fmt.Printf("myflix %s\n", version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context) error {
	configPath := getConfigPath()

	// Print banner
	cyan := color.New(color.FgCyan)
	cyan.Print(banner)

	gray := color.New(color.FgHiBlack)
	gray.Printf("    version: %s\n\n", version)

	// Load configuration. A missing or short jwt_secret fails here and the
	// process never starts accepting requests.
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := setupLogger(cfg.Logging)
	slog.SetDefault(logger)

	st, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	if err := st.SeedCatalog(ctx); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}

	tokens, err := auth.NewTokenService([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("configuring token service: %w", err)
	}

	green := color.New(color.FgGreen)
	green.Printf("    listening on %s\n\n", cfg.Server.HTTPAddr)

	server := api.New(cfg, logger, st, tokens)
	return server.Run(ctx)
}

// runInit writes a starter config file with a freshly generated JWT secret.
func runInit() error {
	path := getConfigPath()
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	secret, err := generateSecret()
	if err != nil {
		return fmt.Errorf("generating secret: %w", err)
	}

	content := fmt.Sprintf(`server:
  http_addr: ":8080"

database:
  path: "myflix.db"

auth:
  jwt_secret: "%s"
  token_ttl: "168h"
  bcrypt_cost: 10

logging:
  level: "info"
  format: "text"
`, secret)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	green := color.New(color.FgGreen)
	green.Printf("Wrote %s\n", path)
	return nil
}

// generateSecret returns a random base64 string suitable as a JWT secret.
func generateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// setupLogger builds the process logger from config.
func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
