package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string

	AdminUsername string
	AdminPassword string
	StaffUsername string
	StaffPassword string

	UploadDir    string
	CodeCacheDir string

	// PublicAssetList opens GET /assets to unauthenticated visitors.
	// Default is deny.
	PublicAssetList bool
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:           os.Getenv("DB_DSN"),
		ServerPort:      os.Getenv("SERVER_PORT"),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		AdminUsername:   os.Getenv("ADMIN_USERNAME"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		StaffUsername:   os.Getenv("STAFF_USERNAME"),
		StaffPassword:   os.Getenv("STAFF_PASSWORD"),
		UploadDir:       os.Getenv("UPLOAD_DIR"),
		CodeCacheDir:    os.Getenv("CODE_CACHE_DIR"),
		PublicAssetList: os.Getenv("PUBLIC_ASSET_LIST") == "true",
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "web/static/uploads"
	}
	if cfg.CodeCacheDir == "" {
		cfg.CodeCacheDir = "web/static/codes"
	}

	return cfg
}
