package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every environment-driven setting of the service.
type Config struct {
	Port                   string
	SecretKey              string
	FirestoreProjectID     string
	CredentialsFile        string
	CloudinaryCloudName    string
	CloudinaryUploadPreset string
}

// Load reads the .env file (if present) and resolves the configuration.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Port:                   os.Getenv("PORT"),
		SecretKey:              os.Getenv("SECRET_KEY"),
		FirestoreProjectID:     os.Getenv("FIRESTORE_PROJECT_ID"),
		CredentialsFile:        os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		CloudinaryCloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryUploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
	}

	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if cfg.SecretKey == "" {
		log.Fatal("SECRET_KEY is not set in the environment variables")
	}
	if cfg.FirestoreProjectID == "" {
		log.Fatal("FIRESTORE_PROJECT_ID is not set in the environment variables")
	}

	return cfg
}
