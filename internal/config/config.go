package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string
	Issuer     string
	CorsOrigin string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	SmtpHost          string
	SmtpPort          int
	SmtpUser          string
	SmtpPassword      string
	SmtpFrom          string
	SmtpSkipTLSVerify bool
)

// Upload limits enforced by the upload handlers.
const (
	MaxUploadBytes = 10 << 20 // 10MB
	MaxUploadFiles = 5
)

// AllowedUploadTypes lists the content types accepted by the upload store.
var AllowedUploadTypes = []string{"application/pdf", "image/jpeg", "image/png"}

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "crypticbroker")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("JWT_ISSUER", "crypticbroker")
	CorsOrigin = getEnv("CORS_ORIGIN", "http://localhost:3000")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minio")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minio123")
	MinioBucket = getEnv("MINIO_BUCKET", "crypticbroker-uploads")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	SmtpHost = getEnv("SMTP_HOST", "")
	SmtpPort, _ = strconv.Atoi(getEnv("SMTP_PORT", "587"))
	SmtpUser = getEnv("SMTP_USER", "")
	SmtpPassword = getEnv("SMTP_PASS", "")
	SmtpFrom = getEnv("SMTP_FROM", "")
	SmtpSkipTLSVerify = getEnv("SMTP_SKIP_TLS_VERIFY", "") == "1"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
