package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application configuration
	AppPort  string `yaml:"APP_PORT"`
	AppURL   string `yaml:"APP_URL"`
	PageSize string `yaml:"PAGE_SIZE"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT Keys
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Catalog configuration
	CatalogBaseURL           string `yaml:"CATALOG_BASE_URL"`
	CatalogTimeoutSeconds    string `yaml:"CATALOG_TIMEOUT_SECONDS"`
	CatalogSearchLimit       string `yaml:"CATALOG_SEARCH_LIMIT"`
	CatalogCacheSize         string `yaml:"CATALOG_CACHE_SIZE"`
	CatalogCacheTTLSeconds   string `yaml:"CATALOG_CACHE_TTL_SECONDS"`
	RefreshOverwriteQuantity bool   `yaml:"REFRESH_OVERWRITE_QUANTITY"`

	// Shopping list configuration
	ListLocale string `yaml:"LIST_LOCALE"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Set environment variables for keys that should be accessible via os.Getenv
	os.Setenv("JWT_SECRET", config.JWTSecret)
	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_S3_REGION", config.AWSS3Region)
	os.Setenv("AWS_ACCESS_KEY", config.AWSAccessKey)
	os.Setenv("AWS_SECRET_KEY", config.AWSSecretKey)
}

func getBoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_URL":
		return config.AppURL
	case "PAGE_SIZE":
		return config.PageSize
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "CATALOG_BASE_URL":
		return config.CatalogBaseURL
	case "CATALOG_TIMEOUT_SECONDS":
		return config.CatalogTimeoutSeconds
	case "CATALOG_SEARCH_LIMIT":
		return config.CatalogSearchLimit
	case "CATALOG_CACHE_SIZE":
		return config.CatalogCacheSize
	case "CATALOG_CACHE_TTL_SECONDS":
		return config.CatalogCacheTTLSeconds
	case "REFRESH_OVERWRITE_QUANTITY":
		return getBoolString(config.RefreshOverwriteQuantity)
	case "LIST_LOCALE":
		return config.ListLocale
	default:
		return ""
	}
}

// GetConfigInt parses key as an int, falling back to def when unset or invalid.
func GetConfigInt(key string, def int) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func GetConfigBool(key string) bool {
	return GetConfig(key) == "true"
}

// GetConfigString returns def when key is unset.
func GetConfigString(key string, def string) string {
	if v := GetConfig(key); v != "" {
		return v
	}
	return def
}
