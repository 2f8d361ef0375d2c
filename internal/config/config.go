package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	S3      S3Config
	Log     LogConfig
	CORS    CORSConfig
	Email   EmailConfig
	OCR     OCRConfig
	Barcode BarcodeConfig
	Lookup  LookupConfig
	Scrape  ScrapeConfig
	Records RecordsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for archived label images.
type S3Config struct {
	Enabled       bool   `mapstructure:"enabled"`
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds complaint notification delivery settings.
type EmailConfig struct {
	Provider     string `mapstructure:"provider"`
	Region       string `mapstructure:"region"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	InboxAddress string `mapstructure:"inbox_address"`
}

// OCRConfig holds tesseract settings.
type OCRConfig struct {
	Binary   string `mapstructure:"binary"`
	Language string `mapstructure:"language"`
}

// BarcodeConfig holds zbarimg settings.
type BarcodeConfig struct {
	Binary string `mapstructure:"binary"`
}

// LookupConfig holds barcode product lookup settings.
type LookupConfig struct {
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	ProductsCSV string `mapstructure:"products_csv"`
}

// ScrapeConfig holds storefront scraping settings.
type ScrapeConfig struct {
	TimeoutSecs int `mapstructure:"timeout_secs"`
}

// RecordsConfig holds the flat-file records log settings.
type RecordsConfig struct {
	CSVPath string `mapstructure:"csv_path"`
}

// Load reads configuration from environment variables with the LABELCHECK_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LABELCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "labelcheck")
	v.SetDefault("db.password", "labelcheck_secret")
	v.SetDefault("db.name", "labelcheck_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "labelcheck")

	// S3 defaults
	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "labelcheck-images")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 10)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@labelcheck.local")
	v.SetDefault("email.from_name", "LabelCheck")
	v.SetDefault("email.inbox_address", "")

	// OCR defaults
	v.SetDefault("ocr.binary", "tesseract")
	v.SetDefault("ocr.language", "eng")

	// Barcode defaults
	v.SetDefault("barcode.binary", "zbarimg")

	// Lookup defaults
	v.SetDefault("lookup.timeout_secs", 5)
	v.SetDefault("lookup.products_csv", "data/products.csv")

	// Scrape defaults
	v.SetDefault("scrape.timeout_secs", 15)

	// Records defaults
	v.SetDefault("records.csv_path", "data/compliance_records.csv")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "LABELCHECK_SERVER_PORT",
		"server.read_timeout":  "LABELCHECK_SERVER_READ_TIMEOUT",
		"server.write_timeout": "LABELCHECK_SERVER_WRITE_TIMEOUT",
		"server.environment":   "LABELCHECK_SERVER_ENVIRONMENT",
		"db.host":              "LABELCHECK_DB_HOST",
		"db.port":              "LABELCHECK_DB_PORT",
		"db.user":              "LABELCHECK_DB_USER",
		"db.password":          "LABELCHECK_DB_PASSWORD",
		"db.name":              "LABELCHECK_DB_NAME",
		"db.sslmode":           "LABELCHECK_DB_SSLMODE",
		"db.max_open":          "LABELCHECK_DB_MAX_OPEN",
		"db.max_idle":          "LABELCHECK_DB_MAX_IDLE",
		"jwt.secret":           "LABELCHECK_JWT_SECRET",
		"jwt.access_expiry":    "LABELCHECK_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "LABELCHECK_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "LABELCHECK_JWT_ISSUER",
		"s3.enabled":           "LABELCHECK_S3_ENABLED",
		"s3.region":            "LABELCHECK_S3_REGION",
		"s3.bucket":            "LABELCHECK_S3_BUCKET",
		"s3.endpoint":          "LABELCHECK_S3_ENDPOINT",
		"s3.access_key":        "LABELCHECK_S3_ACCESS_KEY",
		"s3.secret_key":        "LABELCHECK_S3_SECRET_KEY",
		"s3.max_file_size_mb":  "LABELCHECK_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":    "LABELCHECK_S3_PRESIGN_EXPIRY",
		"log.level":            "LABELCHECK_LOG_LEVEL",
		"log.format":           "LABELCHECK_LOG_FORMAT",
		"cors.allowed_origins": "LABELCHECK_CORS_ALLOWED_ORIGINS",
		"email.provider":       "LABELCHECK_EMAIL_PROVIDER",
		"email.region":         "LABELCHECK_EMAIL_REGION",
		"email.from_address":   "LABELCHECK_EMAIL_FROM_ADDRESS",
		"email.from_name":      "LABELCHECK_EMAIL_FROM_NAME",
		"email.inbox_address":  "LABELCHECK_EMAIL_INBOX_ADDRESS",
		"ocr.binary":           "LABELCHECK_OCR_BINARY",
		"ocr.language":         "LABELCHECK_OCR_LANGUAGE",
		"barcode.binary":       "LABELCHECK_BARCODE_BINARY",
		"lookup.timeout_secs":  "LABELCHECK_LOOKUP_TIMEOUT_SECS",
		"lookup.products_csv":  "LABELCHECK_LOOKUP_PRODUCTS_CSV",
		"scrape.timeout_secs":  "LABELCHECK_SCRAPE_TIMEOUT_SECS",
		"records.csv_path":     "LABELCHECK_RECORDS_CSV_PATH",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if LABELCHECK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LABELCHECK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Enabled:       v.GetBool("s3.enabled"),
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Email = EmailConfig{
		Provider:     v.GetString("email.provider"),
		Region:       v.GetString("email.region"),
		FromAddress:  v.GetString("email.from_address"),
		FromName:     v.GetString("email.from_name"),
		InboxAddress: v.GetString("email.inbox_address"),
	}
	cfg.OCR = OCRConfig{
		Binary:   v.GetString("ocr.binary"),
		Language: v.GetString("ocr.language"),
	}
	cfg.Barcode = BarcodeConfig{
		Binary: v.GetString("barcode.binary"),
	}
	cfg.Lookup = LookupConfig{
		TimeoutSecs: v.GetInt("lookup.timeout_secs"),
		ProductsCSV: v.GetString("lookup.products_csv"),
	}
	cfg.Scrape = ScrapeConfig{
		TimeoutSecs: v.GetInt("scrape.timeout_secs"),
	}
	cfg.Records = RecordsConfig{
		CSVPath: v.GetString("records.csv_path"),
	}

	return cfg, nil
}
