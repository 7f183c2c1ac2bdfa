package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Database Configuration
	Database DatabaseConfig `json:"database"`

	// MongoDB Configuration (blob storage)
	MongoDB MongoDBConfig `json:"mongodb"`

	// Media Configuration
	Media MediaConfig `json:"media"`

	// Events Configuration
	Events EventsConfig `json:"events"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	APIPort         string `json:"api_port"`
	MediaServerPort string `json:"media_server_port"`
	Host            string `json:"host"`
	ReadTimeout     int    `json:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout"`
	Environment     string `json:"environment"` // development, staging, production
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

// MongoDBConfig contains blob-store connection configuration
type MongoDBConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
	Bucket   string `json:"bucket"`
}

// MediaConfig contains media catalog configuration
type MediaConfig struct {
	BaseURL         string `json:"base_url"`          // public URL prefix for stored blobs
	MaxUploadBytes  int64  `json:"max_upload_bytes"`  // refuse larger uploads
	DefaultPageSize int    `json:"default_page_size"` // fetch default limit
	MaxPageSize     int    `json:"max_page_size"`     // fetch hard cap
	ThumbnailWidth  int    `json:"thumbnail_width"`   // derived image thumbnails
}

// EventsConfig contains domain event bus configuration
type EventsConfig struct {
	Workers           int `json:"workers"`
	ChannelBufferSize int `json:"channel_buffer_size"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `json:"level"`       // debug, info, warn, error
	Format     string `json:"format"`      // json, text
	OutputPath string `json:"output_path"` // stdout, stderr, or file path
}

// LoadConfig builds a Config from the environment, falling back to development
// defaults. A local .env file is loaded first if present.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			APIPort:         getEnvOrDefault("API_PORT", "7001"),
			MediaServerPort: getEnvOrDefault("MEDIA_PORT", "7002"),
			Host:            getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:     getEnvIntOrDefault("SERVER_READ_TIMEOUT", 15),
			WriteTimeout:    getEnvIntOrDefault("SERVER_WRITE_TIMEOUT", 30),
			Environment:     getEnvOrDefault("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnvOrDefault("DB_HOST", "localhost"),
			Port:         getEnvOrDefault("DB_PORT", "3306"),
			Username:     getEnvOrDefault("DB_USER", "loop"),
			Password:     getEnvOrDefault("DB_PASSWORD", "loop123"),
			DatabaseName: getEnvOrDefault("DB_NAME", "loop"),
			MaxOpenConns: getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoDBConfig{
			Host:     getEnvOrDefault("MONGO_HOST", "localhost"),
			Port:     getEnvOrDefault("MONGO_PORT", "27017"),
			Username: getEnvOrDefault("MONGO_USER", "admin"),
			Password: getEnvOrDefault("MONGO_PASSWORD", "admin123"),
			Database: getEnvOrDefault("MONGO_DB", "loop"),
			Bucket:   getEnvOrDefault("MONGO_BUCKET", "media_blobs"),
		},
		Media: MediaConfig{
			BaseURL:         getEnvOrDefault("MEDIA_BASE_URL", "http://localhost:7002/media/"),
			MaxUploadBytes:  int64(getEnvIntOrDefault("MEDIA_MAX_UPLOAD_BYTES", 50*1024*1024)),
			DefaultPageSize: getEnvIntOrDefault("MEDIA_DEFAULT_PAGE_SIZE", 30),
			MaxPageSize:     getEnvIntOrDefault("MEDIA_MAX_PAGE_SIZE", 100),
			ThumbnailWidth:  getEnvIntOrDefault("MEDIA_THUMBNAIL_WIDTH", 320),
		},
		Events: EventsConfig{
			Workers:           getEnvIntOrDefault("EVENT_WORKERS", 4),
			ChannelBufferSize: getEnvIntOrDefault("EVENT_BUFFER_SIZE", 1000),
		},
		Logging: LoggingConfig{
			Level:      getEnvOrDefault("LOG_LEVEL", "info"),
			Format:     getEnvOrDefault("LOG_FORMAT", "text"),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "stdout"),
		},
	}
}

// DSN builds the MySQL connection string.
func (cfg *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

// GetMongoURI builds the MongoDB connection string.
func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s", cfg.MongoDB.Host, cfg.MongoDB.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s",
		cfg.MongoDB.Username,
		cfg.MongoDB.Password,
		cfg.MongoDB.Host,
		cfg.MongoDB.Port,
	)
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvIntOrDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
