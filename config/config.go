package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Directory sources
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	App       AppConfig
	Log       LogConfig
	Directory DirectoryConfig
	DB        DBConfig
	Redis     RedisConfig
	NATS      NATSConfig
	Auth      AuthConfig
	Queue     QueueConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type LogConfig struct {
	Level  string
	Format string
}

type DirectoryConfig struct {
	Source   string
	SeedFile string
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis server is configured
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type NATSConfig struct {
	URL string
}

type AuthConfig struct {
	JWTSecret    string
	AccessExpiry time.Duration
}

// Enabled reports whether booking requires a patient token
func (c AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

type QueueConfig struct {
	TTL time.Duration
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads the given env file, when present, then the
// environment. Environment variables win over the file.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("JWT_ACCESS_EXPIRY", "15m")
	v.SetDefault("QUEUE_TTL", "24h")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	accessExpiry, err := time.ParseDuration(v.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	queueTTL, err := time.ParseDuration(v.GetString("QUEUE_TTL"))
	if err != nil || queueTTL <= 0 {
		queueTTL = 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Directory: DirectoryConfig{
			Source:   v.GetString("DIRECTORY_SOURCE"),
			SeedFile: v.GetString("DIRECTORY_SEED_FILE"),
		},
		DB: DBConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		NATS: NATSConfig{
			URL: v.GetString("NATS_URL"),
		},
		Auth: AuthConfig{
			JWTSecret:    v.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Queue: QueueConfig{
			TTL: queueTTL,
		},
	}

	// A seed file without an explicit source means the file
	if config.Directory.Source == "" {
		config.Directory.Source = SourceEmbedded
		if config.Directory.SeedFile != "" {
			config.Directory.Source = SourceFile
		}
	}

	return config, nil
}
