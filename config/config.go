package config

import (
	"fmt"
	"os"
	"strconv"

	"food-ordering-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds every externally supplied setting. It is built once in main
// and handed to the components that need it — no package-level state.
type Config struct {
	Port   string
	DBPath string

	RedisURL string

	RabbitMQHost     string
	RabbitMQPort     int
	RabbitMQUser     string
	RabbitMQPassword string

	JWTSecret    []byte
	JWTAlgorithm string
	// TokenTTLMinutes is the single source of truth for token lifetime.
	TokenTTLMinutes int
}

// Load reads configuration from the environment, falling back to the same
// defaults the service has always shipped with (including the well-known
// weak signing secret — override JWT_SECRET in any real deployment).
func Load() *Config {
	return &Config{
		Port:   getEnv("PORT", "8080"),
		DBPath: getEnv("DB_PATH", "food_ordering.db"),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		RabbitMQHost:     getEnv("RABBITMQ_HOST", "localhost"),
		RabbitMQPort:     getEnvInt("RABBITMQ_PORT", 5672),
		RabbitMQUser:     getEnv("RABBITMQ_USER", "guest"),
		RabbitMQPassword: getEnv("RABBITMQ_PASSWORD", "guest"),

		JWTSecret:       []byte(getEnv("JWT_SECRET", "your-secret-key")),
		JWTAlgorithm:    getEnv("JWT_ALGORITHM", "HS256"),
		TokenTTLMinutes: getEnvInt("TOKEN_TTL_MINUTES", 30),
	}
}

// RabbitMQURL returns an AMQP connection URL.
func (c *Config) RabbitMQURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/",
		c.RabbitMQUser, c.RabbitMQPassword, c.RabbitMQHost, c.RabbitMQPort)
}

// OpenDB connects to the relational store and migrates the schema.
func (c *Config) OpenDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(c.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Dish{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
