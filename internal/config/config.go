package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App       *App
		Token     *Token
		DB        *DB
		HTTP      *HTTP
		Redis     *Redis
		Kafka     *Kafka
		Dashboard *Dashboard
	}

	App struct {
		Name string
		Env  string
	}

	Token struct {
		Secret string
	}

	DB struct {
		Host          string
		Port          string
		User          string
		Password      string
		Name          string
		SSLMode       string
		MaxOpenConns  int
		MigrationsDir string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	Redis struct {
		Address  string
		Password string
		DB       int
	}

	// Kafka with no brokers disables event publishing.
	Kafka struct {
		Brokers []string
		Topic   string
	}

	Dashboard struct {
		LowStockThreshold int
		RecentSalesWindow time.Duration
		RecentSalesLimit  int
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	app := &App{
		Name: getEnv("APP_NAME", "webike-shop"),
		Env:  getEnv("APP_ENV", "development"),
	}

	token := &Token{
		Secret: os.Getenv("TOKEN_SECRET"),
	}
	if token.Secret == "" {
		return nil, errors.New("TOKEN_SECRET is required")
	}

	db := &DB{
		Host:          getEnv("DB_HOST", "localhost"),
		Port:          getEnv("DB_PORT", "5432"),
		User:          os.Getenv("DB_USER"),
		Password:      os.Getenv("DB_PASSWORD"),
		Name:          os.Getenv("DB_NAME"),
		SSLMode:       getEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:  getEnvInt("DB_MAX_OPEN_CONNS", 0),
		MigrationsDir: getEnv("DB_MIGRATIONS_DIR", "./internal/adapter/postgres/migrations"),
	}

	http := &HTTP{
		Port:           getEnv("HTTP_PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            app.Env,
	}

	redis := &Redis{
		Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getEnvInt("REDIS_DB", 0),
	}

	kafka := &Kafka{
		Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
		Topic:   getEnv("KAFKA_STOCK_TOPIC", "inventory.stock_adjusted"),
	}

	dashboard := &Dashboard{
		LowStockThreshold: getEnvInt("DASHBOARD_LOW_STOCK_THRESHOLD", 5),
		RecentSalesWindow: time.Duration(getEnvInt("DASHBOARD_RECENT_SALES_DAYS", 30)) * 24 * time.Hour,
		RecentSalesLimit:  getEnvInt("DASHBOARD_RECENT_SALES_LIMIT", 10),
	}

	return &Container{
		App:       app,
		Token:     token,
		DB:        db,
		HTTP:      http,
		Redis:     redis,
		Kafka:     kafka,
		Dashboard: dashboard,
	}, nil
}

func (k *Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// getEnvInt falls back on anything that does not parse.
func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
