package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Checkout CheckoutConfig
	Cart     CartConfig
	Activity ActivityConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret string
}

// CheckoutConfig 結帳等待 ticket row lock 的上限
type CheckoutConfig struct {
	LockTimeout    time.Duration
	RequestTimeout time.Duration
}

type CartConfig struct {
	TTL time.Duration
}

// ActivityConfig 對應 activity stream 的消費設定
type ActivityConfig struct {
	ConsumerID         string
	ClaimMinIdleTime   time.Duration
	MaxRetryCount      int
	ReadGroupBlockTime time.Duration
	StreamMaxLen       int64
}

var AppConfig *Config

func LoadConfig() *Config {
	// .env 為選用，找不到時直接使用環境變數
	_ = godotenv.Load()

	AppConfig = &Config{
		Server:   GetServerConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Auth:     AuthConfig{JWTSecret: getEnv("JWT_SECRET", "change-me")},
		Checkout: CheckoutConfig{
			LockTimeout:    getEnvAsDuration("CHECKOUT_LOCK_TIMEOUT", "5s"),
			RequestTimeout: getEnvAsDuration("CHECKOUT_REQUEST_TIMEOUT", "15s"),
		},
		Cart: CartConfig{
			TTL: getEnvAsDuration("CART_TTL", "24h"),
		},
		Activity: ActivityConfig{
			ConsumerID:         getEnv("ACTIVITY_CONSUMER_ID", ""),
			ClaimMinIdleTime:   getEnvAsDuration("ACTIVITY_CLAIM_MIN_IDLE", "5s"),
			MaxRetryCount:      getEnvAsInt("ACTIVITY_MAX_RETRY", 5),
			ReadGroupBlockTime: getEnvAsDuration("ACTIVITY_READ_BLOCK", "2s"),
			StreamMaxLen:       int64(getEnvAsInt("ACTIVITY_STREAM_MAXLEN", 100000)),
		},
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
		MaxConns: 25,
		MinConns: 2,
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		Server:   ServerConfig{Port: "8080", GinMode: "test"},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Auth:     AuthConfig{JWTSecret: "test-secret"},
		Checkout: CheckoutConfig{
			LockTimeout:    2 * time.Second,
			RequestTimeout: 10 * time.Second,
		},
		Cart: CartConfig{TTL: time.Hour},
		Activity: ActivityConfig{
			ClaimMinIdleTime:   200 * time.Millisecond,
			MaxRetryCount:      3,
			ReadGroupBlockTime: 200 * time.Millisecond,
		},
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(getEnvAsInt("DB_MAX_CONNS", 25)),
		MinConns: int32(getEnvAsInt("DB_MIN_CONNS", 5)),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsDuration(key, fallback string) time.Duration {
	value, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		d, _ := time.ParseDuration(fallback)
		return d
	}
	return value
}
