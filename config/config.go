package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Settings struct {
	HTTPAddr string
	LogLevel string
	Storage  string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	RedisHost string
	RedisPort string

	KafkaBroker   string
	OrdersTopic   string
	RatingsTopic  string
	ConsumerGroup string

	TaxRate                string
	DefaultDeliveryMinutes int
	RoundingMode           string
	CancellableStatuses    []string
	RatingMaxAttempts      int
	RatingMarkerTTL        time.Duration
	TrackingBaseURL        string
}

// Load reads settings from the environment, after merging a .env file when
// one is present.
func Load() Settings {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	return Settings{
		HTTPAddr: EnvDefault("HTTP_ADDR", ":8083"),
		LogLevel: EnvDefault("LOG_LEVEL", "info"),
		Storage:  EnvDefault("STORAGE", "postgres"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     EnvDefault("DB_PORT", "5432"),
		DBName:     os.Getenv("DB_NAME"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),

		RedisHost: os.Getenv("REDIS_HOST"),
		RedisPort: EnvDefault("REDIS_PORT", "6379"),

		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		OrdersTopic:   EnvDefault("ORDERS_TOPIC", "orders"),
		RatingsTopic:  EnvDefault("RATINGS_TOPIC", "ratings"),
		ConsumerGroup: EnvDefault("RATINGS_CONSUMER_GROUP", "order-svc-ratings"),

		TaxRate:                EnvDefault("TAX_RATE", "0"),
		DefaultDeliveryMinutes: EnvIntDefault("DEFAULT_DELIVERY_MINUTES", 30),
		RoundingMode:           EnvDefault("ROUNDING_MODE", "half_up"),
		CancellableStatuses:    CSV(EnvDefault("CANCELLABLE_STATUSES", "pending,confirmed")),
		RatingMaxAttempts:      EnvIntDefault("RATING_MAX_ATTEMPTS", 5),
		RatingMarkerTTL:        EnvDurationDefault("RATING_MARKER_TTL", 30*24*time.Hour),
		TrackingBaseURL:        EnvDefault("TRACKING_BASE_URL", "http://localhost"),
	}
}

func MustInitPostgres(s Settings) *sql.DB {
	connStr := "host=" + s.DBHost + " port=" + s.DBPort + " user=" + s.DBUser +
		" password=" + s.DBPassword + " dbname=" + s.DBName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(s Settings) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: s.RedisHost + ":" + s.RedisPort,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(s Settings, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{s.KafkaBroker},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(s Settings, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(s.KafkaBroker),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	}
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func EnvDurationDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
