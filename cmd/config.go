package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"backoffice/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost               string
	KafkaStatusChangedTopic string

	RetentionCron       string
	RetentionDays       int
	RetentionBatchSize  int
	RetentionMaxBatches int
	RetentionDryRun     bool

	LogLevel slog.Level
}

// LoadConfig reads the environment, first merging envFile when it exists.
// Variables already set in the process win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var problems []error
	intVar := func(key string, fallback int) int {
		raw := os.Getenv(key)
		if raw == "" {
			return fallback
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			problems = append(problems, fmt.Errorf("%s must be a positive integer, got %q", key, raw))
			return fallback
		}
		return n
	}

	cfg := Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		KafkaHost:               os.Getenv("KAFKA_HOST"),
		KafkaStatusChangedTopic: envOr("KAFKA_STATUS_CHANGED_TOPIC", "backoffice.status-changed"),

		RetentionCron:       os.Getenv("RETENTION_CRON"),
		RetentionDays:       intVar("RETENTION_DAYS", 90),
		RetentionBatchSize:  intVar("RETENTION_BATCH_SIZE", commands.DefaultPurgeBatchSize),
		RetentionMaxBatches: intVar("RETENTION_MAX_BATCHES", commands.DefaultPurgeBatchCount),
	}

	if raw := os.Getenv("RETENTION_DRY_RUN"); raw != "" {
		dryRun, err := strconv.ParseBool(raw)
		if err != nil {
			problems = append(problems, fmt.Errorf("RETENTION_DRY_RUN must be a boolean, got %q", raw))
		}
		cfg.RetentionDryRun = dryRun
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(envOr("LOG_LEVEL", "INFO"))); err != nil {
		problems = append(problems, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	if cfg.DBUser == "" || cfg.DBName == "" {
		problems = append(problems, errors.New("DB_USER and DB_NAME are required"))
	}

	if err := errors.Join(problems...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KAFKA_HOST on commas. Empty means events are not published.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
