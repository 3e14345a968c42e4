package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	Storage  StorageConfig  `yaml:"storage"  validate:"required"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Postgres PostgresConfig `yaml:"postgres"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	CORS     CORSConfig     `yaml:"cors"`
	Telegram TelegramConfig `yaml:"telegram"`
}

type ServerConfig struct {
	Port                 int           `yaml:"port"                   env:"PORT"                   env-default:"8000"  validate:"required,min=1,max=65535"`
	ReadTimeout          time.Duration `yaml:"read_timeout"           env:"SERVER_READ_TIMEOUT"    env-default:"10s"   validate:"gt=0"`
	WriteTimeout         time.Duration `yaml:"write_timeout"          env:"SERVER_WRITE_TIMEOUT"   env-default:"10s"   validate:"gt=0"`
	IdleTimeout          time.Duration `yaml:"idle_timeout"           env:"SERVER_IDLE_TIMEOUT"    env-default:"60s"   validate:"gt=0"`
	ShutdownTimeout      time.Duration `yaml:"shutdown_timeout"       env:"SHUTDOWN_TIMEOUT"       env-default:"15s"   validate:"gt=0"`
	ExposeInternalErrors bool          `yaml:"expose_internal_errors" env:"EXPOSE_INTERNAL_ERRORS" env-default:"false"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"mongo" validate:"required,oneof=mongo postgres sqlite"`
}

type MongoConfig struct {
	URI            string        `yaml:"uri"             env:"DATABASE_URL"          env-default:""`
	Database       string        `yaml:"database"        env:"DATABASE_NAME"         env-default:"ulin"  validate:"required"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"   validate:"gt=0"`
}

// Configured сообщает, задана ли строка подключения.
func (m MongoConfig) Configured() bool {
	return m.URI != ""
}

type PostgresConfig struct {
	Host         string `yaml:"host"           env:"DB_HOST"           env-default:"localhost" validate:"required"`
	Port         int    `yaml:"port"           env:"DB_PORT"           env-default:"5432"      validate:"required,min=1,max=65535"`
	User         string `yaml:"user"           env:"DB_USER"           env-default:"postgres"  validate:"required"`
	Password     string `yaml:"password"       env:"DB_PASSWORD"       env-default:"postgres"  validate:"required"`
	Database     string `yaml:"database"       env:"DB_NAME"           env-default:"ulin"      validate:"required"`
	SSLMode      string `yaml:"sslmode"        env:"DB_SSLMODE"        env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"        validate:"min=1"`
	MaxIdleConns int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"         validate:"min=1"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type SQLiteConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"data/ulin.db" validate:"required"`
}

type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

// MustLoad читает необязательный .env, затем переменные окружения.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Sprintf("failed to load .env: %v", err))
	}

	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
