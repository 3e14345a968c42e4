package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func TestLoggerConfig_LogLevel(t *testing.T) {
	tests := map[string]logger.Level{
		"debug":   logger.DebugLevel,
		"info":    logger.InfoLevel,
		"warn":    logger.WarnLevel,
		"error":   logger.ErrorLevel,
		"unknown": logger.InfoLevel,
	}

	for level, want := range tests {
		t.Run(level, func(t *testing.T) {
			assert.Equal(t, want, LoggerConfig{Level: level}.LogLevel())
		})
	}
}

func TestServerConfig_Addr(t *testing.T) {
	assert.Equal(t, ":8000", ServerConfig{Port: 8000}.Addr())
}

func TestMongoConfig_Configured(t *testing.T) {
	assert.False(t, MongoConfig{}.Configured())
	assert.True(t, MongoConfig{URI: "mongodb://localhost:27017"}.Configured())
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "ulin", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=ulin sslmode=disable", p.DSN())
}
