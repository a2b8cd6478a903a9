// Package config предоставляет структуры и функцию для парсинга и загрузки конфига.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env                     string `yaml:"env" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string"`
	MigrationsPath          string `yaml:"migrations_path" env-default:"./migrations"`
	BaseURL                 string `yaml:"base_url"`
	HTTPServer              `yaml:"http_server"`
	RedisConnection         `yaml:"redis_connection"`
	Rabbit                  `yaml:"rabbitmq"`
	SMTP                    `yaml:"smtp"`
	Session                 `yaml:"session"`
	EmailTokens             `yaml:"email_tokens"`
	Cleanup                 `yaml:"cleanup"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// RedisConnection структура для настройки подключения к redis.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// Rabbit структура для настройки подключения к RabbitMQ.
type Rabbit struct {
	AddressRabbit  string        `yaml:"addressrabbit"`
	ConnectRetries int           `yaml:"connect_retries" env-default:"5"`
	ConnectDelay   time.Duration `yaml:"connect_delay" env-default:"3s"`
}

// SMTP структура для настройки исходящей почты.
type SMTP struct {
	SMTPHost string `yaml:"smtp_host"`
	SMTPPort string `yaml:"smtp_port"`
	SMTPUser string `yaml:"smtp_user"`
	SMTPPass string `yaml:"smtp_pass"`
}

// Session структура для работы с сессионным jwt-токеном.
type Session struct {
	JWTSecretKey string        `yaml:"jwt_secret_key"`
	TokenTTL     time.Duration `yaml:"token_ttl"`
}

// EmailTokens — настройки токенов для писем. Окна задаются в днях
// и независимы: у подтверждения регистрации и сброса пароля свои окна.
type EmailTokens struct {
	SecretKey                string        `yaml:"secret_key"`
	DaysForEmailConfirmation int           `yaml:"days_for_email_confirmation" env-default:"7"`
	DaysForResetPassword     int           `yaml:"days_for_reset_password" env-default:"1"`
	ResetRequestCooldown     time.Duration `yaml:"reset_request_cooldown" env-default:"15m"`
}

// Cleanup — настройки фоновой очистки давно удалённых аккаунтов.
type Cleanup struct {
	DaysUntilDeletion int           `yaml:"days_until_deletion" env-default:"30"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval" env-default:"12h"`
}

// MustLoad функция для загрузки конфига, путь берётся из CONFIG_PATH.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
