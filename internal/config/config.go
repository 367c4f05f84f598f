package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Поддерживаемые провайдеры.
const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// Поддерживаемые тоны переписывания.
const (
	TonePolite   = "polite"
	ToneFormal   = "formal"
	ToneFriendly = "friendly"
	ToneConcise  = "concise"
)

// Дефолтные модели по провайдерам. Используются, если POLISH_MODEL пуст.
const (
	defaultOpenAIModel = "gpt-4o-mini"
	defaultOllamaModel = "llama3.1:8b"
)

type Config struct {
	DebugMode bool `env:"DEBUG_MODE"` // Режим дебага

	Provider    string  `env:"POLISH_PROVIDER"`  // openai|ollama
	Model       string  `env:"POLISH_MODEL"`     // Пусто — дефолт по провайдеру
	Alternates  int     `env:"POLISH_ALTS"`      // Сколько вариантов генерировать
	Tone        string  `env:"POLISH_TONE"`      // polite|formal|friendly|concise
	Temperature float64 `env:"POLISH_TEMP"`      // Температура 0-2
	MaxChars    int     `env:"POLISH_MAX_CHARS"` // Максимум символов входа

	APIKey     string `env:"OPENAI_API_KEY"` // Обязателен при provider=openai
	OllamaHost string `env:"OLLAMA_HOST"`    // Базовый URL локального сервера

	AutoPaste       bool   `env:"POLISH_AUTO_PASTE"`      // Симулировать Ctrl+V после записи в буфер
	TimeoutSeconds  int    `env:"POLISH_TIMEOUT_SECONDS"` // Потолок ожидания ответа провайдера
	Retries         int    `env:"POLISH_RETRIES"`         // Дополнительные попытки после сбоя
	NotifySoundPath string `env:"POLISH_NOTIFY_SOUND"`    // Путь к звуку уведомления; пусто — без звука

	// UseStub включается только флагом -stub: провайдер-заглушка без сети.
	UseStub bool
}

// Defaults возвращает конфигурацию с предустановленными значениями по умолчанию.
// Эти значения перекрываются .env, переменными окружения и флагами CLI.
func Defaults() *Config {
	return &Config{
		Provider:       ProviderOpenAI,
		Model:          "", // подставляется по провайдеру в normalize
		Alternates:     3,
		Tone:           TonePolite,
		Temperature:    0.4,
		MaxChars:       4000,
		OllamaHost:     "http://localhost:11434",
		AutoPaste:      false,
		TimeoutSeconds: 20,
		Retries:        1,
	}
}

// FromEnv загружает конфигурацию из .env и переменных окружения без флагов.
func FromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewConfig загружает конфигурацию приложения: дефолты, затем .env/окружение, затем флаги.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	flag.BoolVar(&cfg.DebugMode, "debug-mode", cfg.DebugMode, "включить режим дебага")
	flag.StringVar(&cfg.Provider, "provider", cfg.Provider, "провайдер переписывания: openai|ollama")
	flag.StringVar(&cfg.Model, "model", cfg.Model, "имя модели (пусто — дефолт по провайдеру)")
	flag.IntVar(&cfg.Alternates, "alts", cfg.Alternates, "количество генерируемых вариантов")
	flag.StringVar(&cfg.Tone, "tone", cfg.Tone, "тон переписывания: polite|formal|friendly|concise")
	flag.Float64Var(&cfg.Temperature, "temp", cfg.Temperature, "температура 0-2")
	flag.IntVar(&cfg.MaxChars, "max-chars", cfg.MaxChars, "максимум символов входа для отправки")
	flag.StringVar(&cfg.OllamaHost, "ollama-host", cfg.OllamaHost, "базовый URL сервера Ollama")
	flag.BoolVar(&cfg.AutoPaste, "auto-paste", cfg.AutoPaste, "симулировать Ctrl+V после записи в буфер")
	flag.IntVar(&cfg.TimeoutSeconds, "timeout-seconds", cfg.TimeoutSeconds, "потолок ожидания ответа провайдера в секундах")
	flag.IntVar(&cfg.Retries, "retries", cfg.Retries, "дополнительные попытки после сбоя запроса")
	flag.StringVar(&cfg.NotifySoundPath, "notify-sound", cfg.NotifySoundPath, "путь к звуковому файлу уведомления (mp3 или wav)")
	flag.BoolVar(&cfg.UseStub, "stub", cfg.UseStub, "использовать провайдер-заглушку без реальных запросов")
	flag.Parse()

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize приводит значения к каноничному виду и валидирует их.
// Вызывается до любого обращения к сети или буферу обмена.
func (c *Config) normalize() error {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	c.Tone = strings.ToLower(strings.TrimSpace(c.Tone))

	switch c.Provider {
	case ProviderOpenAI, ProviderOllama:
	default:
		return fmt.Errorf("unknown provider %q: use %q or %q", c.Provider, ProviderOpenAI, ProviderOllama)
	}

	switch c.Tone {
	case TonePolite, ToneFormal, ToneFriendly, ToneConcise:
	default:
		return fmt.Errorf("unknown tone %q: use polite, formal, friendly or concise", c.Tone)
	}

	if strings.TrimSpace(c.Model) == "" {
		if c.Provider == ProviderOpenAI {
			c.Model = defaultOpenAIModel
		} else {
			c.Model = defaultOllamaModel
		}
	}

	if c.Provider == ProviderOpenAI && !c.UseStub && strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("OPENAI_API_KEY is not set; export your API key or switch POLISH_PROVIDER to %q", ProviderOllama)
	}

	if c.Alternates < 1 {
		c.Alternates = 1
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("POLISH_TEMP must be within 0..2, got %v", c.Temperature)
	}
	if c.MaxChars < 1 {
		return fmt.Errorf("POLISH_MAX_CHARS must be positive, got %d", c.MaxChars)
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 20
	}
	if c.Retries < 0 {
		c.Retries = 0
	}
	return nil
}

// Timeout возвращает потолок ожидания ответа провайдера.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
