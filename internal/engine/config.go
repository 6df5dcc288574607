package engine

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultMaxTicks - внешний потолок по умолчанию. Само ядро потолка не имеет.
const DefaultMaxTicks = 1_000_000

// Config хранит параметры запуска движка
type Config struct {
	// MaxTicks - сколько тиков может сделать один запрос. 0 - без ограничения
	// (на незамкнутой раскладке симуляция тогда не завершится).
	MaxTicks int `env:"RAILSIM_MAX_TICKS" envDefault:"1000000"`

	// JournalDir - куда писать журнал столкновений. Пусто - не писать.
	JournalDir string `env:"RAILSIM_JOURNAL_DIR"`
}

// NewConfig создает конфиг по умолчанию
func NewConfig() Config {
	return Config{
		MaxTicks: DefaultMaxTicks,
	}
}

// LoadConfig читает конфиг из окружения поверх значений по умолчанию.
func LoadConfig() (Config, error) {
	cfg := NewConfig()
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxTicks < 0 {
		return cfg, fmt.Errorf("RAILSIM_MAX_TICKS must not be negative, got %d", cfg.MaxTicks)
	}
	return cfg, nil
}
