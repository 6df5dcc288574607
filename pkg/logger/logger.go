package logger

import (
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
var Log = logrus.New()

// Config - параметры логирования из окружения.
type Config struct {
	// "debug" покажет каждый тик, "info" - только столкновения и итоги.
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	// "json" - для сбора логов, "text" - для терминала.
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Init инициализирует глобальный логгер из переменных окружения.
// Вызывается один раз при старте в main.go (и в TestMain).
func Init() {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		cfg = Config{Level: "info", Format: "text"}
	}
	Setup(cfg, os.Stderr)
}

// Setup настраивает глобальный логгер.
// Пишем в stderr: stdout занят результатами симуляции.
func Setup(cfg Config, out io.Writer) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(cfg.Format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(out)
}
