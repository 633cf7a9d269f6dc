package internal

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	TelegramToken  string `env:"TELEGRAM_KEY,required=true"`
	GeminiAPIKey   string `env:"API_KEY,required=true"`
	GeminiModel    string `env:"GEMINI_MODEL,default=gemini-2.5-flash"`
	SendGridAPIKey string `env:"SENDGRID_API_KEY,required=true"`
	SenderEmail    string `env:"SENDER_EMAIL,required=true" validate:"required,email"`

	HistoryCapacity int `env:"HISTORY_CAPACITY,default=5" validate:"min=1"`
	DispatchWorkers int `env:"DISPATCH_WORKERS,default=10" validate:"min=1"`
	DispatchBuffer  int `env:"DISPATCH_BUFFER,default=100" validate:"min=1"`

	PollTimeout     int           `env:"POLL_TIMEOUT,default=30" validate:"min=1"`
	HealthPort      int           `env:"HEALTH_PORT,default=10000"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=30s"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms"`

	BlocklistPath   string `env:"BLOCKLIST_PATH"`
	CharReplacement string `env:"CHARACTER_REPLACEMENT,default=*"`
}

var validate = validator.New()

// Validate catches semantic mistakes the env tags cannot express, such as a
// sender address that is not an email.
func (c Config) Validate() error {
	return validate.Struct(c)
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
