package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Credentials are required and come from the environment only; everything
// else is a tunable with a sane default, optionally overridden by the yaml
// config file.
const (
	EnvPracticumToken = "PRACTICUM_TOKEN"
	EnvTelegramToken  = "TELEGRAM_TOKEN"
	EnvTelegramChatID = "TELEGRAM_CHAT_ID"
)

type Config struct {
	Practicum PracticumConfig `yaml:"practicum"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Poll      PollConfig      `yaml:"poll"`
	Log       LogConfig       `yaml:"log"`
}

type PracticumConfig struct {
	Token    string   `yaml:"-"`
	Endpoint string   `yaml:"endpoint"`
	Timeout  Duration `yaml:"timeout"`
}

type TelegramConfig struct {
	Token  string `yaml:"-"`
	ChatID int64  `yaml:"-"`
}

type PollConfig struct {
	Interval Duration `yaml:"interval"`
	Lookback Duration `yaml:"lookback"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Load reads the optional yaml file (env-expanded), overlays the required
// credentials from the environment and applies defaults. A missing config
// file is fine; missing credentials are not.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// env + defaults only
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg.Practicum.Token = os.Getenv(EnvPracticumToken)
	cfg.Telegram.Token = os.Getenv(EnvTelegramToken)
	if raw := os.Getenv(EnvTelegramChatID); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvTelegramChatID, err)
		}
		cfg.Telegram.ChatID = chatID
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports every missing required credential at once.
func (c *Config) Validate() error {
	var missing []string
	if c.Practicum.Token == "" {
		missing = append(missing, EnvPracticumToken)
	}
	if c.Telegram.Token == "" {
		missing = append(missing, EnvTelegramToken)
	}
	if c.Telegram.ChatID == 0 {
		missing = append(missing, EnvTelegramChatID)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Practicum.Endpoint == "" {
		c.Practicum.Endpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	}
	if c.Practicum.Timeout == 0 {
		c.Practicum.Timeout = Duration(10 * time.Second)
	}
	if c.Poll.Interval == 0 {
		c.Poll.Interval = Duration(600 * time.Second)
	}
	if c.Poll.Lookback == 0 {
		c.Poll.Lookback = Duration(24 * time.Hour)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == "" {
		c.Log.File = "homework-bot.log"
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 50
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 5
	}
}
