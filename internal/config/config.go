package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

type Server struct {
	Host  string `toml:"host"`
	Port  int    `toml:"port"`
	Debug bool   `toml:"debug_mode"`
}

type DB struct {
	SqliteFile string `toml:"sqlite_file"`
}

type TgBot struct {
	Enabled          bool   `toml:"enabled"`
	TelegramApiToken string `toml:"telegram_apitoken"`
	AdminPass        string `toml:"admin_pass"`
	SqliteFile       string `toml:"sqlite_file"`
}

type Scheduler struct {
	// SweepMinutes is how often in-progress leagues are checked for
	// completion. ReminderHour is the local hour for the daily pending
	// evaluation reminder.
	SweepMinutes int `toml:"sweep_minutes"`
	ReminderHour int `toml:"reminder_hour"`
}

type Config struct {
	Server    Server
	DB        DB
	TgBot     TgBot
	Scheduler Scheduler
}

func New() (Config, error) {
	var cfg Config
	_, err := toml.DecodeFile("configs/server.toml", &cfg)
	if err != nil {
		return Config{}, err
	}
	if token := os.Getenv("TELEGRAM_APITOKEN"); token != "" {
		cfg.TgBot.TelegramApiToken = token
	}
	if pass := os.Getenv("BOT_ADMIN_PASS"); pass != "" {
		cfg.TgBot.AdminPass = pass
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.DB.SqliteFile == "" {
		cfg.DB.SqliteFile = "pateadores.sqlite"
	}
	if cfg.Scheduler.SweepMinutes == 0 {
		cfg.Scheduler.SweepMinutes = 30
	}
	if cfg.Scheduler.ReminderHour == 0 {
		cfg.Scheduler.ReminderHour = 10
	}
	return cfg, nil
}
