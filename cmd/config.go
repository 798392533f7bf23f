package main

import "time"

type Config struct {
	TelegramToken   string        `env:"TELEGRAM_TOKEN,required=true" validate:"required"`
	StoreBackend    string        `env:"STORE_BACKEND,default=badger" validate:"oneof=badger redis"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,default=./data"`
	RedisAddr       string        `env:"REDIS_ADDR,default=localhost:6379"`
	LogLevel        string        `env:"LOG_LEVEL,default=info"`
	ReportInterval  time.Duration `env:"REPORT_INTERVAL,default=1m"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms"`
}
