package config

import "strings"

// Defaults used when a field is omitted.
const (
	DefaultBlockLanguage = "quizz"
	DefaultDailyRoot     = "."
	DefaultDailyFlag     = "daily-quiz"
	DefaultDailyTitle    = "Daily Quiz"
	DefaultDailyDesc     = "A quiz generated from all files with daily-quiz frontmatter"
	DefaultConcurrency   = 8
	DefaultUIMode        = "auto"
	DefaultLogLevel      = "warn"
)

// Default returns a normalized config with every default applied.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// Normalize trims values and fills omitted fields with defaults.
func Normalize(cfg *Config) {
	cfg.Quiz.BlockLanguage = orDefault(cfg.Quiz.BlockLanguage, DefaultBlockLanguage)
	cfg.Daily.Root = orDefault(cfg.Daily.Root, DefaultDailyRoot)
	cfg.Daily.Flag = orDefault(cfg.Daily.Flag, DefaultDailyFlag)
	cfg.Daily.Title = orDefault(cfg.Daily.Title, DefaultDailyTitle)
	cfg.Daily.Description = orDefault(cfg.Daily.Description, DefaultDailyDesc)
	if cfg.Daily.Concurrency == 0 {
		cfg.Daily.Concurrency = DefaultConcurrency
	}
	cfg.UI.Mode = strings.ToLower(orDefault(cfg.UI.Mode, DefaultUIMode))
	cfg.Log.Level = strings.ToLower(orDefault(cfg.Log.Level, DefaultLogLevel))
}

func orDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
