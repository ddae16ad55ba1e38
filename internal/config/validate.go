package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// UI modes accepted by ui.mode.
var uiModes = map[string]bool{"auto": true, "live": true, "plain": true}

// Validate checks a normalized config for correctness.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	validateQuiz(cfg.Quiz, collector.add)
	validateDaily(cfg.Daily, collector.add)

	if !uiModes[cfg.UI.Mode] {
		collector.add("ui.mode", fmt.Sprintf("unsupported mode %q (expected auto, live, or plain)", cfg.UI.Mode))
	}
	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		collector.add("log.level", err.Error())
	}

	return collector.result()
}

func validateQuiz(quiz QuizConfig, add issueAdder) {
	if strings.ContainsAny(quiz.BlockLanguage, " \t\r\n`~") {
		add("quiz.block_language", "must be a single info-string word")
	}
}

func validateDaily(daily DailyConfig, add issueAdder) {
	if strings.ContainsAny(daily.Flag, " \t\r\n:") {
		add("daily.flag", "must be a single frontmatter key")
	}
	if daily.Concurrency < 1 {
		add("daily.concurrency", "must be >= 1")
	}
}

// ParseLevel maps a config level name onto a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unsupported level %q (expected debug, info, warn, or error)", name)
	}
}
