package config

// Config is the parsed contents of .quizzer/config.yml.
type Config struct {
	Version int         `yaml:"version"`
	Quiz    QuizConfig  `yaml:"quiz"`
	Daily   DailyConfig `yaml:"daily"`
	UI      UIConfig    `yaml:"ui"`
	Log     LogConfig   `yaml:"log"`
}

// QuizConfig controls how payloads are found and shuffled.
type QuizConfig struct {
	BlockLanguage string `yaml:"block_language"`
	// Seed fixes the shuffle order. Zero picks a random seed per run.
	Seed uint64 `yaml:"seed"`
}

// DailyConfig controls daily quiz collection.
type DailyConfig struct {
	Root        string `yaml:"root"`
	Flag        string `yaml:"flag"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Concurrency int    `yaml:"concurrency"`
}

// UIConfig selects the terminal presenter.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `yaml:"level"`
}
