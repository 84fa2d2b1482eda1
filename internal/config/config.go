package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"ratscrew/ratscrew"
)

const envPrefix = "RATSCREW"

type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Logging LoggingConfig `mapstructure:"logging"`
	Console ConsoleConfig `mapstructure:"console"`
}

type GameConfig struct {
	MinPlayers int   `mapstructure:"min_players"`
	MaxPlayers int   `mapstructure:"max_players"`
	Decks      int   `mapstructure:"decks"`
	Seed       int64 `mapstructure:"seed"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ConsoleConfig struct {
	ClearScreen bool `mapstructure:"clear_screen"`
	ShowRules   bool `mapstructure:"show_rules"`
}

// Engine converts the game section into an engine config.
func (c GameConfig) Engine() ratscrew.Config {
	return ratscrew.Config{
		MinPlayers: c.MinPlayers,
		MaxPlayers: c.MaxPlayers,
		Decks:      c.Decks,
		Seed:       c.Seed,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.min_players", ratscrew.DefaultMinPlayers)
	v.SetDefault("game.max_players", ratscrew.DefaultMaxPlayers)
	v.SetDefault("game.decks", 1)
	v.SetDefault("game.seed", 0)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("console.clear_screen", true)
	v.SetDefault("console.show_rules", true)
}

// Load reads defaults, then the optional YAML file at path, then RATSCREW_*
// environment variables (a .env file in the working directory is applied
// first when present).
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return &ratscrew.ConfigurationError{Field: "logging.format", Reason: fmt.Sprintf("unknown format %q", c.Logging.Format)}
	}
	return nil
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, &ratscrew.ConfigurationError{Field: "logging.level", Reason: fmt.Sprintf("unknown level %q", raw)}
	}
	return level, nil
}

// NewLogger builds the process logger. Output goes to w so it stays apart
// from the game text on stdout.
func NewLogger(cfg LoggingConfig, w io.Writer) *slog.Logger {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
