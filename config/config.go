// Package config loads cardboard's settings from defaults, an optional YAML
// file and CARDBOARD_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/SvenDH/go-card-board/board"
)

type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Board  board.Config `mapstructure:"board"`
	Window WindowConfig `mapstructure:"window"`
	Game   GameConfig   `mapstructure:"game"`
	Store  StoreConfig  `mapstructure:"store"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type GameConfig struct {
	Player   string `mapstructure:"player"`
	Opponent string `mapstructure:"opponent"`
	// DeckFile is a deck list on disk; Deck names one in the store. Neither
	// set means the starter deck.
	DeckFile string `mapstructure:"deck_file"`
	Deck     string `mapstructure:"deck"`
	HandSize int    `mapstructure:"hand_size"`
	// Seed shuffles the deck; 0 keeps deck order.
	Seed uint64 `mapstructure:"seed"`
}

type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// Option adjusts the viper instance before the config is read.
type Option func(v *viper.Viper) error

// WithFlag lets a command line flag override key when the flag was set.
func WithFlag(key string, f *pflag.Flag) Option {
	return func(v *viper.Viper) error {
		if f == nil {
			return fmt.Errorf("no flag for %s", key)
		}
		return v.BindPFlag(key, f)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	b := board.DefaultConfig()
	v.SetDefault("board.card_width", b.CardWidth)
	v.SetDefault("board.card_height", b.CardHeight)
	v.SetDefault("board.hand_spacing", b.HandSpacing)
	v.SetDefault("board.field_spacing", b.FieldSpacing)
	v.SetDefault("board.field_capacity", b.FieldCapacity)
	v.SetDefault("board.bounce_factor", b.BounceFactor)
	v.SetDefault("board.max_frame_delta", b.MaxFrameDelta)
	v.SetDefault("board.field_band_min", b.FieldBandMin)
	v.SetDefault("board.field_band_max", b.FieldBandMax)

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 960)
	v.SetDefault("window.title", "cardboard")

	v.SetDefault("game.player", "Trangar")
	v.SetDefault("game.opponent", "ubsan")
	v.SetDefault("game.deck_file", "")
	v.SetDefault("game.deck", "")
	v.SetDefault("game.hand_size", 5)
	v.SetDefault("game.seed", 0)

	v.SetDefault("store.path", "cardboard.db")
}

// Load reads the configuration. path may be empty to skip the file.
func Load(path string, opts ...Option) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("CARDBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, fmt.Errorf("config option: %w", err)
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	b := c.Board
	if b.CardWidth <= 0 || b.CardHeight <= 0 {
		errs = append(errs, errors.New("board card size must be positive"))
	}
	if b.FieldCapacity < 1 {
		errs = append(errs, errors.New("board.field_capacity must be at least 1"))
	}
	if b.BounceFactor <= 0 {
		errs = append(errs, errors.New("board.bounce_factor must be positive"))
	}
	if b.FieldBandMin < 0 || b.FieldBandMax > 1 || b.FieldBandMin >= b.FieldBandMax {
		errs = append(errs, fmt.Errorf("board field band [%v, %v) is not inside [0, 1]", b.FieldBandMin, b.FieldBandMax))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, errors.New("window size must be positive"))
	}
	if c.Game.HandSize < 0 {
		errs = append(errs, errors.New("game.hand_size must not be negative"))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is not console or json", c.Log.Format))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
