/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/SvenDH/go-card-board/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  = zap.NewNop()
)

// flagKeys maps command line flags onto config keys. A command only binds
// the flags it actually defines.
var flagKeys = map[string]string{
	"log-level": "log.level",
	"deck":      "game.deck",
	"deck-file": "game.deck_file",
	"seed":      "game.seed",
	"hand":      "game.hand_size",
	"db":        "store.path",
}

var rootCmd = &cobra.Command{
	Use:           "cardboard",
	Short:         "A two player card board with drag and drop",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var opts []config.Option
		for name, key := range flagKeys {
			if f := cmd.Flags().Lookup(name); f != nil {
				opts = append(opts, config.WithFlag(key, f))
			}
		}
		var err error
		cfg, err = config.Load(cfgFile, opts...)
		if err != nil {
			return err
		}
		logger, err = initLogger(cfg.Log)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().String("db", "cardboard.db", "deck library database")
}

func initLogger(c config.LogConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch c.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if c.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
