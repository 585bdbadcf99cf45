package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ebiten-invaders/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to the TOML config file")
	flag.Parse()

	cfg, found, err := resolveConfig(*configPath, os.Getenv("INVADERS_CONFIG"))
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	if !found {
		log.Info("config file not found, using defaults", zap.String("path", config.DefaultPath))
	}

	game := NewGame(cfg, log)
	defer game.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	log.Info("starting", zap.String("title", cfg.Window.Title), zap.Int("tps", cfg.Window.TPS))
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// resolveConfig loads the config named by the -config flag, then the
// INVADERS_CONFIG variable, then DefaultPath. Only the default path may be
// missing; a path the user named must exist.
func resolveConfig(flagPath, envPath string) (*config.Config, bool, error) {
	switch {
	case flagPath != "":
		cfg, err := config.Load(flagPath)
		return cfg, err == nil, err
	case envPath != "":
		cfg, err := config.Load(envPath)
		return cfg, err == nil, err
	default:
		return config.LoadOrDefault(config.DefaultPath)
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
