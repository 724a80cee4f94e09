package main

import (
	"os"

	"github.com/Redundancy/go-rollsum/config"
	"github.com/Redundancy/go-rollsum/util/sources"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	configKey = "config"
	loggerKey = "logger"
)

// setup loads the configuration, applies any global flags over it and builds the logger
func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	if c.IsSet("family") {
		cfg.Family = c.String("family")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("format") {
		cfg.Format = sources.Format(c.String("format"))
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[configKey] = cfg
	c.App.Metadata[loggerKey] = logger

	logger.Debugw("configured",
		"family", cfg.Family,
		"width", cfg.Width,
		"format", cfg.Format,
	)

	return nil
}

func teardown(c *cli.Context) error {
	if l, ok := c.App.Metadata[loggerKey].(*zap.SugaredLogger); ok {
		// stderr cannot always be synced
		_ = l.Sync()
	}
	return nil
}

func newLogger(level string) (*zap.SugaredLogger, error) {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "parsing log level")
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		l,
	)

	return zap.New(core).Sugar(), nil
}

func configFrom(c *cli.Context) config.Config {
	if cfg, ok := c.App.Metadata[configKey].(config.Config); ok {
		return cfg
	}
	return config.Default()
}

func loggerFrom(c *cli.Context) *zap.SugaredLogger {
	if l, ok := c.App.Metadata[loggerKey].(*zap.SugaredLogger); ok {
		return l
	}
	return zap.NewNop().Sugar()
}

// openSource opens the single file argument of a command. "-" reads stdin.
func openSource(c *cli.Context, usage string) (*sources.Source, error) {
	if c.Args().Len() != 1 {
		return nil, errors.Errorf("usage is \"%v\" (invalid number of arguments)", usage)
	}

	cfg := configFrom(c)
	path := c.Args().First()

	if path == "-" {
		format := cfg.Format
		if format == sources.FormatAuto {
			format = sources.FormatRaw
		}
		return sources.Wrap(os.Stdin, format)
	}

	s, err := sources.Open(path, cfg.Format)
	if err != nil {
		return nil, formatFileError(path, err)
	}

	loggerFrom(c).Debugw("opened source", "path", path, "format", cfg.Format)
	return s, nil
}

func formatFileError(filename string, err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return errors.Wrapf(err, "could not find %v", filename)
	case errors.Is(err, os.ErrPermission):
		return errors.Wrapf(err, "could not open %v (permission denied)", filename)
	default:
		return err
	}
}
