// Package config loads the settings of the rollsum tool from defaults, an optional
// YAML file and ROLLSUM_ environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/Redundancy/go-rollsum/rollsum"
	"github.com/Redundancy/go-rollsum/util/sources"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "ROLLSUM"

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Family   string         `mapstructure:"family" validate:"required,family"`
	Width    int            `mapstructure:"width" validate:"min=1"`
	Format   sources.Format `mapstructure:"format" validate:"oneof=auto raw gzip zstd snappy lz4"`
	Every    int64          `mapstructure:"every" validate:"min=1"`
	Limit    int64          `mapstructure:"limit" validate:"min=0"`
	LogLevel string         `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

func Default() Config {
	return Config{
		Family:   string(rollsum.TypeRsync),
		Width:    64,
		Format:   sources.FormatAuto,
		Every:    1,
		Limit:    0,
		LogLevel: "info",
	}
}

// Load reads path (if not empty) over the defaults, then applies the environment.
// The result is validated.
func Load(path string) (Config, error) {
	v := viper.New()
	d := Default()

	v.SetDefault("family", d.Family)
	v.SetDefault("width", d.Width)
	v.SetDefault("format", string(d.Format))
	v.SetDefault("every", d.Every)
	v.SetDefault("limit", d.Limit)
	v.SetDefault("log_level", d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config file %v", path)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}

	return c, c.Validate()
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	err := v.RegisterValidation("family", func(fl validator.FieldLevel) bool {
		name := rollsum.Type(fl.Field().String())
		for _, t := range rollsum.Types() {
			if t == name {
				return true
			}
		}
		return false
	})
	if err != nil {
		panic(errors.Wrap(err, "registering family validation"))
	}

	return v
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(ErrInvalidConfig, describe(err))
	}
	return nil
}

func describe(err error) string {
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	var sb strings.Builder
	for i, fe := range fieldErrors {
		if i > 0 {
			sb.WriteString("; ")
		}

		switch fe.Tag() {
		case "required":
			fmt.Fprintf(&sb, "%s is required", fe.Field())
		case "min":
			fmt.Fprintf(&sb, "%s must be at least %s", fe.Field(), fe.Param())
		case "oneof":
			fmt.Fprintf(&sb, "%s must be one of [%s]", fe.Field(), fe.Param())
		case "family":
			fmt.Fprintf(&sb, "%s %q is not a registered family", fe.Field(), fe.Value())
		default:
			fmt.Fprintf(&sb, "%s failed %s", fe.Field(), fe.Tag())
		}
	}

	return sb.String()
}
