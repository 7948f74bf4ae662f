// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads the command configuration from flags, DISCRIM_*
// environment variables, an optional .env file and an optional config
// file, in decreasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"code.hybscloud.com/discrim"
	"code.hybscloud.com/discrim/internal/logging"
)

// EnvPrefix prefixes every environment variable the command reads.
const EnvPrefix = "DISCRIM"

// ErrHelp is returned by Load when help was requested.
var ErrHelp = pflag.ErrHelp

// Config is the command configuration.
type Config struct {
	Input   string         `mapstructure:"input" validate:"required"`
	Format  string         `mapstructure:"format" validate:"oneof=jsonl csv"`
	Keys    string         `mapstructure:"keys"`
	Reverse bool           `mapstructure:"reverse"`
	Sharing string         `mapstructure:"sharing" validate:"oneof=exclusive synchronized"`
	Output  string         `mapstructure:"output" validate:"oneof=json text"`
	Log     logging.Config `mapstructure:"log"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			return strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		})
	})
	return validate
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Input == "" {
		c.Input = "-"
	}
	if c.Format == "" {
		c.Format = "jsonl"
	}
	if c.Sharing == "" {
		c.Sharing = discrim.Exclusive.String()
	}
	if c.Output == "" {
		c.Output = "json"
	}
	c.Log.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Keys) == "" {
		return errors.New("keys is required")
	}
	if err := structValidator().Struct(c); err != nil {
		return describe(err)
	}
	return c.Log.Validate()
}

// describe turns the first validation failure into a flag-style message.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	e := verrs[0]
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s is required", e.Field())
	case "oneof":
		return fmt.Errorf("%s must be one of [%s] (got: %v)", e.Field(), e.Param(), e.Value())
	}
	return fmt.Errorf("%s is invalid (got: %v)", e.Field(), e.Value())
}

// SharingMode returns the split sharing mode named by Sharing.
func (c *Config) SharingMode() (discrim.Sharing, error) {
	for _, s := range []discrim.Sharing{discrim.Exclusive, discrim.Synchronized} {
		if c.Sharing == s.String() {
			return s, nil
		}
	}
	return 0, fmt.Errorf("sharing must be one of [exclusive synchronized] (got: %s)", c.Sharing)
}

// Load parses args and merges them over the environment, the .env file
// named by --env-file and the config file named by --config.
// The first positional argument, if any, is the input path.
func Load(name string, args []string) (*Config, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.StringP("keys", "k", "", "key schema, e.g. region:enum=eu|us,tier:uint8:desc")
	fs.StringP("format", "f", "jsonl", "input format: jsonl or csv")
	fs.BoolP("reverse", "r", false, "emit groups in reverse key order")
	fs.String("sharing", discrim.Exclusive.String(), "split sharing for optional fields: exclusive or synchronized")
	fs.StringP("output", "o", "json", "output: json (one array per group) or text")
	fs.String("log-level", "info", "log level")
	fs.String("log-format", "console", "log format: console or json")
	configFile := fs.StringP("config", "c", "", "config file (yaml, json or toml)")
	envFile := fs.String("env-file", "", "dotenv file to load before reading the environment")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", *envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetDefault("input", "-")
	v.SetDefault("log.no_color", false)
	v.SetDefault("log.timestamp", true)

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", *configFile, err)
		}
	}

	binds := map[string]string{
		"keys":       "keys",
		"format":     "format",
		"reverse":    "reverse",
		"sharing":    "sharing",
		"output":     "output",
		"log.level":  "log-level",
		"log.format": "log-format",
	}
	for key, flag := range binds {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	if fs.NArg() > 0 {
		v.Set("input", fs.Arg(0))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
