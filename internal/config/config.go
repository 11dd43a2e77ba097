// Package config loads the spantree run configuration from defaults, an
// optional config file, SPANTREE_* environment variables and command flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SPANTREE_ROUNDS.
const EnvPrefix = "SPANTREE"

// Configuration keys. Flag names use the same spelling so BindPFlags lines up.
const (
	KeyInput    = "input"
	KeyRounds   = "rounds"
	KeyRoot     = "root"
	KeyMethod   = "method"
	KeyLogJSON  = "log-json"
	KeyLogLevel = "log-level"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is everything the command needs for one run.
type Config struct {
	Input    string `mapstructure:"input" validate:"required"`
	Rounds   int    `mapstructure:"rounds" validate:"min=1"`
	Root     int    `mapstructure:"root" validate:"min=0"`
	Method   string `mapstructure:"method" validate:"oneof=prim kruskal"`
	LogJSON  bool   `mapstructure:"log-json"`
	LogLevel string `mapstructure:"log-level" validate:"oneof=debug info warn error"`
}

// Defaults mirror the reference behavior: three rounds grown from vertex 0.
var Defaults = Config{
	Rounds:   3,
	Root:     0,
	Method:   "prim",
	LogLevel: "info",
}

// Load resolves a Config. path may be empty; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyInput, Defaults.Input)
	v.SetDefault(KeyRounds, Defaults.Rounds)
	v.SetDefault(KeyRoot, Defaults.Root)
	v.SetDefault(KeyMethod, Defaults.Method)
	v.SetDefault(KeyLogJSON, Defaults.LogJSON)
	v.SetDefault(KeyLogLevel, Defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := Validate(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks c and reports every violated rule in English.
func Validate(c *Config) error {
	validate := validator.New()
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	msgs := translateError(err, trans)
	if len(msgs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func translateError(err error, trans ut.Translator) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]string, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, e.Translate(trans))
	}

	return out
}
