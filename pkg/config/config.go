// Package config loads picker settings from flags, environment and an
// optional .monthpick.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tableflip.dev/monthpick/pkg/constraint"
	"tableflip.dev/monthpick/pkg/month"
	"tableflip.dev/monthpick/pkg/picker"
)

const (
	// EnvPrefix prefixes every environment override, e.g. MONTHPICK_MODE.
	EnvPrefix = "MONTHPICK"
	// EnvConfigPath points at an extra directory holding .monthpick.yaml.
	EnvConfigPath = "MONTHPICK_CONFIG_PATH"

	configName = ".monthpick" // .yaml is implicit
)

// Keys understood in the config file, environment and flags.
const (
	KeyMode     = "mode"
	KeyLocale   = "locale"
	KeyMin      = "min"
	KeyMax      = "max"
	KeyAllow    = "allow"
	KeyDisallow = "disallow"
	KeyDefault  = "default"
)

// ErrInvalidMode is returned for a mode other than "single" or "range".
var ErrInvalidMode = errors.New("invalid picker mode")

// Config is the raw, token based picker configuration.
type Config struct {
	Mode     string   `json:"mode"`
	Locale   string   `json:"locale"`
	Min      string   `json:"min,omitempty"`
	Max      string   `json:"max,omitempty"`
	Allow    []string `json:"allow,omitempty"`
	Disallow []string `json:"disallow,omitempty"`
	Default  []string `json:"default,omitempty"`

	// Source is the config file that was read, empty when none was found.
	Source string `json:"source,omitempty"`
}

// Load reads the configuration. Flags that were set on the command line win
// over the environment, which wins over the config file.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyMode, picker.Single.String())
	v.SetDefault(KeyLocale, string(month.DefaultLocale))
	v.SetConfigName(configName)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(EnvConfigPath); override != "" {
		path, err := homedir.Expand(override)
		if err != nil {
			return nil, fmt.Errorf("expanding %s: %w", EnvConfigPath, err)
		}
		v.AddConfigPath(path)
	}
	v.AddConfigPath("./")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return &Config{
		Mode:     v.GetString(KeyMode),
		Locale:   v.GetString(KeyLocale),
		Min:      v.GetString(KeyMin),
		Max:      v.GetString(KeyMax),
		Allow:    nonEmpty(v.GetStringSlice(KeyAllow)),
		Disallow: nonEmpty(v.GetStringSlice(KeyDisallow)),
		Default:  nonEmpty(v.GetStringSlice(KeyDefault)),
		Source:   v.ConfigFileUsed(),
	}, nil
}

// ParseMode maps "single" or "range" to a picker.Mode.
func ParseMode(s string) (picker.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single":
		return picker.Single, nil
	case "range":
		return picker.Range, nil
	}
	return picker.Single, fmt.Errorf("%w %q (expected single or range)", ErrInvalidMode, s)
}

// Constraints builds the constraint set described by the config.
func (c *Config) Constraints() constraint.Set {
	return constraint.FromTokens(constraint.Tokens{
		Disallowed: c.Disallow,
		Allowed:    c.Allow,
		Min:        c.Min,
		Max:        c.Max,
	})
}

// PickerOptions validates the config and converts it into picker options.
// Malformed month tokens are not errors; they are ignored by the picker.
func (c *Config) PickerOptions() (picker.Options, error) {
	mode, err := ParseMode(c.Mode)
	if err != nil {
		return picker.Options{}, err
	}
	locale, err := month.ParseLocale(c.Locale)
	if err != nil {
		return picker.Options{}, err
	}
	return picker.Options{
		Mode:        mode,
		Locale:      locale,
		Constraints: c.Constraints(),
		Default:     c.Default,
	}, nil
}

// nonEmpty splits entries on commas and whitespace and drops blanks.
// Environment values arrive as a single string such as "01/2025,02/2025".
// The result is nil when nothing is left, so an unset allow-list never
// turns into "nothing is selectable".
func nonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		out = append(out, strings.FieldsFunc(s, isListSep)...)
	}
	return out
}

func isListSep(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}
