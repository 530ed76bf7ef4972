package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the inputs for the message and pairing demos
type Config struct {
	InitialMessages []string       `toml:"initial_messages" mapstructure:"initial_messages" validate:"min=1"` // One message is created per entry
	Replacement     string         `toml:"replacement" mapstructure:"replacement" validate:"required"`        // Explicit content for every message after the first
	Words           []string       `toml:"words" mapstructure:"words"`
	Numbers         []int          `toml:"numbers" mapstructure:"numbers"`
	Labels          []string       `toml:"labels" mapstructure:"labels"`
	Dictionary      map[string]int `toml:"dictionary" mapstructure:"dictionary"`
	SortedMapping   bool           `toml:"sorted_mapping" mapstructure:"sorted_mapping"` // Render dictionary entries ordered by key
}

var validate = validator.New()

// NewDefaultConfig returns a new Config with default values
func NewDefaultConfig() *Config {
	return &Config{
		InitialMessages: []string{"Hello", "World"},
		Replacement:     "This is New Content",
		Words:           []string{"hello", "world", "it", "is", "swift"},
		Numbers:         []int{0, 1, 2, 3, 4},
		Labels:          []string{"a", "b", "c", "d", "e"},
		Dictionary:      map[string]int{"Hello": 0, "Swift": 1},
		SortedMapping:   false,
	}
}

// SetDefaults registers the default values on v
func SetDefaults(v *viper.Viper) {
	defaults := NewDefaultConfig()
	v.SetDefault("initial_messages", defaults.InitialMessages)
	v.SetDefault("replacement", defaults.Replacement)
	v.SetDefault("words", defaults.Words)
	v.SetDefault("numbers", defaults.Numbers)
	v.SetDefault("labels", defaults.Labels)
	v.SetDefault("dictionary", defaults.Dictionary)
	v.SetDefault("sorted_mapping", defaults.SortedMapping)
}

// LoadConfig loads configuration from the global viper instance
func LoadConfig() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom unmarshals and validates the configuration held by v
func LoadFrom(v *viper.Viper) (*Config, error) {
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
