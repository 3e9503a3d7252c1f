// Package config loads and validates the pathtrace application settings.
//
// Precedence is defaults < YAML file < command-line flags; the flag layer
// lives in cmd/pathtrace and writes into the Config returned by Load.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathtrace/builder"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultStepDelay is the pause after each visited vertex.
const DefaultStepDelay = 600 * time.Millisecond

// WeightRange bounds generated edge weights, inclusive.
type WeightRange struct {
	Min int64 `yaml:"min" validate:"gte=1"`
	Max int64 `yaml:"max" validate:"gtefield=Min"`
}

// Config holds every knob of the generator, the tracer and the renderer.
type Config struct {
	Nodes                []string      `yaml:"nodes" validate:"min=2,unique,dive,required"`
	ExtraEdgeProbability float64       `yaml:"extra_edge_probability" validate:"gte=0,lte=1"`
	WeightRange          WeightRange   `yaml:"weight_range"`
	Seed                 int64         `yaml:"seed"`
	StepDelay            time.Duration `yaml:"step_delay" validate:"gte=0"`
	Start                string        `yaml:"start"`
	Goal                 string        `yaml:"goal"`
	Color                string        `yaml:"color" validate:"oneof=auto always never"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(validateEndpoints, Config{})
}

// validateEndpoints requires Start and Goal, when set, to name configured nodes.
func validateEndpoints(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)
	if c.Start != "" && !c.HasNode(c.Start) {
		sl.ReportError(c.Start, "Start", "Start", "node", "")
	}
	if c.Goal != "" && !c.HasNode(c.Goal) {
		sl.ReportError(c.Goal, "Goal", "Goal", "node", "")
	}
}

// Default returns the stock settings: nodes A..G,
// extra-edge probability 0.25, weights 1..10 and a 600ms step delay.
func Default() Config {
	return Config{
		Nodes:                builder.DefaultNodes(),
		ExtraEdgeProbability: builder.DefaultExtraEdgeProbability,
		WeightRange: WeightRange{
			Min: builder.DefaultWeightRange.Min,
			Max: builder.DefaultWeightRange.Max,
		},
		Seed:      builder.DefaultSeed,
		StepDelay: DefaultStepDelay,
		Color:     ColorAuto,
	}
}

// Load returns Default overlaid with the YAML file at path, validated.
// An empty path skips the file. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := cfg.decode(data); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate reports ErrInvalidConfig with one clause per failing field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	name := fe.Namespace()
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	switch fe.Tag() {
	case "node":
		return fmt.Sprintf("%s %q is not a configured node", name, fe.Value())
	case "gtefield":
		return fmt.Sprintf("%s must be >= %s", name, fe.Param())
	case "unique":
		return fmt.Sprintf("%s must not repeat", name)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", name, fe.Param())
	case "required":
		return fmt.Sprintf("%s must not be empty", name)
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s failed %s=%s", name, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s failed %s", name, fe.Tag())
	}
}

// HasNode reports whether id is one of the configured nodes.
func (c Config) HasNode(id string) bool {
	for _, n := range c.Nodes {
		if n == id {
			return true
		}
	}
	return false
}

// Weights converts the configured range for the builder.
func (c Config) Weights() builder.WeightRange {
	return builder.WeightRange{Min: c.WeightRange.Min, Max: c.WeightRange.Max}
}
