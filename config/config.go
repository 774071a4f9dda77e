package config

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

const FileName = "bussin.yaml"

const SourceFileExt = ".bs"

// MaxCallDepthLimit is the largest MaxCallDepth a config may set.
const MaxCallDepthLimit = 20000

// Names bound in the global scope.
const (
	TrueName  = "nocap"
	FalseName = "cap"
	NullName  = "sus"
	PrintName = "buss"
)

// BooleanComparison selects how ordering operators treat booleans.
type BooleanComparison string

const (
	// Strict allows only == and != between booleans.
	Strict BooleanComparison = "strict"
	// Legacy maps ==, <= and >= to equality and !=, < and > to inequality.
	Legacy BooleanComparison = "legacy"
)

// BinaryFallback selects what arithmetic on unsupported operand types does.
type BinaryFallback string

const (
	FallbackNull  BinaryFallback = "null"
	FallbackError BinaryFallback = "error"
)

type Config struct {
	BooleanComparison BooleanComparison `yaml:"BooleanComparison"`
	BinaryFallback    BinaryFallback    `yaml:"BinaryFallback"`
	MaxCallDepth      int               `yaml:"MaxCallDepth"`
	Trace             bool              `yaml:"Trace"`
}

func Default() Config {
	return Config{
		BooleanComparison: Strict,
		BinaryFallback:    FallbackNull,
		MaxCallDepth:      2048,
	}
}

func (c Config) Validate() error {
	switch c.BooleanComparison {
	case Strict, Legacy:
	default:
		return fmt.Errorf("invalid BooleanComparison %q: want %q or %q", c.BooleanComparison, Strict, Legacy)
	}

	switch c.BinaryFallback {
	case FallbackNull, FallbackError:
	default:
		return fmt.Errorf("invalid BinaryFallback %q: want %q or %q", c.BinaryFallback, FallbackNull, FallbackError)
	}

	if c.MaxCallDepth <= 0 || c.MaxCallDepth > MaxCallDepthLimit {
		return fmt.Errorf("invalid MaxCallDepth %d: must be between 1 and %d", c.MaxCallDepth, MaxCallDepthLimit)
	}

	return nil
}

// Parse reads a YAML document. Fields it omits keep their defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error reading %s: %w", FileName, err)
	}
	// an unquoted `null` decodes to the empty string
	if cfg.BinaryFallback == "" {
		cfg.BinaryFallback = FallbackNull
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("error reading %s: %w", FileName, err)
	}
	return cfg, nil
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("error reading %s: %w", path, err)
	}
	return Parse(data)
}

func Write(w io.Writer, cfg Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", FileName, err)
	}
	_, err = w.Write(out)
	return err
}
