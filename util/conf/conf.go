package conf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Conf is a list of values, one per line; lines starting with # are
// comments. Label inventories are kept in this format.
type Conf struct {
	Values []string
}

func Read(reader io.Reader) (*Conf, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(data), "\n")
	retval := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) > 0 && line[0] != '#' {
			retval = append(retval, line)
		}
	}
	return &Conf{retval}, nil
}

func ReadFile(filename string) (*Conf, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file)
}

// RunConfig holds the settings of an oracle run. Command line flags
// override values read from a file.
type RunConfig struct {
	System         string   `yaml:"system"`
	Oracle         string   `yaml:"oracle"`
	Labels         string   `yaml:"labels"`
	Policy         string   `yaml:"policy"`
	Seed           int64    `yaml:"seed"`
	Rate           float64  `yaml:"rate"`
	Workers        int      `yaml:"workers"`
	MaxTransitions int      `yaml:"max_transitions"`
	Relations      []string `yaml:"relations,omitempty"`
	LogLevel       string   `yaml:"log_level"`
}

func DefaultRunConfig() *RunConfig {
	return &RunConfig{
		System:   "standard",
		Oracle:   "static",
		Labels:   "typed",
		Policy:   "first",
		Seed:     1,
		Rate:     0.1,
		LogLevel: "info",
	}
}

// ReadRunConfig decodes a YAML run configuration over the defaults.
// Unknown keys are an error.
func ReadRunConfig(reader io.Reader) (*RunConfig, error) {
	config := DefaultRunConfig()
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("yaml decode: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func ReadRunConfigFile(filename string) (*RunConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadRunConfig(file)
}

func (c *RunConfig) Validate() error {
	switch c.Labels {
	case "typed", "untyped":
	default:
		return fmt.Errorf("labels must be typed or untyped, got %q", c.Labels)
	}
	if c.Rate < 0 || c.Rate > 1 {
		return fmt.Errorf("exploration rate %v not in [0,1]", c.Rate)
	}
	if c.Workers < 0 {
		return fmt.Errorf("negative worker count %d", c.Workers)
	}
	if c.MaxTransitions < 0 {
		return fmt.Errorf("negative transition limit %d", c.MaxTransitions)
	}
	return nil
}

func (c *RunConfig) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("%#v", *c)
	}
	return string(data)
}
