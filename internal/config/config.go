// Package config loads experiment run settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/mlutil/internal/argtable"
	"github.com/born-ml/mlutil/internal/tensor"
)

// Environment variables that override file settings.
const (
	EnvSeed     = "MLUTIL_SEED"
	EnvDevice   = "MLUTIL_DEVICE"
	EnvLogLevel = "MLUTIL_LOG_LEVEL"
	EnvOutput   = "MLUTIL_OUTPUT"
)

// Run holds the settings of one training run.
type Run struct {
	Seed        int64    `yaml:"seed" arg:"random_seed"`
	Device      string   `yaml:"device" arg:"device"`
	LogLevel    string   `yaml:"log_level" arg:"log_level"`
	Output      string   `yaml:"output" arg:"output"`
	Dataset     string   `yaml:"dataset" arg:"dataset"`
	Model       string   `yaml:"model" arg:"model_name"`
	Activation  []string `yaml:"activation" arg:"activation"`
	HiddenUnits []int    `yaml:"hidden_units" arg:"hidden_units"`
	LR          float64  `yaml:"lr" arg:"lr"`
	Epochs      int      `yaml:"epochs" arg:"epoch"`
	BatchSize   int      `yaml:"batch_size" arg:"batch_size"`
	EarlyStop   int      `yaml:"early_stop" arg:"early_stop"`
	Topk        []int    `yaml:"topk" arg:"topk"`
	Metrics     []string `yaml:"metrics" arg:"metric"`
}

// Default returns the settings used for anything a file leaves out.
func Default() Run {
	return Run{
		Seed:        0,
		Device:      "cpu",
		LogLevel:    "info",
		Output:      "runs",
		Activation:  []string{"relu"},
		HiddenUnits: []int{64},
		LR:          1e-3,
		Epochs:      200,
		BatchSize:   256,
		EarlyStop:   10,
		Topk:        []int{5, 10, 20},
		Metrics:     []string{"ndcg", "hr"},
	}
}

// Load reads a YAML file over the defaults, then applies environment overrides.
func Load(path string) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("read config: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return Run{}, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Parse decodes YAML over the defaults, applies environment overrides and validates.
func Parse(data []byte) (Run, error) {
	r := Default()
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Run{}, fmt.Errorf("parse config: %w", err)
	}
	if err := r.applyEnv(); err != nil {
		return Run{}, err
	}
	if err := r.Validate(); err != nil {
		return Run{}, err
	}
	return r, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (r *Run) applyEnv() error {
	seed := envOr(EnvSeed, strconv.FormatInt(r.Seed, 10))
	n, err := strconv.ParseInt(seed, 10, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", EnvSeed, err)
	}
	r.Seed = n
	r.Device = envOr(EnvDevice, r.Device)
	r.LogLevel = envOr(EnvLogLevel, r.LogLevel)
	r.Output = envOr(EnvOutput, r.Output)
	return nil
}

// Validate checks that the settings are usable.
func (r Run) Validate() error {
	if _, err := tensor.ParseDevice(r.Device); err != nil {
		return fmt.Errorf("device: %w", err)
	}
	if _, err := logrus.ParseLevel(r.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if len(r.HiddenUnits) > 0 && len(r.Activation) > 1 && len(r.Activation) != len(r.HiddenUnits) {
		return fmt.Errorf("activation: %d names for %d hidden layers", len(r.Activation), len(r.HiddenUnits))
	}
	for _, k := range r.Topk {
		if k <= 0 {
			return fmt.Errorf("topk: cutoff %d must be positive", k)
		}
	}
	if r.LR < 0 || r.Epochs < 0 || r.BatchSize < 0 || r.EarlyStop < 0 {
		return fmt.Errorf("lr, epochs, batch_size and early_stop must not be negative")
	}
	return nil
}

// ConfigureLogger sets log's level from LogLevel.
func (r Run) ConfigureLogger(log *logrus.Logger) error {
	level, err := logrus.ParseLevel(r.LogLevel)
	if err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	log.SetLevel(level)
	return nil
}

// Values returns the settings as an argument table bag.
func (r Run) Values() argtable.Values {
	v, err := argtable.FromStruct(r)
	if err != nil {
		// Run is always a struct.
		panic(err)
	}
	return v
}
