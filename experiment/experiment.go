// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package experiment

import (
	"github.com/sirupsen/logrus"

	"github.com/born-ml/mlutil/internal/argtable"
	"github.com/born-ml/mlutil/internal/batch"
	"github.com/born-ml/mlutil/internal/config"
	"github.com/born-ml/mlutil/internal/diag"
	"github.com/born-ml/mlutil/internal/earlystop"
	"github.com/born-ml/mlutil/internal/frame"
	"github.com/born-ml/mlutil/internal/fsutil"
	"github.com/born-ml/mlutil/internal/metric"
	"github.com/born-ml/mlutil/internal/seed"
	"github.com/born-ml/mlutil/internal/tensor"
	"github.com/born-ml/mlutil/internal/timeutil"
)

// Seeding

// SeedContext holds the seeded generators of a run.
type SeedContext = seed.Context

// InitSeed seeds every generator family from s, enables deterministic
// execution and installs the context as the global one. Each call replaces
// the previous context.
func InitSeed(s int64) *SeedContext {
	c := seed.Init(s)
	seed.SetGlobal(c)
	return c
}

// GlobalSeed returns the context installed by InitSeed, or nil.
func GlobalSeed() *SeedContext {
	return seed.Global()
}

// Tables and batches

// Frame is an ordered set of named columns.
type Frame = frame.Frame

// Column is one named column of a Frame.
type Column = frame.Column

// CSVOption customizes LoadCSV and ReadCSV.
type CSVOption = frame.CSVOption

// ErrNotUniform is returned by ToDict for columns that do not form one array.
var ErrNotUniform = frame.ErrNotUniform

// NewFrame builds a frame from columns.
func NewFrame(columns ...Column) (*Frame, error) {
	return frame.New(columns...)
}

// LoadCSV reads a frame from a CSV file.
func LoadCSV(path string, opts ...CSVOption) (*Frame, error) {
	return frame.LoadCSV(path, opts...)
}

// WithSeparator sets the CSV field delimiter.
func WithSeparator(sep rune) CSVOption {
	return frame.WithSeparator(sep)
}

// ToDict converts each column of f into one array keyed by column name.
func ToDict(f *Frame) (map[string]any, error) {
	return f.ToDict()
}

// EvalListColumns parses serialized list cells of "*_s" and "neg_items" columns in place.
func EvalListColumns(f *Frame) (*Frame, error) {
	return frame.EvalListColumns(f)
}

// ParseLiteral parses a list or tuple literal without evaluating code.
func ParseLiteral(s string) (any, error) {
	return frame.ParseLiteral(s)
}

// Batch maps field names to batch values.
type Batch = batch.Batch

// BatchToDevice moves every tensor in b onto dev, updating b in place.
func BatchToDevice(b Batch, dev tensor.Placer) (Batch, error) {
	return batch.ToDevice(b, dev)
}

// Logging helpers

// Item is one labelled tensor for Check.
type Item = diag.Item

// Check logs each tensor's label, shape and values at info level.
// A nil log uses the logrus standard logger.
func Check(log logrus.FieldLogger, items ...Item) error {
	return diag.Check(log, items...)
}

// MetricOption customizes FormatMetric.
type MetricOption = metric.Option

// ErrNilResult is returned by FormatMetric for a nil map.
var ErrNilResult = metric.ErrNilResult

// FormatMetric renders evaluation results as "name:value" segments.
func FormatMetric(result map[string]any, opts ...MetricOption) (string, error) {
	return metric.Format(result, opts...)
}

// WithCutoffLabels labels metric segments with their full key.
func WithCutoffLabels() MetricOption {
	return metric.WithCutoffLabels()
}

// Values is a bag of named run arguments.
type Values = argtable.Values

// FormatArgs renders v as an aligned argument table. maxLen <= 0 means 20.
func FormatArgs(v Values, exclude []string, maxLen int) string {
	return argtable.Format(v, exclude, maxLen)
}

// ArgsFromStruct collects the exported fields of a struct as Values.
func ArgsFromStruct(s any) (Values, error) {
	return argtable.FromStruct(s)
}

// Files, time and early stopping

// CheckDir creates the directory that will contain fileName if it is missing.
func CheckDir(fileName string) error {
	return fsutil.CheckDir(fileName)
}

// Now returns the local time as "YYYY-MM-DD HH:MM:SS".
func Now() string {
	return timeutil.Now()
}

// NonIncreasing reports whether no element after the first exceeds the first.
func NonIncreasing(xs []float64) bool {
	return earlystop.NonIncreasing(xs)
}

// Stopper decides early stopping from a per-round criterion.
type Stopper = earlystop.Stopper

// Configuration

// Config holds the settings of one run.
type Config = config.Run

// DefaultConfig returns the default run settings.
func DefaultConfig() Config {
	return config.Default()
}

// LoadConfig reads a YAML run file over the defaults and applies environment overrides.
func LoadConfig(path string) (Config, error) {
	return config.Load(path)
}
