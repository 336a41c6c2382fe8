package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type csvConfig struct {
	separator rune
}

// CSVOption customizes ReadCSV.
type CSVOption func(*csvConfig)

// WithSeparator sets the field delimiter (default ',').
func WithSeparator(sep rune) CSVOption {
	return func(c *csvConfig) { c.separator = sep }
}

// LoadCSV reads a frame from a CSV file with a header row.
func LoadCSV(path string, opts ...CSVOption) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	f, err := ReadCSV(file, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ReadCSV reads a frame from CSV text whose first record names the columns.
// Each column takes the first type that parses every non-empty cell, in the
// order int, float, bool, string. Empty cells are missing values, except in
// string columns where they stay "". A column with no values at all is Empty.
func ReadCSV(r io.Reader, opts ...CSVOption) (*Frame, error) {
	cfg := csvConfig{separator: ','}
	for _, opt := range opts {
		opt(&cfg)
	}

	reader := csv.NewReader(r)
	reader.Comma = cfg.separator

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return New()
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	raw := make([][]string, len(header))
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		for i := range header {
			raw[i] = append(raw[i], record[i])
		}
	}

	columns := make([]Column, len(header))
	for i, name := range header {
		columns[i] = Column{Name: strings.TrimSpace(name), Values: inferCells(raw[i])}
	}
	return New(columns...)
}

func inferCells(cells []string) []any {
	parsers := []func(string) (any, bool){
		func(s string) (any, bool) {
			n, err := strconv.ParseInt(s, 10, 64)
			return n, err == nil
		},
		func(s string) (any, bool) {
			x, err := strconv.ParseFloat(s, 64)
			return x, err == nil
		},
		func(s string) (any, bool) {
			switch strings.ToLower(s) {
			case "true":
				return true, true
			case "false":
				return false, true
			}
			return nil, false
		},
	}

	if allBlank(cells) {
		return make([]any, len(cells))
	}
	for _, parse := range parsers {
		if vals, ok := parseAll(cells, parse); ok {
			return vals
		}
	}

	vals := make([]any, len(cells))
	for i, s := range cells {
		vals[i] = s
	}
	return vals
}

func allBlank(cells []string) bool {
	for _, s := range cells {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

func parseAll(cells []string, parse func(string) (any, bool)) ([]any, bool) {
	vals := make([]any, len(cells))
	seen := false
	for i, s := range cells {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, ok := parse(s)
		if !ok {
			return nil, false
		}
		vals[i] = v
		seen = true
	}
	return vals, seen
}
