// Package metric renders evaluation results as compact log strings.
package metric

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrNilResult is returned when Format is given no result map.
var ErrNilResult = errors.New("metric result map is nil")

type options struct {
	cutoffLabels bool
}

// Option customizes Format.
type Option func(*options)

// WithCutoffLabels labels each segment with its full key ("ndcg@5")
// instead of the bare metric name ("ndcg").
func WithCutoffLabels() Option {
	return func(o *options) { o.cutoffLabels = true }
}

// Format renders result as comma-separated "name:value" segments.
//
// Keys are "<metric>@<k>" or plain "<metric>". When any key carries a cutoff,
// segments are ordered by cutoff ascending and then by metric name, and every
// metric is looked up at every cutoff. Otherwise metrics are listed by name.
// Floats print with four decimals and integers as is; missing keys and values
// of other types are skipped.
//
// Example:
//
//	Format(map[string]any{"ndcg@5": 0.1234, "hr@5": 0.5, "ndcg@10": 0.04})
//	// "hr:0.5000,ndcg:0.1234,ndcg:0.0400"
func Format(result map[string]any, opts ...Option) (string, error) {
	if result == nil {
		return "", ErrNilResult
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	metricSet := map[string]bool{}
	cutoffSet := map[int]bool{}
	for key := range result {
		name, k, found := strings.Cut(key, "@")
		metricSet[name] = true
		if !found {
			continue
		}
		cutoff, err := strconv.Atoi(k)
		if err != nil {
			return "", fmt.Errorf("metric key %q: invalid cutoff %q", key, k)
		}
		cutoffSet[cutoff] = true
	}
	metrics := sortedKeys(metricSet)
	cutoffs := sortedKeys(cutoffSet)

	var segments []string
	add := func(label, key string) {
		if v, ok := formatValue(result[key]); ok {
			segments = append(segments, label+":"+v)
		}
	}

	if len(cutoffs) == 0 {
		for _, name := range metrics {
			add(name, name)
		}
		return strings.Join(segments, ","), nil
	}
	for _, k := range cutoffs {
		for _, name := range metrics {
			key := name + "@" + strconv.Itoa(k)
			label := name
			if o.cutoffLabels {
				label = key
			}
			add(label, key)
		}
	}
	return strings.Join(segments, ","), nil
}

func formatValue(v any) (string, bool) {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', 4, 64), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', 4, 64), true
	case int:
		return strconv.Itoa(x), true
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x), true
	default:
		return "", false
	}
}

func sortedKeys[K int | string](set map[K]bool) []K {
	keys := make([]K, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
