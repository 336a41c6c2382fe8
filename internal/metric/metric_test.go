package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		result map[string]any
		opts   []Option
		want   string
	}{
		{
			name:   "cutoffs then names",
			result: map[string]any{"ndcg@5": 0.1234, "hr@5": 0.5, "ndcg@10": 0.04},
			want:   "hr:0.5000,ndcg:0.1234,ndcg:0.0400",
		},
		{
			name:   "full labels",
			result: map[string]any{"ndcg@5": 0.1234, "hr@5": 0.5, "ndcg@10": 0.04},
			opts:   []Option{WithCutoffLabels()},
			want:   "hr@5:0.5000,ndcg@5:0.1234,ndcg@10:0.0400",
		},
		{
			name:   "numeric cutoff order",
			result: map[string]any{"hr@20": 0.3, "hr@3": 0.1},
			want:   "hr:0.1000,hr:0.3000",
		},
		{
			name:   "plain names",
			result: map[string]any{"loss": 0.25, "epoch": 3},
			want:   "epoch:3,loss:0.2500",
		},
		{
			name:   "integers and float32",
			result: map[string]any{"users@1": int64(42), "auc@1": float32(0.75)},
			want:   "auc:0.7500,users:42",
		},
		{
			name:   "unsupported values skipped",
			result: map[string]any{"a": "text", "b": 1.0, "c": nil},
			want:   "b:1.0000",
		},
		{
			name:   "missing cutoff combinations skipped",
			result: map[string]any{"ndcg@5": 0.1, "hr@10": 0.2, "loss": 0.3},
			want:   "ndcg:0.1000,hr:0.2000",
		},
		{
			name:   "empty",
			result: map[string]any{},
			want:   "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.result, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatRounding(t *testing.T) {
	got, err := Format(map[string]any{"ndcg@5": 0.123456})
	require.NoError(t, err)
	assert.Equal(t, "ndcg:0.1235", got)
}

func TestFormatErrors(t *testing.T) {
	_, err := Format(nil)
	assert.ErrorIs(t, err, ErrNilResult)

	_, err = Format(map[string]any{"ndcg@top": 0.1})
	assert.ErrorContains(t, err, `invalid cutoff "top"`)
}
