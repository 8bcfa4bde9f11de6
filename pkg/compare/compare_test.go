package compare_test

import (
	"strings"
	"testing"

	. "github.com/pseudomuto/sqlalign/pkg/compare"
	"github.com/stretchr/testify/require"
)

func values(pairs []Pair[string]) [][2]string {
	out := make([][2]string, len(pairs))
	for i, p := range pairs {
		if p.Left != nil {
			out[i][0] = *p.Left
		}
		if p.Right != nil {
			out[i][1] = *p.Right
		}
	}
	return out
}

func TestZipLongest(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []string
		expected [][2]string
	}{
		{
			name:     "both empty",
			expected: [][2]string{},
		},
		{
			name:     "same length",
			a:        []string{"a", "b"},
			b:        []string{"x", "y"},
			expected: [][2]string{{"a", "x"}, {"b", "y"}},
		},
		{
			name:     "left longer",
			a:        []string{"a", "b", "c"},
			b:        []string{"x"},
			expected: [][2]string{{"a", "x"}, {"b", ""}, {"c", ""}},
		},
		{
			name:     "right longer",
			a:        []string{"a"},
			b:        []string{"x", "y"},
			expected: [][2]string{{"a", "x"}, {"", "y"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, values(ZipLongest(tt.a, tt.b)))
		})
	}
}

func TestZipLongest_MissingSide(t *testing.T) {
	pairs := ZipLongest([]int{1}, []int{1, 2})
	require.Len(t, pairs, 2)
	require.NotNil(t, pairs[1].Right)
	require.Nil(t, pairs[1].Left)
}

func TestFirstMismatch(t *testing.T) {
	fold := strings.EqualFold

	tests := []struct {
		name     string
		a, b     []string
		index    int
		mismatch bool
	}{
		{
			name: "equal",
			a:    []string{"select", "a"},
			b:    []string{"SELECT", "A"},
		},
		{
			name:     "differs",
			a:        []string{"select", "a", "from"},
			b:        []string{"select", "b", "from"},
			index:    1,
			mismatch: true,
		},
		{
			name:     "shorter",
			a:        []string{"select", "a"},
			b:        []string{"select"},
			index:    1,
			mismatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, mismatch := FirstMismatch(tt.a, tt.b, fold)
			require.Equal(t, tt.mismatch, mismatch)
			require.Equal(t, tt.index, index)
		})
	}
}
