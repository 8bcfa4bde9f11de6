package utils_test

import (
	"strings"
	"testing"

	"github.com/pseudomuto/sqlalign/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestIsQuoted(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "double quoted", input: `"UserId"`, expected: true},
		{name: "backticked", input: "`order`", expected: true},
		{name: "plain", input: "user_id", expected: false},
		{name: "qualified quoted parts", input: `"a"."b"`, expected: false},
		{name: "single quote char", input: `"`, expected: false},
		{name: "empty", input: "", expected: false},
		{name: "mismatched quotes", input: "\"a`", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, utils.IsQuoted(tt.input))
		})
	}
}

func TestSplitQualified(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "simple", input: "col", expected: []string{"col"}},
		{name: "three parts", input: "db.tbl.col", expected: []string{"db", "tbl", "col"}},
		{name: "quoted dot", input: `t."a.b"`, expected: []string{"t", `"a.b"`}},
		{name: "backtick dot", input: "`x.y`.z", expected: []string{"`x.y`", "z"}},
		{name: "empty", input: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, utils.SplitQualified(tt.input))
		})
	}
}

func TestLastSegment(t *testing.T) {
	require.Equal(t, "col", utils.LastSegment("tbl.col"))
	require.Equal(t, "col", utils.LastSegment("col"))
	require.Equal(t, `"Col"`, utils.LastSegment(`t."Col"`))
	require.Empty(t, utils.LastSegment(""))
}

func TestMapUnquoted(t *testing.T) {
	require.Equal(t, `TBL."Col"`, utils.MapUnquoted(`tbl."Col"`, strings.ToUpper))
	require.Equal(t, "a.b", utils.MapUnquoted("A.B", strings.ToLower))
}

func TestPtr(t *testing.T) {
	p := utils.Ptr("x")
	require.NotNil(t, p)
	require.Equal(t, "x", *p)
}
