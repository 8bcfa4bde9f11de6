package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireFileExists asserts that a file exists and optionally checks its content
func RequireFileExists(t *testing.T, path string, checks ...func(content string)) {
	t.Helper()

	require.FileExists(t, path, "File should exist: %s", path)

	if len(checks) > 0 {
		content, err := os.ReadFile(path)
		require.NoError(t, err, "Failed to read file: %s", path)

		contentStr := string(content)
		for _, check := range checks {
			check(contentStr)
		}
	}
}

// RequireFileContent returns a check function that verifies the exact file content
func RequireFileContent(t *testing.T, expected string) func(string) {
	return func(content string) {
		require.Equal(t, expected, content)
	}
}

// RequireFileContains returns a check function that verifies file contains text
func RequireFileContains(t *testing.T, expected string) func(string) {
	return func(content string) {
		require.Contains(t, content, expected, "File should contain: %s", expected)
	}
}

// RequireError asserts that an error occurred and optionally checks the message
func RequireError(t *testing.T, err error, msgContains ...string) {
	t.Helper()

	require.Error(t, err, "Expected an error")

	for _, msg := range msgContains {
		require.Contains(t, err.Error(), msg, "Error message should contain: %s", msg)
	}
}

// RequireFilePermissions asserts that a file has specific permissions
func RequireFilePermissions(t *testing.T, path string, expectedMode os.FileMode) {
	t.Helper()

	info, err := os.Stat(path)
	require.NoError(t, err, "Failed to stat file: %s", path)

	actualMode := info.Mode().Perm()
	require.Equal(t, expectedMode, actualMode,
		"File %s should have permissions %o, got %o", path, expectedMode, actualMode)
}
