package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Valid(t *testing.T) {
	content := `
format: sarif
output: reports/skip-env.sarif
color: never
exclude:
  - "vendor/*"
  - "*_generated_test.go"
watch_debounce: 500ms
`
	s, err := LoadSettings(writeTemp(t, content))
	require.NoError(t, err)

	assert.Equal(t, "sarif", s.Format)
	assert.Equal(t, "reports/skip-env.sarif", s.Output)
	assert.Equal(t, ColorNever, s.Color)
	assert.Equal(t, []string{"vendor/*", "*_generated_test.go"}, s.Exclude)
	assert.Equal(t, 500*time.Millisecond, s.WatchDebounce)
}

func TestLoadSettings_Partial(t *testing.T) {
	s, err := LoadSettings(writeTemp(t, `format: json`))
	require.NoError(t, err)

	assert.Equal(t, "json", s.Format)
	assert.Empty(t, s.Output)
	assert.Empty(t, s.Color)
	assert.Nil(t, s.Exclude)
	assert.Zero(t, s.WatchDebounce)
}

func TestLoadSettings_MissingFile(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nonexistent.yml"))
	require.NoError(t, err, "missing file should not error")
	assert.Equal(t, &Settings{}, s)
}

func TestLoadSettings_InvalidYAML(t *testing.T) {
	_, err := LoadSettings(writeTemp(t, "exclude: [invalid\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadSettings_InvalidValues(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"color: rainbow", `invalid color "rainbow"`},
		{"watch_debounce: -1s", "watch_debounce must not be negative"},
		{`exclude: ["[bad"]`, `invalid exclude pattern "[bad"`},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			_, err := LoadSettings(writeTemp(t, tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadSettings_Unreadable(t *testing.T) {
	// a directory cannot be read as a file
	_, err := LoadSettings(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
