package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/roster/internal/config"
)

// newDefaultTarget returns a Config with known non-zero values so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	return &config.Config{
		Characters: config.CharactersConfig{BaseURL: "https://characters.example/api", Limit: 45},
		Posts:      config.PostsConfig{BaseURL: "https://posts.example"},
		HTTP:       config.HTTPConfig{Timeout: 30 * time.Second},
		Output:     config.OutputConfig{DefaultFormat: "table"},
		Logging:    config.LoggingConfig{Level: "info", Format: "json"},
	}
}

// writeOverlay writes YAML content to a temp file and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: json
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "json", target.Output.DefaultFormat)
	assert.Equal(t, "info", target.Logging.Level)
	assert.Equal(t, 45, target.Characters.Limit)
}

func TestShallowMergeYAML_FieldsWithinSectionPreserved(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
characters:
  limit: 10
logging:
  level: debug
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, 10, target.Characters.Limit)
	assert.Equal(t, "https://characters.example/api", target.Characters.BaseURL)
	assert.Equal(t, "debug", target.Logging.Level)
	assert.Equal(t, "json", target.Logging.Format)
}

func TestShallowMergeYAML_Duration(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, "http:\n  timeout: 1m30s\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, 90*time.Second, target.HTTP.Timeout)
}

func TestShallowMergeYAML_EmptyAndCommentOnlyFiles(t *testing.T) {
	for name, content := range map[string]string{
		"empty":        "",
		"comment only": "# nothing here\n",
	} {
		t.Run(name, func(t *testing.T) {
			target := newDefaultTarget()
			require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, content)))
			assert.Equal(t, newDefaultTarget(), target)
		})
	}
}

func TestShallowMergeYAML_ZeroValuesReplace(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
characters:
  limit: 0
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, 0, target.Characters.Limit)
	assert.Error(t, target.Validate(), "an explicit zero is kept and then rejected")
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
posts:
  base_url: https://other.example
unknown_section:
  foo: bar
extra_key: 42
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "https://other.example", target.Posts.BaseURL)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("corrupted yaml", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "{{invalid"))
		require.Error(t, err)
	})

	t.Run("wrong section type", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), writeOverlay(t, "characters:\n  limit: many\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"characters"`)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(newDefaultTarget(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("nil target", func(t *testing.T) {
		require.Error(t, config.ShallowMergeYAML(nil, "irrelevant"))
	})
}
