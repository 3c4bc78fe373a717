package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mergelist/internal/config"
	"mergelist/internal/screen"
	"mergelist/pkg/logging"
	"mergelist/pkg/merge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultScreen(t *testing.T) *screen.Screen {
	t.Helper()
	s, err := screen.Build(config.GetDefaultConfig().Screen)
	require.NoError(t, err)
	return s
}

const testConfig = `
settings:
  logLevel: warn
screen:
  title: Crew
  blocks:
    - name: header
      type: header
      lines: ["On duty"]
    - name: crew
      type: list
      sectioned: true
      items: ["Ada", "Alan", "Grace"]
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfig), 0644))
	return dir
}

func TestRunCLIMode(t *testing.T) {
	var out bytes.Buffer
	s := defaultScreen(t)

	require.NoError(t, runCLIMode(context.Background(), &Config{NoTUI: true}, s, &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 1+s.Adapter.Count())
	assert.Equal(t, "MergeList Sample", lines[0])
	assert.Equal(t, "Breaking Bad (Main Characters)", lines[1])
	assert.Equal(t, "Gustavo Fring", lines[2])
	assert.Equal(t, "Walter White Jr.", lines[len(lines)-1])
}

func TestRunCLIMode_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := runCLIMode(ctx, &Config{NoTUI: true}, defaultScreen(t), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestNewApplication_FromPath(t *testing.T) {
	cfg := NewConfig(true, false, writeTestConfig(t))
	cfg.Inactive = []string{"characters"}

	application, err := NewApplication(cfg)
	require.NoError(t, err)
	require.NotNil(t, cfg.MergelistConfig)
	assert.Equal(t, "Crew", cfg.MergelistConfig.Screen.Title)

	s := application.Screen()
	assert.False(t, s.IsActive("characters"))
	assert.True(t, s.IsActive("crew"))
	assert.Equal(t, []string{"A", "G"}, sectionsOf(s, "crew"))
}

func sectionsOf(s *screen.Screen, name string) []string {
	b, ok := s.Lookup(name)
	if !ok {
		return nil
	}
	return b.Provider.(merge.SectionIndexer).Sections()
}

func TestNewApplication_Errors(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		_, err := NewApplication(NewConfig(true, false, filepath.Join(t.TempDir(), "missing")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load configuration from path")
	})

	t.Run("unknown inactive block", func(t *testing.T) {
		cfg := NewConfig(true, false, writeTestConfig(t))
		cfg.Inactive = []string{"nope"}
		_, err := NewApplication(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown block "nope"`)
	})
}

func TestApplication_RunCLI(t *testing.T) {
	application, err := NewApplication(NewConfig(true, false, writeTestConfig(t)))
	require.NoError(t, err)

	var out bytes.Buffer
	application.out = &out
	require.NoError(t, application.Run(context.Background()))
	assert.Contains(t, out.String(), "On duty")
	assert.Contains(t, out.String(), "Grace")
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name       string
		debug      bool
		configured string
		want       logging.LogLevel
	}{
		{name: "default", want: logging.LevelInfo},
		{name: "configured", configured: "warn", want: logging.LevelWarn},
		{name: "debug flag wins", debug: true, configured: "error", want: logging.LevelDebug},
		{name: "invalid falls back", configured: "loud", want: logging.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logLevel(&Config{Debug: tt.debug}, tt.configured))
		})
	}
}
