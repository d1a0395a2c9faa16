package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qerrors "github.com/quanta-dev/quanta/pkg/errors"
	"github.com/quanta-dev/quanta/pkg/policy"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, policy.Strict, cfg.RescalePolicy())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Encoding)
}

func TestValidate(t *testing.T) {
	t.Run("bad policy", func(t *testing.T) {
		cfg := Default()
		cfg.Policy.Rescale = "loudest_wins"
		err := cfg.Validate()
		assert.True(t, qerrors.IsType(err, qerrors.ErrorTypeConfig))
	})

	t.Run("bad encoding", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.Encoding = "xml"
		err := cfg.Validate()
		assert.True(t, qerrors.IsType(err, qerrors.ErrorTypeConfig))
	})

	t.Run("bad level", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.Level = "loud"
		err := cfg.Validate()
		assert.True(t, qerrors.IsType(err, qerrors.ErrorTypeConfig))
	})
}

func TestRescalePolicyFallback(t *testing.T) {
	cfg := Default()
	cfg.Policy.Rescale = "nonsense"
	assert.Equal(t, policy.Strict, cfg.RescalePolicy())
}

func TestLoad(t *testing.T) {
	writeConfig := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "quanta.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
policy:
  rescale: smaller_wins
logging:
  level: debug
  encoding: console
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, policy.SmallerWins, cfg.RescalePolicy())
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "console", cfg.Logging.Encoding)
	})

	t.Run("partial files keep defaults", func(t *testing.T) {
		path := writeConfig(t, "policy:\n  rescale: larger_wins\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, policy.LargerWins, cfg.RescalePolicy())
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("environment substitution", func(t *testing.T) {
		t.Setenv("QUANTA_TEST_POLICY", "left_hand_wins")
		path := writeConfig(t, "policy:\n  rescale: ${QUANTA_TEST_POLICY}\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, policy.LeftHandWins, cfg.RescalePolicy())
	})

	t.Run("invalid values fail validation", func(t *testing.T) {
		path := writeConfig(t, "policy:\n  rescale: loudest_wins\n")
		_, err := Load(path)
		assert.True(t, qerrors.IsType(err, qerrors.ErrorTypeConfig))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.True(t, qerrors.IsType(err, qerrors.ErrorTypeConfig))
	})
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Policy.Rescale = "smaller_wins"
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Policy, loaded.Policy)
}
