package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/fixups/pkg/config"
	"github.com/yaklabco/fixups/pkg/fixup"
)

func TestFromYAML(t *testing.T) {
	t.Run("empty uses defaults", func(t *testing.T) {
		cfg, err := config.FromYAML(nil)
		require.NoError(t, err)
		assert.Equal(t, config.NewConfig(), cfg)
	})

	t.Run("partial override keeps defaults", func(t *testing.T) {
		data := []byte("targets:\n  report: docs/REPORT.md\nbackups:\n  enabled: true\n")

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)

		assert.Equal(t, "docs/REPORT.md", cfg.Targets.Report)
		assert.Equal(t, fixup.QuotesPath, cfg.Targets.Quotes)
		assert.True(t, cfg.Backups.Enabled)
		assert.Equal(t, "sidecar", cfg.Backups.Mode)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := config.FromYAML([]byte("rules:\n  MD001: true\n"))
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := config.FromYAML([]byte("targets: [\n"))
		assert.Error(t, err)
	})
}

func TestToYAML_RoundTrip(t *testing.T) {
	original := config.NewConfig()
	original.Targets.Report = "REPORT.md"
	original.DryRun = true

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "report: REPORT.md")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, config.NewConfig().Validate())
	})

	t.Run("empty target", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Targets.Quotes = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "targets.quotes")
	})

	t.Run("unknown backup mode", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Backups.Mode = "xdg"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "backups.mode")
	})
}

func TestBackupConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Backups.Enabled = true

	backup := cfg.BackupConfig()
	assert.True(t, backup.Enabled)
	assert.Equal(t, "sidecar", string(backup.Mode))
}
