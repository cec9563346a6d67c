// Package config defines the configuration types for fixups.
// These are plain data structures; loading and merging live in internal/configloader.
package config

import (
	"errors"
	"fmt"

	"github.com/yaklabco/fixups/pkg/fixup"
	"github.com/yaklabco/fixups/pkg/fsutil"
)

// DefaultFileName is the project config file looked up in the working directory.
const DefaultFileName = ".fixups.yml"

// TargetsConfig holds the file each command rewrites.
type TargetsConfig struct {
	Report        string `yaml:"report"`
	Quotes        string `yaml:"quotes"`
	KnowledgeBase string `yaml:"knowledge_base"`
	SupportGuide  string `yaml:"support_guide"`
}

// BackupsConfig controls backup behavior when rewriting files.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar" or "none"
}

// Config is the root configuration structure.
type Config struct {
	// Targets are the files rewritten by each command.
	Targets TargetsConfig `yaml:"targets"`

	// Backups configures sidecar backups.
	Backups BackupsConfig `yaml:"backups"`

	// DryRun prints diffs instead of writing.
	DryRun bool `yaml:"dry_run"`
}

// NewConfig returns a Config pointing at the built-in target paths with backups off.
func NewConfig() *Config {
	return &Config{
		Targets: TargetsConfig{
			Report:        fixup.ReportPath,
			Quotes:        fixup.QuotesPath,
			KnowledgeBase: fixup.KnowledgeBasePath,
			SupportGuide:  fixup.SupportGuidePath,
		},
		Backups: BackupsConfig{
			Enabled: false,
			Mode:    string(fsutil.BackupModeSidecar),
		},
	}
}

// BackupConfig converts the backup settings for fsutil.
func (c *Config) BackupConfig() fsutil.BackupConfig {
	if c == nil {
		return fsutil.DefaultBackupConfig()
	}
	return fsutil.BackupConfig{
		Enabled: c.Backups.Enabled,
		Mode:    fsutil.BackupMode(c.Backups.Mode),
	}
}

// Validate checks that every target is set and the backup mode is known.
func (c *Config) Validate() error {
	var errs []error

	for name, path := range map[string]string{
		"targets.report":         c.Targets.Report,
		"targets.quotes":         c.Targets.Quotes,
		"targets.knowledge_base": c.Targets.KnowledgeBase,
		"targets.support_guide":  c.Targets.SupportGuide,
	} {
		if path == "" {
			errs = append(errs, fmt.Errorf("%s: path must not be empty", name))
		}
	}

	switch fsutil.BackupMode(c.Backups.Mode) {
	case fsutil.BackupModeSidecar, fsutil.BackupModeNone, "":
	default:
		errs = append(errs, fmt.Errorf("backups.mode: unknown mode %q (expected sidecar or none)", c.Backups.Mode))
	}

	return errors.Join(errs...)
}
