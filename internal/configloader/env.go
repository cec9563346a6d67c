package configloader

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/yaklabco/fixups/pkg/config"
)

// envVarPrefix is the prefix for all fixups environment variables.
const envVarPrefix = "FIXUPS_"

// envSetter applies one environment value to the config.
type envSetter func(cfg *config.Config, value string) error

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envSetter{
	"REPORT_PATH":         stringSetter(func(c *config.Config) *string { return &c.Targets.Report }),
	"QUOTES_PATH":         stringSetter(func(c *config.Config) *string { return &c.Targets.Quotes }),
	"KNOWLEDGE_BASE_PATH": stringSetter(func(c *config.Config) *string { return &c.Targets.KnowledgeBase }),
	"SUPPORT_GUIDE_PATH":  stringSetter(func(c *config.Config) *string { return &c.Targets.SupportGuide }),
	"BACKUPS_MODE":        stringSetter(func(c *config.Config) *string { return &c.Backups.Mode }),
	"BACKUPS_ENABLED":     boolSetter(func(c *config.Config) *bool { return &c.Backups.Enabled }),
	"DRY_RUN":             boolSetter(func(c *config.Config) *bool { return &c.DryRun }),
}

// applyEnv applies every set FIXUPS_* variable to cfg, in name order,
// and returns the names that were applied.
func applyEnv(cfg *config.Config, lookup func(string) (string, bool)) ([]string, error) {
	suffixes := make([]string, 0, len(envMappings))
	for suffix := range envMappings {
		suffixes = append(suffixes, suffix)
	}
	slices.Sort(suffixes)

	var applied []string
	for _, suffix := range suffixes {
		name := envVarPrefix + suffix
		value, ok := lookup(name)
		if !ok || value == "" {
			continue
		}

		if err := envMappings[suffix](cfg, value); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		applied = append(applied, name)
	}

	return applied, nil
}

func stringSetter(field func(*config.Config) *string) envSetter {
	return func(cfg *config.Config, value string) error {
		*field(cfg) = value
		return nil
	}
}

func boolSetter(field func(*config.Config) *bool) envSetter {
	return func(cfg *config.Config, value string) error {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", value)
		}
		*field(cfg) = parsed
		return nil
	}
}

// ListEnvVars returns every supported environment variable with a description.
func ListEnvVars() map[string]string {
	return map[string]string{
		"FIXUPS_REPORT_PATH":         "Report rewritten by 'fixups report'",
		"FIXUPS_QUOTES_PATH":         "Page rewritten by 'fixups unescape'",
		"FIXUPS_KNOWLEDGE_BASE_PATH": "Knowledge base rewritten by 'fixups docs'",
		"FIXUPS_SUPPORT_GUIDE_PATH":  "Support guide rewritten by 'fixups docs'",
		"FIXUPS_BACKUPS_ENABLED":     "Keep a sidecar backup before writing: true or false",
		"FIXUPS_BACKUPS_MODE":        "Backup mode: sidecar or none",
		"FIXUPS_DRY_RUN":             "Print diffs instead of writing: true or false",
	}
}
