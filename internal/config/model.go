package config

import (
	"fmt"
	"strings"
)

// Job is one import job: a set of input documents bound to a destination
// store, with optional re-export.
type Job struct {
	// Name labels the job in logs.
	Name string `hcl:"name,label"`

	// Input is a document file or a directory searched recursively.
	Input string `hcl:"input"`

	// Store is the destination DSN: "memory" or "sqlite:<path>".
	Store string `hcl:"store,optional"`

	// Export, when set, re-serializes everything stored by this job into
	// the named file.
	Export string `hcl:"export,optional"`

	// CaseInsensitiveEnums relaxes enum token matching for files written
	// by sloppier tools.
	CaseInsensitiveEnums bool `hcl:"case_insensitive_enums,optional"`
}

// Model is the decoded job file.
type Model struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `hcl:"log_level,optional"`

	Jobs []*Job `hcl:"job,block"`
}

// applyDefaults fills the optional fields a job file may omit.
func (m *Model) applyDefaults() {
	if m.LogLevel == "" {
		m.LogLevel = "info"
	}
	for _, j := range m.Jobs {
		if j.Store == "" {
			j.Store = "memory"
		}
	}
}

// validate rejects models the application cannot run.
func (m *Model) validate() error {
	switch strings.ToLower(m.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", m.LogLevel)
	}
	if len(m.Jobs) == 0 {
		return fmt.Errorf("config: job file defines no jobs")
	}
	seen := make(map[string]bool, len(m.Jobs))
	for _, j := range m.Jobs {
		if j.Name == "" {
			return fmt.Errorf("config: job with empty name")
		}
		if seen[j.Name] {
			return fmt.Errorf("config: duplicate job %q", j.Name)
		}
		seen[j.Name] = true
		if j.Input == "" {
			return fmt.Errorf("config: job %q has no input", j.Name)
		}
		if j.Store != "memory" && !strings.HasPrefix(j.Store, "sqlite:") {
			return fmt.Errorf("config: job %q has unknown store DSN %q", j.Name, j.Store)
		}
	}
	return nil
}
