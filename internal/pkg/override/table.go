package override

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Table answers from a fixed flight reference to time mapping. Unknown
// flights are cancelled.
type Table struct {
	times map[string]string
}

func NewTable(times map[string]string) *Table {
	normalized := make(map[string]string, len(times))
	for ref, hhmm := range times {
		normalized[strings.TrimSpace(ref)] = strings.TrimSpace(hhmm)
	}

	return &Table{times: normalized}
}

// overrideFile is the YAML layout of OVERRIDE_FILE:
//
//	overrides:
//	  "123": "16:45"
type overrideFile struct {
	Overrides map[string]string `yaml:"overrides"`
}

// LoadTable reads a YAML override file.
func LoadTable(path string) (*Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read override file: %w", err)
	}

	var file overrideFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("decode override file %s: %w", path, err)
	}

	return NewTable(file.Overrides), nil
}

func (t *Table) RequestOverrideTime(_ context.Context, flightRef, _ string) (string, bool) {
	if t == nil {
		return "", false
	}

	hhmm, ok := t.times[strings.TrimSpace(flightRef)]

	return hhmm, ok
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.times)
}
