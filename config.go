// config.go - YAML-driven batch generation job configuration
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package rainbow

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// TableGroup describes a batch of identically-shaped tables: "count"
// tables of "chainNum" chains each, at indices 0..count-1 (or offset by
// StartIndex, for appending to an existing batch).
type TableGroup struct {
	ChainNum   uint32 `json:"chainNum"`
	Count      uint32 `json:"count"`
	StartIndex uint32 `json:"startIndex,omitempty"`
}

// Job describes a full `generate --config` batch: one hash function and
// chain length shared across one or more TableGroups of different sizes,
// all written under OutputDir.
type Job struct {
	OutputDir string       `json:"outputDir"`
	HashName  string       `json:"hashName"`
	ChainLen  uint32       `json:"chainLen"`
	Tables    []TableGroup `json:"tables"`
}

// LoadJob reads and validates a Job from a YAML file at path.
func LoadJob(path string) (*Job, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var j Job
	if err := yaml.Unmarshal(raw, &j); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := j.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &j, nil
}

func (j *Job) validate() error {
	if j.OutputDir == "" {
		return fmt.Errorf("outputDir is required")
	}
	if j.HashName == "" {
		return fmt.Errorf("hashName is required")
	}
	if j.ChainLen == 0 {
		return fmt.Errorf("chainLen must be > 0")
	}
	if len(j.Tables) == 0 {
		return fmt.Errorf("at least one table group is required")
	}
	for i, t := range j.Tables {
		if t.Count == 0 {
			return fmt.Errorf("tables[%d]: count must be > 0", i)
		}
	}
	return nil
}
