// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/nshlang/pkg/types"
)

// Report is the on-disk record of a conversion run. It is informational only;
// conversion never reads it back.
type Report struct {
	Config    types.ConversionConfig `yaml:"config"`
	Converted []ReportDocument       `yaml:"converted"`
	Skipped   []types.Skip           `yaml:"skipped,omitempty"`
	Summary   ReportSummary          `yaml:"summary"`
}

// ReportDocument describes one converted document.
type ReportDocument struct {
	Code    string `yaml:"code"`
	Name    string `yaml:"name"`
	Source  string `yaml:"source"`
	Output  string `yaml:"output"`
	Entries int    `yaml:"entries"`
}

// ReportSummary stores run statistics and a timestamp.
type ReportSummary struct {
	Converted int       `yaml:"converted"`
	Skipped   int       `yaml:"skipped"`
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// NewReport builds a report for a finished run.
func NewReport(cfg types.ConversionConfig, result BatchResult) Report {
	r := Report{
		Config:  cfg,
		Skipped: result.Skips,
		Summary: ReportSummary{
			Converted: result.Converted(),
			Skipped:   result.Skipped(),
			Total:     result.Total(),
			Timestamp: time.Now().UTC(),
		},
	}
	r.Converted = make([]ReportDocument, 0, len(result.Documents))
	for _, d := range result.Documents {
		r.Converted = append(r.Converted, ReportDocument{
			Code:    d.Code,
			Name:    d.Name,
			Source:  d.SourcePath,
			Output:  d.OutputPath,
			Entries: d.Entries(),
		})
	}
	return r
}

// WriteReport saves the report for a finished run to a YAML file.
func WriteReport(path string, cfg types.ConversionConfig, result BatchResult) error {
	r := NewReport(cfg, result)
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// ReadReport loads a previously written report from disk.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &r, nil
}
