package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CaseSchema is the top-level structure of a case file exported from the
// planning system.
type CaseSchema struct {
	Patient PatientImport `json:"patient" yaml:"patient"`
	Case    CaseImport    `json:"case" yaml:"case"`
	Plans   []PlanImport  `json:"plans" yaml:"plans"`
}

type PatientImport struct {
	PatientID string `json:"patient_id" yaml:"patient_id"`
	Name      string `json:"name" yaml:"name"`
}

type CaseImport struct {
	Name string `json:"name" yaml:"name"`
}

// PlanImport is one treatment plan. Goal and plan order in the file is the
// evaluation order.
type PlanImport struct {
	Name  string       `json:"name" yaml:"name"`
	Goals []GoalImport `json:"goals" yaml:"goals"`
	DVHs  []DVHImport  `json:"dvhs,omitempty" yaml:"dvhs,omitempty"`
}

// GoalImport holds raw planning-system units: volume as a 0..1 fraction and
// dose in cGy.
type GoalImport struct {
	ROI             string          `json:"roi" yaml:"roi"`
	Criteria        string          `json:"criteria" yaml:"criteria"`
	Type            string          `json:"type" yaml:"type"`
	AcceptanceLevel *float64        `json:"acceptance_level" yaml:"acceptance_level"`
	ParameterValue  *float64        `json:"parameter_value" yaml:"parameter_value"`
	Recorded        *RecordedImport `json:"recorded,omitempty" yaml:"recorded,omitempty"`
}

// RecordedImport is the result the planning system computed when the file
// was written.
type RecordedImport struct {
	Value    float64 `json:"value" yaml:"value"`
	Achieved bool    `json:"achieved" yaml:"achieved"`
}

type DVHImport struct {
	ROI    string           `json:"roi" yaml:"roi"`
	Points []DVHPointImport `json:"points" yaml:"points"`
}

type DVHPointImport struct {
	DoseCGy float64 `json:"dose_cgy" yaml:"dose_cgy"`
	Volume  float64 `json:"volume" yaml:"volume"`
}

// Format selects the case file decoder.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the decoder from the file extension. Anything that is
// not .yaml or .yml is read as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// LoadCaseSchema reads and parses a case file.
func LoadCaseSchema(path string) (*CaseSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCaseSchema(data, FormatForPath(path))
}

// ParseCaseSchema decodes a case file already in memory.
func ParseCaseSchema(data []byte, format Format) (*CaseSchema, error) {
	var schema CaseSchema
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing case file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing case file: %w", err)
		}
	}
	return &schema, nil
}
