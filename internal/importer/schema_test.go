package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"case.json", FormatJSON},
		{"case.yaml", FormatYAML},
		{"case.YML", FormatYAML},
		{"case", FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatForPath(tt.path))
		})
	}
}

func TestLoadCaseSchema_JSONAndYAMLAgree(t *testing.T) {
	fromJSON, err := LoadCaseSchema(filepath.Join("testdata", "prostate.json"))
	require.NoError(t, err)
	fromYAML, err := LoadCaseSchema(filepath.Join("testdata", "prostate.yaml"))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
	assert.Equal(t, "RT000123", fromJSON.Patient.PatientID)
	require.Len(t, fromJSON.Plans, 2)
	assert.Empty(t, fromJSON.Plans[0].Goals)
	require.Len(t, fromJSON.Plans[1].Goals, 2)
	require.NotNil(t, fromJSON.Plans[1].Goals[0].Recorded)
	assert.True(t, fromJSON.Plans[1].Goals[0].Recorded.Achieved)
	assert.Nil(t, fromJSON.Plans[1].Goals[1].Recorded)
}

func TestLoadCaseSchema_MissingFile(t *testing.T) {
	_, err := LoadCaseSchema(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseCaseSchema_Malformed(t *testing.T) {
	_, err := ParseCaseSchema([]byte("{not json"), FormatJSON)
	assert.ErrorContains(t, err, "parsing case file")

	_, err = ParseCaseSchema([]byte("plans: [unterminated"), FormatYAML)
	assert.ErrorContains(t, err, "parsing case file")
}
