package importer

import (
	"testing"

	"github.com/alexanderramin/goalaudit/internal/domain"
	"github.com/stretchr/testify/assert"
)

func ptrFloat(f float64) *float64 { return &f }

func validMinimalSchema() *CaseSchema {
	return &CaseSchema{
		Patient: PatientImport{PatientID: "RT000123", Name: "Doe^Jane"},
		Case:    CaseImport{Name: "Prostate"},
		Plans: []PlanImport{
			{
				Name: "Plan A",
				Goals: []GoalImport{
					{ROI: "Rectum", Criteria: "AtMost", Type: "VolumeAtDose", AcceptanceLevel: ptrFloat(0.5), ParameterValue: ptrFloat(4080)},
				},
			},
		},
	}
}

func TestValidateCaseSchema_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateCaseSchema(validMinimalSchema()))
}

func TestValidateCaseSchema_NoPlansIsValid(t *testing.T) {
	s := validMinimalSchema()
	s.Plans = nil
	assert.Empty(t, ValidateCaseSchema(s))
}

func TestValidateCaseSchema_MissingIdentity(t *testing.T) {
	s := validMinimalSchema()
	s.Patient.PatientID = ""
	s.Case.Name = ""

	errs := ValidateCaseSchema(s)
	assert.Len(t, errs, 2)
	assert.ErrorContains(t, errs[0], "patient.patient_id is required")
	assert.ErrorContains(t, errs[1], "case.name is required")
}

func TestValidateCaseSchema_UnknownGoalType(t *testing.T) {
	s := validMinimalSchema()
	s.Plans[0].Goals[0].Type = "AverageDose"

	errs := ValidateCaseSchema(s)
	assert.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], domain.ErrUnknownGoalKind)
	assert.ErrorContains(t, errs[0], "plans[0].goals[0].type")
}

func TestValidateCaseSchema_UnknownCriteria(t *testing.T) {
	s := validMinimalSchema()
	s.Plans[0].Goals[0].Criteria = "Exactly"

	errs := ValidateCaseSchema(s)
	assert.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], domain.ErrUnknownCriteria)
}

func TestValidateCaseSchema_MissingGoalValues(t *testing.T) {
	s := validMinimalSchema()
	s.Plans[0].Goals[0].AcceptanceLevel = nil
	s.Plans[0].Goals[0].ParameterValue = nil
	s.Plans[0].Goals[0].ROI = ""

	assert.Len(t, ValidateCaseSchema(s), 3)
}

func TestValidateCaseSchema_DuplicatePlan(t *testing.T) {
	s := validMinimalSchema()
	s.Plans = append(s.Plans, PlanImport{Name: "Plan A"})

	errs := ValidateCaseSchema(s)
	assert.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "duplicate plan")
}

func TestValidateCaseSchema_BadDVH(t *testing.T) {
	tests := []struct {
		name   string
		points []DVHPointImport
		want   string
	}{
		{"empty", nil, "no points"},
		{"percent volume", []DVHPointImport{{0, 100}}, "outside 0..1"},
		{"dose decreasing", []DVHPointImport{{100, 1}, {50, 0.5}}, "dose must increase"},
		{"volume increasing", []DVHPointImport{{0, 0.5}, {100, 0.9}}, "volume must not increase"},
		{"stops before zero volume", []DVHPointImport{{0, 1}, {4000, 0.6}}, "must reach volume 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validMinimalSchema()
			s.Plans[0].DVHs = []DVHImport{{ROI: "Rectum", Points: tt.points}}

			errs := ValidateCaseSchema(s)
			assert.Len(t, errs, 1)
			assert.ErrorContains(t, errs[0], tt.want)
		})
	}
}

func TestValidateCaseSchema_CollectsAcrossPlans(t *testing.T) {
	s := validMinimalSchema()
	s.Plans = append(s.Plans, PlanImport{
		Name:  "Plan B",
		Goals: []GoalImport{{ROI: "PTV", Criteria: "AtLeast", Type: "Mean", AcceptanceLevel: ptrFloat(1), ParameterValue: ptrFloat(1)}},
		DVHs:  []DVHImport{{ROI: "", Points: []DVHPointImport{{0, 1}, {100, 0}}}},
	})

	assert.Len(t, ValidateCaseSchema(s), 2)
}
