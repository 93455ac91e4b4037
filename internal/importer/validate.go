package importer

import (
	"fmt"

	"github.com/alexanderramin/goalaudit/internal/domain"
)

// ValidateCaseSchema checks the case file before conversion.
// Returns a slice of all validation errors found.
func ValidateCaseSchema(schema *CaseSchema) []error {
	var errs []error

	if schema.Patient.PatientID == "" {
		errs = append(errs, fmt.Errorf("patient.patient_id is required"))
	}
	if schema.Case.Name == "" {
		errs = append(errs, fmt.Errorf("case.name is required"))
	}

	seenPlans := make(map[string]bool)
	for i, p := range schema.Plans {
		prefix := fmt.Sprintf("plans[%d]", i)
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		} else if seenPlans[p.Name] {
			errs = append(errs, fmt.Errorf("%s.name: duplicate plan %q", prefix, p.Name))
		}
		seenPlans[p.Name] = true

		for j, g := range p.Goals {
			errs = append(errs, validateGoal(fmt.Sprintf("%s.goals[%d]", prefix, j), g)...)
		}
		errs = append(errs, validateDVHs(prefix, p.DVHs)...)
	}

	return errs
}

func validateGoal(prefix string, g GoalImport) []error {
	var errs []error

	if g.ROI == "" {
		errs = append(errs, fmt.Errorf("%s.roi is required", prefix))
	}
	if _, err := domain.ParseCriteria(g.Criteria); err != nil {
		errs = append(errs, fmt.Errorf("%s.criteria: %w", prefix, err))
	}
	if _, err := domain.ParseGoalKind(g.Type); err != nil {
		errs = append(errs, fmt.Errorf("%s.type: %w", prefix, err))
	}
	if g.AcceptanceLevel == nil {
		errs = append(errs, fmt.Errorf("%s.acceptance_level is required", prefix))
	}
	if g.ParameterValue == nil {
		errs = append(errs, fmt.Errorf("%s.parameter_value is required", prefix))
	}

	return errs
}

func validateDVHs(prefix string, dvhs []DVHImport) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, d := range dvhs {
		p := fmt.Sprintf("%s.dvhs[%d]", prefix, i)
		if d.ROI == "" {
			errs = append(errs, fmt.Errorf("%s.roi is required", p))
			continue
		}
		if seen[d.ROI] {
			errs = append(errs, fmt.Errorf("%s.roi: duplicate curve for %q", p, d.ROI))
		}
		seen[d.ROI] = true
		if err := toDomainDVH(d).Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p, err))
		}
	}
	return errs
}
