package domain

import "time"

// Patient is the person a case belongs to. PatientID is the hospital
// identifier printed in export file names; ID is the internal key.
type Patient struct {
	ID        string
	PatientID string
	Name      string
	CreatedAt time.Time
}

// Case owns an ordered sequence of plans. Plans is in insertion order, which
// is also evaluation and export order.
type Case struct {
	ID        string
	Patient   Patient
	Name      string
	Plans     []*Plan
	CreatedAt time.Time
}

// GoalCount returns the total number of clinical goals across all plans.
func (c *Case) GoalCount() int {
	n := 0
	for _, p := range c.Plans {
		if p != nil {
			n += len(p.Goals)
		}
	}
	return n
}

// Plan is one treatment plan of a case. Name is used verbatim in exports.
type Plan struct {
	ID         string
	CaseID     string
	Name       string
	OrderIndex int
	Goals      []*Goal
	DVHs       []DVH
}

// DVHFor returns the dose-volume histogram recorded for the given ROI.
func (p *Plan) DVHFor(regionName string) (DVH, bool) {
	for _, d := range p.DVHs {
		if d.RegionName == regionName {
			return d, true
		}
	}
	return DVH{}, false
}

// CaseSummary is a list view of one stored case.
type CaseSummary struct {
	CaseID      string
	CaseName    string
	PatientID   string
	PatientName string
	PlanCount   int
	GoalCount   int
}
