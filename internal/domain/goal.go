package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownGoalKind is returned when a stored or imported goal type matches
// neither VolumeAtDose nor DoseAtVolume.
var ErrUnknownGoalKind = errors.New("unrecognized goal kind")

// ErrUnknownCriteria is returned for criteria other than AtMost/AtLeast.
var ErrUnknownCriteria = errors.New("unrecognized goal criteria")

type Criteria string

const (
	CriteriaAtMost  Criteria = "AtMost"
	CriteriaAtLeast Criteria = "AtLeast"
)

// ParseCriteria accepts the planning-system spelling of a goal direction.
func ParseCriteria(s string) (Criteria, error) {
	switch Criteria(s) {
	case CriteriaAtMost, CriteriaAtLeast:
		return Criteria(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCriteria, s)
}

// Satisfied compares an achieved value against an acceptance level, both in
// the same (raw) units.
func (c Criteria) Satisfied(achieved, level float64) bool {
	if c == CriteriaAtLeast {
		return achieved >= level
	}
	return achieved <= level
}

// GoalValues is the numeric triple of a clinical goal: acceptance level,
// parameter value and achieved value.
type GoalValues struct {
	AcceptanceLevel float64
	ParameterValue  float64
	AchievedValue   float64
}

// GoalKind is a closed set: only VolumeAtDose and DoseAtVolume implement it.
// Each kind knows how to move its raw values (volume fraction, cGy) into the
// display convention (percent, Gy).
type GoalKind interface {
	String() string
	ToDisplay(raw GoalValues) GoalValues
	FromDisplay(display GoalValues) GoalValues
	goalKind()
}

// VolumeAtDose goals read "at most/least V% volume receives dose D".
// Level and achieved value are volume fractions, the parameter is a dose.
type VolumeAtDose struct{}

func (VolumeAtDose) String() string { return "VolumeAtDose" }

func (VolumeAtDose) ToDisplay(raw GoalValues) GoalValues {
	return GoalValues{
		AcceptanceLevel: FractionToPercent(raw.AcceptanceLevel),
		ParameterValue:  CGyToGy(raw.ParameterValue),
		AchievedValue:   FractionToPercent(raw.AchievedValue),
	}
}

func (VolumeAtDose) FromDisplay(display GoalValues) GoalValues {
	return GoalValues{
		AcceptanceLevel: PercentToFraction(display.AcceptanceLevel),
		ParameterValue:  GyToCGy(display.ParameterValue),
		AchievedValue:   PercentToFraction(display.AchievedValue),
	}
}

func (VolumeAtDose) goalKind() {}

// DoseAtVolume goals read "at most/least dose D is received by volume V%".
// Level and achieved value are doses, the parameter is a volume fraction.
type DoseAtVolume struct{}

func (DoseAtVolume) String() string { return "DoseAtVolume" }

func (DoseAtVolume) ToDisplay(raw GoalValues) GoalValues {
	return GoalValues{
		AcceptanceLevel: CGyToGy(raw.AcceptanceLevel),
		ParameterValue:  FractionToPercent(raw.ParameterValue),
		AchievedValue:   CGyToGy(raw.AchievedValue),
	}
}

func (DoseAtVolume) FromDisplay(display GoalValues) GoalValues {
	return GoalValues{
		AcceptanceLevel: GyToCGy(display.AcceptanceLevel),
		ParameterValue:  PercentToFraction(display.ParameterValue),
		AchievedValue:   GyToCGy(display.AchievedValue),
	}
}

func (DoseAtVolume) goalKind() {}

// ParseGoalKind is the only place a goal type string is interpreted.
func ParseGoalKind(s string) (GoalKind, error) {
	switch s {
	case "VolumeAtDose":
		return VolumeAtDose{}, nil
	case "DoseAtVolume":
		return DoseAtVolume{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGoalKind, s)
}

func FractionToPercent(v float64) float64 { return v * 100 }
func PercentToFraction(v float64) float64 { return v / 100 }
func CGyToGy(v float64) float64           { return v / 100 }
func GyToCGy(v float64) float64           { return v * 100 }

// RecordedResult holds the achieved value and verdict captured by the
// planning system when the case was exported, in raw units.
type RecordedResult struct {
	Value    float64
	Achieved bool
}

// Goal is one clinical goal of a plan, in the planning system's raw units.
type Goal struct {
	ID              string
	PlanID          string
	RegionName      string
	Criteria        Criteria
	Kind            GoalKind
	AcceptanceLevel float64
	ParameterValue  float64
	OrderIndex      int
	Recorded        *RecordedResult
}

// Describe returns a short human label such as "PTV VolumeAtDose".
func (g *Goal) Describe() string {
	kind := "<nil>"
	if g.Kind != nil {
		kind = g.Kind.String()
	}
	return fmt.Sprintf("%s %s %s", g.RegionName, g.Criteria, kind)
}
