package models

import "time"

type AssessmentStatus int

const (
	AssessmentDraft AssessmentStatus = iota
	AssessmentSubmitted
	AssessmentCalculated
	UnknownAssessmentStatus
)

func (s AssessmentStatus) String() string {
	switch s {
	case AssessmentDraft:
		return "draft"
	case AssessmentSubmitted:
		return "submitted"
	case AssessmentCalculated:
		return "calculated"
	}
	return "unknown"
}

func AssessmentStatusFrom(s string) AssessmentStatus {
	switch s {
	case "draft":
		return AssessmentDraft
	case "submitted":
		return AssessmentSubmitted
	case "calculated":
		return AssessmentCalculated
	}
	return UnknownAssessmentStatus
}

// Assessment is one self-assessment campaign of a barangay against the
// indicator tree of a governance area.
type Assessment struct {
	Id               string
	BarangayName     string
	GovernanceAreaId string
	Status           AssessmentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IndicatorResponse is the raw response payload submitted for one leaf
// indicator, keyed by checklist item id inside the JSON document.
type IndicatorResponse struct {
	AssessmentId string
	IndicatorId  string
	Payload      []byte
	SubmittedAt  time.Time
}

// ManualVerdict is a verdict assigned by a human validator to a MANUAL
// indicator. The engine passes it through without recomputing anything.
type ManualVerdict struct {
	AssessmentId string
	IndicatorId  string
	Status       ComplianceStatus
	Remark       string
	ValidatorId  string
	DecidedAt    time.Time
}

// IndicatorVerdictRecord is a computed verdict stored for one indicator of an
// assessment, so that assessor and validator screens can reread it without
// recomputing. The engine only ever reads and overwrites whole records.
type IndicatorVerdictRecord struct {
	AssessmentId string
	IndicatorId  string
	Verdict      ComplianceVerdict
	CalculatedAt time.Time
}

// ScenarioSelection records which child applies for a one_of indicator in a
// given assessment. Resolving the selection is external to the engine.
type ScenarioSelection struct {
	AssessmentId string
	IndicatorId  string
	ChildId      string
}
