package models

import "time"

// SubIndicatorResult is one associated sub-indicator's contribution to a BBI
// compliance result.
type SubIndicatorResult struct {
	Code   string
	Name   string
	Passed bool
}

// BbiComplianceResult is the per-institution report row computed for one
// assessment, combining the institution rating with its indicator context.
type BbiComplianceResult struct {
	Id                   string
	AssessmentId         string
	BbiId                string
	BbiName              string
	BbiAbbreviation      string
	IndicatorCode        string
	GovernanceAreaId     string
	CompliancePercentage float64
	ComplianceRating     ComplianceRating
	SubIndicatorsPassed  int
	SubIndicatorsTotal   int
	SubIndicatorResults  []SubIndicatorResult
	CalculatedAt         time.Time
}

// BbiComplianceSummary is the assessment-level roll-up across all tracked BBIs.
type BbiComplianceSummary struct {
	TotalBbis                 int
	HighlyFunctionalCount     int
	ModeratelyFunctionalCount int
	LowFunctionalCount        int
	NonFunctionalCount        int
	AverageCompliancePercent  float64
}

// ComplianceReport is the full outcome of calculating one assessment.
type ComplianceReport struct {
	AssessmentId string
	Verdicts     map[string]ComplianceVerdict
	BbiResults   []BbiComplianceResult
	Summary      BbiComplianceSummary
	Anomalies    []AggregationAnomaly
	CalculatedAt time.Time
}

// AggregationAnomalyKind classifies data-integrity faults met during
// aggregation. They are surfaced to the caller as structured facts, never
// turned into a guessed Pass/Fail.
type AggregationAnomalyKind int

const (
	AnomalyCycle AggregationAnomalyKind = iota
	AnomalyMissingChildVerdict
	AnomalyMissingScenarioChoice
	AnomalyUnknownScenarioChoice
	AnomalyTreeTooDeep
)

func (k AggregationAnomalyKind) String() string {
	switch k {
	case AnomalyCycle:
		return "cycle"
	case AnomalyMissingChildVerdict:
		return "missing_child_verdict"
	case AnomalyMissingScenarioChoice:
		return "missing_scenario_choice"
	case AnomalyUnknownScenarioChoice:
		return "unknown_scenario_choice"
	case AnomalyTreeTooDeep:
		return "tree_too_deep"
	}
	return "unknown"
}

type AggregationAnomaly struct {
	IndicatorId string
	Kind        AggregationAnomalyKind
	Detail      string
}
