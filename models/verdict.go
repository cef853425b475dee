package models

// ComplianceStatus is the outcome of evaluating one indicator.
type ComplianceStatus int

const (
	Pass ComplianceStatus = iota
	Fail
	Conditional
	// Indeterminate is only ever produced by the aggregator when an
	// AggregationAnomaly prevents it from computing a trustworthy verdict.
	Indeterminate
	UnknownStatus
)

var ValidComplianceStatuses = []ComplianceStatus{Pass, Fail, Conditional}

func (s ComplianceStatus) String() string {
	switch s {
	case Pass:
		return "Pass"
	case Fail:
		return "Fail"
	case Conditional:
		return "Conditional"
	case Indeterminate:
		return "Indeterminate"
	}
	return "Unknown"
}

func ComplianceStatusFrom(s string) ComplianceStatus {
	switch s {
	case "Pass":
		return Pass
	case "Fail":
		return Fail
	case "Conditional":
		return Conditional
	case "Indeterminate":
		return Indeterminate
	}
	return UnknownStatus
}

// ComplianceVerdict is computed fresh on every evaluation and never persisted
// by the engine itself. It is a pure function of (schema, responses): the same
// inputs must always produce the same verdict.
type ComplianceVerdict struct {
	Status ComplianceStatus
	Remark string
}

// CombineAnd folds child statuses with AND semantics: Fail wins over
// Conditional, Conditional wins over Pass.
func CombineAnd(statuses []ComplianceStatus) ComplianceStatus {
	combined := Pass
	for _, status := range statuses {
		switch status {
		case Fail:
			return Fail
		case Conditional:
			combined = Conditional
		}
	}
	return combined
}

// CombineOr folds child statuses with OR semantics. A single Pass is enough;
// otherwise Conditional ranks above Fail. The ordering
// Pass > Conditional > Fail is the authoritative compliance policy and is
// deliberately encoded in this one place.
func CombineOr(statuses []ComplianceStatus) ComplianceStatus {
	combined := Fail
	for _, status := range statuses {
		switch status {
		case Pass:
			return Pass
		case Conditional:
			combined = Conditional
		}
	}
	return combined
}
