package models

// Bbi is a barangay-based institution tracked across the indicator tree
// (e.g. the local development council or the disaster risk committee).
type Bbi struct {
	Id           string
	Name         string
	Abbreviation string
}

// ComplianceRating is the four-tier functionality classification of a BBI.
type ComplianceRating int

const (
	NonFunctional ComplianceRating = iota
	LowFunctional
	ModeratelyFunctional
	HighlyFunctional
	UnknownRating
)

func (r ComplianceRating) String() string {
	switch r {
	case NonFunctional:
		return "NON_FUNCTIONAL"
	case LowFunctional:
		return "LOW_FUNCTIONAL"
	case ModeratelyFunctional:
		return "MODERATELY_FUNCTIONAL"
	case HighlyFunctional:
		return "HIGHLY_FUNCTIONAL"
	}
	return "UNKNOWN"
}

func ComplianceRatingFrom(s string) ComplianceRating {
	switch s {
	case "NON_FUNCTIONAL":
		return NonFunctional
	case "LOW_FUNCTIONAL":
		return LowFunctional
	case "MODERATELY_FUNCTIONAL":
		return ModeratelyFunctional
	case "HIGHLY_FUNCTIONAL":
		return HighlyFunctional
	}
	return UnknownRating
}

// RatingFromPercentage classifies a compliance percentage into the four-tier
// table: 0, 1-49, 50-74, 75-100. The percentage keeps floating precision, so
// 42.86 lands in LOW_FUNCTIONAL and 74.99 stays MODERATELY_FUNCTIONAL.
func RatingFromPercentage(percentage float64) ComplianceRating {
	switch {
	case percentage <= 0:
		return NonFunctional
	case percentage < 50:
		return LowFunctional
	case percentage < 75:
		return ModeratelyFunctional
	default:
		return HighlyFunctional
	}
}

// InstitutionRating is the pass-rate roll-up of the sub-indicators associated
// with one BBI. Derived on every aggregation, never stored by the engine.
type InstitutionRating struct {
	BbiId                string
	SubIndicatorsPassed  int
	SubIndicatorsTotal   int
	CompliancePercentage float64
	ComplianceRating     ComplianceRating
}
