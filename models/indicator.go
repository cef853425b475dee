package models

import (
	"time"

	"github.com/lgu-seal/sglgb-backend/models/checklist"
)

type AutoCalcMethod int

const (
	// CalcAuto indicators derive their verdict from their children.
	CalcAuto AutoCalcMethod = iota
	// CalcManual indicators carry whatever verdict a human validator assigned.
	CalcManual
	// CalcNone indicators are leaves assessed directly through their own checklist.
	CalcNone
	UnknownCalcMethod
)

func (m AutoCalcMethod) String() string {
	switch m {
	case CalcAuto:
		return "AUTO"
	case CalcManual:
		return "MANUAL"
	case CalcNone:
		return "NONE"
	}
	return "UNKNOWN"
}

func AutoCalcMethodFrom(s string) AutoCalcMethod {
	switch s {
	case "AUTO":
		return CalcAuto
	case "MANUAL":
		return CalcManual
	case "NONE":
		return CalcNone
	}
	return UnknownCalcMethod
}

type SelectionMode int

const (
	// SelectionAll applies every child to the submission.
	SelectionAll SelectionMode = iota
	// SelectionOneOf applies only the single child flagged as the applicable
	// scenario. Which child that is comes from the submission, never from the
	// engine.
	SelectionOneOf
	UnknownSelectionMode
)

func (m SelectionMode) String() string {
	switch m {
	case SelectionAll:
		return "all"
	case SelectionOneOf:
		return "one_of"
	}
	return "unknown"
}

func SelectionModeFrom(s string) SelectionMode {
	switch s {
	case "all":
		return SelectionAll
	case "one_of":
		return SelectionOneOf
	}
	return UnknownSelectionMode
}

// Indicator is one row of the indicator tree arena. Parent/child links are
// ids into the same flat slice, never object pointers, so that re-parenting
// outside this engine cannot create dangling references.
type Indicator struct {
	Id                string
	GovernanceAreaId  string
	Code              string
	Name              string
	ParentId          *string
	ChildIds          []string
	AutoCalcMethod    AutoCalcMethod
	LogicalOperator   checklist.LogicOperator
	SelectionMode     SelectionMode
	BbiId             *string
	CalculationSchema *checklist.Config
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (i Indicator) IsLeaf() bool {
	return len(i.ChildIds) == 0
}

type GovernanceArea struct {
	Id   string
	Name string
	Code string
}
