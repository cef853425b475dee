package checklist

import "time"

// ItemType is the closed discriminator of the checklist item union. The
// validator and evaluator switch exhaustively over it: adding a type means
// touching those switches, by compilation rather than by runtime string
// comparison.
type ItemType int

const (
	ItemCheckbox ItemType = iota
	ItemGroup
	ItemCurrencyInput
	ItemNumberInput
	ItemDateInput
	ItemRadioGroup
	ItemDropdown
	ItemAssessment
	UnknownItemType
)

func (t ItemType) String() string {
	switch t {
	case ItemCheckbox:
		return "checkbox"
	case ItemGroup:
		return "group"
	case ItemCurrencyInput:
		return "currency_input"
	case ItemNumberInput:
		return "number_input"
	case ItemDateInput:
		return "date_input"
	case ItemRadioGroup:
		return "radio_group"
	case ItemDropdown:
		return "dropdown"
	case ItemAssessment:
		return "assessment"
	}
	return "unknown"
}

func ItemTypeFrom(s string) ItemType {
	switch s {
	case "checkbox":
		return ItemCheckbox
	case "group":
		return ItemGroup
	case "currency_input":
		return ItemCurrencyInput
	case "number_input":
		return ItemNumberInput
	case "date_input":
		return ItemDateInput
	case "radio_group":
		return ItemRadioGroup
	case "dropdown":
		return ItemDropdown
	case "assessment":
		return ItemAssessment
	}
	return UnknownItemType
}

type LogicOperator int

const (
	LogicAnd LogicOperator = iota
	LogicOr
	UnknownLogicOperator
)

func (o LogicOperator) String() string {
	switch o {
	case LogicAnd:
		return "AND"
	case LogicOr:
		return "OR"
	}
	return "UNKNOWN"
}

func LogicOperatorFrom(s string) LogicOperator {
	switch s {
	case "", "AND":
		return LogicAnd
	case "OR":
		return LogicOr
	}
	return UnknownLogicOperator
}

// Comparator is the threshold direction of a currency or number item.
type Comparator int

const (
	ComparatorGte Comparator = iota
	ComparatorLte
	ComparatorGt
	ComparatorLt
	UnknownComparator
)

func (c Comparator) String() string {
	switch c {
	case ComparatorGte:
		return "gte"
	case ComparatorLte:
		return "lte"
	case ComparatorGt:
		return "gt"
	case ComparatorLt:
		return "lt"
	}
	return "unknown"
}

func ComparatorFrom(s string) Comparator {
	switch s {
	case "", "gte":
		return ComparatorGte
	case "lte":
		return ComparatorLte
	case "gt":
		return ComparatorGt
	case "lt":
		return ComparatorLt
	}
	return UnknownComparator
}

func (c Comparator) Compare(value, threshold float64) bool {
	switch c {
	case ComparatorGte:
		return value >= threshold
	case ComparatorLte:
		return value <= threshold
	case ComparatorGt:
		return value > threshold
	case ComparatorLt:
		return value < threshold
	}
	return false
}

type AssessmentType int

const (
	AssessmentYesNo AssessmentType = iota
	AssessmentCompliantNonCompliant
	UnknownAssessmentType
)

func (t AssessmentType) String() string {
	switch t {
	case AssessmentYesNo:
		return "YES_NO"
	case AssessmentCompliantNonCompliant:
		return "COMPLIANT_NON_COMPLIANT"
	}
	return "UNKNOWN"
}

func AssessmentTypeFrom(s string) AssessmentType {
	switch s {
	case "", "YES_NO":
		return AssessmentYesNo
	case "COMPLIANT_NON_COMPLIANT":
		return AssessmentCompliantNonCompliant
	}
	return UnknownAssessmentType
}

// SelectOption is one choice of a radio group or dropdown.
type SelectOption struct {
	Label string
	Value string
}

// Item is one node of the evidence checklist. A single struct with a type
// discriminator rather than an interface hierarchy: only the fields relevant
// to the Type are meaningful, everything else stays at its zero value.
type Item struct {
	Id       string
	Type     ItemType
	Label    string
	Required bool

	// checkbox
	DefaultChecked bool

	// group
	LogicOperator LogicOperator
	MinRequired   *int
	Children      []Item

	// currency_input / number_input
	MinValue     float64
	MaxValue     float64
	Threshold    *float64
	Comparator   Comparator
	CurrencyCode string
	Unit         string

	// date_input
	MinDate                 *time.Time
	MaxDate                 *time.Time
	GracePeriodDays         *int
	ConsideredStatusEnabled bool

	// radio_group / dropdown
	Options       []SelectOption
	DefaultValue  *string
	AllowMultiple bool
	Searchable    bool

	// assessment
	AssessmentType AssessmentType
}
