package models

// IssueSeverity separates blocking structural errors from advisory warnings.
// The two are never conflated: publishability is a function of errors alone.
type IssueSeverity int

const (
	SeverityError IssueSeverity = iota
	SeverityWarning
)

func (s IssueSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	}
	return "unknown"
}

// ValidationIssueCode identifies the rule a checklist item violated.
type ValidationIssueCode string

const (
	LabelRequired            ValidationIssueCode = "LABEL_REQUIRED"
	GroupChildrenRequired    ValidationIssueCode = "GROUP_CHILDREN_REQUIRED"
	MinRequiredMissing       ValidationIssueCode = "MIN_REQUIRED_MISSING"
	MinRequiredTooLow        ValidationIssueCode = "MIN_REQUIRED_TOO_LOW"
	MinRequiredTooHigh       ValidationIssueCode = "MIN_REQUIRED_TOO_HIGH"
	MinRequiredIgnored       ValidationIssueCode = "MIN_REQUIRED_IGNORED"
	RangeInverted            ValidationIssueCode = "RANGE_INVERTED"
	ThresholdOutOfRange      ValidationIssueCode = "THRESHOLD_OUT_OF_RANGE"
	ThresholdMissing         ValidationIssueCode = "THRESHOLD_MISSING"
	GracePeriodMissing       ValidationIssueCode = "GRACE_PERIOD_MISSING"
	GracePeriodNotPositive   ValidationIssueCode = "GRACE_PERIOD_NOT_POSITIVE"
	DateRangeInverted        ValidationIssueCode = "DATE_RANGE_INVERTED"
	NotEnoughOptions         ValidationIssueCode = "NOT_ENOUGH_OPTIONS"
	OptionLabelRequired      ValidationIssueCode = "OPTION_LABEL_REQUIRED"
	DuplicateOptionValues    ValidationIssueCode = "DUPLICATE_OPTION_VALUES"
	DefaultValueNotAnOption  ValidationIssueCode = "DEFAULT_VALUE_NOT_AN_OPTION"
	ChecklistTooDeep         ValidationIssueCode = "CHECKLIST_TOO_DEEP"
	UnknownChecklistItemType ValidationIssueCode = "UNKNOWN_ITEM_TYPE"
	UnknownGroupLogic        ValidationIssueCode = "UNKNOWN_LOGIC_OPERATOR"
	UnknownAssessmentKind    ValidationIssueCode = "UNKNOWN_ASSESSMENT_TYPE"
)

// ValidationIssue is one finding of the schema validator, attached to the
// checklist item that triggered it.
type ValidationIssue struct {
	ItemId   string
	Code     ValidationIssueCode
	Message  string
	Severity IssueSeverity
}

// ValidationReport is the outcome of validating one checklist configuration.
type ValidationReport struct {
	Errors       []ValidationIssue
	Warnings     []ValidationIssue
	IssuesByItem map[string][]ValidationIssue
}

func NewValidationReport() ValidationReport {
	return ValidationReport{
		Errors:       make([]ValidationIssue, 0),
		Warnings:     make([]ValidationIssue, 0),
		IssuesByItem: make(map[string][]ValidationIssue),
	}
}

// IsValid is driven purely by errors: warnings never block.
func (r ValidationReport) IsValid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationReport) Add(issue ValidationIssue) {
	switch issue.Severity {
	case SeverityError:
		r.Errors = append(r.Errors, issue)
	case SeverityWarning:
		r.Warnings = append(r.Warnings, issue)
	}
	r.IssuesByItem[issue.ItemId] = append(r.IssuesByItem[issue.ItemId], issue)
}
