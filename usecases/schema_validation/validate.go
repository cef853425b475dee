// Package schema_validation checks the structural correctness of an evidence
// checklist configuration before it can be published. It is a pure, read-only
// tree walk: no assessment data is involved and the input is never mutated.
package schema_validation

import (
	"fmt"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/models/checklist"
)

// maxChecklistDepth is a defensive ceiling against malformed configuration
// data. The data model makes cycles structurally impossible, so any checklist
// this deep is corrupt rather than legitimate.
const maxChecklistDepth = 20

// Validate walks the checklist configuration and reports every structural
// error and advisory warning it finds. An empty configuration is valid:
// having nothing to check is not an error.
func Validate(config checklist.Config) models.ValidationReport {
	report := models.NewValidationReport()
	for _, item := range config.Items {
		validateItem(&report, item, 1)
	}
	return report
}

func validateItem(report *models.ValidationReport, item checklist.Item, depth int) {
	if depth > maxChecklistDepth {
		report.Add(models.ValidationIssue{
			ItemId:   item.Id,
			Code:     models.ChecklistTooDeep,
			Message:  fmt.Sprintf("Checklist structure exceeds the maximum depth of %d", maxChecklistDepth),
			Severity: models.SeverityError,
		})
		return
	}

	if item.Label == "" {
		addError(report, item, models.LabelRequired, "Label is required")
	}

	switch item.Type {
	case checklist.ItemCheckbox:
		// nothing beyond the common rules

	case checklist.ItemAssessment:
		if item.AssessmentType == checklist.UnknownAssessmentType {
			addError(report, item, models.UnknownAssessmentKind,
				fmt.Sprintf("Unknown assessment type %q", item.AssessmentType))
		}

	case checklist.ItemGroup:
		validateGroup(report, item)
		for _, child := range item.Children {
			validateItem(report, child, depth+1)
		}

	case checklist.ItemCurrencyInput, checklist.ItemNumberInput:
		validateValueRange(report, item)

	case checklist.ItemDateInput:
		validateDate(report, item)

	case checklist.ItemRadioGroup:
		validateRadioGroup(report, item)

	case checklist.ItemDropdown:
		validateDropdown(report, item)

	default:
		addError(report, item, models.UnknownChecklistItemType,
			fmt.Sprintf("Unknown checklist item type %q", item.Type))
	}
}

func validateGroup(report *models.ValidationReport, item checklist.Item) {
	if len(item.Children) == 0 {
		addError(report, item, models.GroupChildrenRequired, "Group must contain at least one child item")
		return
	}

	switch item.LogicOperator {
	case checklist.LogicOr:
		switch {
		case item.MinRequired == nil:
			addError(report, item, models.MinRequiredMissing,
				"OR groups must define the minimum number of required children")
		case *item.MinRequired < 1:
			addError(report, item, models.MinRequiredTooLow,
				"Minimum required children must be at least 1")
		case *item.MinRequired > len(item.Children):
			addError(report, item, models.MinRequiredTooHigh,
				"Minimum required children cannot exceed number of children")
		}
	case checklist.LogicAnd:
		if item.MinRequired != nil {
			addWarning(report, item, models.MinRequiredIgnored,
				"Minimum required children has no effect on AND groups")
		}
	default:
		addError(report, item, models.UnknownGroupLogic,
			fmt.Sprintf("Unknown logic operator %q", item.LogicOperator))
	}
}

func validateValueRange(report *models.ValidationReport, item checklist.Item) {
	if item.MaxValue <= item.MinValue {
		addError(report, item, models.RangeInverted,
			"Maximum value must be greater than minimum value")
	}

	switch {
	case item.Threshold == nil:
		addWarning(report, item, models.ThresholdMissing,
			"No threshold configured: responses will be informational only")
	case *item.Threshold < item.MinValue || *item.Threshold > item.MaxValue:
		addWarning(report, item, models.ThresholdOutOfRange,
			"Threshold lies outside the configured value range")
	}
}

func validateDate(report *models.ValidationReport, item checklist.Item) {
	if item.ConsideredStatusEnabled && item.GracePeriodDays == nil {
		addError(report, item, models.GracePeriodMissing,
			"Considered status requires a grace period")
	}
	if item.GracePeriodDays != nil && *item.GracePeriodDays <= 0 {
		addError(report, item, models.GracePeriodNotPositive,
			"Grace period must be greater than zero")
	}
	if item.MinDate != nil && item.MaxDate != nil && !item.MaxDate.After(*item.MinDate) {
		addError(report, item, models.DateRangeInverted,
			"Maximum date must be after minimum date")
	}
}

func validateRadioGroup(report *models.ValidationReport, item checklist.Item) {
	if len(item.Options) < 2 {
		addError(report, item, models.NotEnoughOptions,
			"Radio groups must have at least 2 options")
	}
	for _, option := range item.Options {
		if option.Label == "" {
			addError(report, item, models.OptionLabelRequired, "Option labels are required")
			break
		}
	}
	validateOptionValues(report, item)

	if item.DefaultValue != nil && !hasOptionValue(item.Options, *item.DefaultValue) {
		addWarning(report, item, models.DefaultValueNotAnOption,
			"Default value does not match any option value")
	}
}

// Dropdown option labels are a display concern: an empty label is not a
// structural fault the way it is for radio groups.
func validateDropdown(report *models.ValidationReport, item checklist.Item) {
	if len(item.Options) == 0 {
		addError(report, item, models.NotEnoughOptions,
			"Dropdowns must have at least one option")
	}
	validateOptionValues(report, item)
}

func validateOptionValues(report *models.ValidationReport, item checklist.Item) {
	seen := make(map[string]bool, len(item.Options))
	for _, option := range item.Options {
		if seen[option.Value] {
			addError(report, item, models.DuplicateOptionValues, "Option values must be unique")
			return
		}
		seen[option.Value] = true
	}
}

func hasOptionValue(options []checklist.SelectOption, value string) bool {
	for _, option := range options {
		if option.Value == value {
			return true
		}
	}
	return false
}

func addError(report *models.ValidationReport, item checklist.Item, code models.ValidationIssueCode, message string) {
	report.Add(models.ValidationIssue{
		ItemId:   item.Id,
		Code:     code,
		Message:  message,
		Severity: models.SeverityError,
	})
}

func addWarning(report *models.ValidationReport, item checklist.Item, code models.ValidationIssueCode, message string) {
	report.Add(models.ValidationIssue{
		ItemId:   item.Id,
		Code:     code,
		Message:  message,
		Severity: models.SeverityWarning,
	})
}
