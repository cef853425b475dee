// Package evaluation computes a compliance verdict for one leaf indicator
// from its published calculation schema and the submitted response values.
// The walk is purely functional: identical inputs always yield identical
// verdicts, which the audit trail depends on.
package evaluation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/models/checklist"
)

// itemOutcome is the tri-state result of checking a single checklist item.
// Informational items (no threshold, optional and unanswered) never gate the
// verdict.
type itemOutcome int

const (
	outcomeSatisfied itemOutcome = iota
	outcomeConditional
	outcomeUnsatisfied
	outcomeInformational
)

// Result carries the verdict plus the variable bag handed to the external
// remark-templating service. The engine never renders display text beyond a
// plain factual remark.
type Result struct {
	Verdict   models.ComplianceVerdict
	Variables map[string]string
}

// Evaluate checks the submitted responses against the calculation schema.
// Missing or malformed responses degrade to "not satisfied" for the item in
// question; the computation itself never fails, since a submission may
// legitimately be incomplete before finalization.
func Evaluate(schema checklist.Config, responses map[string]any) Result {
	var satisfied, conditional, unsatisfied int
	for _, item := range schema.Items {
		switch evaluateItem(item, responses) {
		case outcomeSatisfied:
			satisfied++
		case outcomeConditional:
			conditional++
		case outcomeUnsatisfied:
			unsatisfied++
		}
	}

	gated := satisfied + conditional + unsatisfied

	var status models.ComplianceStatus
	switch {
	case unsatisfied > 0:
		status = models.Fail
	case conditional > 0:
		status = models.Conditional
	default:
		status = models.Pass
	}

	return Result{
		Verdict: models.ComplianceVerdict{
			Status: status,
			Remark: remarkFor(status, satisfied+conditional, gated),
		},
		Variables: map[string]string{
			"requirements_total":     strconv.Itoa(gated),
			"requirements_met":       strconv.Itoa(satisfied),
			"requirements_condition": strconv.Itoa(conditional),
			"requirements_unmet":     strconv.Itoa(unsatisfied),
		},
	}
}

func remarkFor(status models.ComplianceStatus, met, total int) string {
	switch status {
	case models.Pass:
		return fmt.Sprintf("%d of %d evidence requirements met", met, total)
	case models.Conditional:
		return fmt.Sprintf("%d of %d evidence requirements met, some within the grace period", met, total)
	default:
		return fmt.Sprintf("%d of %d evidence requirements met", met, total)
	}
}

func evaluateItem(item checklist.Item, responses map[string]any) itemOutcome {
	switch item.Type {
	case checklist.ItemCheckbox:
		return evaluateCheckbox(item, responses)
	case checklist.ItemGroup:
		return evaluateGroup(item, responses)
	case checklist.ItemCurrencyInput, checklist.ItemNumberInput:
		return evaluateThreshold(item, responses)
	case checklist.ItemDateInput:
		return evaluateDate(item, responses)
	case checklist.ItemRadioGroup:
		return evaluateRadioGroup(item, responses)
	case checklist.ItemDropdown:
		return evaluateDropdown(item, responses)
	case checklist.ItemAssessment:
		return evaluateAssessment(item, responses)
	}
	return outcomeInformational
}

// missingOutcome is the shared degradation rule: an unanswered required item
// is unsatisfied, an unanswered optional item does not gate the verdict.
func missingOutcome(item checklist.Item) itemOutcome {
	if item.Required {
		return outcomeUnsatisfied
	}
	return outcomeInformational
}

func evaluateCheckbox(item checklist.Item, responses map[string]any) itemOutcome {
	value, ok := responses[item.Id]
	if !ok {
		return missingOutcome(item)
	}
	if checked, ok := value.(bool); ok && checked {
		return outcomeSatisfied
	}
	return outcomeUnsatisfied
}

func evaluateGroup(item checklist.Item, responses map[string]any) itemOutcome {
	var satisfied, conditional, unsatisfied int
	for _, child := range item.Children {
		switch evaluateItem(child, responses) {
		case outcomeSatisfied:
			satisfied++
		case outcomeConditional:
			conditional++
		case outcomeUnsatisfied:
			unsatisfied++
		}
	}

	if satisfied+conditional+unsatisfied == 0 {
		return outcomeInformational
	}

	switch item.LogicOperator {
	case checklist.LogicOr:
		minRequired := 1
		if item.MinRequired != nil {
			minRequired = *item.MinRequired
		}
		switch {
		case satisfied >= minRequired:
			return outcomeSatisfied
		case satisfied+conditional >= minRequired:
			return outcomeConditional
		default:
			return outcomeUnsatisfied
		}
	default: // AND
		switch {
		case unsatisfied > 0:
			return outcomeUnsatisfied
		case conditional > 0:
			return outcomeConditional
		default:
			return outcomeSatisfied
		}
	}
}

func evaluateThreshold(item checklist.Item, responses map[string]any) itemOutcome {
	if item.Threshold == nil {
		// No threshold: the response is collected for information only and
		// never gates the verdict.
		return outcomeInformational
	}

	value, ok := responses[item.Id]
	if !ok {
		return missingOutcome(item)
	}
	number, ok := toFloat(value)
	if !ok {
		return outcomeUnsatisfied
	}
	if item.Comparator.Compare(number, *item.Threshold) {
		return outcomeSatisfied
	}
	return outcomeUnsatisfied
}

func evaluateDate(item checklist.Item, responses map[string]any) itemOutcome {
	value, ok := responses[item.Id]
	if !ok {
		return missingOutcome(item)
	}
	date, ok := toDate(value)
	if !ok {
		return outcomeUnsatisfied
	}

	if item.MinDate != nil && date.Before(*item.MinDate) {
		return outcomeUnsatisfied
	}
	if item.MaxDate == nil || !date.After(*item.MaxDate) {
		return outcomeSatisfied
	}

	// Past the deadline: the considered-status grace window can downgrade the
	// miss to Conditional instead of Fail.
	if item.ConsideredStatusEnabled && item.GracePeriodDays != nil {
		graceEnd := item.MaxDate.AddDate(0, 0, *item.GracePeriodDays)
		if !date.After(graceEnd) {
			return outcomeConditional
		}
	}
	return outcomeUnsatisfied
}

func evaluateRadioGroup(item checklist.Item, responses map[string]any) itemOutcome {
	value, ok := responses[item.Id]
	if !ok {
		return missingOutcome(item)
	}
	selected, ok := value.(string)
	if !ok || !hasOptionValue(item.Options, selected) {
		return outcomeUnsatisfied
	}
	return outcomeSatisfied
}

func evaluateDropdown(item checklist.Item, responses map[string]any) itemOutcome {
	value, ok := responses[item.Id]
	if !ok {
		return missingOutcome(item)
	}

	switch selected := value.(type) {
	case string:
		if hasOptionValue(item.Options, selected) {
			return outcomeSatisfied
		}
	case []string:
		if len(selected) == 0 {
			return missingOutcome(item)
		}
		if !item.AllowMultiple && len(selected) > 1 {
			return outcomeUnsatisfied
		}
		for _, v := range selected {
			if !hasOptionValue(item.Options, v) {
				return outcomeUnsatisfied
			}
		}
		return outcomeSatisfied
	}
	return outcomeUnsatisfied
}

func evaluateAssessment(item checklist.Item, responses map[string]any) itemOutcome {
	value, ok := responses[item.Id]
	if !ok {
		return missingOutcome(item)
	}

	switch judgment := value.(type) {
	case bool:
		if judgment {
			return outcomeSatisfied
		}
	case string:
		switch strings.ToLower(judgment) {
		case "yes", "compliant":
			return outcomeSatisfied
		}
	}
	return outcomeUnsatisfied
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		number, err := strconv.ParseFloat(v, 64)
		return number, err == nil
	}
	return 0, false
}

func toDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case string:
		if date, err := time.Parse("2006-01-02", v); err == nil {
			return date, true
		}
		if date, err := time.Parse(time.RFC3339, v); err == nil {
			return date, true
		}
	}
	return time.Time{}, false
}

func hasOptionValue(options []checklist.SelectOption, value string) bool {
	for _, option := range options {
		if option.Value == value {
			return true
		}
	}
	return false
}
