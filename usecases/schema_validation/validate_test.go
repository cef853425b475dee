package schema_validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/models/checklist"
	"github.com/lgu-seal/sglgb-backend/pure_utils"
)

func TestValidate_emptyConfig(t *testing.T) {
	report := Validate(checklist.Config{})

	assert.True(t, report.IsValid())
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
}

func TestValidate_emptyLabel(t *testing.T) {
	report := Validate(checklist.Config{
		Items: []checklist.Item{
			{Id: "item_1", Type: checklist.ItemCheckbox, Label: ""},
		},
	})

	assert.False(t, report.IsValid())
	assert.Len(t, report.Errors, 1)
	assert.Equal(t, "item_1", report.Errors[0].ItemId)
	assert.Equal(t, "Label is required", report.Errors[0].Message)
	assert.Len(t, report.IssuesByItem["item_1"], 1)
}

func TestValidate_groupWithoutChildren(t *testing.T) {
	for _, operator := range []checklist.LogicOperator{checklist.LogicAnd, checklist.LogicOr} {
		report := Validate(checklist.Config{
			Items: []checklist.Item{
				{Id: "group_1", Type: checklist.ItemGroup, Label: "Documents", LogicOperator: operator},
			},
		})

		assert.False(t, report.IsValid())
		assert.Len(t, report.Errors, 1, "operator %s", operator)
		assert.Equal(t, models.GroupChildrenRequired, report.Errors[0].Code)
	}
}

func orGroup(minRequired *int, childCount int) checklist.Config {
	children := make([]checklist.Item, childCount)
	for i := range children {
		children[i] = checklist.Item{
			Id:    "child",
			Type:  checklist.ItemCheckbox,
			Label: "Evidence",
		}
	}
	return checklist.Config{
		Items: []checklist.Item{{
			Id:            "group_1",
			Type:          checklist.ItemGroup,
			Label:         "Any of",
			LogicOperator: checklist.LogicOr,
			MinRequired:   minRequired,
			Children:      children,
		}},
	}
}

func TestValidate_orGroupMinRequired(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		report := Validate(orGroup(nil, 2))
		assert.False(t, report.IsValid())
		assert.Equal(t, models.MinRequiredMissing, report.Errors[0].Code)
	})

	t.Run("zero", func(t *testing.T) {
		report := Validate(orGroup(pure_utils.Ptr(0), 2))
		assert.False(t, report.IsValid())
		assert.Equal(t, models.MinRequiredTooLow, report.Errors[0].Code)
		assert.Contains(t, report.Errors[0].Message, "must be at least 1")
	})

	t.Run("above child count", func(t *testing.T) {
		report := Validate(orGroup(pure_utils.Ptr(3), 2))
		assert.False(t, report.IsValid())
		assert.Equal(t, models.MinRequiredTooHigh, report.Errors[0].Code)
		assert.Contains(t, report.Errors[0].Message, "cannot exceed number of children")
	})

	t.Run("in range", func(t *testing.T) {
		report := Validate(orGroup(pure_utils.Ptr(2), 2))
		assert.True(t, report.IsValid())
	})
}

func TestValidate_andGroupWithMinRequired(t *testing.T) {
	report := Validate(checklist.Config{
		Items: []checklist.Item{{
			Id:            "group_1",
			Type:          checklist.ItemGroup,
			Label:         "All of",
			LogicOperator: checklist.LogicAnd,
			MinRequired:   pure_utils.Ptr(1),
			Children: []checklist.Item{
				{Id: "child_1", Type: checklist.ItemCheckbox, Label: "Evidence"},
			},
		}},
	})

	assert.True(t, report.IsValid())
	assert.Len(t, report.Warnings, 1)
	assert.Equal(t, models.MinRequiredIgnored, report.Warnings[0].Code)
}

func TestValidate_groupWithUnknownLogicOperator(t *testing.T) {
	report := Validate(checklist.Config{
		Items: []checklist.Item{{
			Id:            "group_1",
			Type:          checklist.ItemGroup,
			Label:         "Evidence",
			LogicOperator: checklist.LogicOperatorFrom("XOR"),
			Children: []checklist.Item{
				{Id: "leaf_1", Type: checklist.ItemCheckbox, Label: "Resolution on file"},
			},
		}},
	})

	assert.False(t, report.IsValid())
	assert.Len(t, report.Errors, 1)
	assert.Equal(t, models.UnknownGroupLogic, report.Errors[0].Code)
	assert.Equal(t, "group_1", report.Errors[0].ItemId)
}

func TestValidate_valueRanges(t *testing.T) {
	t.Run("inverted range", func(t *testing.T) {
		report := Validate(checklist.Config{
			Items: []checklist.Item{{
				Id:       "budget",
				Type:     checklist.ItemCurrencyInput,
				Label:    "Allocated budget",
				MinValue: 1000,
				MaxValue: 1000,
			}},
		})
		assert.False(t, report.IsValid())
		assert.Equal(t, models.RangeInverted, report.Errors[0].Code)
	})

	t.Run("threshold outside range is a warning", func(t *testing.T) {
		report := Validate(checklist.Config{
			Items: []checklist.Item{{
				Id:        "headcount",
				Type:      checklist.ItemNumberInput,
				Label:     "Member count",
				MinValue:  0,
				MaxValue:  100,
				Threshold: pure_utils.Ptr(150.0),
			}},
		})
		assert.True(t, report.IsValid())
		assert.Len(t, report.Warnings, 1)
		assert.Equal(t, models.ThresholdOutOfRange, report.Warnings[0].Code)
	})

	t.Run("absent threshold is a warning", func(t *testing.T) {
		report := Validate(checklist.Config{
			Items: []checklist.Item{{
				Id:       "headcount",
				Type:     checklist.ItemNumberInput,
				Label:    "Member count",
				MinValue: 0,
				MaxValue: 100,
			}},
		})
		assert.True(t, report.IsValid())
		assert.Len(t, report.Warnings, 1)
		assert.Equal(t, models.ThresholdMissing, report.Warnings[0].Code)
	})
}

func TestValidate_dateItems(t *testing.T) {
	t.Run("considered status without grace period", func(t *testing.T) {
		report := Validate(checklist.Config{
			Items: []checklist.Item{{
				Id:                      "submission_date",
				Type:                    checklist.ItemDateInput,
				Label:                   "Submission date",
				ConsideredStatusEnabled: true,
			}},
		})
		assert.False(t, report.IsValid())
		assert.Equal(t, models.GracePeriodMissing, report.Errors[0].Code)
	})

	t.Run("non positive grace period", func(t *testing.T) {
		report := Validate(checklist.Config{
			Items: []checklist.Item{{
				Id:                      "submission_date",
				Type:                    checklist.ItemDateInput,
				Label:                   "Submission date",
				ConsideredStatusEnabled: true,
				GracePeriodDays:         pure_utils.Ptr(0),
			}},
		})
		assert.False(t, report.IsValid())
		assert.Equal(t, models.GracePeriodNotPositive, report.Errors[0].Code)
	})

	t.Run("inverted date range", func(t *testing.T) {
		minDate := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
		maxDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		report := Validate(checklist.Config{
			Items: []checklist.Item{{
				Id:      "submission_date",
				Type:    checklist.ItemDateInput,
				Label:   "Submission date",
				MinDate: &minDate,
				MaxDate: &maxDate,
			}},
		})
		assert.False(t, report.IsValid())
		assert.Equal(t, models.DateRangeInverted, report.Errors[0].Code)
	})
}

func TestValidate_radioGroup(t *testing.T) {
	options := []checklist.SelectOption{
		{Label: "Yes", Value: "yes"},
		{Label: "No", Value: "no"},
	}

	t.Run("not enough options", func(t *testing.T) {
		report := Validate(checklist.Config{
			Items: []checklist.Item{{
				Id:      "radio_1",
				Type:    checklist.ItemRadioGroup,
				Label:   "Posted publicly?",
				Options: options[:1],
			}},
		})
		assert.False(t, report.IsValid())
		assert.Equal(t, models.NotEnoughOptions, report.Errors[0].Code)
	})

	t.Run("duplicate option values", func(t *testing.T) {
		report := Validate(checklist.Config{
			Items: []checklist.Item{{
				Id:    "radio_1",
				Type:  checklist.ItemRadioGroup,
				Label: "Posted publicly?",
				Options: []checklist.SelectOption{
					{Label: "Yes", Value: "yes"},
					{Label: "Also yes", Value: "yes"},
				},
			}},
		})
		assert.False(t, report.IsValid())
		assert.Equal(t, models.DuplicateOptionValues, report.Errors[0].Code)
	})

	t.Run("default value not among options", func(t *testing.T) {
		report := Validate(checklist.Config{
			Items: []checklist.Item{{
				Id:           "radio_1",
				Type:         checklist.ItemRadioGroup,
				Label:        "Posted publicly?",
				Options:      options,
				DefaultValue: pure_utils.Ptr("maybe"),
			}},
		})
		assert.True(t, report.IsValid())
		assert.Len(t, report.Warnings, 1)
		assert.Equal(t, models.DefaultValueNotAnOption, report.Warnings[0].Code)
	})
}

func TestValidate_dropdown(t *testing.T) {
	t.Run("zero options", func(t *testing.T) {
		report := Validate(checklist.Config{
			Items: []checklist.Item{{
				Id:    "dropdown_1",
				Type:  checklist.ItemDropdown,
				Label: "Meeting frequency",
			}},
		})

		assert.False(t, report.IsValid())
		assert.Equal(t, models.NotEnoughOptions, report.Errors[0].Code)
	})

	t.Run("empty option labels are allowed", func(t *testing.T) {
		report := Validate(checklist.Config{
			Items: []checklist.Item{{
				Id:    "dropdown_1",
				Type:  checklist.ItemDropdown,
				Label: "Meeting frequency",
				Options: []checklist.SelectOption{
					{Label: "", Value: "monthly"},
					{Label: "Quarterly", Value: "quarterly"},
				},
			}},
		})

		assert.True(t, report.IsValid())
		assert.Empty(t, report.Errors)
	})
}

func TestValidate_radioGroupEmptyOptionLabels(t *testing.T) {
	report := Validate(checklist.Config{
		Items: []checklist.Item{{
			Id:    "radio_1",
			Type:  checklist.ItemRadioGroup,
			Label: "Posted publicly?",
			Options: []checklist.SelectOption{
				{Label: "", Value: "yes"},
				{Label: "No", Value: "no"},
			},
		}},
	})

	assert.False(t, report.IsValid())
	assert.Len(t, report.Errors, 1)
	assert.Equal(t, models.OptionLabelRequired, report.Errors[0].Code)
}

func TestValidate_assessmentWithUnknownType(t *testing.T) {
	report := Validate(checklist.Config{
		Items: []checklist.Item{{
			Id:             "assessment_1",
			Type:           checklist.ItemAssessment,
			Label:          "Validator judgment",
			AssessmentType: checklist.AssessmentTypeFrom("MAYBE"),
		}},
	})

	assert.False(t, report.IsValid())
	assert.Len(t, report.Errors, 1)
	assert.Equal(t, models.UnknownAssessmentKind, report.Errors[0].Code)
}

func TestValidate_recursesIntoGroups(t *testing.T) {
	report := Validate(checklist.Config{
		Items: []checklist.Item{{
			Id:            "group_1",
			Type:          checklist.ItemGroup,
			Label:         "Evidence",
			LogicOperator: checklist.LogicAnd,
			Children: []checklist.Item{{
				Id:            "group_2",
				Type:          checklist.ItemGroup,
				Label:         "Nested",
				LogicOperator: checklist.LogicAnd,
				Children: []checklist.Item{
					{Id: "leaf_1", Type: checklist.ItemCheckbox, Label: ""},
				},
			}},
		}},
	})

	assert.False(t, report.IsValid())
	assert.Len(t, report.Errors, 1)
	assert.Equal(t, "leaf_1", report.Errors[0].ItemId)
}

func TestValidate_depthCeiling(t *testing.T) {
	item := checklist.Item{Id: "leaf", Type: checklist.ItemCheckbox, Label: "Evidence"}
	for i := 0; i < maxChecklistDepth+1; i++ {
		item = checklist.Item{
			Id:            "group",
			Type:          checklist.ItemGroup,
			Label:         "Wrapper",
			LogicOperator: checklist.LogicAnd,
			Children:      []checklist.Item{item},
		}
	}

	report := Validate(checklist.Config{Items: []checklist.Item{item}})

	assert.False(t, report.IsValid())
	assert.Equal(t, models.ChecklistTooDeep, report.Errors[0].Code)
}
