package dto

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/models/checklist"
	"github.com/lgu-seal/sglgb-backend/pure_utils"
)

const dateLayout = "2006-01-02"

type SelectOptionDto struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ChecklistItemDto is the wire shape of one checklist item. The "type" string
// discriminates the variant; fields that do not belong to the variant are
// omitted.
type ChecklistItemDto struct {
	Id       string `json:"id"`
	Type     string `json:"type"`
	Label    string `json:"label"`
	Required bool   `json:"required"`

	DefaultChecked *bool `json:"default_checked,omitempty"`

	LogicOperator string             `json:"logic_operator,omitempty"`
	MinRequired   *int               `json:"min_required,omitempty"`
	Children      []ChecklistItemDto `json:"children,omitempty"`

	MinValue     *float64 `json:"min_value,omitempty"`
	MaxValue     *float64 `json:"max_value,omitempty"`
	Threshold    *float64 `json:"threshold,omitempty"`
	Comparator   string   `json:"comparator,omitempty"`
	CurrencyCode string   `json:"currency_code,omitempty"`
	Unit         string   `json:"unit,omitempty"`

	MinDate                 *string `json:"min_date,omitempty"`
	MaxDate                 *string `json:"max_date,omitempty"`
	GracePeriodDays         *int    `json:"grace_period_days,omitempty"`
	ConsideredStatusEnabled bool    `json:"considered_status_enabled,omitempty"`

	Options       []SelectOptionDto `json:"options,omitempty"`
	DefaultValue  *string           `json:"default_value,omitempty"`
	AllowMultiple bool              `json:"allow_multiple,omitempty"`
	Searchable    bool              `json:"searchable,omitempty"`

	AssessmentType string `json:"assessment_type,omitempty"`
}

type ChecklistConfigDto struct {
	Items          []ChecklistItemDto `json:"items"`
	ValidationMode string             `json:"validation_mode,omitempty"`
}

func AdaptChecklistConfig(dto ChecklistConfigDto) (checklist.Config, error) {
	validationMode := checklist.ValidationModeFrom(dto.ValidationMode)
	if validationMode == checklist.UnknownValidationMode {
		return checklist.Config{}, errors.Wrapf(models.BadParameterError,
			"unknown validation mode %q", dto.ValidationMode)
	}

	items, err := pure_utils.MapErr(dto.Items, AdaptChecklistItem)
	if err != nil {
		return checklist.Config{}, err
	}
	return checklist.Config{
		Items:          items,
		ValidationMode: validationMode,
	}, nil
}

func AdaptChecklistItem(dto ChecklistItemDto) (checklist.Item, error) {
	itemType := checklist.ItemTypeFrom(dto.Type)
	if itemType == checklist.UnknownItemType {
		return checklist.Item{}, errors.Wrapf(models.BadParameterError,
			"unknown checklist item type %q", dto.Type)
	}

	children, err := pure_utils.MapErr(dto.Children, AdaptChecklistItem)
	if err != nil {
		return checklist.Item{}, err
	}

	minDate, err := adaptDate(dto.MinDate)
	if err != nil {
		return checklist.Item{}, err
	}
	maxDate, err := adaptDate(dto.MaxDate)
	if err != nil {
		return checklist.Item{}, err
	}

	comparator := checklist.ComparatorFrom(dto.Comparator)
	if comparator == checklist.UnknownComparator {
		return checklist.Item{}, errors.Wrapf(models.BadParameterError,
			"unknown comparator %q", dto.Comparator)
	}

	logicOperator := checklist.LogicOperatorFrom(dto.LogicOperator)
	if logicOperator == checklist.UnknownLogicOperator {
		return checklist.Item{}, errors.Wrapf(models.BadParameterError,
			"unknown logic operator %q", dto.LogicOperator)
	}

	assessmentType := checklist.AssessmentTypeFrom(dto.AssessmentType)
	if assessmentType == checklist.UnknownAssessmentType {
		return checklist.Item{}, errors.Wrapf(models.BadParameterError,
			"unknown assessment type %q", dto.AssessmentType)
	}

	item := checklist.Item{
		Id:                      dto.Id,
		Type:                    itemType,
		Label:                   dto.Label,
		Required:                dto.Required,
		LogicOperator:           logicOperator,
		MinRequired:             dto.MinRequired,
		Children:                children,
		Threshold:               dto.Threshold,
		Comparator:              comparator,
		CurrencyCode:            dto.CurrencyCode,
		Unit:                    dto.Unit,
		MinDate:                 minDate,
		MaxDate:                 maxDate,
		GracePeriodDays:         dto.GracePeriodDays,
		ConsideredStatusEnabled: dto.ConsideredStatusEnabled,
		Options: pure_utils.Map(dto.Options, func(o SelectOptionDto) checklist.SelectOption {
			return checklist.SelectOption{Label: o.Label, Value: o.Value}
		}),
		DefaultValue:   dto.DefaultValue,
		AllowMultiple:  dto.AllowMultiple,
		Searchable:     dto.Searchable,
		AssessmentType: assessmentType,
	}
	if dto.DefaultChecked != nil {
		item.DefaultChecked = *dto.DefaultChecked
	}
	if dto.MinValue != nil {
		item.MinValue = *dto.MinValue
	}
	if dto.MaxValue != nil {
		item.MaxValue = *dto.MaxValue
	}
	if len(item.Children) == 0 {
		item.Children = nil
	}
	if len(item.Options) == 0 {
		item.Options = nil
	}
	return item, nil
}

func AdaptChecklistConfigDto(config checklist.Config) ChecklistConfigDto {
	return ChecklistConfigDto{
		Items:          pure_utils.Map(config.Items, AdaptChecklistItemDto),
		ValidationMode: config.ValidationMode.String(),
	}
}

func AdaptChecklistItemDto(item checklist.Item) ChecklistItemDto {
	dto := ChecklistItemDto{
		Id:                      item.Id,
		Type:                    item.Type.String(),
		Label:                   item.Label,
		Required:                item.Required,
		MinRequired:             item.MinRequired,
		Threshold:               item.Threshold,
		CurrencyCode:            item.CurrencyCode,
		Unit:                    item.Unit,
		GracePeriodDays:         item.GracePeriodDays,
		ConsideredStatusEnabled: item.ConsideredStatusEnabled,
		DefaultValue:            item.DefaultValue,
		AllowMultiple:           item.AllowMultiple,
		Searchable:              item.Searchable,
		Options: pure_utils.Map(item.Options, func(o checklist.SelectOption) SelectOptionDto {
			return SelectOptionDto{Label: o.Label, Value: o.Value}
		}),
	}
	if len(dto.Options) == 0 {
		dto.Options = nil
	}

	switch item.Type {
	case checklist.ItemCheckbox:
		dto.DefaultChecked = pure_utils.Ptr(item.DefaultChecked)
	case checklist.ItemGroup:
		dto.LogicOperator = item.LogicOperator.String()
		dto.Children = pure_utils.Map(item.Children, AdaptChecklistItemDto)
	case checklist.ItemCurrencyInput, checklist.ItemNumberInput:
		dto.MinValue = pure_utils.Ptr(item.MinValue)
		dto.MaxValue = pure_utils.Ptr(item.MaxValue)
		dto.Comparator = item.Comparator.String()
	case checklist.ItemDateInput:
		dto.MinDate = adaptDateDto(item.MinDate)
		dto.MaxDate = adaptDateDto(item.MaxDate)
	case checklist.ItemAssessment:
		dto.AssessmentType = item.AssessmentType.String()
	}
	return dto
}

func adaptDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	date, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, errors.Wrapf(models.BadParameterError,
			"%q is not a valid date, expected YYYY-MM-DD", *value)
	}
	return &date, nil
}

func adaptDateDto(date *time.Time) *string {
	if date == nil {
		return nil
	}
	return pure_utils.Ptr(date.Format(dateLayout))
}
