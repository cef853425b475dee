package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/models/checklist"
	"github.com/lgu-seal/sglgb-backend/pure_utils"
)

func TestAdaptChecklistConfig(t *testing.T) {
	t.Run("rejects unknown item types", func(t *testing.T) {
		_, err := AdaptChecklistConfig(ChecklistConfigDto{
			Items: []ChecklistItemDto{{Id: "x", Type: "slider", Label: "Level"}},
		})
		assert.ErrorIs(t, err, models.BadParameterError)
	})

	t.Run("rejects unknown logic operators", func(t *testing.T) {
		for _, operator := range []string{"XOR", "or"} {
			_, err := AdaptChecklistConfig(ChecklistConfigDto{
				Items: []ChecklistItemDto{{
					Id:            "g",
					Type:          "group",
					Label:         "Evidence",
					LogicOperator: operator,
					Children: []ChecklistItemDto{
						{Id: "a", Type: "checkbox", Label: "Resolution on file"},
					},
				}},
			})
			assert.ErrorIs(t, err, models.BadParameterError)
		}
	})

	t.Run("rejects unknown assessment types", func(t *testing.T) {
		_, err := AdaptChecklistConfig(ChecklistConfigDto{
			Items: []ChecklistItemDto{{
				Id:             "a",
				Type:           "assessment",
				Label:          "Validator judgment",
				AssessmentType: "MAYBE",
			}},
		})
		assert.ErrorIs(t, err, models.BadParameterError)
	})

	t.Run("rejects unknown validation modes", func(t *testing.T) {
		_, err := AdaptChecklistConfig(ChecklistConfigDto{ValidationMode: "pedantic"})
		assert.ErrorIs(t, err, models.BadParameterError)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		_, err := AdaptChecklistConfig(ChecklistConfigDto{
			Items: []ChecklistItemDto{{
				Id:      "d",
				Type:    "date_input",
				Label:   "Submission date",
				MaxDate: pure_utils.Ptr("31/12/2024"),
			}},
		})
		assert.ErrorIs(t, err, models.BadParameterError)
	})

	t.Run("adapts nested groups", func(t *testing.T) {
		config, err := AdaptChecklistConfig(ChecklistConfigDto{
			ValidationMode: "strict",
			Items: []ChecklistItemDto{{
				Id:            "g",
				Type:          "group",
				Label:         "Evidence",
				LogicOperator: "OR",
				MinRequired:   pure_utils.Ptr(1),
				Children: []ChecklistItemDto{
					{Id: "a", Type: "checkbox", Label: "Resolution on file", Required: true},
					{Id: "b", Type: "currency_input", Label: "Budget", MinValue: pure_utils.Ptr(0.0), MaxValue: pure_utils.Ptr(1e6), Threshold: pure_utils.Ptr(5e5), Comparator: "gte"},
				},
			}},
		})
		require.NoError(t, err)
		require.Len(t, config.Items, 1)

		group := config.Items[0]
		assert.Equal(t, checklist.ItemGroup, group.Type)
		assert.Equal(t, checklist.LogicOr, group.LogicOperator)
		require.Len(t, group.Children, 2)
		assert.Equal(t, checklist.ItemCurrencyInput, group.Children[1].Type)
		assert.Equal(t, 500_000.0, *group.Children[1].Threshold)
		assert.Equal(t, checklist.ValidationStrict, config.ValidationMode)
	})
}

func TestAdaptChecklistItemDto(t *testing.T) {
	t.Run("emits only the variant fields", func(t *testing.T) {
		date := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
		dateDto := AdaptChecklistItemDto(checklist.Item{
			Id:                      "d",
			Type:                    checklist.ItemDateInput,
			Label:                   "Submission date",
			MaxDate:                 &date,
			GracePeriodDays:         pure_utils.Ptr(30),
			ConsideredStatusEnabled: true,
		})

		assert.Equal(t, "date_input", dateDto.Type)
		require.NotNil(t, dateDto.MaxDate)
		assert.Equal(t, "2024-12-31", *dateDto.MaxDate)
		assert.Nil(t, dateDto.DefaultChecked)
		assert.Nil(t, dateDto.MinValue)
		assert.Empty(t, dateDto.Comparator)
	})

	t.Run("survives a round trip", func(t *testing.T) {
		item := checklist.Item{
			Id:          "g",
			Type:        checklist.ItemGroup,
			Label:       "Evidence",
			MinRequired: pure_utils.Ptr(2),
			Children: []checklist.Item{
				{Id: "r", Type: checklist.ItemRadioGroup, Label: "Frequency", Required: true, Options: []checklist.SelectOption{
					{Label: "Monthly", Value: "monthly"},
					{Label: "Quarterly", Value: "quarterly"},
				}},
			},
		}

		adapted, err := AdaptChecklistItem(AdaptChecklistItemDto(item))
		require.NoError(t, err)
		assert.Equal(t, item, adapted)
	})
}
