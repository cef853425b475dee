package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/pure_utils"
	"github.com/lgu-seal/sglgb-backend/usecases/aggregation"
)

func TestAssembleReport(t *testing.T) {
	assessment := models.Assessment{
		Id:               "assessment_1",
		BarangayName:     "San Isidro",
		GovernanceAreaId: "area_1",
	}
	tree := []models.Indicator{
		{Id: "ind_2", Code: "1.2.2", Name: "Quarterly meetings held", BbiId: pure_utils.Ptr("bdc")},
		{Id: "ind_1", Code: "1.2.1", Name: "Council organized", BbiId: pure_utils.Ptr("bdc")},
	}
	bbis := []models.Bbi{
		{Id: "bdc", Name: "Barangay Development Council", Abbreviation: "BDC"},
	}
	output := aggregation.Output{
		Verdicts: map[string]models.ComplianceVerdict{
			"ind_1": {Status: models.Pass},
			"ind_2": {Status: models.Fail},
		},
		Ratings: []models.InstitutionRating{{
			BbiId:                "bdc",
			SubIndicatorsPassed:  1,
			SubIndicatorsTotal:   2,
			CompliancePercentage: 50,
			ComplianceRating:     models.ModeratelyFunctional,
		}},
	}
	calculatedAt := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	report := AssembleReport(assessment, tree, bbis, output, calculatedAt)

	require.Len(t, report.BbiResults, 1)
	result := report.BbiResults[0]
	assert.NotEmpty(t, result.Id)
	assert.Equal(t, "assessment_1", result.AssessmentId)
	assert.Equal(t, "Barangay Development Council", result.BbiName)
	assert.Equal(t, "BDC", result.BbiAbbreviation)
	assert.Equal(t, "1.2.1", result.IndicatorCode)
	assert.Equal(t, "area_1", result.GovernanceAreaId)
	assert.Equal(t, calculatedAt, result.CalculatedAt)

	require.Len(t, result.SubIndicatorResults, 2)
	assert.Equal(t, models.SubIndicatorResult{Code: "1.2.1", Name: "Council organized", Passed: true},
		result.SubIndicatorResults[0])
	assert.Equal(t, models.SubIndicatorResult{Code: "1.2.2", Name: "Quarterly meetings held", Passed: false},
		result.SubIndicatorResults[1])

	assert.Equal(t, 1, report.Summary.TotalBbis)
	assert.Equal(t, 1, report.Summary.ModeratelyFunctionalCount)
	assert.Equal(t, 50.0, report.Summary.AverageCompliancePercent)
}

func TestSummarize(t *testing.T) {
	results := []models.BbiComplianceResult{
		{ComplianceRating: models.HighlyFunctional, CompliancePercentage: 100},
		{ComplianceRating: models.HighlyFunctional, CompliancePercentage: 80},
		{ComplianceRating: models.LowFunctional, CompliancePercentage: 30},
		{ComplianceRating: models.NonFunctional, CompliancePercentage: 0},
	}

	summary := Summarize(results)

	assert.Equal(t, 4, summary.TotalBbis)
	assert.Equal(t, 2, summary.HighlyFunctionalCount)
	assert.Equal(t, 0, summary.ModeratelyFunctionalCount)
	assert.Equal(t, 1, summary.LowFunctionalCount)
	assert.Equal(t, 1, summary.NonFunctionalCount)
	assert.Equal(t, 52.5, summary.AverageCompliancePercent)
}

func TestSummarize_empty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.TotalBbis)
	assert.Equal(t, 0.0, summary.AverageCompliancePercent)
}
