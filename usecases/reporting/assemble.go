// Package reporting packages aggregation results into the BBI compliance
// report consumed by the assessor and validator frontends.
package reporting

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/usecases/aggregation"
)

// AssembleReport combines the aggregation output with BBI and indicator
// metadata into one ComplianceReport. calculatedAt is passed in so that every
// row of a single calculation carries the same timestamp.
func AssembleReport(
	assessment models.Assessment,
	tree []models.Indicator,
	bbis []models.Bbi,
	output aggregation.Output,
	calculatedAt time.Time,
) models.ComplianceReport {
	bbisById := make(map[string]models.Bbi, len(bbis))
	for _, bbi := range bbis {
		bbisById[bbi.Id] = bbi
	}

	results := make([]models.BbiComplianceResult, 0, len(output.Ratings))
	for _, rating := range output.Ratings {
		bbi := bbisById[rating.BbiId]
		results = append(results, models.BbiComplianceResult{
			Id:                   uuid.NewString(),
			AssessmentId:         assessment.Id,
			BbiId:                rating.BbiId,
			BbiName:              bbi.Name,
			BbiAbbreviation:      bbi.Abbreviation,
			IndicatorCode:        anchorIndicatorCode(tree, rating.BbiId),
			GovernanceAreaId:     assessment.GovernanceAreaId,
			CompliancePercentage: rating.CompliancePercentage,
			ComplianceRating:     rating.ComplianceRating,
			SubIndicatorsPassed:  rating.SubIndicatorsPassed,
			SubIndicatorsTotal:   rating.SubIndicatorsTotal,
			SubIndicatorResults:  subIndicatorResults(tree, output.Verdicts, rating.BbiId),
			CalculatedAt:         calculatedAt,
		})
	}

	return models.ComplianceReport{
		AssessmentId: assessment.Id,
		Verdicts:     output.Verdicts,
		BbiResults:   results,
		Summary:      Summarize(results),
		Anomalies:    output.Anomalies,
		CalculatedAt: calculatedAt,
	}
}

// anchorIndicatorCode is the lowest dotted code among the BBI's associated
// indicators, i.e. the indicator under which the institution is tracked.
func anchorIndicatorCode(tree []models.Indicator, bbiId string) string {
	code := ""
	for _, node := range tree {
		if node.BbiId == nil || *node.BbiId != bbiId {
			continue
		}
		if code == "" || node.Code < code {
			code = node.Code
		}
	}
	return code
}

func subIndicatorResults(
	tree []models.Indicator,
	verdicts map[string]models.ComplianceVerdict,
	bbiId string,
) []models.SubIndicatorResult {
	results := make([]models.SubIndicatorResult, 0)
	for _, node := range tree {
		if node.BbiId == nil || *node.BbiId != bbiId {
			continue
		}
		verdict, ok := verdicts[node.Id]
		if !ok {
			continue
		}
		results = append(results, models.SubIndicatorResult{
			Code:   node.Code,
			Name:   node.Name,
			Passed: verdict.Status == models.Pass,
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Code < results[j].Code })
	return results
}

// Summarize rolls the per-BBI results up to the assessment level.
func Summarize(results []models.BbiComplianceResult) models.BbiComplianceSummary {
	summary := models.BbiComplianceSummary{TotalBbis: len(results)}

	totalPercentage := 0.0
	for _, result := range results {
		totalPercentage += result.CompliancePercentage
		switch result.ComplianceRating {
		case models.HighlyFunctional:
			summary.HighlyFunctionalCount++
		case models.ModeratelyFunctional:
			summary.ModeratelyFunctionalCount++
		case models.LowFunctional:
			summary.LowFunctionalCount++
		case models.NonFunctional:
			summary.NonFunctionalCount++
		}
	}
	if len(results) > 0 {
		summary.AverageCompliancePercent = totalPercentage / float64(len(results))
	}
	return summary
}
