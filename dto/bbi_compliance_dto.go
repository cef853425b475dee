package dto

import (
	"time"

	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/pure_utils"
)

type SubIndicatorResultDto struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

type BbiComplianceResultDto struct {
	BbiId                string                  `json:"bbi_id"`
	BbiName              string                  `json:"bbi_name"`
	BbiAbbreviation      string                  `json:"bbi_abbreviation"`
	IndicatorCode        string                  `json:"indicator_code"`
	GovernanceAreaId     string                  `json:"governance_area_id"`
	CompliancePercentage float64                 `json:"compliance_percentage"`
	ComplianceRating     string                  `json:"compliance_rating"`
	SubIndicatorsPassed  int                     `json:"sub_indicators_passed"`
	SubIndicatorsTotal   int                     `json:"sub_indicators_total"`
	SubIndicatorResults  []SubIndicatorResultDto `json:"sub_indicator_results"`
	CalculatedAt         time.Time               `json:"calculated_at"`
}

type BbiComplianceSummaryDto struct {
	TotalBbis                 int     `json:"total_bbis"`
	HighlyFunctionalCount     int     `json:"highly_functional_count"`
	ModeratelyFunctionalCount int     `json:"moderately_functional_count"`
	LowFunctionalCount        int     `json:"low_functional_count"`
	NonFunctionalCount        int     `json:"non_functional_count"`
	AverageCompliancePercent  float64 `json:"average_compliance_percentage"`
}

type AggregationAnomalyDto struct {
	IndicatorId string `json:"indicator_id"`
	Kind        string `json:"kind"`
	Detail      string `json:"detail"`
}

type ComplianceReportDto struct {
	AssessmentId string                          `json:"assessment_id"`
	Verdicts     map[string]ComplianceVerdictDto `json:"verdicts"`
	BbiResults   []BbiComplianceResultDto        `json:"bbi_results"`
	Summary      BbiComplianceSummaryDto         `json:"summary"`
	Anomalies    []AggregationAnomalyDto         `json:"anomalies,omitempty"`
	CalculatedAt time.Time                       `json:"calculated_at"`
}

func AdaptSubIndicatorResultDto(result models.SubIndicatorResult) SubIndicatorResultDto {
	return SubIndicatorResultDto{
		Code:   result.Code,
		Name:   result.Name,
		Passed: result.Passed,
	}
}

func AdaptBbiComplianceResultDto(result models.BbiComplianceResult) BbiComplianceResultDto {
	return BbiComplianceResultDto{
		BbiId:                result.BbiId,
		BbiName:              result.BbiName,
		BbiAbbreviation:      result.BbiAbbreviation,
		IndicatorCode:        result.IndicatorCode,
		GovernanceAreaId:     result.GovernanceAreaId,
		CompliancePercentage: result.CompliancePercentage,
		ComplianceRating:     result.ComplianceRating.String(),
		SubIndicatorsPassed:  result.SubIndicatorsPassed,
		SubIndicatorsTotal:   result.SubIndicatorsTotal,
		SubIndicatorResults:  pure_utils.Map(result.SubIndicatorResults, AdaptSubIndicatorResultDto),
		CalculatedAt:         result.CalculatedAt,
	}
}

func AdaptBbiComplianceSummaryDto(summary models.BbiComplianceSummary) BbiComplianceSummaryDto {
	return BbiComplianceSummaryDto{
		TotalBbis:                 summary.TotalBbis,
		HighlyFunctionalCount:     summary.HighlyFunctionalCount,
		ModeratelyFunctionalCount: summary.ModeratelyFunctionalCount,
		LowFunctionalCount:        summary.LowFunctionalCount,
		NonFunctionalCount:        summary.NonFunctionalCount,
		AverageCompliancePercent:  summary.AverageCompliancePercent,
	}
}

func AdaptAggregationAnomalyDto(anomaly models.AggregationAnomaly) AggregationAnomalyDto {
	return AggregationAnomalyDto{
		IndicatorId: anomaly.IndicatorId,
		Kind:        anomaly.Kind.String(),
		Detail:      anomaly.Detail,
	}
}

func AdaptComplianceReportDto(report models.ComplianceReport) ComplianceReportDto {
	return ComplianceReportDto{
		AssessmentId: report.AssessmentId,
		Verdicts:     pure_utils.MapValues(report.Verdicts, AdaptComplianceVerdictDto),
		BbiResults:   pure_utils.Map(report.BbiResults, AdaptBbiComplianceResultDto),
		Summary:      AdaptBbiComplianceSummaryDto(report.Summary),
		Anomalies:    pure_utils.Map(report.Anomalies, AdaptAggregationAnomalyDto),
		CalculatedAt: report.CalculatedAt,
	}
}
