package dto

import (
	"github.com/lgu-seal/sglgb-backend/models"
	"github.com/lgu-seal/sglgb-backend/pure_utils"
)

type ValidationIssueDto struct {
	ItemId   string `json:"item_id"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

type ValidationReportDto struct {
	IsValid      bool                            `json:"is_valid"`
	Errors       []ValidationIssueDto            `json:"errors"`
	Warnings     []ValidationIssueDto            `json:"warnings"`
	IssuesByItem map[string][]ValidationIssueDto `json:"issues_by_item"`
}

func AdaptValidationIssueDto(issue models.ValidationIssue) ValidationIssueDto {
	return ValidationIssueDto{
		ItemId:   issue.ItemId,
		Code:     string(issue.Code),
		Message:  issue.Message,
		Severity: issue.Severity.String(),
	}
}

func AdaptValidationReportDto(report models.ValidationReport) ValidationReportDto {
	return ValidationReportDto{
		IsValid:  report.IsValid(),
		Errors:   pure_utils.Map(report.Errors, AdaptValidationIssueDto),
		Warnings: pure_utils.Map(report.Warnings, AdaptValidationIssueDto),
		IssuesByItem: pure_utils.MapValues(report.IssuesByItem,
			func(issues []models.ValidationIssue) []ValidationIssueDto {
				return pure_utils.Map(issues, AdaptValidationIssueDto)
			}),
	}
}
